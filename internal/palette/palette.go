package palette

import (
	"math/rand/v2"

	"palettectl/internal/color"
)

// Size is the number of entries in a generated palette.
const Size = 6

// Palette is an ordered, fixed-size set of related colors.
type Palette [Size]color.Color

// permutations assigns seed channels (0=r, 1=g, 2=b) to the output R, G, B
// positions of each palette entry.
var permutations = [Size][3]int{
	{0, 1, 2}, // r g b
	{0, 2, 1}, // r b g
	{1, 0, 2}, // g r b
	{1, 2, 0}, // g b r
	{2, 0, 1}, // b r g
	{2, 1, 0}, // b g r
}

// Generate builds the palette of seed's channel permutations. With
// maintainBrightness every entry is synchronized to the seed's brightness.
func Generate(seed color.Color, maintainBrightness bool) Palette {
	pairs := seed.Pairs()
	target := Brightness(seed)

	var p Palette
	for i, perm := range permutations {
		// Pairs are always valid 2-digit hex, so this cannot fail.
		candidate := color.MustHex("#" + pairs[perm[0]] + pairs[perm[1]] + pairs[perm[2]])
		if maintainBrightness {
			// target is a brightness in [0,1], never negative.
			candidate, _ = AdjustBrightness(candidate, target)
		}
		p[i] = candidate
	}
	return p
}

// GenerateHex is Generate for hex strings. The seed must be "#RRGGBB".
func GenerateHex(seed string, maintainBrightness bool) ([]string, error) {
	c, err := color.FromHex(seed)
	if err != nil {
		return nil, err
	}
	return Generate(c, maintainBrightness).Hex(), nil
}

// ContrastHex returns the label color for a "#RRGGBB" background.
func ContrastHex(hex string) (string, error) {
	c, err := color.FromHex(hex)
	if err != nil {
		return "", err
	}
	return Contrast(c).Hex(), nil
}

// randIntN is the random source, replaceable in tests.
var randIntN = rand.IntN

// RandomColor draws each channel uniformly from [0,255].
func RandomColor() color.Color {
	return color.Color{
		R: uint8(randIntN(256)),
		G: uint8(randIntN(256)),
		B: uint8(randIntN(256)),
	}
}

// RandomHex is RandomColor in "#RRGGBB" form.
func RandomHex() string {
	return RandomColor().Hex()
}

// Hex returns the entries in "#RRGGBB" form.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Brightness returns the brightness of each entry.
func (p Palette) Brightness() [Size]float64 {
	var out [Size]float64
	for i, c := range p {
		out[i] = Brightness(c)
	}
	return out
}

// Contrast returns the label color of each entry for the given threshold.
func (p Palette) Contrast(threshold float64) [Size]color.Color {
	var out [Size]color.Color
	for i, c := range p {
		out[i] = ContrastColor(c, threshold)
	}
	return out
}
