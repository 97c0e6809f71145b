package palette

import (
	"fmt"
	"math"

	"palettectl/internal/color"
)

// Rec. 601 luma coefficients
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// DefaultContrastThreshold is the brightness above which dark label text is used.
const DefaultContrastThreshold = 0.5

// Brightness returns the perceived brightness of c in [0,1].
func Brightness(c color.Color) float64 {
	r := float64(lumaR * float64(c.R))
	g := float64(lumaG * float64(c.G))
	b := float64(lumaB * float64(c.B))
	return (r + g + b) / 255
}

// ContrastColor returns black for colors brighter than threshold and white
// otherwise. A brightness exactly at the threshold gets white.
func ContrastColor(c color.Color, threshold float64) color.Color {
	if Brightness(c) > threshold {
		return color.Black
	}
	return color.White
}

// Contrast is ContrastColor with DefaultContrastThreshold.
func Contrast(c color.Color) color.Color {
	return ContrastColor(c, DefaultContrastThreshold)
}

// AdjustBrightness rescales c so its brightness approaches target.
//
// Pure black has no hue to scale, so it becomes a neutral gray of the target
// brightness. Scaled channels above 255 are clamped individually, which
// leaves the result darker than target for saturated inputs.
func AdjustBrightness(c color.Color, target float64) (color.Color, error) {
	if math.IsNaN(target) || target < 0 {
		return color.Color{}, fmt.Errorf("%w: target brightness %g must not be negative", color.ErrRange, target)
	}

	current := Brightness(c)
	if current == 0 {
		v := clampChannel(255 * target)
		return color.Color{R: v, G: v, B: v}, nil
	}

	factor := target / current
	return color.Color{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
	}, nil
}

// SyncBrightness returns target recolored to be as bright as source.
func SyncBrightness(source, target color.Color) (color.Color, error) {
	return AdjustBrightness(target, Brightness(source))
}

// clampChannel rounds v to the nearest integer and caps it at 255.
// NaN (0 * +Inf for an infinite target) becomes 0.
func clampChannel(v float64) uint8 {
	rounded := math.Round(v)
	if rounded >= 255 {
		return 255
	}
	if math.IsNaN(rounded) || rounded <= 0 {
		return 0
	}
	return uint8(rounded)
}
