package palette

// Swatch describes one palette entry for display.
type Swatch struct {
	Index      int     `json:"index" yaml:"index"`
	Hex        string  `json:"hex" yaml:"hex"`
	Brightness float64 `json:"brightness" yaml:"brightness"`
	Label      string  `json:"label" yaml:"label"`
}

// Describe summarizes each entry of p, choosing label colors with threshold.
func Describe(p Palette, threshold float64) []Swatch {
	swatches := make([]Swatch, 0, len(p))
	for i, c := range p {
		swatches = append(swatches, Swatch{
			Index:      i,
			Hex:        c.Hex(),
			Brightness: Brightness(c),
			Label:      ContrastColor(c, threshold).Hex(),
		})
	}
	return swatches
}
