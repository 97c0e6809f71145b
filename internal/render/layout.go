package render

import (
	"errors"

	"github.com/mattn/go-runewidth"
)

// ErrEmptyCanvas is returned when there is no room to draw.
var ErrEmptyCanvas = errors.New("canvas has no drawable area")

// CanvasConfig is the explicit configuration handed to every renderer.
type CanvasConfig struct {
	Width             int
	Height            int
	ShowLabels        bool
	ContrastThreshold float64
}

// Region is the half-open column span [Start, End) of one bar.
type Region struct {
	Start, End int
}

// Width returns the number of columns in the region.
func (r Region) Width() int {
	return r.End - r.Start
}

// Regions splits width columns into n equal-width bars. Integer division
// spreads the remainder across the bars, so all columns are covered.
func Regions(width, n int) []Region {
	if n <= 0 || width <= 0 {
		return nil
	}
	regions := make([]Region, n)
	for i := range regions {
		regions[i] = Region{Start: i * width / n, End: (i + 1) * width / n}
	}
	return regions
}

// LabelRow is the row the hex labels are drawn on.
func LabelRow(height int) int {
	return height / 2
}

// fitLabel truncates label to at most width cells.
func fitLabel(label string, width int) string {
	if runewidth.StringWidth(label) <= width {
		return label
	}
	return runewidth.Truncate(label, width, "")
}
