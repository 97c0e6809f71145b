package render

import (
	"strings"

	"palettectl/internal/palette"

	"github.com/charmbracelet/lipgloss"
)

// Canvas draws a palette inline as colored terminal cells.
type Canvas struct {
	config   CanvasConfig
	renderer *lipgloss.Renderer
}

// NewCanvas creates a canvas using the default lipgloss renderer, which
// picks its color profile from stdout.
func NewCanvas(config CanvasConfig) *Canvas {
	return &Canvas{config: config, renderer: lipgloss.DefaultRenderer()}
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to another writer.
func (c *Canvas) WithRenderer(r *lipgloss.Renderer) *Canvas {
	c.renderer = r
	return c
}

// Render returns the palette as Height lines of Width cells each, one
// vertical bar per entry.
func (c *Canvas) Render(p palette.Palette) (string, error) {
	if c.config.Width < 1 || c.config.Height < 1 {
		return "", ErrEmptyCanvas
	}

	regions := Regions(c.config.Width, len(p))
	labels := p.Contrast(c.config.ContrastThreshold)
	labelRow := LabelRow(c.config.Height)

	fills := make([]string, len(p))
	labelCells := make([]string, len(p))
	for i, entry := range p {
		w := regions[i].Width()
		if w == 0 {
			continue
		}
		bar := c.renderer.NewStyle().
			Background(lipgloss.Color(entry.Hex())).
			Width(w)
		fills[i] = bar.Render(strings.Repeat(" ", w))

		if c.config.ShowLabels {
			labelCells[i] = bar.
				Foreground(lipgloss.Color(labels[i].Hex())).
				Align(lipgloss.Center).
				Render(fitLabel(entry.Hex(), w))
		}
	}

	fillLine := strings.Join(fills, "")
	lines := make([]string, c.config.Height)
	for y := range lines {
		if c.config.ShowLabels && y == labelRow {
			lines[y] = strings.Join(labelCells, "")
			continue
		}
		lines[y] = fillLine
	}
	return strings.Join(lines, "\n"), nil
}
