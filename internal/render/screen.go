package render

import (
	"context"

	"palettectl/internal/color"
	"palettectl/internal/palette"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen draws a palette across a whole tcell screen. The caller owns the
// screen's Init and Fini.
type Screen struct {
	screen tcell.Screen
	config CanvasConfig
}

// NewScreen wraps an initialized tcell screen. Width and Height of config
// are ignored: the bars always fill the screen.
func NewScreen(screen tcell.Screen, config CanvasConfig) *Screen {
	return &Screen{screen: screen, config: config}
}

// Draw paints the palette into the screen buffer without showing it.
func (s *Screen) Draw(p palette.Palette) error {
	width, height := s.screen.Size()
	if width < 1 || height < 1 {
		return ErrEmptyCanvas
	}

	s.screen.Clear()
	regions := Regions(width, len(p))
	labels := p.Contrast(s.config.ContrastThreshold)
	labelRow := LabelRow(height)

	for i, entry := range p {
		region := regions[i]
		style := tcell.StyleDefault.
			Background(tcellColor(entry)).
			Foreground(tcellColor(labels[i]))

		for y := 0; y < height; y++ {
			for x := region.Start; x < region.End; x++ {
				s.screen.SetContent(x, y, ' ', nil, style)
			}
		}

		if s.config.ShowLabels && region.Width() > 0 {
			label := fitLabel(entry.Hex(), region.Width())
			x := region.Start + (region.Width()-runewidth.StringWidth(label))/2
			for _, r := range label {
				s.screen.SetContent(x, labelRow, r, nil, style)
				x += runewidth.RuneWidth(r)
			}
		}
	}
	return nil
}

// Show draws the palette and blocks until a key is pressed or ctx is done.
// The palette is redrawn whenever the terminal is resized.
func (s *Screen) Show(ctx context.Context, p palette.Palette) error {
	if err := s.Draw(p); err != nil {
		return err
	}
	s.screen.Show()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				// Screen was finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				s.screen.Sync()
				if err := s.Draw(p); err != nil {
					return err
				}
				s.screen.Show()
			}
		}
	}
}

func tcellColor(c color.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
