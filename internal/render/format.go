package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"palettectl/internal/palette"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Format.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned for an output format Format does not support.
var ErrUnknownFormat = errors.New("unknown output format")

// Format writes swatches to w as text, table, json or yaml.
func Format(w io.Writer, swatches []palette.Swatch, format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		for _, s := range swatches {
			if _, err := fmt.Fprintf(w, "%d  %s  brightness=%.3f  label=%s\n", s.Index, s.Hex, s.Brightness, s.Label); err != nil {
				return err
			}
		}
		return nil
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"#", "HEX", "BRIGHTNESS", "LABEL"})
		for _, s := range swatches {
			t.AppendRow(table.Row{s.Index, s.Hex, fmt.Sprintf("%.3f", s.Brightness), s.Label})
		}
		t.Render()
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(swatches)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(swatches); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q (supported: text, table, json, yaml)", ErrUnknownFormat, format)
	}
}

// HexList joins the palette's hex codes, one per line, for the clipboard.
func HexList(p palette.Palette) string {
	return strings.Join(p.Hex(), "\n")
}
