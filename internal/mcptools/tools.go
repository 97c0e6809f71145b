package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"palettectl/internal/color"
	"palettectl/internal/config"
	"palettectl/internal/palette"
	"palettectl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPTools"

// PaletteTools provides MCP tools for palette generation and color math
type PaletteTools struct {
	config config.PalettectlConfig
}

// NewPaletteTools creates palette tools that take their defaults from cfg
func NewPaletteTools(cfg config.PalettectlConfig) *PaletteTools {
	return &PaletteTools{config: cfg}
}

// GetTools returns all palette tools
func (pt *PaletteTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("palette_generate",
			mcp.WithDescription("Generate a 6-color palette from the channel permutations of a seed color"),
			mcp.WithString("seed",
				mcp.Description("Seed color as #RRGGBB; a random seed is used when omitted"),
			),
			mcp.WithBoolean("maintain_brightness",
				mcp.Description("Rescale every entry to the seed's perceived brightness"),
			),
		),
		mcp.NewTool("color_contrast",
			mcp.WithDescription("Pick black or white text for legibility on a background color"),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Background color as #RRGGBB"),
			),
			mcp.WithNumber("threshold",
				mcp.Description("Brightness above which black is chosen (default from configuration)"),
			),
		),
		mcp.NewTool("color_brightness",
			mcp.WithDescription("Get the perceived brightness of a color in [0,1]"),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Color as #RRGGBB"),
			),
		),
		mcp.NewTool("color_adjust_brightness",
			mcp.WithDescription("Rescale a color to a target perceived brightness"),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Color as #RRGGBB"),
			),
			mcp.WithNumber("target",
				mcp.Required(),
				mcp.Description("Target brightness, must not be negative"),
			),
		),
		mcp.NewTool("color_sync_brightness",
			mcp.WithDescription("Recolor a target color to be as bright as a source color"),
			mcp.WithString("source",
				mcp.Required(),
				mcp.Description("Color whose brightness is copied, as #RRGGBB"),
			),
			mcp.WithString("target",
				mcp.Required(),
				mcp.Description("Color to recolor, as #RRGGBB"),
			),
		),
		mcp.NewTool("color_random",
			mcp.WithDescription("Generate a uniformly random color"),
		),
	}
}

// Register adds every tool with its handler to s
func (pt *PaletteTools) Register(s *server.MCPServer) {
	handlers := map[string]server.ToolHandlerFunc{
		"palette_generate":        pt.HandleGeneratePalette,
		"color_contrast":          pt.HandleContrast,
		"color_brightness":        pt.HandleBrightness,
		"color_adjust_brightness": pt.HandleAdjustBrightness,
		"color_sync_brightness":   pt.HandleSyncBrightness,
		"color_random":            pt.HandleRandomColor,
	}

	for _, tool := range pt.GetTools() {
		s.AddTool(tool, handlers[tool.Name])
	}
	logging.Debug(subsystem, "Registered %d tools", len(handlers))
}

// HandleGeneratePalette handles the palette_generate tool call
func (pt *PaletteTools) HandleGeneratePalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seedHex := req.GetString("seed", "")
	maintain := req.GetBool("maintain_brightness", pt.config.Palette.MaintainBrightness)

	var seed color.Color
	if seedHex == "" {
		seed = palette.RandomColor()
	} else {
		c, err := pt.parseColor(seedHex)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid seed: %v", err)), nil
		}
		seed = c
	}

	p := palette.Generate(seed, maintain)
	result := map[string]interface{}{
		"seed":                seed.Hex(),
		"maintain_brightness": maintain,
		"colors":              palette.Describe(p, pt.config.Canvas.ContrastThreshold),
	}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format palette: %v", err)), nil
	}
	logging.Debug(subsystem, "Generated palette from %s (maintain brightness: %v)", seed, maintain)
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// HandleContrast handles the color_contrast tool call
func (pt *PaletteTools) HandleContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := pt.requireColor(req, "color")
	if errResult != nil {
		return errResult, nil
	}

	threshold := req.GetFloat("threshold", pt.config.Canvas.ContrastThreshold)
	return mcp.NewToolResultText(palette.ContrastColor(c, threshold).Hex()), nil
}

// HandleBrightness handles the color_brightness tool call
func (pt *PaletteTools) HandleBrightness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := pt.requireColor(req, "color")
	if errResult != nil {
		return errResult, nil
	}

	return mcp.NewToolResultText(strconv.FormatFloat(palette.Brightness(c), 'f', -1, 64)), nil
}

// HandleAdjustBrightness handles the color_adjust_brightness tool call
func (pt *PaletteTools) HandleAdjustBrightness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := pt.requireColor(req, "color")
	if errResult != nil {
		return errResult, nil
	}

	target, err := req.RequireFloat("target")
	if err != nil {
		return mcp.NewToolResultError("target is required"), nil
	}

	adjusted, err := palette.AdjustBrightness(c, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to adjust brightness: %v", err)), nil
	}
	return mcp.NewToolResultText(adjusted.Hex()), nil
}

// HandleSyncBrightness handles the color_sync_brightness tool call
func (pt *PaletteTools) HandleSyncBrightness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, errResult := pt.requireColor(req, "source")
	if errResult != nil {
		return errResult, nil
	}
	target, errResult := pt.requireColor(req, "target")
	if errResult != nil {
		return errResult, nil
	}

	synced, err := palette.SyncBrightness(source, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to sync brightness: %v", err)), nil
	}
	return mcp.NewToolResultText(synced.Hex()), nil
}

// HandleRandomColor handles the color_random tool call
func (pt *PaletteTools) HandleRandomColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(palette.RandomHex()), nil
}

// requireColor reads a required color argument. The second return value is
// the error result to send back when the argument is missing or invalid.
func (pt *PaletteTools) requireColor(req mcp.CallToolRequest, name string) (color.Color, *mcp.CallToolResult) {
	raw, err := req.RequireString(name)
	if err != nil {
		return color.Color{}, mcp.NewToolResultError(fmt.Sprintf("%s is required", name))
	}
	c, err := pt.parseColor(raw)
	if err != nil {
		return color.Color{}, mcp.NewToolResultError(fmt.Sprintf("Invalid %s: %v", name, err))
	}
	return c, nil
}

func (pt *PaletteTools) parseColor(s string) (color.Color, error) {
	if pt.config.Palette.AcceptShortHex {
		expanded, err := color.ExpandShortHex(s)
		if err != nil {
			return color.Color{}, err
		}
		s = expanded
	}
	return color.FromHex(s)
}
