// Package config provides configuration management for palettectl.
//
// Configuration is layered: each source is decoded on top of the previous
// result, so a file only needs the keys it wants to change.
//
// # Configuration Layers
//
//  1. Default Configuration (built into the binary)
//  2. User Configuration (~/.config/palettectl/config.yaml)
//  3. Project Configuration (./.palettectl/config.yaml)
//  4. Explicit file passed with --config
//
// Missing user and project files are skipped. A file that exists but does
// not parse is an error, as is a missing explicit file.
//
// # Configuration Structure
//
//	canvas:
//	  width: 96
//	  height: 12
//	  showLabels: true
//	  contrastThreshold: 0.5
//	palette:
//	  maintainBrightness: false
//	  acceptShortHex: false
//	output:
//	  format: text          # text, table, json or yaml
//	  copyToClipboard: false
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Canvas.Width)
package config
