// legend renders and inspects the assets of a palette-indexed 2D game.
//
// Usage:
//
//	legend ls                        - List recognised assets
//	legend render <out>              - Render a frame to PNG, BMP or TIFF
//	legend palette <out>             - Render the palette as a swatch sheet
//	legend font <out>                - Render a font as a glyph sheet
//	legend sprites <bank> <out.gif>  - Export a sprite bank as an animation
//	legend preview                   - Show a frame in the terminal or on /dev/fb0
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.legend/legend.yaml, ./legend.yaml)
//	--assets <dir>      - Asset directory, overriding the config
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/32bitkid/legend"
	"github.com/32bitkid/legend/config"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string

	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "legend",
	Short: "Render and inspect palette-indexed game assets",
	Long: `legend works on a directory of game assets: a raw 256 color
palette, 8x16 and 16x16 bitmap fonts, RLE sprite banks and Big5 text
tables.

Examples:
  legend ls --assets ./data
  legend render frame.png --sprites hero.spr --text "勇者"
  legend sprites hero.spr hero.gif
  legend preview --sprites hero.spr`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(lsCmd, renderCmd, paletteCmd, fontCmd, spritesCmd, previewCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	if cfg, err = config.Load(flagConfig); err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Root = flagAssets
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	logger, err := cfg.Logger(os.Stderr, "legend")
	if err != nil {
		return err
	}
	legend.SetLogger(logger)
	logger.Debug("config loaded", "assets", cfg.Assets.Root, "width", cfg.Display.Width, "height", cfg.Display.Height)
	return nil
}
