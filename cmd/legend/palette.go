package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/32bitkid/legend"
	"github.com/32bitkid/legend/screen"
)

const swatch = 8

var flagList bool

var paletteCmd = &cobra.Command{
	Use:   "palette <out>",
	Short: "Render the palette as a 16x16 swatch sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

func init() {
	paletteCmd.Flags().BoolVar(&flagList, "list", false, "Also print every entry as hex")
}

func paletteSheet(p *screen.Palette) *screen.Canvas {
	c := screen.NewCanvas(16*swatch, 16*swatch)
	for i, col := range p {
		c.FillRect((i%16)*swatch, (i/16)*swatch, swatch, swatch, col)
	}
	return c
}

func runPalette(cmd *cobra.Command, args []string) error {
	p, err := legend.NewRoot(cfg.Assets.Root).LoadPalette(cfg.Assets.Palette)
	if err != nil {
		return err
	}

	if flagList {
		for i, col := range p {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d %s\n", i, col.Hex())
		}
	}

	return scaleCanvas(paletteSheet(p), cfg.Display.Scale).Save(args[0])
}
