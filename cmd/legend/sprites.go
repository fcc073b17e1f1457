package main

import (
	"fmt"
	"image/gif"
	"os"

	"github.com/spf13/cobra"

	"github.com/32bitkid/legend"
)

var (
	flagTransparent uint8
	flagListOnly    bool
)

var spritesCmd = &cobra.Command{
	Use:   "sprites <bank> <out.gif>",
	Short: "Export a sprite bank as an animated GIF",
	Long: `Decode every sprite of a bank with the configured palette and write
them as the frames of a GIF, played at animation.fps.

Examples:
  legend sprites hero.spr hero.gif
  legend sprites hero.spr --list`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSprites,
}

func init() {
	spritesCmd.Flags().Uint8Var(&flagTransparent, "transparent", 0, "Palette index for skipped pixels")
	spritesCmd.Flags().BoolVar(&flagListOnly, "list", false, "Print sprite headers instead of exporting")
}

func runSprites(cmd *cobra.Command, args []string) error {
	root := legend.NewRoot(cfg.Assets.Root)
	bank, err := root.LoadSprites(args[0])
	if err != nil {
		return err
	}

	if flagListOnly {
		for i, s := range bank {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d %dx%d at (%d, %d), %d bytes\n",
				i, s.Width, s.Height, s.X, s.Y, len(s.Payload))
		}
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("missing output path")
	}
	if len(bank) == 0 {
		return fmt.Errorf("%s holds no sprites", args[0])
	}

	p, err := root.LoadPalette(cfg.Assets.Palette)
	if err != nil {
		return err
	}

	anim := bank.GIF(p, flagTransparent, 100/cfg.Animation.FPS)

	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return err
	}
	legend.Logger().Info("animation written", "path", args[1], "frames", len(anim.Image))
	return f.Close()
}
