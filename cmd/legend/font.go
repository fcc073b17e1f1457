package main

import (
	"github.com/spf13/cobra"

	"github.com/32bitkid/legend"
	"github.com/32bitkid/legend/screen"
)

const sheetColumns = 16

var (
	flagWide  bool
	flagFirst int
	flagCount int
)

var fontCmd = &cobra.Command{
	Use:   "font <out>",
	Short: "Render a font as a glyph sheet",
	Long: `Render glyphs 16 to a row. Without --wide the narrow single-byte font
is drawn; with --wide glyphs are addressed by their position in the Big5
font.

Examples:
  legend font ascii.png
  legend font big5.png --wide --first 5401 --count 256`,
	Args: cobra.ExactArgs(1),
	RunE: runFont,
}

func init() {
	fontCmd.Flags().BoolVar(&flagWide, "wide", false, "Draw the wide Big5 font")
	fontCmd.Flags().IntVar(&flagFirst, "first", 0, "First glyph")
	fontCmd.Flags().IntVar(&flagCount, "count", 0, "Number of glyphs (default: all)")
}

func glyphSheet(f *screen.Font, wide bool, first, count int, fg screen.Color, bg screen.Color) *screen.Canvas {
	if count <= 0 || first+count > f.Glyphs() {
		count = f.Glyphs() - first
	}
	if count < 0 {
		count = 0
	}

	rows := (count + sheetColumns - 1) / sheetColumns
	c := screen.NewCanvas(sheetColumns*f.Width, rows*f.Height)
	c.ClearColor(bg)

	for i := 0; i < count; i++ {
		index := first + i
		code := screen.Code(index)
		if wide {
			var ok bool
			if code, ok = screen.CodeForGlyph(index); !ok {
				continue
			}
		}
		c.DrawChar(code, (i%sheetColumns)*f.Width, (i/sheetColumns)*f.Height, f, fg)
	}
	return c
}

func runFont(cmd *cobra.Command, args []string) error {
	root := legend.NewRoot(cfg.Assets.Root)
	gf, err := root.LoadGameFont(cfg.Assets.NarrowFont, cfg.Assets.WideFont)
	if err != nil {
		return err
	}

	theme, err := cfg.Colors.Theme()
	if err != nil {
		return err
	}

	f := gf.Narrow
	if flagWide {
		f = gf.Wide
	}

	sheet := glyphSheet(f, flagWide, flagFirst, flagCount, theme.Text, theme.Background)
	return scaleCanvas(sheet, cfg.Display.Scale).Save(args[0])
}
