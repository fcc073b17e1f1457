package screen

import (
	"bytes"

	"github.com/32bitkid/bitreader"
)

// DrawChar renders one glyph with its top-left corner at (x, y). Codes
// without a glyph in f draw nothing.
func (c *Canvas) DrawChar(code Code, x, y int, f *Font, col Color) {
	index, ok := GlyphIndex(code)
	if !ok {
		return
	}

	glyph, ok := f.Glyph(index)
	if !ok {
		return
	}

	bits := bitreader.NewReader(bytes.NewReader(glyph))
	rowBits := f.BytesPerRow() << 3
	for j := 0; j < f.Height; j++ {
		for i := 0; i < rowBits; i++ {
			set, err := bits.Read1()
			if err != nil {
				return
			}
			if set && i < f.Width {
				c.SetPixel(x+i, y+j, col)
			}
		}
	}
}

// DrawText renders text in a single fixed-width font. A carriage return
// starts a new line below the first.
func (c *Canvas) DrawText(text Text, x, y int, f *Font, col Color) {
	column, line := 0, 0
	for _, code := range text {
		if code == CarriageReturn {
			line++
			column = 0
			continue
		}

		c.DrawChar(code, x+column*f.Width, y+line*f.Height, f, col)
		column++
	}
}

// DrawGameText renders mixed single- and double-byte text, advancing by
// the width of whichever font each code uses.
func (c *Canvas) DrawGameText(text Text, x, y int, gf *GameFont, col Color) {
	offset := 0
	for _, code := range text {
		f := gf.Font(code)
		c.DrawChar(code, x+offset, y, f, col)
		offset += f.Width
	}
}

// DrawGameTextCenter centers text inside the box (x, y, width, height).
func (c *Canvas) DrawGameTextCenter(text Text, x, y, width, height int, gf *GameFont, col Color) {
	cx, cy := centerIn(text, x, y, width, height, gf)
	c.DrawGameText(text, cx, cy, gf, col)
}

// DrawShadowText draws text one pixel to the right in shadow, then
// text itself on top.
func (c *Canvas) DrawShadowText(text Text, x, y int, gf *GameFont, col, shadow Color) {
	c.DrawGameText(text, x+1, y, gf, shadow)
	c.DrawGameText(text, x, y, gf, col)
}

func (c *Canvas) DrawShadowTextCenter(text Text, x, y, width, height int, gf *GameFont, col, shadow Color) {
	cx, cy := centerIn(text, x, y, width, height, gf)
	c.DrawShadowText(text, cx, cy, gf, col, shadow)
}

func centerIn(text Text, x, y, width, height int, gf *GameFont) (int, int) {
	w, h := gf.Measure(text)
	return x + (width-w)/2, y + (height-h)/2
}
