package resource

import (
	"fmt"
	"image"

	"github.com/32bitkid/legend/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// NewFont wraps raw glyph bitmaps. The data has no header; trailing bytes
// that do not fill a whole glyph are unreachable.
func NewFont(width, height int, b []byte) (*screen.Font, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid glyph size %dx%d", width, height)
	}
	f := screen.NewFont(width, height, b)
	if f.Glyphs() == 0 {
		return nil, fmt.Errorf("font data holds no %dx%d glyphs (%d bytes)", width, height, len(b))
	}
	return f, nil
}

// FontFromFace rasterizes the first count runes of face into a bitmap font
// with cells of width x height. Pixels with coverage of at least half are
// set.
func FontFromFace(face font.Face, width, height, count int) *screen.Font {
	cell := image.NewAlpha(image.Rect(0, 0, width, height))
	bytesPerRow := (width + 7) >> 3
	data := make([]byte, 0, count*bytesPerRow*height)

	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{Dst: cell, Src: image.Opaque, Face: face}

	for r := 0; r < count; r++ {
		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		d.Dot = fixed.P(0, ascent)
		d.DrawString(string(rune(r)))

		for y := 0; y < height; y++ {
			row := make([]byte, bytesPerRow)
			for x := 0; x < width; x++ {
				if cell.Pix[y*cell.Stride+x] >= 0x80 {
					row[x>>3] |= 0x80 >> uint(x&7)
				}
			}
			data = append(data, row...)
		}
	}
	return screen.NewFont(width, height, data)
}

// DefaultFont is a 128 glyph ASCII font built from basicfont.Face7x13, for
// use when no font asset is available.
func DefaultFont() *screen.Font {
	return FontFromFace(basicfont.Face7x13, 8, 13, 128)
}
