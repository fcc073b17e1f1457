package resource

import (
	"errors"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/legend/screen"
)

// PaletteBytes is the size of a raw palette: 256 r, g, b triplets.
const PaletteBytes = screen.PaletteSize * 3

var ErrShortPalette = errors.New("palette data shorter than 768 bytes")

// NewPalette decodes a raw palette. Components are 6-bit VGA DAC values and
// are scaled to 8 bits. Bytes past the first 768 are ignored.
func NewPalette(b []byte) (*screen.Palette, error) {
	if len(b) < PaletteBytes {
		return nil, ErrShortPalette
	}

	var p screen.Palette
	for i := range p {
		rgb := b[i*3 : i*3+3]
		p[i] = screen.Color{
			R: (rgb[0] & 0x3f) << 2,
			G: (rgb[1] & 0x3f) << 2,
			B: (rgb[2] & 0x3f) << 2,
			A: 0xff,
		}
	}
	return &p, nil
}

// ReadPalette reads 8-bit r, g, b triplets from r without scaling. It never
// fails: components past the end of the stream are 0, so missing entries
// are opaque black. The number of
// complete entries read is returned alongside.
func ReadPalette(r io.Reader) (*screen.Palette, int) {
	bits := bitreader.NewReader(r)
	p := screen.NewPalette()

	for i := range p {
		var rgb [3]uint8
		for c := range rgb {
			v, err := bits.Read8(8)
			if err != nil {
				if c > 0 {
					p[i] = screen.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
				}
				return p, i
			}
			rgb[c] = v
		}
		p[i] = screen.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	}
	return p, len(p)
}
