package screen

import (
	"errors"
	"image/color"
)

const PaletteSize = 256

var ErrPaletteRange = errors.New("palette band out of range")

// Palette is a fixed table of 256 colors addressed by a uint8 index.
type Palette [PaletteSize]Color

// NewPalette returns a palette of opaque black entries.
func NewPalette() *Palette {
	var p Palette
	for i := range p {
		p[i] = Color{A: 0xff}
	}
	return &p
}

func (p *Palette) Color(index uint8) Color {
	return p[index]
}

func (p *Palette) SetColor(index uint8, c Color) {
	p[index] = c
}

func (p *Palette) Swap(a, b uint8) {
	p[a], p[b] = p[b], p[a]
}

// Animate cycles the band [index-count, index] by one slot: every entry
// moves up one position and the entry at index wraps to index-count.
// Repeated once per tick this scrolls water and fire ramps.
func (p *Palette) Animate(index, count uint8) error {
	if index < count {
		return ErrPaletteRange
	}

	saved := p[index]
	for i := uint8(0); i < count; i++ {
		p[index-i] = p[index-i-1]
	}
	p[index-count] = saved
	return nil
}

// Gradient fills the inclusive band [from, to] with a ramp from a to b.
func (p *Palette) Gradient(from, to uint8, a, b Color) error {
	if to < from {
		return ErrPaletteRange
	}

	steps := int(to) - int(from)
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		p[int(from)+i] = Lerp(a, b, t)
	}
	return nil
}

// Colors returns a copy usable as the palette of an image.Paletted.
func (p *Palette) Colors() color.Palette {
	pal := make(color.Palette, PaletteSize)
	for i, c := range p {
		pal[i] = c
	}
	return pal
}
