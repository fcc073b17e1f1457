package screen

import (
	"image"
)

// SpriteHeader carries the size of a sprite and the offset of its top-left
// pixel from the point it is drawn at.
type SpriteHeader struct {
	Width  uint16
	Height uint16
	X      int16
	Y      int16
}

// Sprite is a palette-indexed image compressed with a per-scanline
// skip/run encoding. See decodeRLE for the payload layout.
type Sprite struct {
	SpriteHeader
	Payload []byte
}

func NewSprite(header SpriteHeader, payload []byte) *Sprite {
	return &Sprite{SpriteHeader: header, Payload: payload}
}

func (s *Sprite) IsEmpty() bool {
	return len(s.Payload) == 0
}

// Bounds is the area covered by the sprite when drawn at (0, 0).
func (s *Sprite) Bounds() image.Rectangle {
	return image.Rect(
		int(s.X), int(s.Y),
		int(s.X)+int(s.Width), int(s.Y)+int(s.Height),
	)
}

// Paletted decodes the sprite into a paletted image positioned at its
// offset. Pixels the sprite skips are set to transparent.
func (s *Sprite) Paletted(p *Palette, transparent uint8) *image.Paletted {
	rect := s.Bounds()
	img := image.NewPaletted(rect, p.Colors())
	for i := range img.Pix {
		img.Pix[i] = transparent
	}

	decodeRLE(s, func(x, y int, index uint8) {
		if x >= int(s.Width) {
			return
		}
		img.Pix[y*img.Stride+x] = index
	})
	return img
}
