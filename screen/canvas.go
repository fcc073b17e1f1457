package screen

import (
	"errors"
	"image"
	"image/color"
)

var ErrShortBuffer = errors.New("destination buffer smaller than canvas")

// Canvas is an RGBA pixel buffer. Every drawing operation clips against
// its bounds.
type Canvas struct {
	Width  int
	Height int
	Pix    []Color
}

func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

func (c *Canvas) Pixel(x, y int) Color {
	if !c.inside(x, y) {
		return Transparent
	}
	return c.Pix[y*c.Width+x]
}

func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.inside(x, y) {
		return
	}
	c.Pix[y*c.Width+x] = col
}

// Blit draws sprite s with its anchor at (x, y), resolving indices
// through p. Sprites lying wholly off the canvas are rejected before any
// decoding.
func (c *Canvas) Blit(s *Sprite, x, y int, p *Palette) {
	if s.IsEmpty() {
		return
	}

	startX := x + int(s.X)
	if startX >= c.Width || startX+int(s.Width) <= 0 {
		return
	}

	startY := y + int(s.Y)
	if startY >= c.Height || startY+int(s.Height) <= 0 {
		return
	}

	decodeRLE(s, func(dx, dy int, index uint8) {
		c.SetPixel(startX+dx, startY+dy, p.Color(index))
	})
}

// AlphaBlit composites src at (x, y) with a uniform alpha. Source pixels
// with zero alpha are skipped; otherwise their alpha is ignored.
func (c *Canvas) AlphaBlit(src *Canvas, x, y int, alpha float64) {
	for j := 0; j < src.Height; j++ {
		dy := y + j
		if dy < 0 || dy >= c.Height {
			continue
		}
		for i := 0; i < src.Width; i++ {
			dx := x + i
			if dx < 0 || dx >= c.Width {
				continue
			}

			s := src.Pix[j*src.Width+i]
			if s.A == 0 {
				continue
			}

			idx := dy*c.Width + dx
			c.Pix[idx] = c.Pix[idx].AlphaBlend(s, alpha)
		}
	}
}

// FillRect blends col over the rectangle using col's alpha.
func (c *Canvas) FillRect(x, y, width, height int, col Color) {
	if width <= 0 || height <= 0 {
		return
	}
	r := image.Rect(x, y, x+width, y+height).Intersect(c.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		offs := py * c.Width
		for px := r.Min.X; px < r.Max.X; px++ {
			c.Pix[offs+px] = c.Pix[offs+px].Blend(col)
		}
	}
}

func (c *Canvas) ClearColor(col Color) {
	for i := range c.Pix {
		c.Pix[i] = col
	}
}

// Clear resets every pixel to transparent black.
func (c *Canvas) Clear() {
	c.ClearColor(Transparent)
}

// CopyTo writes the canvas as R, G, B, A bytes, row-major.
func (c *Canvas) CopyTo(buf []byte) error {
	if len(buf) < len(c.Pix)*4 {
		return ErrShortBuffer
	}
	for i, px := range c.Pix {
		buf[i*4+0] = px.R
		buf[i*4+1] = px.G
		buf[i*4+2] = px.B
		buf[i*4+3] = px.A
	}
	return nil
}

func (c *Canvas) Bytes() []byte {
	buf := make([]byte, len(c.Pix)*4)
	_ = c.CopyTo(buf)
	return buf
}

func (c *Canvas) ColorModel() color.Model { return color.NRGBAModel }

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.Width, c.Height) }

func (c *Canvas) At(x, y int) color.Color {
	px := c.Pixel(x, y)
	return color.NRGBA{R: px.R, G: px.G, B: px.B, A: px.A}
}

// Set implements draw.Image.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, FromColor(col))
}
