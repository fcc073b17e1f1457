package screen

import (
	"fmt"
	"image/color"
	"strconv"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

var Transparent = Color{}

func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func FromColor(c color.Color) Color {
	if sc, ok := c.(Color); ok {
		return sc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// AlphaBlend mixes target into c by alpha. The result is always opaque:
// canvases composite onto an opaque backdrop.
func (c Color) AlphaBlend(target Color, alpha float64) Color {
	switch {
	case alpha < 0 || alpha != alpha:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	return Color{
		R: lerp8(c.R, target.R, alpha),
		G: lerp8(c.G, target.G, alpha),
		B: lerp8(c.B, target.B, alpha),
		A: 0xff,
	}
}

// Blend mixes target into c weighted by target's own alpha.
func (c Color) Blend(target Color) Color {
	return c.AlphaBlend(target, float64(target.A)/255.0)
}

func lerp8(v0, v1 uint8, t float64) uint8 {
	v := float64(v0) + (float64(v1)-float64(v0))*t
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Lerp mixes two colors in CIE-L*a*b* space. Grays are mixed in RGB, which
// keeps a neutral ramp neutral. Alpha is interpolated linearly.
func Lerp(a, b Color, t float64) Color {
	c1, _ := clr.MakeColor(a.opaque())
	c2, _ := clr.MakeColor(b.opaque())

	var mixed clr.Color
	if (a.R == a.G && a.G == a.B) || (b.R == b.G && b.G == b.B) {
		mixed = c1.BlendRgb(c2, t).Clamped()
	} else {
		mixed = c1.BlendLab(c2, t).Clamped()
	}

	r, g, bl := mixed.RGB255()
	return Color{r, g, bl, lerp8(a.A, b.A, t)}
}

func (c Color) opaque() Color {
	c.A = 0xff
	return c
}

// Hex formats c as #rrggbb, or #rrggbbaa when c is not opaque.
func (c Color) Hex() string {
	cc, _ := clr.MakeColor(c.opaque())
	if c.A == 0xff {
		return cc.Hex()
	}
	return fmt.Sprintf("%s%02x", cc.Hex(), c.A)
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHex(s string) (Color, error) {
	alpha := uint8(0xff)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	cc, err := clr.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := cc.RGB255()
	return Color{r, g, b, alpha}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}
