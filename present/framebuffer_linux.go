//go:build linux

package present

import (
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// Framebuffer writes frames to a Linux framebuffer device, stretched to
// the device's resolution.
type Framebuffer struct {
	dev *fb.Device
}

// OpenFramebuffer opens a device such as /dev/fb0.
func OpenFramebuffer(path string) (*Framebuffer, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return &Framebuffer{dev: dev}, nil
}

func (f *Framebuffer) Present(frame []byte, width, height int) error {
	src, err := Frame(frame, width, height)
	if err != nil {
		return err
	}

	bounds := f.dev.Bounds()
	img := Scale(src, bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			px := img.NRGBAAt(x, y)
			f.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
		}
	}
	return nil
}

func (f *Framebuffer) Close() error {
	f.dev.Close()
	return nil
}
