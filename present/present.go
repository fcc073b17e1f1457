// Package present shows finished frames on an output device.
package present

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var ErrUnsupported = errors.New("presenter not supported on this platform")

// Presenter receives a copy of each frame as R, G, B, A bytes, row-major.
type Presenter interface {
	Present(frame []byte, width, height int) error
	Close() error
}

// Frame wraps frame bytes as an image without copying.
func Frame(frame []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(frame) < width*height*4 {
		return nil, fmt.Errorf("frame of %d bytes is too short for %dx%d", len(frame), width, height)
	}
	return &image.NRGBA{
		Pix:    frame,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Scale resamples src to width x height with nearest-neighbour sampling.
func Scale(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
