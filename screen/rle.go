package screen

import (
	"errors"
	"fmt"
	"image"
)

// Sprite payload, one record per scanline:
//
// bytes     |
// 1         | line length, the count of bytes that follow for this line
// 1         | skip, columns to advance without drawing
// 1         | run, count of palette indices that follow (absent when the
//           | skip consumed the last byte of the line)
// run       | palette indices, drawn left to right
// ...       | skip/run blocks repeat until line length bytes are read

type rleState uint8

const (
	rleAwaitSkip rleState = iota
	rleAwaitRunLength
	rleConsumingRun
	rleLineDone
)

type rleDecoder struct {
	data []byte
	pos  int

	state     rleState
	lineStart int
	lineLen   int
	x         int
	remaining int
}

func (d *rleDecoder) read() (uint8, bool) {
	if d.pos >= len(d.data) {
		return 0, false
	}
	b := d.data[d.pos]
	d.pos++
	return b, true
}

func (d *rleDecoder) consumed() int {
	return d.pos - d.lineStart
}

// line decodes one scanline, calling emit for every opaque pixel. It
// returns false once the payload is exhausted.
func (d *rleDecoder) line(y int, emit func(x, y int, index uint8)) bool {
	n, ok := d.read()
	if !ok {
		return false
	}
	d.lineLen = int(n)
	d.lineStart = d.pos
	d.x = 0
	d.state = rleAwaitSkip

	for d.state != rleLineDone {
		switch d.state {
		case rleAwaitSkip:
			if d.consumed() >= d.lineLen {
				d.state = rleLineDone
				continue
			}
			skip, ok := d.read()
			if !ok {
				return false
			}
			d.x += int(skip)
			d.state = rleAwaitRunLength

		case rleAwaitRunLength:
			if d.consumed() >= d.lineLen {
				d.state = rleLineDone
				continue
			}
			run, ok := d.read()
			if !ok {
				return false
			}
			d.remaining = int(run)
			d.state = rleConsumingRun

		case rleConsumingRun:
			if d.remaining == 0 {
				d.state = rleAwaitSkip
				continue
			}
			index, ok := d.read()
			if !ok {
				return false
			}
			emit(d.x, y, index)
			d.x++
			d.remaining--
		}
	}
	return true
}

// decodeRLE walks every scanline of s. Coordinates passed to emit are
// relative to the sprite's top-left pixel. A truncated payload ends the
// walk early; a run longer than its line is drawn in full and the next
// line starts at the following byte.
func decodeRLE(s *Sprite, emit func(x, y int, index uint8)) {
	d := rleDecoder{data: s.Payload}
	for y := 0; y < int(s.Height); y++ {
		if !d.line(y, emit) {
			return
		}
	}
}

var ErrLineTooLong = errors.New("sprite scanline exceeds 255 encoded bytes")

// EncodeSprite compresses img, treating transparent as the see-through
// index. The sprite offset is taken from img.Rect.Min.
func EncodeSprite(img *image.Paletted, transparent uint8) (*Sprite, error) {
	rect := img.Rect
	if rect.Dx() > 0xffff || rect.Dy() > 0xffff {
		return nil, fmt.Errorf("sprite %dx%d too large", rect.Dx(), rect.Dy())
	}

	var payload []byte
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		offs := img.PixOffset(rect.Min.X, y)
		line := encodeLine(img.Pix[offs:offs+rect.Dx()], transparent)
		if len(line) > 0xff {
			return nil, fmt.Errorf("line %d: %w", y-rect.Min.Y, ErrLineTooLong)
		}
		payload = append(payload, uint8(len(line)))
		payload = append(payload, line...)
	}

	return &Sprite{
		SpriteHeader: SpriteHeader{
			Width:  uint16(rect.Dx()),
			Height: uint16(rect.Dy()),
			X:      int16(rect.Min.X),
			Y:      int16(rect.Min.Y),
		},
		Payload: payload,
	}, nil
}

func encodeLine(row []uint8, transparent uint8) []byte {
	var out []byte
	x := 0
	for x < len(row) {
		skip := 0
		for x+skip < len(row) && row[x+skip] == transparent {
			skip++
		}
		if x+skip == len(row) {
			break
		}
		x += skip

		// Skips wider than a byte are chained through empty runs.
		for skip > 0xff {
			out = append(out, 0xff, 0)
			skip -= 0xff
		}

		run := 0
		for x+run < len(row) && row[x+run] != transparent && run < 0xff {
			run++
		}
		out = append(out, uint8(skip), uint8(run))
		out = append(out, row[x:x+run]...)
		x += run
	}
	return out
}
