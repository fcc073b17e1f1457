package resource

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/gif"
	"io"

	"github.com/32bitkid/legend/screen"
)

// SpriteBank is an ordered set of compressed sprites, typically the frames
// of one animated object.
//
// Layout, little endian:
//
//	uint16           count
//	uint32 * count   record offsets from the start of the bank
//	record:
//	  uint16 width, uint16 height
//	  int16 x, int16 y
//	  uint32 n
//	  n bytes of RLE payload
type SpriteBank []*screen.Sprite

type spriteRecord struct {
	screen.SpriteHeader
	Size uint32
}

const spriteRecordSize = 12

func NewSpriteBank(b []byte) (SpriteBank, error) {
	r := bytes.NewReader(b)

	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("sprite bank header: %w", err)
	}

	offsets := make([]uint32, count)
	if err := binary.Read(r, binary.LittleEndian, &offsets); err != nil {
		return nil, fmt.Errorf("sprite bank offsets: %w", err)
	}

	bank := make(SpriteBank, 0, count)
	for i, offset := range offsets {
		if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
			return nil, err
		}

		var record spriteRecord
		if err := binary.Read(r, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("sprite %d: %w", i, err)
		}

		if int64(record.Size) > int64(r.Len()) {
			return nil, fmt.Errorf("sprite %d: payload of %d bytes: %w", i, record.Size, io.ErrUnexpectedEOF)
		}
		payload := make([]byte, record.Size)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("sprite %d: %w", i, err)
		}

		bank = append(bank, screen.NewSprite(record.SpriteHeader, payload))
	}

	return bank, nil
}

func WriteSpriteBank(w io.Writer, bank SpriteBank) error {
	offsets := make([]uint32, len(bank))
	offset := 2 + 4*len(bank)
	for i, s := range bank {
		offsets[i] = uint32(offset)
		offset += spriteRecordSize + len(s.Payload)
	}

	if err := binary.Write(w, binary.LittleEndian, uint16(len(bank))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, offsets); err != nil {
		return err
	}

	for _, s := range bank {
		record := spriteRecord{SpriteHeader: s.SpriteHeader, Size: uint32(len(s.Payload))}
		if err := binary.Write(w, binary.LittleEndian, &record); err != nil {
			return err
		}
		if _, err := w.Write(s.Payload); err != nil {
			return err
		}
	}
	return nil
}

// Bounds is the union of every sprite's bounds.
func (bank SpriteBank) Bounds() image.Rectangle {
	var rect image.Rectangle
	for _, s := range bank {
		rect = rect.Union(s.Bounds())
	}
	return rect
}

// GIF renders every sprite as one frame of an animation. Frames share the
// bank's bounds, shifted so the top-left corner is the origin, and pixels a
// sprite skips hold the transparent index.
func (bank SpriteBank) GIF(p *screen.Palette, transparent uint8, delay int) *gif.GIF {
	bounds := bank.Bounds()
	rect := bounds.Sub(bounds.Min)

	anim := &gif.GIF{
		Config: image.Config{
			ColorModel: p.Colors(),
			Width:      rect.Dx(),
			Height:     rect.Dy(),
		},
	}

	for _, s := range bank {
		img := image.NewPaletted(rect, p.Colors())
		for i := range img.Pix {
			img.Pix[i] = transparent
		}

		src := s.Paletted(p, transparent)
		at := src.Rect.Min.Sub(bounds.Min)
		for y := 0; y < src.Rect.Dy(); y++ {
			for x := 0; x < src.Rect.Dx(); x++ {
				index := src.Pix[y*src.Stride+x]
				if index == transparent {
					continue
				}
				img.Pix[(at.Y+y)*img.Stride+at.X+x] = index
			}
		}

		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	return anim
}
