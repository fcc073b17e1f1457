package resource

import (
	"bytes"
	"testing"

	"github.com/32bitkid/legend/screen"
)

func TestNewPalette(t *testing.T) {
	raw := make([]byte, PaletteBytes+5)
	raw[0], raw[1], raw[2] = 63, 32, 1
	raw[3], raw[4], raw[5] = 0xff, 0x40, 0x00
	raw[765], raw[766], raw[767] = 10, 20, 30

	p, err := NewPalette(raw)
	if err != nil {
		t.Fatal(err)
	}

	expected := map[uint8]screen.Color{
		0:   {R: 252, G: 128, B: 4, A: 255},
		1:   {R: 252, G: 0, B: 0, A: 255},
		2:   {R: 0, G: 0, B: 0, A: 255},
		255: {R: 40, G: 80, B: 120, A: 255},
	}
	for i, want := range expected {
		if got := p.Color(i); got != want {
			t.Errorf("entry %d = %s, expected %s", i, got, want)
		}
	}
}

func TestNewPaletteShort(t *testing.T) {
	p, err := NewPalette(make([]byte, PaletteBytes-1))
	if err != ErrShortPalette {
		t.Errorf("expected ErrShortPalette, got %v", err)
	}
	if p != nil {
		t.Error("expected no palette")
	}
}

func TestReadPalette(t *testing.T) {
	p, n := ReadPalette(bytes.NewReader([]byte{200, 100, 50, 1, 2}))
	if n != 1 {
		t.Errorf("expected(1) != actual(%d)", n)
	}
	if got := p.Color(0); got != (screen.Color{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("entry 0 = %s", got)
	}
	if got := p.Color(1); got != (screen.Color{R: 1, G: 2, B: 0, A: 255}) {
		t.Errorf("entry 1 = %s", got)
	}
	if got := p.Color(2); got != (screen.Color{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("entry 2 = %s", got)
	}

	full := make([]byte, PaletteBytes)
	for i := range full {
		full[i] = byte(i)
	}
	if _, n := ReadPalette(bytes.NewReader(full)); n != screen.PaletteSize {
		t.Errorf("expected(%d) != actual(%d)", screen.PaletteSize, n)
	}
}
