package resource

import (
	"testing"

	"github.com/32bitkid/legend/screen"
)

func TestNewFont(t *testing.T) {
	f, err := NewFont(16, 16, make([]byte, 32*3+5))
	if err != nil {
		t.Fatal(err)
	}
	if f.Glyphs() != 3 {
		t.Errorf("expected(3) != actual(%d)", f.Glyphs())
	}

	if _, err := NewFont(0, 16, make([]byte, 32)); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewFont(8, 16, make([]byte, 15)); err == nil {
		t.Error("expected error for data shorter than one glyph")
	}
}

func countSet(glyph []byte) int {
	n := 0
	for _, b := range glyph {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

func TestDefaultFont(t *testing.T) {
	f := DefaultFont()
	if f.Width != 8 || f.Height != 13 || f.Glyphs() != 128 {
		t.Fatalf("unexpected font %dx%d with %d glyphs", f.Width, f.Height, f.Glyphs())
	}

	space, _ := f.Glyph(' ')
	if countSet(space) != 0 {
		t.Error("space glyph has pixels")
	}
	a, _ := f.Glyph('A')
	if countSet(a) == 0 {
		t.Error("'A' glyph is blank")
	}

	c := screen.NewCanvas(8, 13)
	c.DrawChar('A', 0, 0, f, screen.Color{R: 255, G: 255, B: 255, A: 255})
	drawn := 0
	for _, px := range c.Pix {
		if px != screen.Transparent {
			drawn++
		}
	}
	if drawn != countSet(a) {
		t.Errorf("expected(%d) != actual(%d)", countSet(a), drawn)
	}
}
