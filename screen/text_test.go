package screen

import (
	"strings"
	"testing"
)

// glyphFont builds an 8 pixel wide font from row templates, '#' marking a
// set bit.
func glyphFont(height int, glyphs ...[]string) *Font {
	var data []byte
	for _, rows := range glyphs {
		for _, row := range rows {
			var b byte
			for i, ch := range row {
				if ch == '#' {
					b |= 0x80 >> uint(i)
				}
			}
			data = append(data, b)
		}
	}
	return NewFont(8, height, data)
}

func render(c *Canvas) string {
	var sb strings.Builder
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.Pixel(x, y) == Transparent {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestDrawChar(t *testing.T) {
	f := glyphFont(2,
		[]string{"#.......", "........"},
		[]string{"#......#", ".##....."},
	)

	c := NewCanvas(10, 3)
	c.DrawChar(1, 1, 1, f, red)

	expected := "" +
		"..........\n" +
		".#......#.\n" +
		"..##......\n"
	if got := render(c); got != expected {
		t.Errorf("expected\n%s\nactual\n%s", expected, got)
	}
}

func TestDrawCharOutOfRange(t *testing.T) {
	f := glyphFont(1, []string{"########"})

	c := NewCanvas(8, 1)
	c.DrawChar(1, 0, 0, f, red)
	c.DrawChar(0xa140+1, 0, 0, f, red)
	c.DrawChar(0xa27f, 0, 0, f, red)
	for _, px := range c.Pix {
		if px != Transparent {
			t.Fatal("missing glyph drew pixels")
		}
	}

	c.DrawChar(0xa140, 0, 0, f, red)
	if c.Pixel(7, 0) != red {
		t.Error("Big5 code 0xA140 should use glyph 0")
	}
}

func TestDrawCharNarrowWidth(t *testing.T) {
	// 5 pixels wide: the three padding bits of each row are never drawn
	f := NewFont(5, 1, []byte{0xff})
	c := NewCanvas(8, 1)
	c.DrawChar(0, 0, 0, f, red)
	if got := render(c); got != "#####...\n" {
		t.Errorf("unexpected %q", got)
	}
}

func TestDrawText(t *testing.T) {
	f := glyphFont(2,
		[]string{"........", "........"},
		[]string{"#.......", "#......."},
	)

	c := NewCanvas(24, 4)
	c.DrawText(Text{1, 1, CarriageReturn, 1}, 0, 0, f, red)

	expected := "" +
		"#.......#...............\n" +
		"#.......#...............\n" +
		"#.......................\n" +
		"#.......................\n"
	if got := render(c); got != expected {
		t.Errorf("expected\n%s\nactual\n%s", expected, got)
	}
}

func testGameFont() *GameFont {
	narrow := NewFont(8, 4, make([]byte, 128*4))
	narrow.data['A'*4] = 0x80

	wide := NewFont(16, 2, make([]byte, 2*2*200))
	// glyph 63 (0xA1A1): top-left and bottom-right pixels
	wide.data[63*4+0] = 0x80
	wide.data[63*4+3] = 0x01
	return NewGameFont(narrow, wide)
}

func TestGameFontMeasure(t *testing.T) {
	gf := testGameFont()
	text := Text{'A', 0xa1a1, 'A'}

	if h := gf.Height(); h != 4 {
		t.Errorf("height = %d, expected 4", h)
	}
	if w := gf.Width(text); w != 32 {
		t.Errorf("width = %d, expected 32", w)
	}
}

func TestDrawGameText(t *testing.T) {
	gf := testGameFont()

	c := NewCanvas(40, 4)
	c.DrawGameText(Text{'A', 0xa1a1, 'A'}, 0, 0, gf, red)

	for _, pt := range [][2]int{{0, 0}, {8, 0}, {23, 1}, {24, 0}} {
		if c.Pixel(pt[0], pt[1]) != red {
			t.Errorf("expected pixel at %v", pt)
		}
	}
}

func TestDrawShadowText(t *testing.T) {
	gf := testGameFont()
	shadow := Color{1, 1, 1, 255}

	c := NewCanvas(10, 4)
	c.DrawShadowText(Text{'A'}, 2, 1, gf, red, shadow)

	if c.Pixel(2, 1) != red {
		t.Errorf("foreground = %s", c.Pixel(2, 1))
	}
	if c.Pixel(3, 1) != shadow {
		t.Errorf("shadow = %s", c.Pixel(3, 1))
	}
}

func TestDrawTextCentered(t *testing.T) {
	gf := testGameFont()

	c := NewCanvas(20, 10)
	// 8 wide, 4 tall inside a 20x10 box: origin (6, 3)
	c.DrawGameTextCenter(Text{'A'}, 0, 0, 20, 10, gf, red)
	if c.Pixel(6, 3) != red {
		t.Errorf("centered glyph not at (6, 3)\n%s", render(c))
	}

	c.Clear()
	shadow := Color{1, 1, 1, 255}
	c.DrawShadowTextCenter(Text{'A'}, 0, 0, 20, 10, gf, red, shadow)
	if c.Pixel(6, 3) != red || c.Pixel(7, 3) != shadow {
		t.Errorf("centered shadow text misplaced\n%s", render(c))
	}
}
