package screen

// Font is a fixed-size bitmap font. Glyphs are stored back to back, each
// row padded to a whole byte, most significant bit leftmost.
type Font struct {
	Width  int
	Height int
	data   []byte
}

func NewFont(width, height int, data []byte) *Font {
	return &Font{Width: width, Height: height, data: data}
}

func (f *Font) BytesPerRow() int {
	return (f.Width + 7) >> 3
}

func (f *Font) BytesPerGlyph() int {
	return f.BytesPerRow() * f.Height
}

// Glyphs reports how many complete glyphs the font data holds.
func (f *Font) Glyphs() int {
	size := f.BytesPerGlyph()
	if size == 0 {
		return 0
	}
	return len(f.data) / size
}

// Glyph returns the bitmap of glyph index, or false when index lies
// outside the font data.
func (f *Font) Glyph(index int) ([]byte, bool) {
	size := f.BytesPerGlyph()
	if index < 0 || size == 0 {
		return nil, false
	}
	offset := index * size
	if offset+size > len(f.data) || offset < 0 {
		return nil, false
	}
	return f.data[offset : offset+size], true
}

// GameFont pairs a narrow font for single-byte codes with a wide font for
// double-byte codes.
type GameFont struct {
	Narrow *Font
	Wide   *Font
}

func NewGameFont(narrow, wide *Font) *GameFont {
	return &GameFont{Narrow: narrow, Wide: wide}
}

func (gf *GameFont) Font(code Code) *Font {
	if code < 128 {
		return gf.Narrow
	}
	return gf.Wide
}

// Height is the shared line height.
func (gf *GameFont) Height() int {
	if gf.Narrow.Height > gf.Wide.Height {
		return gf.Narrow.Height
	}
	return gf.Wide.Height
}

func (gf *GameFont) Width(text Text) int {
	width := 0
	for _, code := range text {
		width += gf.Font(code).Width
	}
	return width
}

func (gf *GameFont) Measure(text Text) (width, height int) {
	return gf.Width(text), gf.Height()
}
