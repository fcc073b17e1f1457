package screen

import (
	"testing"
)

func TestGlyphIndex(t *testing.T) {
	cases := []struct {
		code  Code
		index int
		ok    bool
	}{
		{'A', 'A', true},
		{0x00, 0, true},
		{0x7f, 0x7f, true},
		{0xa13f, 0xa13f, true},
		{0xa140, 0, true},
		{0xa141, 1, true},
		{0xa17e, 62, true},
		{0xa1a1, 63, true},
		{0xa1fe, 156, true},
		{0xa240, 157, true},
		{0xa4a4, 3*157 + 0xa4 - 0xa1 + 63, true},
		{0xa27f, 0, false},
		{0xa2a0, 0, false},
		{0xa2ff, 0, false},
		{0xa230, 0, false},
		{0xffff, 0, false},
	}

	for _, tc := range cases {
		index, ok := GlyphIndex(tc.code)
		if ok != tc.ok {
			t.Errorf("GlyphIndex(%#04x) ok = %v, expected %v", tc.code, ok, tc.ok)
			continue
		}
		if ok && index != tc.index {
			t.Errorf("GlyphIndex(%#04x) = %d, expected %d", tc.code, index, tc.index)
		}
	}
}

func TestCodeForGlyph(t *testing.T) {
	for _, index := range []int{0, 1, 62, 63, 156, 157, 500, 8000} {
		code, ok := CodeForGlyph(index)
		if !ok {
			t.Fatalf("CodeForGlyph(%d) failed", index)
		}
		back, ok := GlyphIndex(code)
		if !ok || back != index {
			t.Errorf("CodeForGlyph(%d) = %#04x, which maps back to %d", index, code, back)
		}
	}

	if code, _ := CodeForGlyph(63); code != 0xa1a1 {
		t.Errorf("expected(0xa1a1) != actual(%#04x)", code)
	}
	if _, ok := CodeForGlyph(-1); ok {
		t.Error("negative index should fail")
	}
	if _, ok := CodeForGlyph(95 * 157); ok {
		t.Error("index past lead 0xff should fail")
	}
}

func TestEncodeText(t *testing.T) {
	text, err := EncodeText("Hi\r\n中文")
	if err != nil {
		t.Fatal(err)
	}

	expected := Text{'H', 'i', CarriageReturn, 0xa4a4, 0xa4e5}
	if len(text) != len(expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, text)
	}
	for i := range expected {
		if text[i] != expected[i] {
			t.Fatalf("%d: expected(%#04x) != actual(%#04x)", i, expected[i], text[i])
		}
	}

	if s := text.String(); s != "Hi\n中文" {
		t.Errorf("round trip = %q", s)
	}
}

func TestEncodeTextUnsupported(t *testing.T) {
	if _, err := EncodeText("\U0001F600"); err == nil {
		t.Error("expected error for rune outside Big5")
	}
}
