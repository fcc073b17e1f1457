package screen

import (
	"strings"

	"golang.org/x/text/encoding/traditionalchinese"
)

// Code is a single-byte character (< 0x80) or a double-byte Big5
// character stored as lead<<8 | trail.
type Code uint16

// CarriageReturn breaks a line in DrawText.
const CarriageReturn Code = 13

type Text []Code

const (
	big5First = 0xa140

	big5LowTrail   = 0x40
	big5LowLast    = 0x7e
	big5HighTrail  = 0xa1
	big5HighLast   = 0xfe
	big5LeadFirst  = 0xa1
	big5LowCount   = big5LowLast - big5LowTrail + 1
	big5PageGlyphs = big5HighLast - big5HighTrail + big5LowLast - big5LowTrail + 2
)

// GlyphIndex maps a code to its glyph slot in a font. Codes below 0xA140 are
// their own index. Big5 codes are laid out one page per lead byte, the
// 0x40-0x7E trail range first followed by 0xA1-0xFE. Trail bytes outside
// both ranges have no glyph.
func GlyphIndex(code Code) (int, bool) {
	if code < big5First {
		return int(code), true
	}

	lead, trail := int(code>>8), int(code&0xff)
	page := lead - big5LeadFirst

	var position int
	switch {
	case trail >= big5HighTrail && trail <= big5HighLast:
		position = trail - big5HighTrail + big5LowCount
	case trail >= big5LowTrail && trail <= big5LowLast:
		position = trail - big5LowTrail
	default:
		return 0, false
	}

	return page*big5PageGlyphs + position, true
}

// CodeForGlyph is the inverse of GlyphIndex for wide fonts: it returns the
// Big5 code drawn with glyph index.
func CodeForGlyph(index int) (Code, bool) {
	if index < 0 {
		return 0, false
	}
	page, position := index/big5PageGlyphs, index%big5PageGlyphs
	lead := big5LeadFirst + page
	if lead > 0xff {
		return 0, false
	}

	trail := big5LowTrail + position
	if position >= big5LowCount {
		trail = big5HighTrail + position - big5LowCount
	}
	return Code(lead<<8 | trail), true
}

// EncodeText converts UTF-8 to Big5 codes. Line feeds become carriage
// returns.
func EncodeText(s string) (Text, error) {
	b, err := traditionalchinese.Big5.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}

	return TextFromBig5(b), nil
}

// TextFromBig5 splits raw Big5 bytes into codes. A byte of 0x81 or above
// leads a double-byte code; a lead at the very end is kept as a single
// code. "\n" and "\r\n" both become CarriageReturn.
func TextFromBig5(b []byte) Text {
	text := make(Text, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == '\r' && i+1 < len(b) && b[i+1] == '\n':
			text = append(text, CarriageReturn)
			i++
		case c == '\n':
			text = append(text, CarriageReturn)
		case c >= 0x81 && i+1 < len(b):
			text = append(text, Code(c)<<8|Code(b[i+1]))
			i++
		default:
			text = append(text, Code(c))
		}
	}
	return text
}

// MustEncodeText is EncodeText for literals.
func MustEncodeText(s string) Text {
	text, err := EncodeText(s)
	if err != nil {
		panic(err)
	}
	return text
}

// Bytes returns the Big5 byte form of t.
func (t Text) Bytes() []byte {
	b := make([]byte, 0, len(t)*2)
	for _, code := range t {
		if code > 0xff {
			b = append(b, byte(code>>8), byte(code))
		} else {
			b = append(b, byte(code))
		}
	}
	return b
}

func (t Text) String() string {
	b, err := traditionalchinese.Big5.NewDecoder().Bytes(t.Bytes())
	if err != nil {
		return string(t.Bytes())
	}
	return strings.ReplaceAll(string(b), "\r", "\n")
}
