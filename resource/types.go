package resource

import (
	"path/filepath"
	"strings"
)

type Type uint8

const (
	TypePalette Type = iota
	TypeFont
	TypeSprite
	TypeText
	TypeUnknown
)

func (t Type) String() string {
	switch t {
	case TypePalette:
		return "Type(Palette)"
	case TypeFont:
		return "Type(Font)"
	case TypeSprite:
		return "Type(Sprite)"
	case TypeText:
		return "Type(Text)"
	}
	return "Type(UNKNOWN)"
}

// TypeFor guesses the asset type from a file name.
func TypeFor(name string) Type {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pal", ".dat":
		return TypePalette
	case ".fnt", ".fon":
		return TypeFont
	case ".spr", ".rle", ".mkf":
		return TypeSprite
	case ".txt", ".msg":
		return TypeText
	}
	return TypeUnknown
}
