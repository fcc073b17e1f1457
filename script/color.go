package script

import (
	"github.com/32bitkid/legend/screen"
)

// ColorObject is a mutable screen.Color.
type ColorObject struct {
	screen.Color
}

// NewColor builds a color from up to four integers r, g, b, a. Missing
// channels default to opaque black. Values are truncated to 8 bits.
func NewColor(args []Value) (*ColorObject, error) {
	if len(args) > 4 {
		return nil, newError(ErrArity, "expected at most 4 parameters")
	}

	channels := [4]uint8{0, 0, 0, 0xff}
	for i, arg := range args {
		v, err := IntegerValue(arg)
		if err != nil {
			return nil, err
		}
		channels[i] = uint8(v)
	}
	return &ColorObject{screen.Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}}, nil
}

// ToColor unwraps a color argument.
func ToColor(v Value) (screen.Color, error) {
	if c, ok := v.(*ColorObject); ok {
		return c.Color, nil
	}
	return screen.Color{}, typeError("Color", v)
}

func (*ColorObject) Kind() Kind { return KindObject }

func (c *ColorObject) channel(key string) *uint8 {
	switch key {
	case "r":
		return &c.R
	case "g":
		return &c.G
	case "b":
		return &c.B
	case "a":
		return &c.A
	}
	return nil
}

func (c *ColorObject) Get(key string) (Value, error) {
	if ch := c.channel(key); ch != nil {
		return Integer(*ch), nil
	}
	if _, ok := colorMethods[key]; ok {
		return Method{Object: c, Name: key}, nil
	}
	return nil, indexNotFound(key)
}

func (c *ColorObject) Set(key string, v Value) error {
	ch := c.channel(key)
	if ch == nil {
		return cannotSet(key)
	}
	n, err := IntegerValue(v)
	if err != nil {
		return err
	}
	*ch = uint8(n)
	return nil
}

func (c *ColorObject) Call(key string, args []Value) (Value, error) {
	m, ok := colorMethods[key]
	if !ok {
		return nil, operationNotFound(key)
	}
	return m(c, args)
}

var colorMethods = map[string]func(*ColorObject, []Value) (Value, error){
	"blend": func(c *ColorObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 1); err != nil {
			return nil, err
		}
		target, err := ToColor(args[0])
		if err != nil {
			return nil, err
		}
		return &ColorObject{c.Blend(target)}, nil
	},
	"alpha_blend": func(c *ColorObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 2); err != nil {
			return nil, err
		}
		target, err := ToColor(args[0])
		if err != nil {
			return nil, err
		}
		alpha, err := FloatValue(args[1])
		if err != nil {
			return nil, err
		}
		return &ColorObject{c.AlphaBlend(target, alpha)}, nil
	},
}
