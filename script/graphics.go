package script

import (
	"github.com/32bitkid/legend/screen"
)

type GraphicsObject struct {
	Graphics *screen.Graphics
}

func NewGraphicsObject(g *screen.Graphics) *GraphicsObject {
	return &GraphicsObject{Graphics: g}
}

func (*GraphicsObject) Kind() Kind { return KindObject }

func (o *GraphicsObject) Get(key string) (Value, error) {
	w, h := o.Graphics.Size()
	switch key {
	case "width":
		return Integer(w), nil
	case "height":
		return Integer(h), nil
	case "frame_buffer":
		return NewCanvasObject(o.Graphics.FrameBuffer()), nil
	}
	if _, ok := graphicsMethods[key]; ok {
		return Method{Object: o, Name: key}, nil
	}
	return nil, indexNotFound(key)
}

func (o *GraphicsObject) Set(key string, _ Value) error {
	return cannotSet(key)
}

func (o *GraphicsObject) Call(key string, args []Value) (Value, error) {
	m, ok := graphicsMethods[key]
	if !ok {
		return nil, operationNotFound(key)
	}
	return m(o, args)
}

var graphicsMethods = map[string]func(*GraphicsObject, []Value) (Value, error){
	"effect_buffer": func(o *GraphicsObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 1); err != nil {
			return nil, err
		}
		name, err := StringValue(args[0])
		if err != nil {
			return nil, err
		}
		return NewCanvasObject(o.Graphics.EffectBuffer(name)), nil
	},
	"release_effect_buffer": func(o *GraphicsObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 1); err != nil {
			return nil, err
		}
		name, err := StringValue(args[0])
		if err != nil {
			return nil, err
		}
		o.Graphics.ReleaseEffectBuffer(name)
		return Null{}, nil
	},
}

// Constructor creates a native object from script arguments.
type Constructor func(args []Value) (Value, error)

// Natives returns the constructors a runtime registers as globals.
func Natives() map[string]Constructor {
	return map[string]Constructor{
		"Color": func(args []Value) (Value, error) {
			c, err := NewColor(args)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
}
