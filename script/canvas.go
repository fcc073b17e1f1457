package script

import (
	"github.com/32bitkid/legend/screen"
)

// CanvasObject exposes drawing on a screen.Canvas. Several objects may
// wrap the same canvas.
type CanvasObject struct {
	Canvas *screen.Canvas
}

func NewCanvasObject(c *screen.Canvas) *CanvasObject {
	return &CanvasObject{Canvas: c}
}

func (*CanvasObject) Kind() Kind { return KindObject }

func (o *CanvasObject) Get(key string) (Value, error) {
	switch key {
	case "width":
		return Integer(o.Canvas.Width), nil
	case "height":
		return Integer(o.Canvas.Height), nil
	}
	if _, ok := canvasMethods[key]; ok {
		return Method{Object: o, Name: key}, nil
	}
	return nil, indexNotFound(key)
}

func (o *CanvasObject) Set(key string, _ Value) error {
	return cannotSet(key)
}

func (o *CanvasObject) Call(key string, args []Value) (Value, error) {
	m, ok := canvasMethods[key]
	if !ok {
		return nil, operationNotFound(key)
	}
	return m(o, args)
}

func integers(args []Value) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		v, err := IntegerValue(arg)
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
	}
	return out, nil
}

var canvasMethods = map[string]func(*CanvasObject, []Value) (Value, error){
	"clear": func(o *CanvasObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 0); err != nil {
			return nil, err
		}
		o.Canvas.Clear()
		return Null{}, nil
	},
	"clear_by_color": func(o *CanvasObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 1); err != nil {
			return nil, err
		}
		col, err := ToColor(args[0])
		if err != nil {
			return nil, err
		}
		o.Canvas.ClearColor(col)
		return Null{}, nil
	},
	"set_pixel": func(o *CanvasObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 3); err != nil {
			return nil, err
		}
		xy, err := integers(args[:2])
		if err != nil {
			return nil, err
		}
		col, err := ToColor(args[2])
		if err != nil {
			return nil, err
		}
		o.Canvas.SetPixel(xy[0], xy[1], col)
		return Null{}, nil
	},
	"fill_rect": func(o *CanvasObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 5); err != nil {
			return nil, err
		}
		rect, err := integers(args[:4])
		if err != nil {
			return nil, err
		}
		col, err := ToColor(args[4])
		if err != nil {
			return nil, err
		}
		o.Canvas.FillRect(rect[0], rect[1], rect[2], rect[3], col)
		return Null{}, nil
	},
	"alpha_blit": func(o *CanvasObject, args []Value) (Value, error) {
		if err := ensureParameters(args, 4); err != nil {
			return nil, err
		}
		src, ok := args[0].(*CanvasObject)
		if !ok {
			return nil, typeError("Canvas", args[0])
		}
		xy, err := integers(args[1:3])
		if err != nil {
			return nil, err
		}
		alpha, err := FloatValue(args[3])
		if err != nil {
			return nil, err
		}
		o.Canvas.AlphaBlit(src.Canvas, xy[0], xy[1], alpha)
		return Null{}, nil
	},
}
