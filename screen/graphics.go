package screen

import (
	"fmt"
	"sort"
)

// Graphics owns the frame buffer presented each frame and any named
// effect buffers used for off-screen passes. Effect buffers live until
// released.
type Graphics struct {
	width   int
	height  int
	frame   *Canvas
	effects map[string]*Canvas
}

func NewGraphics(width, height int) (*Graphics, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid display size %dx%d", width, height)
	}
	return &Graphics{
		width:   width,
		height:  height,
		frame:   NewCanvas(width, height),
		effects: map[string]*Canvas{},
	}, nil
}

func (g *Graphics) Size() (width, height int) {
	return g.width, g.height
}

func (g *Graphics) FrameBuffer() *Canvas {
	return g.frame
}

// EffectBuffer returns the effect buffer called name, creating a
// transparent display-sized canvas the first time.
func (g *Graphics) EffectBuffer(name string) *Canvas {
	if c, ok := g.effects[name]; ok {
		return c
	}
	c := NewCanvas(g.width, g.height)
	g.effects[name] = c
	return c
}

func (g *Graphics) LookupEffectBuffer(name string) (*Canvas, bool) {
	c, ok := g.effects[name]
	return c, ok
}

func (g *Graphics) ReleaseEffectBuffer(name string) {
	delete(g.effects, name)
}

func (g *Graphics) EffectBuffers() []string {
	names := make([]string, 0, len(g.effects))
	for name := range g.effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderTo copies the current frame into a presentation buffer of
// width*height*4 bytes.
func (g *Graphics) RenderTo(frame []byte) error {
	return g.frame.CopyTo(frame)
}
