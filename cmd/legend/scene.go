package main

import (
	"golang.org/x/image/draw"

	"github.com/32bitkid/legend"
	"github.com/32bitkid/legend/config"
	"github.com/32bitkid/legend/resource"
	"github.com/32bitkid/legend/screen"
)

// scene is everything needed to draw one frame.
type scene struct {
	root     *legend.Root
	graphics *screen.Graphics
	palette  *screen.Palette
	font     *screen.GameFont
	theme    config.Theme
	sprites  resource.SpriteBank
}

func loadScene(spriteBank string) (*scene, error) {
	root := legend.NewRoot(cfg.Assets.Root)

	g, err := screen.NewGraphics(cfg.Display.Width, cfg.Display.Height)
	if err != nil {
		return nil, err
	}

	p, err := root.LoadPalette(cfg.Assets.Palette)
	if err != nil {
		return nil, err
	}

	theme, err := cfg.Colors.Theme()
	if err != nil {
		return nil, err
	}

	s := &scene{root: root, graphics: g, palette: p, theme: theme}

	if cfg.Assets.WideFont != "" {
		if s.font, err = root.LoadGameFont(cfg.Assets.NarrowFont, cfg.Assets.WideFont); err != nil {
			return nil, err
		}
	}

	if spriteBank != "" {
		if s.sprites, err = root.LoadSprites(spriteBank); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// draw renders sprite frame n centred on the frame buffer with text below.
func (s *scene) draw(frame int, text screen.Text) {
	fb := s.graphics.FrameBuffer()
	fb.ClearColor(s.theme.Background)

	if len(s.sprites) > 0 {
		sprite := s.sprites[frame%len(s.sprites)]
		fb.Blit(sprite, fb.Width/2, fb.Height/2, s.palette)
	}

	if s.font != nil && len(text) > 0 {
		lineHeight := s.font.Height()
		fb.DrawShadowTextCenter(text, 0, fb.Height-lineHeight*2, fb.Width, lineHeight,
			s.font, s.theme.Text, s.theme.Shadow)
	}
}

// scaled returns the frame buffer enlarged by the configured scale.
func (s *scene) scaled() *screen.Canvas {
	return scaleCanvas(s.graphics.FrameBuffer(), cfg.Display.Scale)
}

func scaleCanvas(c *screen.Canvas, scale int) *screen.Canvas {
	if scale <= 1 {
		return c
	}
	dst := screen.NewCanvas(c.Width*scale, c.Height*scale)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c, c.Bounds(), draw.Src, nil)
	return dst
}
