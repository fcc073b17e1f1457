// Package config loads the YAML settings of the legend tools.
package config

import (
	"fmt"
	"io"

	"github.com/32bitkid/legend/screen"
	"github.com/charmbracelet/log"
)

type Config struct {
	Display   Display   `yaml:"display"`
	Assets    Assets    `yaml:"assets"`
	Colors    Colors    `yaml:"colors"`
	Animation Animation `yaml:"animation"`
	LogLevel  string    `yaml:"log_level"`
}

// Display is the logical frame size and the integer scale used when a
// frame is shown or exported.
type Display struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

// Assets names the files under Root.
type Assets struct {
	Root       string `yaml:"root"`
	Palette    string `yaml:"palette"`
	NarrowFont string `yaml:"narrow_font"`
	WideFont   string `yaml:"wide_font"`
}

// Colors are hex strings: #rgb, #rrggbb or #rrggbbaa.
type Colors struct {
	Text       string `yaml:"text"`
	Shadow     string `yaml:"shadow"`
	Background string `yaml:"background"`
}

// Animation is the palette band cycled by the preview. A zero count
// disables cycling.
type Animation struct {
	Index uint8 `yaml:"index"`
	Count uint8 `yaml:"count"`
	FPS   int   `yaml:"fps"`
}

type Theme struct {
	Text       screen.Color
	Shadow     screen.Color
	Background screen.Color
}

func (c Colors) Theme() (Theme, error) {
	var theme Theme
	fields := []struct {
		name string
		hex  string
		dst  *screen.Color
	}{
		{"text", c.Text, &theme.Text},
		{"shadow", c.Shadow, &theme.Shadow},
		{"background", c.Background, &theme.Background},
	}
	for _, f := range fields {
		col, err := screen.ParseHex(f.hex)
		if err != nil {
			return theme, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return theme, nil
}

func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display: invalid size %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Scale < 1 {
		return fmt.Errorf("display: invalid scale %d", c.Display.Scale)
	}
	if c.Animation.Count > 0 && c.Animation.Index < c.Animation.Count {
		return fmt.Errorf("animation: band %d-%d out of range", int(c.Animation.Index)-int(c.Animation.Count), c.Animation.Index)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation: invalid fps %d", c.Animation.FPS)
	}
	if _, err := c.Colors.Theme(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Logger builds a logger writing to w at the configured level.
func (c Config) Logger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
