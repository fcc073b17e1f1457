// Package legend loads the assets of a palette-indexed 2D game and hands
// them to the raster core in package screen.
//
// Assets are plain files in one directory: a raw 256 entry palette, raw
// bitmap fonts (an 8x16 single-byte font and a 16x16 Big5 font), RLE sprite
// banks and NUL-separated Big5 text tables.
package legend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/32bitkid/legend/resource"
	"github.com/32bitkid/legend/screen"
)

const (
	DisplayWidth  = 320
	DisplayHeight = 200

	NarrowGlyphWidth  = 8
	NarrowGlyphHeight = 16
	WideGlyphWidth    = 16
	WideGlyphHeight   = 16
)

// Root is a reference to the asset directory of a game. Raw file contents
// are cached after the first read and may be loaded from any goroutine.
type Root struct {
	Path string

	mu    sync.Mutex
	cache map[string][]byte
}

func NewRoot(path string) *Root {
	return &Root{Path: path, cache: map[string][]byte{}}
}

// Read returns the contents of the named asset.
func (root *Root) Read(name string) ([]byte, error) {
	root.mu.Lock()
	defer root.mu.Unlock()

	if b, ok := root.cache[name]; ok {
		return b, nil
	}

	b, err := os.ReadFile(filepath.Join(root.Path, name))
	if err != nil {
		return nil, err
	}
	Logger().Debug("asset loaded", "name", name, "type", resource.TypeFor(name), "bytes", len(b))

	if root.cache == nil {
		root.cache = map[string][]byte{}
	}
	root.cache[name] = b
	return b, nil
}

// Preload reads every named asset into the cache, stopping at the first
// failure.
func (root *Root) Preload(names ...string) error {
	for _, name := range names {
		if _, err := root.Read(name); err != nil {
			return err
		}
	}
	return nil
}

// Evict drops a cached asset so the next read goes to disk.
func (root *Root) Evict(name string) {
	root.mu.Lock()
	delete(root.cache, name)
	root.mu.Unlock()
}

// LoadPalette decodes a raw 6-bit palette.
func (root *Root) LoadPalette(name string) (*screen.Palette, error) {
	b, err := root.Read(name)
	if err != nil {
		return nil, err
	}
	p, err := resource.NewPalette(b)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", name, err)
	}
	return p, nil
}

// ReadPalette decodes an 8-bit palette leniently. Truncated files are
// accepted and padded with black.
func (root *Root) ReadPalette(name string) (*screen.Palette, error) {
	f, err := os.Open(filepath.Join(root.Path, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, n := resource.ReadPalette(f)
	if n < screen.PaletteSize {
		Logger().Warn("truncated palette", "name", name, "entries", n)
	}
	return p, nil
}

func (root *Root) LoadFont(name string, width, height int) (*screen.Font, error) {
	b, err := root.Read(name)
	if err != nil {
		return nil, err
	}
	f, err := resource.NewFont(width, height, b)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, err)
	}
	return f, nil
}

// LoadGameFont loads the 8x16 narrow and 16x16 wide fonts. A missing narrow
// font falls back to the built-in ASCII font.
func (root *Root) LoadGameFont(narrowName, wideName string) (*screen.GameFont, error) {
	narrow, err := root.LoadFont(narrowName, NarrowGlyphWidth, NarrowGlyphHeight)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Warn("narrow font missing, using built-in font", "name", narrowName)
		narrow, err = resource.DefaultFont(), nil
	}
	if err != nil {
		return nil, err
	}

	wide, err := root.LoadFont(wideName, WideGlyphWidth, WideGlyphHeight)
	if err != nil {
		return nil, err
	}

	return screen.NewGameFont(narrow, wide), nil
}

func (root *Root) LoadSprites(name string) (resource.SpriteBank, error) {
	b, err := root.Read(name)
	if err != nil {
		return nil, err
	}
	bank, err := resource.NewSpriteBank(b)
	if err != nil {
		return nil, fmt.Errorf("sprites %s: %w", name, err)
	}
	return bank, nil
}

func (root *Root) LoadText(name string) (resource.Text, error) {
	b, err := root.Read(name)
	if err != nil {
		return nil, err
	}
	return resource.NewText(b)
}
