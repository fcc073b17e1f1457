package screen

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type Format uint8

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "Format(PNG)"
	case FormatBMP:
		return "Format(BMP)"
	case FormatTIFF:
		return "Format(TIFF)"
	}
	return "Format(UNKNOWN)"
}

// FormatFor picks an image format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
}

func (c *Canvas) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, c)
	case FormatBMP:
		return bmp.Encode(w, c)
	case FormatTIFF:
		return tiff.Encode(w, c, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported format %s", f)
}

// Save writes the canvas to path in the format its extension names.
func (c *Canvas) Save(path string) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := c.Encode(file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
