package render

import (
	"errors"
	"fmt"

	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrFontLoad reports that the label typeface could not be read or parsed.
var ErrFontLoad = errors.New("font load failure")

// LoadFont parses the TrueType font at path. An empty path returns the embedded Go Regular font.
func LoadFont(path string) (*truetype.Font, error) {
	data := goregular.TTF

	if path != "" {
		var err error
		data, err = filesystem.API().ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, path, err)
		}
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, fontName(path), err)
	}

	return f, nil
}

// LoadFace loads the font at path and returns a face of the given pixel size.
func LoadFace(path string, size float64) (font.Face, error) {
	f, err := LoadFont(path)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

func fontName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
