package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title FontName = "title"
	Label FontName = "label"
	Hint  FontName = "hint"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Lookup returns the face and whether it has been loaded
func (f FontName) Lookup() (font.Face, bool) {
	face, ok := fonts[f]
	return face, ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the launcher faces from the bundled Go fonts.
// Sizes are in points.
func LoadDefaults(titleSize, labelSize, hintSize float64) error {
	if err := LoadFontWithSize(Title, gobold.TTF, titleSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Label, gobold.TTF, labelSize); err != nil {
		return err
	}
	return LoadFontWithSize(Hint, goregular.TTF, hintSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
