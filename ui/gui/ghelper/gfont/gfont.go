package gfont

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Status font.Face // status line under the board
	Debug  font.Face
}

// LoadFonts parses the ttf file, or the bundled Go Regular face when file
// is empty.
func LoadFonts(file string) (*Fonts, error) {
	ttf := goregular.TTF
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		ttf = b
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("error parse font %q: %w", file, err)
	}

	fonts := &Fonts{}
	fonts.Status, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	fonts.Debug, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return fonts, nil
}
