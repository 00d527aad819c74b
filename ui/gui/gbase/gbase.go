package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowTitle = "CandyBoard"
	// fraction of the square side used by markers
	MoveMarkerDiv   = 64.0 // radius = H/64
	CaptureRingDiv  = 12.0 // stroke = side/12
	PromotionIconIn = 0.1  // icon inset inside a quadrant
	// status panel in the left margin
	StatusMinMargin = 80
	StatusPad       = 8
	StatusRadius    = 10
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg          color.RGBA
	SquareLight color.RGBA
	SquareDark  color.RGBA
	Selected    color.NRGBA
	LastMove    color.NRGBA
	Promotion   color.NRGBA
	MoveDot     color.NRGBA
	CaptureRing color.NRGBA
	Text        color.RGBA
	Panel       color.NRGBA
	PanelEdge   color.NRGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "light":
		return LightPalette
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:          color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	SquareLight: color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	SquareDark:  color.RGBA{0xb5, 0x88, 0x63, 0xff},
	Selected:    color.NRGBA{0x00, 0x00, 0x00, 0x80},
	LastMove:    color.NRGBA{0xff, 0xff, 0x00, 0x33},
	Promotion:   color.NRGBA{0xff, 0xff, 0xff, 0x99},
	MoveDot:     color.NRGBA{0xff, 0x00, 0x00, 0xcc},
	CaptureRing: color.NRGBA{0xff, 0x00, 0x00, 0x99},
	Text:        color.RGBA{0x22, 0x22, 0x22, 0xff},
	Panel:       color.NRGBA{0xff, 0xff, 0xff, 0xcc},
	PanelEdge:   color.NRGBA{0xb5, 0x88, 0x63, 0xff},
}

var DarkPalette = Palette{
	Bg:          color.RGBA{0x12, 0x12, 0x12, 0xff},
	SquareLight: color.RGBA{0x9e, 0xa7, 0xb0, 0xff},
	SquareDark:  color.RGBA{0x4b, 0x57, 0x63, 0xff},
	Selected:    color.NRGBA{0x00, 0x00, 0x00, 0x80},
	LastMove:    color.NRGBA{0xff, 0xff, 0x00, 0x33},
	Promotion:   color.NRGBA{0x20, 0x20, 0x20, 0xaa},
	MoveDot:     color.NRGBA{0xff, 0x40, 0x40, 0xcc},
	CaptureRing: color.NRGBA{0xff, 0x40, 0x40, 0x99},
	Text:        color.RGBA{0xee, 0xee, 0xee, 0xff},
	Panel:       color.NRGBA{0x2a, 0x2e, 0x33, 0xcc},
	PanelEdge:   color.NRGBA{0x4b, 0x57, 0x63, 0xff},
}
