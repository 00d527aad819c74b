package term

import (
	"candyboard/src/base"
	"candyboard/src/control"

	"github.com/gdamore/tcell/v2"
)

type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	WhitePiece  tcell.Color
	BlackPiece  tcell.Color
	Selected    tcell.Color
	LastMove    tcell.Color
	Promotion   tcell.Color
	Capture     tcell.Color
	MoveMarker  tcell.Color
	MoveRune    rune
}

var LightTheme = Theme{
	SquareLight: tcell.NewHexColor(0xf0d9b5),
	SquareDark:  tcell.NewHexColor(0xb58863),
	WhitePiece:  tcell.ColorWhite,
	BlackPiece:  tcell.ColorBlack,
	Selected:    tcell.ColorDarkSlateGray,
	LastMove:    tcell.ColorOlive,
	Promotion:   tcell.ColorLightGray,
	Capture:     tcell.ColorIndianRed,
	MoveMarker:  tcell.ColorRed,
	MoveRune:    '•',
}

var DarkTheme = Theme{
	SquareLight: tcell.NewHexColor(0x9ea7b0),
	SquareDark:  tcell.NewHexColor(0x4b5763),
	WhitePiece:  tcell.ColorWhite,
	BlackPiece:  tcell.ColorBlack,
	Selected:    tcell.ColorDarkSlateGray,
	LastMove:    tcell.ColorOlive,
	Promotion:   tcell.ColorDimGray,
	Capture:     tcell.ColorIndianRed,
	MoveMarker:  tcell.ColorRed,
	MoveRune:    '•',
}

func ThemeFromString(s string) Theme {
	if s == "dark" {
		return DarkTheme
	}
	return LightTheme
}

func (th Theme) pieceColor(c base.Color) tcell.Color {
	if c == base.Black {
		return th.BlackPiece
	}
	return th.WhitePiece
}

func (th Theme) tint(t control.Tint) tcell.Color {
	switch t {
	case control.TintSelected:
		return th.Selected
	case control.TintLastMove:
		return th.LastMove
	case control.TintPromotion:
		return th.Promotion
	default:
		return tcell.ColorDefault
	}
}
