package ghelper

import (
	"candyboard/src/base"
	"candyboard/ui/gui/ghelper/gshape"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

func RenderRoundedRect(w, h, radius int, fill color.Color, stroke color.Color, strokeW float64) *ebiten.Image {
	return ebiten.NewImageFromImage(gshape.RenderRoundedRect(w, h, radius, fill, stroke, strokeW))
}

// NewPixel returns the white 1x1 image EbitenutilDrawRect scales and tints.
func NewPixel() *ebiten.Image {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return px
}

// EbitenutilDrawRect fills r with c by scaling px, a pixel from NewPixel.
func EbitenutilDrawRect(screen *ebiten.Image, px *ebiten.Image, r base.Rect, c color.Color) {
	if screen == nil || px == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(px, op)
}

// DrawImageInRect stretches img over r.
func DrawImageInRect(screen *ebiten.Image, img *ebiten.Image, r base.Rect) {
	if screen == nil || img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// DrawImageCentered draws img unscaled around (cx, cy).
func DrawImageCentered(screen *ebiten.Image, img *ebiten.Image, cx, cy float64) {
	if screen == nil || img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(b.Dx())/2, cy-float64(b.Dy())/2)
	screen.DrawImage(img, op)
}
