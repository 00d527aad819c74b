package gshape

import (
	"candyboard/src/base"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// RenderBoard draws the 8x8 squares, a1 dark, rank 8 on top.
func RenderBoard(side int, light, dark color.Color) image.Image {
	if side < 8 {
		side = 8
	}
	dc := gg.NewContext(side, side)
	sq := float64(side) / 8
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if (file+rank)%2 == 0 {
				dc.SetColor(dark)
			} else {
				dc.SetColor(light)
			}
			// +1 px hides seams between fractional squares
			dc.DrawRectangle(float64(file)*sq, float64(7-rank)*sq, sq+1, sq+1)
			dc.Fill()
		}
	}
	return dc.Image()
}

func RenderDot(radius float64, c color.Color) image.Image {
	size := int(math.Ceil(radius*2)) + 2
	dc := gg.NewContext(size, size)
	dc.SetColor(c)
	dc.DrawCircle(float64(size)/2, float64(size)/2, radius)
	dc.Fill()
	return dc.Image()
}

func RenderRing(side, strokeW float64, c color.Color) image.Image {
	size := int(math.Ceil(side))
	if size < 1 {
		size = 1
	}
	dc := gg.NewContext(size, size)
	dc.SetColor(c)
	dc.SetLineWidth(strokeW)
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2-strokeW/2)
	dc.Stroke()
	return dc.Image()
}

// RenderRoundedRect fills a w x h rounded rect and strokes its edge.
func RenderRoundedRect(w, h, radius int, fill, stroke color.Color, strokeW float64) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return dc.Image()
}

// RenderPiece draws a stand-in sprite: a disc in the piece color carrying
// its letter. Used when no image file exists for the piece.
func RenderPiece(side int, p base.Piece) image.Image {
	if side < 16 {
		side = 16
	}
	fill, ink := color.Color(color.White), color.Color(color.Black)
	if p.Color == base.Black {
		fill, ink = ink, fill
	}
	c := float64(side) / 2
	dc := gg.NewContext(side, side)
	dc.SetColor(fill)
	dc.DrawCircle(c, c, c*0.8)
	dc.FillPreserve()
	dc.SetColor(ink)
	dc.SetLineWidth(float64(side) / 32)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	k := float64(side) / 26 // 13px glyph to half the sprite
	dc.ScaleAbout(k, k, c, c)
	dc.DrawStringAnchored(string(p.Type.Letter()), c, c, 0.5, 0.35)
	return dc.Image()
}
