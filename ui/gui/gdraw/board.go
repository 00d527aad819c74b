package gdraw

import (
	"candyboard/src/base"
	"candyboard/src/control"
	"candyboard/ui/gui/gbase"
	"candyboard/ui/gui/gctx"
	"candyboard/ui/gui/ghelper"
	"candyboard/ui/gui/ghelper/gcache"
	"candyboard/ui/gui/ghelper/gshape"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GUIBoardDrawer keeps the two cached layers and paints primitive lists into
// them. Layers are only touched when a frame asks for a rebuild.
type GUIBoardDrawer struct {
	ctx *gctx.GUIGameContext

	board   *ebiten.Image
	markers *ebiten.Image

	// shapes for the current board side, freed on resize
	shapes *gcache.Sized[float64, boardShapes]
	// white pixel scaled and tinted into highlights
	pixel *ebiten.Image
}

type boardShapes struct {
	bg   *ebiten.Image
	dot  *ebiten.Image
	ring *ebiten.Image
}

func NewGUIBoardDrawer(ctx *gctx.GUIGameContext) *GUIBoardDrawer {
	bd := &GUIBoardDrawer{ctx: ctx, pixel: ghelper.NewPixel()}
	bd.shapes = gcache.NewSized(bd.renderShapes, func(s boardShapes) {
		s.bg.Deallocate()
		s.dot.Deallocate()
		s.ring.Deallocate()
	})
	return bd
}

// Apply repaints the layers a frame rebuilt.
func (bd *GUIBoardDrawer) Apply(f control.Frame) {
	if !f.RebuildBoard && !f.RebuildMarkers {
		return
	}
	sh := bd.shapes.Get(f.Viewport.H)
	if f.RebuildBoard {
		bd.board = layerFor(bd.board, f.Viewport)
		bd.render(bd.board, sh, f.Board, f.Viewport)
	}
	if f.RebuildMarkers {
		bd.markers = layerFor(bd.markers, f.Viewport)
		bd.render(bd.markers, sh, f.Markers, f.Viewport)
	}
}

func (bd *GUIBoardDrawer) Draw(screen *ebiten.Image) {
	screen.Fill(bd.ctx.Theme.Bg)
	if bd.board != nil {
		screen.DrawImage(bd.board, nil)
	}
	if bd.markers != nil {
		screen.DrawImage(bd.markers, nil)
	}
}

// layerFor reuses img when the size still matches, otherwise allocates a
// new transparent layer.
func layerFor(img *ebiten.Image, vp base.Size) *ebiten.Image {
	w, h := int(vp.W), int(vp.H)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if img != nil {
		if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
			img.Clear()
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

func (bd *GUIBoardDrawer) renderShapes(side float64) boardShapes {
	th := bd.ctx.Theme
	sq := side / 8
	return boardShapes{
		bg:   ebiten.NewImageFromImage(gshape.RenderBoard(int(side), th.SquareLight, th.SquareDark)),
		dot:  ebiten.NewImageFromImage(gshape.RenderDot(side/gbase.MoveMarkerDiv, th.MoveDot)),
		ring: ebiten.NewImageFromImage(gshape.RenderRing(sq, sq/gbase.CaptureRingDiv, th.CaptureRing)),
	}
}

func (bd *GUIBoardDrawer) render(dst *ebiten.Image, sh boardShapes, prims []control.Primitive, vp base.Size) {
	for _, p := range prims {
		r := p.Rect(vp)
		switch p.Kind {
		case control.KindBackground:
			ghelper.DrawImageInRect(dst, sh.bg, r)
		case control.KindSprite:
			ghelper.DrawImageInRect(dst, bd.sprite(p), r)
		case control.KindPromotionIcon:
			in := r.W * gbase.PromotionIconIn
			r = base.Rect{X: r.X + in, Y: r.Y + in, W: r.W - 2*in, H: r.H - 2*in}
			ghelper.DrawImageInRect(dst, bd.sprite(p), r)
		case control.KindHighlight:
			ghelper.EbitenutilDrawRect(dst, bd.pixel, r, bd.tint(p.Tint))
		case control.KindMoveMarker:
			ghelper.DrawImageCentered(dst, sh.dot, r.X+r.W/2, r.Y+r.H/2)
		case control.KindCaptureMarker:
			ghelper.DrawImageInRect(dst, sh.ring, r)
		default:
			bd.ctx.Logx.Warnf("unknown primitive %v", p.Kind)
		}
	}
}

func (bd *GUIBoardDrawer) sprite(p control.Primitive) *ebiten.Image {
	img := bd.ctx.AssetsWorker.Piece(p.AssetKey())
	if img == nil {
		bd.ctx.Logx.Warnf("no sprite for %q", p.AssetKey())
	}
	return img
}

func (bd *GUIBoardDrawer) tint(t control.Tint) color.Color {
	switch t {
	case control.TintSelected:
		return bd.ctx.Theme.Selected
	case control.TintLastMove:
		return bd.ctx.Theme.LastMove
	case control.TintPromotion:
		return bd.ctx.Theme.Promotion
	default:
		return color.Transparent
	}
}
