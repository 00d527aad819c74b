package control

import (
	"candyboard/src/base"
	"candyboard/src/engine"
)

type PrimitiveKind uint8

const (
	KindBackground PrimitiveKind = iota
	KindSprite
	KindHighlight
	KindMoveMarker
	KindCaptureMarker
	KindPromotionIcon
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindSprite:
		return "sprite"
	case KindHighlight:
		return "highlight"
	case KindMoveMarker:
		return "move"
	case KindCaptureMarker:
		return "capture"
	case KindPromotionIcon:
		return "promotion"
	default:
		return "unknown"
	}
}

// Tint tells a renderer which translucent fill a highlight uses.
type Tint uint8

const (
	TintNone Tint = iota
	TintSelected
	TintLastMove
	TintPromotion
)

// Primitive is one visual element of a layer. Quarter primitives occupy
// Quadrant, the others occupy Square. Background covers the whole board.
type Primitive struct {
	Kind     PrimitiveKind
	Square   base.Square
	Quadrant base.QuaterSquare
	Quarter  bool
	Piece    base.Piece
	Tint     Tint
}

func (p Primitive) AssetKey() string {
	if p.Kind != KindSprite && p.Kind != KindPromotionIcon {
		return ""
	}
	return p.Piece.AssetKey()
}

func (p Primitive) Rect(vp base.Size) base.Rect {
	switch {
	case p.Kind == KindBackground:
		return BoardRect(vp)
	case p.Quarter:
		return QuadrantRect(p.Quadrant, vp)
	default:
		return SquareRect(p.Square, vp)
	}
}

// PlanBoard lists the board layer: background, then one sprite per piece.
func PlanBoard(r engine.Reader) []Primitive {
	out := []Primitive{{Kind: KindBackground}}
	for i := 0; i < base.BoardSquares; i++ {
		sq := base.Square(i)
		if p, ok := r.PieceAt(sq); ok {
			out = append(out, Primitive{Kind: KindSprite, Square: sq, Piece: p})
		}
	}
	return out
}

// PlanMarkers lists the marker layer: selected square, legal destinations,
// then the last move.
func PlanMarkers(r engine.Reader, sel Selection, last *Move) []Primitive {
	var out []Primitive
	if from, ok := sel.Square(); ok {
		out = append(out, Primitive{Kind: KindHighlight, Square: from, Tint: TintSelected})
		mover, _ := r.PieceAt(from)
		for _, to := range r.LegalMoves(from).Squares() {
			if needsPromotion(mover, to) {
				out = append(out, promotionPicker(to, mover.Color)...)
				continue
			}
			if _, occupied := r.PieceAt(to); occupied {
				out = append(out, Primitive{Kind: KindCaptureMarker, Square: to})
			} else {
				out = append(out, Primitive{Kind: KindMoveMarker, Square: to})
			}
		}
	}
	if last != nil {
		out = append(out,
			Primitive{Kind: KindHighlight, Square: last.From, Tint: TintLastMove},
			Primitive{Kind: KindHighlight, Square: last.To, Tint: TintLastMove},
		)
	}
	return out
}

// Plan is the full ordered list of both layers.
func Plan(r engine.Reader, sel Selection, last *Move) []Primitive {
	return append(PlanBoard(r), PlanMarkers(r, sel, last)...)
}

// four quadrant highlights under four small icons
func promotionPicker(to base.Square, c base.Color) []Primitive {
	choices := PromotionQuadrants(to)
	out := make([]Primitive, 0, 2*len(choices))
	for _, ch := range choices {
		out = append(out, Primitive{Kind: KindHighlight, Square: to, Quadrant: ch.Quadrant, Quarter: true, Tint: TintPromotion})
	}
	for _, ch := range choices {
		out = append(out, Primitive{
			Kind:     KindPromotionIcon,
			Square:   to,
			Quadrant: ch.Quadrant,
			Quarter:  true,
			Piece:    base.Piece{Type: ch.Type, Color: c},
		})
	}
	return out
}
