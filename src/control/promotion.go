package control

import "candyboard/src/base"

// PromotionChoice pairs a promotion piece with the quadrant that picks it.
type PromotionChoice struct {
	Type     base.PieceType
	Quadrant base.QuaterSquare
}

// PromotionQuadrants lays the four promotion pieces out inside sq:
// queen upper-left, knight upper-right, rook lower-left, bishop lower-right.
func PromotionQuadrants(sq base.Square) [4]PromotionChoice {
	knight := base.NewQuaterSquare(sq.File()*2+1, sq.Rank()*2+1)
	bishop := knight - 16
	queen := knight - 1
	rook := queen - 16
	return [4]PromotionChoice{
		{Type: base.Queen, Quadrant: queen},
		{Type: base.Knight, Quadrant: knight},
		{Type: base.Rook, Quadrant: rook},
		{Type: base.Bishop, Quadrant: bishop},
	}
}

// ResolvePromotion returns the piece whose quadrant of sq is q.
// base.Pawn means q is not inside sq and the caller has a geometry bug.
func ResolvePromotion(sq base.Square, q base.QuaterSquare) base.PieceType {
	for _, c := range PromotionQuadrants(sq) {
		if c.Quadrant == q {
			return c.Type
		}
	}
	return base.Pawn
}

func needsPromotion(p base.Piece, to base.Square) bool {
	return p.Type == base.Pawn && to.IsBackRank()
}
