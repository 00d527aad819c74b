package engine

import "candyboard/src/base"

// Reader is the read-only view of a game used for planning and input decisions.
type Reader interface {
	LegalMoves(from base.Square) base.SquareSet
	State() base.GameState
	PieceAt(sq base.Square) (base.Piece, bool)
}

// Game is the rules engine the board controller plays against.
type Game interface {
	Reader
	// SetPieceType overwrites the type of the piece on sq in place.
	// Used to pick the promotion piece before MakeMove.
	SetPieceType(sq base.Square, pt base.PieceType)
	MakeMove(from, to base.Square) error
}

// Factory returns a game in its starting position.
type Factory func() (Game, error)

// FENer is implemented by games able to export their position.
type FENer interface {
	FEN() string
}
