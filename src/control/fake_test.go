package control

import (
	"candyboard/src/base"
	"candyboard/src/engine"
	"errors"
)

// fakeGame is a scripted engine: pieces and legal moves are set by the test.
type fakeGame struct {
	board     map[base.Square]base.Piece
	legal     map[base.Square]base.SquareSet
	state     base.GameState
	moves     []Move
	promoted  []base.PieceType // type on the origin square at MakeMove time
	typeSets  int
	failMoves bool
}

func newFakeGame() *fakeGame {
	return &fakeGame{
		board: make(map[base.Square]base.Piece),
		legal: make(map[base.Square]base.SquareSet),
	}
}

func (g *fakeGame) put(sq base.Square, pt base.PieceType, c base.Color) *fakeGame {
	g.board[sq] = base.Piece{Type: pt, Color: c}
	return g
}

func (g *fakeGame) allow(from base.Square, to ...base.Square) *fakeGame {
	g.legal[from] = base.NewSquareSet(to...)
	return g
}

func (g *fakeGame) LegalMoves(from base.Square) base.SquareSet {
	return g.legal[from]
}

func (g *fakeGame) State() base.GameState {
	return g.state
}

func (g *fakeGame) PieceAt(sq base.Square) (base.Piece, bool) {
	p, ok := g.board[sq]
	return p, ok
}

func (g *fakeGame) SetPieceType(sq base.Square, pt base.PieceType) {
	g.typeSets++
	if p, ok := g.board[sq]; ok {
		p.Type = pt
		g.board[sq] = p
	}
}

func (g *fakeGame) MakeMove(from, to base.Square) error {
	if g.failMoves {
		return errors.New("engine refused")
	}
	p := g.board[from]
	g.moves = append(g.moves, Move{From: from, To: to})
	g.promoted = append(g.promoted, p.Type)
	delete(g.board, from)
	g.board[to] = p
	g.legal = make(map[base.Square]base.SquareSet)
	return nil
}

// factoryOf hands out the given games in order, then fresh empty ones.
func factoryOf(games ...*fakeGame) (engine.Factory, *int) {
	calls := 0
	return func() (engine.Game, error) {
		calls++
		if len(games) > 0 {
			g := games[0]
			games = games[1:]
			return g, nil
		}
		return newFakeGame(), nil
	}, &calls
}
