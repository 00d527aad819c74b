// Package nchess adapts github.com/notnil/chess to engine.Game.
package nchess

import (
	"candyboard/src/base"
	"candyboard/src/engine"
	"candyboard/src/logx"
	"errors"
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/notnil/chess"
)

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrPromotionRequired = errors.New("promotion piece not chosen")
	ErrPromotionNotLegal = errors.New("promotion piece not allowed")
	ErrGameFinished      = errors.New("position is already decided")
)

type Game struct {
	name      string
	game      *chess.Game
	overrides map[base.Square]base.PieceType
	logger    logx.Logger
}

// New starts a game from fen, or from the initial position when fen is empty.
func New(fen string, logger logx.Logger) (*Game, error) {
	var opts []func(*chess.Game)
	if fen != "" {
		opt, err := chess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("error parse FEN: %w", err)
		}
		opts = append(opts, opt)
	}
	g := &Game{
		name:      petname.Generate(2, "-"),
		game:      chess.NewGame(opts...),
		overrides: make(map[base.Square]base.PieceType),
		logger:    logger,
	}
	g.logger.Infof("new game %s: %s", g.name, g.game.FEN())
	return g, nil
}

// NewFactory validates fen once and returns a factory of fresh games. A
// decided position is refused, restarting from it would never end.
func NewFactory(fen string, logger logx.Logger) (engine.Factory, error) {
	if fen != "" {
		opt, err := chess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("error parse FEN: %w", err)
		}
		if chess.NewGame(opt).Outcome() != chess.NoOutcome {
			return nil, fmt.Errorf("%w: %s", ErrGameFinished, fen)
		}
	}
	return func() (engine.Game, error) {
		return New(fen, logger)
	}, nil
}

func (g *Game) Name() string {
	return g.name
}

func (g *Game) FEN() string {
	return g.game.FEN()
}

// Outcome is "1-0", "0-1", "1/2-1/2" or "*" while in progress.
func (g *Game) Outcome() string {
	return string(g.game.Outcome())
}

func (g *Game) Method() string {
	return g.game.Method().String()
}

func (g *Game) LegalMoves(from base.Square) base.SquareSet {
	var set base.SquareSet
	for _, m := range g.game.ValidMoves() {
		if m.S1() == chess.Square(from) {
			set = set.Add(base.Square(m.S2()))
		}
	}
	return set
}

func (g *Game) State() base.GameState {
	if g.game.Outcome() == chess.NoOutcome {
		return base.InProgress
	}
	return base.GameOver
}

func (g *Game) PieceAt(sq base.Square) (base.Piece, bool) {
	if !sq.IsValid() {
		return base.Piece{}, false
	}
	p := g.game.Position().Board().Piece(chess.Square(sq))
	if p == chess.NoPiece {
		return base.Piece{}, false
	}
	piece := base.Piece{Type: fromChessType(p.Type()), Color: fromChessColor(p.Color())}
	if pt, ok := g.overrides[sq]; ok {
		piece.Type = pt
	}
	return piece, true
}

func (g *Game) SetPieceType(sq base.Square, pt base.PieceType) {
	if _, ok := g.PieceAt(sq); !ok {
		return
	}
	g.overrides[sq] = pt
}

// MakeMove plays from->to. When the move is a promotion, the type set on from
// with SetPieceType selects the promoted piece.
func (g *Game) MakeMove(from, to base.Square) error {
	defer func() {
		g.overrides = make(map[base.Square]base.PieceType)
	}()

	var candidates []*chess.Move
	for _, m := range g.game.ValidMoves() {
		if m.S1() == chess.Square(from) && m.S2() == chess.Square(to) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("%w: %v%v", ErrIllegalMove, from, to)
	}

	move := candidates[0]
	if move.Promo() != chess.NoPieceType {
		pt, ok := g.overrides[from]
		if !ok || pt == base.Pawn {
			return fmt.Errorf("%w: %v%v", ErrPromotionRequired, from, to)
		}
		move = nil
		for _, m := range candidates {
			if m.Promo() == toChessType(pt) {
				move = m
				break
			}
		}
		if move == nil {
			return fmt.Errorf("%w: %v", ErrPromotionNotLegal, pt)
		}
	}

	if err := g.game.Move(move); err != nil {
		return fmt.Errorf("error move %v: %w", move, err)
	}
	g.logger.Debugf("game %s: %v, outcome %s", g.name, move, g.game.Outcome())
	return nil
}

func fromChessType(pt chess.PieceType) base.PieceType {
	switch pt {
	case chess.King:
		return base.King
	case chess.Queen:
		return base.Queen
	case chess.Rook:
		return base.Rook
	case chess.Bishop:
		return base.Bishop
	case chess.Knight:
		return base.Knight
	case chess.Pawn:
		return base.Pawn
	default:
		return base.NoPieceType
	}
}

func toChessType(pt base.PieceType) chess.PieceType {
	switch pt {
	case base.King:
		return chess.King
	case base.Queen:
		return chess.Queen
	case base.Rook:
		return chess.Rook
	case base.Bishop:
		return chess.Bishop
	case base.Knight:
		return chess.Knight
	case base.Pawn:
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

func fromChessColor(c chess.Color) base.Color {
	if c == chess.Black {
		return base.Black
	}
	return base.White
}
