package base

import (
	"fmt"
	"math/bits"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	BoardSquares  = 64
	QuaterSquares = 256
)

// Square is a board cell 0..63, index = rank*8 + file, rank 0 is the bottom row as drawn.
type Square uint8

// QuaterSquare addresses a cell of the 16x16 subdivision of the board.
type QuaterSquare uint8

func NewSquare(file, rank int) Square {
	return Square(file + 8*rank)
}

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Rank() int {
	return int(s) / 8
}

func (s Square) IsValid() bool {
	return s < BoardSquares
}

// first or last rank
func (s Square) IsBackRank() bool {
	return s > 55 || s < 8
}

func (s Square) String() string {
	a, err := AlgebraicFromSquare(int(s))
	if err != nil {
		return fmt.Sprintf("sq(%d)", uint8(s))
	}
	return a
}

func NewQuaterSquare(quaterFile, quaterRank int) QuaterSquare {
	return QuaterSquare(quaterFile + 16*quaterRank)
}

func (q QuaterSquare) File() int {
	return int(q) % 16
}

func (q QuaterSquare) Rank() int {
	return int(q) / 16
}

// Square returns the board square containing q.
func (q QuaterSquare) Square() Square {
	return NewSquare(q.File()/2, q.Rank()/2)
}

// SquareSet is a set of squares, bit i set <=> square i present.
type SquareSet uint64

func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq)
}

func (s SquareSet) Contains(sq Square) bool {
	return sq.IsValid() && s&(1<<uint(sq)) != 0
}

func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// ascending order
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	King
	Knight
	Bishop
	Rook
	Queen
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case King:
		return "king"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	default:
		return "none"
	}
}

// upper case letter used in asset keys and SAN
func (pt PieceType) Letter() byte {
	switch pt {
	case Pawn:
		return 'P'
	case King:
		return 'K'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	default:
		return '.'
	}
}

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

type Piece struct {
	Type  PieceType
	Color Color
}

// AssetKey maps a piece to its sprite name: "wK", "bQ", ...
func (p Piece) AssetKey() string {
	prefix := byte('w')
	if p.Color == Black {
		prefix = 'b'
	}
	return string([]byte{prefix, p.Type.Letter()})
}

// Rune returns the FEN letter, upper case for white.
func (p Piece) Rune() rune {
	r := rune(p.Type.Letter())
	if p.Color == Black && r != '.' {
		r += 'a' - 'A'
	}
	return r
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Type.String()
}

type GameState uint8

const (
	InProgress GameState = iota
	GameOver
)

func (gs GameState) String() string {
	switch gs {
	case InProgress:
		return "in progress"
	case GameOver:
		return "game over"
	default:
		return "invalid"
	}
}

// Point is a pointer position in window pixels, y grows downward.
type Point struct {
	X float64
	Y float64
}

// Size is the viewport size in window pixels.
type Size struct {
	W float64
	H float64
}

type Rect struct {
	X, Y, W, H float64
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to number
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return 0, fmt.Errorf("invalid position %q", pos)
	}
	return NewSquare(int(pos[0]-'a'), int(pos[1]-'1')), nil
}

func AlgebraicFromSquare(index int) (string, error) {
	if index < 0 || index >= BoardSquares {
		return "", fmt.Errorf("invalid square index %d", index)
	}
	return string([]rune{rune(index%8 + 'a'), rune(index/8 + '1')}), nil
}
