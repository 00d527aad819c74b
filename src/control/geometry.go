package control

import (
	"candyboard/src/base"
	"math"
)

// The board is drawn as an H x H square, horizontally centered in a W x H viewport.

func boardLeft(vp base.Size) float64 {
	return (vp.W - vp.H) / 2
}

// IsOverBoard reports whether pos lies on the board, bounds inclusive.
// A viewport without height has no board.
func IsOverBoard(pos base.Point, vp base.Size) bool {
	x := pos.X - boardLeft(vp)
	return vp.H > 0 && x >= 0 && x <= vp.H && pos.Y >= 0 && pos.Y <= vp.H
}

// cell maps pos to a (file, rank) pair on an n x n grid laid over the board.
// Callers must check IsOverBoard first. The inclusive right and bottom edges
// belong to the last file and the first rank.
func cell(pos base.Point, vp base.Size, n int) (int, int) {
	x := pos.X - boardLeft(vp)
	file := int(math.Floor(x / vp.H * float64(n)))
	row := int(math.Floor(pos.Y / vp.H * float64(n)))
	if file > n-1 {
		file = n - 1
	}
	if row > n-1 {
		row = n - 1
	}
	return file, n - row - 1
}

func ToSquare(pos base.Point, vp base.Size) base.Square {
	file, rank := cell(pos, vp, 8)
	return base.NewSquare(file, rank)
}

func ToQuaterSquare(pos base.Point, vp base.Size) base.QuaterSquare {
	file, rank := cell(pos, vp, 16)
	return base.NewQuaterSquare(file, rank)
}

// SquareRect is the pixel rectangle of sq, top-left origin.
func SquareRect(sq base.Square, vp base.Size) base.Rect {
	side := vp.H / 8
	return base.Rect{
		X: boardLeft(vp) + float64(sq.File())*side,
		Y: float64(7-sq.Rank()) * side,
		W: side,
		H: side,
	}
}

func SquareCenter(sq base.Square, vp base.Size) base.Point {
	r := SquareRect(sq, vp)
	return base.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func QuadrantRect(q base.QuaterSquare, vp base.Size) base.Rect {
	side := vp.H / 16
	return base.Rect{
		X: boardLeft(vp) + float64(q.File())*side,
		Y: float64(15-q.Rank()) * side,
		W: side,
		H: side,
	}
}

func BoardRect(vp base.Size) base.Rect {
	return base.Rect{X: boardLeft(vp), Y: 0, W: vp.H, H: vp.H}
}
