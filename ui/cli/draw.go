package cli

import (
	"candyboard/src/base"
	"candyboard/src/control"
	"candyboard/src/engine"
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	lightSquare = color.BgHiWhite
	darkSquare  = color.BgHiBlack
	lastSquare  = color.BgYellow
	whiteFg     = color.FgHiWhite
	blackFg     = color.FgBlack
)

var coords = color.New(color.FgHiBlue)

func pieceGlyph(p base.Piece) string {
	glyphs := map[base.PieceType][2]string{
		base.King:   {"♔", "♚"},
		base.Queen:  {"♕", "♛"},
		base.Rook:   {"♖", "♜"},
		base.Bishop: {"♗", "♝"},
		base.Knight: {"♘", "♞"},
		base.Pawn:   {"♙", "♟"},
	}
	g, ok := glyphs[p.Type]
	if !ok {
		return "?"
	}
	return g[p.Color]
}

// PrintBoard writes the position rank 8 first, marking the last move.
func PrintBoard(w io.Writer, r engine.Reader, last *control.Move) {
	files := "   a  b  c  d  e  f  g  h"
	coords.Fprintln(w, files)
	for rank := 7; rank >= 0; rank-- {
		coords.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := base.NewSquare(file, rank)
			bg := lightSquare
			if (rank+file)%2 == 0 {
				bg = darkSquare
			}
			if last != nil && (sq == last.From || sq == last.To) {
				bg = lastSquare
			}
			attrs := []color.Attribute{bg}
			g := " "
			if p, ok := r.PieceAt(sq); ok {
				g = pieceGlyph(p)
				if p.Color == base.White {
					attrs = append(attrs, whiteFg)
				} else {
					attrs = append(attrs, blackFg)
				}
			}
			color.New(attrs...).Fprintf(w, " %s ", g)
		}
		coords.Fprintf(w, " %d\n", rank+1)
	}
	coords.Fprintln(w, files)
}

func printMove(w io.Writer, n int, mv control.Move) {
	fmt.Fprintf(w, "%3d. %v-%v\n", n, mv.From, mv.To)
}
