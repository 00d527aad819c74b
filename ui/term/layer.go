package term

import (
	"candyboard/src/base"
	"candyboard/src/control"
	"math"

	"github.com/gdamore/tcell/v2"
)

// One terminal row covers two virtual units, so a square of side s takes
// s columns and s/2 rows and looks square on screen.
const rowUnits = 2

// Viewport maps a cols x rows box to the virtual size the controller sees.
func Viewport(cols, rows int) base.Size {
	w := float64(cols)
	h := math.Min(float64(rows*rowUnits), w)
	return base.Size{W: w, H: h}
}

// CellCenter is the virtual position of the middle of a cell.
func CellCenter(col, row int) base.Point {
	return base.Point{X: float64(col) + 0.5, Y: float64(row*rowUnits) + rowUnits/2.0}
}

func cellAt(p base.Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / rowUnits))
}

// termCell is one overlay cell; ColorDefault and a zero rune mean unset.
type termCell struct {
	bg tcell.Color
	fg tcell.Color
	r  rune
}

type cellLayer struct {
	cols, rows int
	cells      []termCell
}

func newCellLayer(cols, rows int) *cellLayer {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &cellLayer{cols: cols, rows: rows, cells: make([]termCell, cols*rows)}
}

func (l *cellLayer) at(col, row int) *termCell {
	if col < 0 || row < 0 || col >= l.cols || row >= l.rows {
		return nil
	}
	return &l.cells[row*l.cols+col]
}

// get returns an unset cell outside the layer.
func (l *cellLayer) get(col, row int) termCell {
	if c := l.at(col, row); c != nil {
		return *c
	}
	return termCell{}
}

// fill paints bg on every cell whose center lies inside r.
func (l *cellLayer) fill(r base.Rect, bg func(col, row int) tcell.Color) {
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			c := CellCenter(col, row)
			if c.X >= r.X && c.X < r.X+r.W && c.Y >= r.Y && c.Y < r.Y+r.H {
				l.cells[row*l.cols+col].bg = bg(col, row)
			}
		}
	}
}

// put writes a glyph into the cell under the middle of r.
func (l *cellLayer) put(r base.Rect, ch rune, fg tcell.Color) {
	col, row := cellAt(base.Point{X: r.X + r.W/2, Y: r.Y + r.H/2})
	if c := l.at(col, row); c != nil {
		c.r = ch
		c.fg = fg
	}
}

// renderLayer paints a primitive list into a fresh layer.
func renderLayer(prims []control.Primitive, vp base.Size, cols, rows int, th Theme) *cellLayer {
	l := newCellLayer(cols, rows)
	solid := func(c tcell.Color) func(int, int) tcell.Color {
		return func(int, int) tcell.Color { return c }
	}
	for _, p := range prims {
		r := p.Rect(vp)
		switch p.Kind {
		case control.KindBackground:
			l.fill(r, func(col, row int) tcell.Color {
				sq := control.ToSquare(CellCenter(col, row), vp)
				if (sq.File()+sq.Rank())%2 == 0 {
					return th.SquareDark
				}
				return th.SquareLight
			})
		case control.KindSprite, control.KindPromotionIcon:
			l.put(r, p.Piece.Rune(), th.pieceColor(p.Piece.Color))
		case control.KindHighlight:
			l.fill(r, solid(th.tint(p.Tint)))
		case control.KindMoveMarker:
			l.put(r, th.MoveRune, th.MoveMarker)
		case control.KindCaptureMarker:
			l.fill(r, solid(th.Capture))
		}
	}
	return l
}

// compose lays over on top of under; set fields of over win.
func compose(under, over termCell) termCell {
	out := under
	if over.bg != tcell.ColorDefault {
		out.bg = over.bg
	}
	if over.r != 0 {
		out.r = over.r
		out.fg = over.fg
	}
	return out
}
