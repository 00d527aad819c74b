package term

import (
	"candyboard/src/base"
	"candyboard/src/control"
	"candyboard/src/engine"
	"candyboard/src/logx"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type TermProcessing struct {
	app    *tview.Application
	board  *tview.Box
	status *tview.TextView

	ctrl   *control.Controller
	theme  Theme
	logger logx.Logger

	// inner rect of the board box at the last draw
	x0, y0, cols, rows int
	size               base.Size
	boardLayer         *cellLayer
	markerLayer        *cellLayer
	over               string
}

func NewTerm(factory engine.Factory, policy control.GameOverPolicy, theme Theme, logger logx.Logger) (*TermProcessing, error) {
	tp := &TermProcessing{
		app:    tview.NewApplication(),
		board:  tview.NewBox(),
		status: tview.NewTextView().SetDynamicColors(true),
		theme:  theme,
		logger: logger.Named("term"),
	}
	opts := control.Options{Policy: policy}
	if policy == control.PolicyCallback {
		opts.OnGameOver = tp.onGameOver
	}
	c, err := control.NewController(factory, opts, logger)
	if err != nil {
		return nil, err
	}
	tp.ctrl = c

	tp.board.SetBorder(true).SetTitle(" CandyBoard ")
	tp.board.SetDrawFunc(tp.drawBoard)
	tp.board.SetMouseCapture(tp.mouse)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tp.board, 0, 1, true).
		AddItem(tp.status, 1, 0, false)
	tp.app.SetRoot(layout, true).EnableMouse(true)
	tp.app.SetInputCapture(tp.keys)
	tp.updateStatus()
	return tp, nil
}

func (tp *TermProcessing) Run() error {
	return tp.app.Run()
}

func (tp *TermProcessing) onGameOver(g engine.Game) {
	tp.over = "game over"
	if d, ok := g.(interface{ Outcome() string }); ok {
		tp.over = fmt.Sprintf("game over %s", d.Outcome())
	}
	tp.logger.Info(tp.over)
}

func (tp *TermProcessing) keys(ev *tcell.EventKey) *tcell.EventKey {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
		tp.app.Stop()
		return nil
	case ev.Rune() == 'r':
		if err := tp.ctrl.Restart(); err != nil {
			tp.logger.Errorf("error restart: %v", err)
		}
		tp.over = ""
		tp.tick(nil)
		return nil
	}
	return ev
}

// mouse forwards left button edges inside the board box to the controller.
func (tp *TermProcessing) mouse(action tview.MouseAction, ev *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	var kind control.EventKind
	switch action {
	case tview.MouseLeftDown:
		kind = control.Press
	case tview.MouseLeftUp:
		kind = control.Release
	default:
		return action, ev
	}
	col, row := ev.Position()
	pos := CellCenter(col-tp.x0, row-tp.y0)
	tp.tick([]control.Event{{Kind: kind, Pos: pos}})
	return action, nil
}

func (tp *TermProcessing) tick(events []control.Event) {
	f, err := tp.ctrl.Tick(events, tp.size)
	if err != nil {
		tp.logger.Errorf("error tick: %v", err)
		return
	}
	if f.RebuildBoard || tp.boardLayer == nil {
		tp.boardLayer = renderLayer(f.Board, tp.size, tp.cols, tp.rows, tp.theme)
	}
	if f.RebuildMarkers || tp.markerLayer == nil {
		tp.markerLayer = renderLayer(f.Markers, tp.size, tp.cols, tp.rows, tp.theme)
	}
	if f.RebuildBoard {
		tp.updateStatus()
	}
}

func (tp *TermProcessing) updateStatus() {
	g := tp.ctrl.Game()
	line := ""
	if n, ok := g.(interface{ Name() string }); ok {
		line = n.Name()
	}
	if tp.over != "" {
		line += " [red]" + tp.over + "[white], r to restart"
	} else if g.State() == base.GameOver {
		line += " [red]game over[white]"
	}
	tp.status.SetText(line + "  (q quits)")
}

func (tp *TermProcessing) drawBoard(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// inside the border
	x0, y0, cols, rows := x+1, y+1, width-2, height-2
	if cols <= 0 || rows <= 0 {
		return x0, y0, 0, 0
	}
	if cols != tp.cols || rows != tp.rows || x0 != tp.x0 || y0 != tp.y0 {
		tp.x0, tp.y0, tp.cols, tp.rows = x0, y0, cols, rows
		tp.size = Viewport(cols, rows)
		tp.tick(nil)
	}
	if tp.boardLayer == nil || tp.markerLayer == nil {
		return x0, y0, cols, rows
	}
	for row := 0; row < tp.rows; row++ {
		for col := 0; col < tp.cols; col++ {
			c := compose(tp.boardLayer.get(col, row), tp.markerLayer.get(col, row))
			if c.bg == tcell.ColorDefault && c.r == 0 {
				continue
			}
			ch := c.r
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.Background(c.bg).Foreground(c.fg).Bold(c.r != 0)
			screen.SetContent(x0+col, y0+row, ch, nil, style)
		}
	}
	return x0, y0, cols, rows
}
