package gui

import (
	"candyboard/src/base"
	"candyboard/src/control"
	"candyboard/src/engine"
	"candyboard/src/engine/nchess"
	"candyboard/src/logx"
	"candyboard/ui/gui/gbase"
	"candyboard/ui/gui/gbase/gconf"
	"candyboard/ui/gui/gctx"
	"candyboard/ui/gui/gdraw"
	"candyboard/ui/gui/ghelper"
	"candyboard/ui/gui/ghelper/gcache"
	"candyboard/ui/gui/ghelper/gclipboard"
	"candyboard/ui/gui/ghelper/gdialog"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIProcessing struct {
	ctx    *gctx.GUIGameContext
	drawer *gdraw.GUIBoardDrawer
	size   base.Size

	prevMouseDown bool
	// answers of the game over dialog, filled by a goroutine
	gameOverCh chan bool
	status     string
	// rounded panel behind the status text, rebuilt per size
	panel *gcache.Sized[image.Point, *ebiten.Image]
}

func NewGUI(cfg *gconf.Config, factory engine.Factory, logger logx.Logger) (*GUIProcessing, error) {
	gp := &GUIProcessing{
		gameOverCh: make(chan bool, 1),
		size:       base.Size{W: float64(cfg.WindowW), H: float64(cfg.WindowH)},
	}

	policy, err := control.ParseGameOverPolicy(cfg.OnGameOver)
	if err != nil {
		return nil, err
	}
	opts := control.Options{Policy: policy}
	if policy == control.PolicyCallback {
		opts.OnGameOver = gp.onGameOver
	}
	c, err := control.NewController(factory, opts, logger)
	if err != nil {
		return nil, err
	}
	assets, err := ghelper.NewGUIAssetsWorker(cfg, logger)
	if err != nil {
		return nil, err
	}

	gp.ctx = gctx.NewGUIGameContext(c, assets, cfg, logger.Named("gui"))
	gp.drawer = gdraw.NewGUIBoardDrawer(gp.ctx)
	gp.panel = gcache.NewSized(func(sz image.Point) *ebiten.Image {
		th := gp.ctx.Theme
		return ghelper.RenderRoundedRect(sz.X, sz.Y, gbase.StatusRadius, th.Panel, th.PanelEdge, 2)
	}, (*ebiten.Image).Deallocate)
	return gp, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gbase.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(240, 240, -1, -1)
	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return nil
}

// WindowSize reports the last window size, for saving into the config.
func (gp *GUIProcessing) WindowSize() (int, int) {
	return ebiten.WindowSize()
}

// onGameOver runs inside Tick; the dialog blocks, so it gets its own
// goroutine and the answer is picked up by a later Update.
func (gp *GUIProcessing) onGameOver(g engine.Game) {
	result := describeResult(g)
	gp.ctx.Logx.Infof("game over: %s", result)
	go func() {
		gp.gameOverCh <- gdialog.AskRestart(gbase.WindowTitle, result)
	}()
}

func (gp *GUIProcessing) Update() error {
	select {
	case again := <-gp.gameOverCh:
		if again {
			if err := gp.ctx.Controller.Restart(); err != nil {
				return err
			}
		}
	default:
	}

	if err := gp.handleKeys(); err != nil {
		return err
	}

	f, err := gp.ctx.Controller.Tick(gp.pointerEvents(), gp.size)
	if err != nil {
		return err
	}
	gp.drawer.Apply(f)

	switch f.Cursor {
	case control.CursorGrab:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	case control.CursorDefault:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	if f.RebuildBoard {
		gp.status = describeResult(gp.ctx.Controller.Game())
	}
	return nil
}

// pointerEvents turns the left button edges of this frame into events.
func (gp *GUIProcessing) pointerEvents() []control.Event {
	mx, my := ebiten.CursorPosition()
	pos := base.Point{X: float64(mx), Y: float64(my)}
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !gp.prevMouseDown
	justReleased := !mouseDown && gp.prevMouseDown
	gp.prevMouseDown = mouseDown

	var events []control.Event
	if justPressed {
		events = append(events, control.Event{Kind: control.Press, Pos: pos})
	}
	if justReleased {
		events = append(events, control.Event{Kind: control.Release, Pos: pos})
	}
	return events
}

func (gp *GUIProcessing) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return gbase.ErrExit
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		gp.ctx.Logx.Info("restart by key")
		return gp.ctx.Controller.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if f, ok := gp.ctx.Controller.Game().(engine.FENer); ok {
			if err := gclipboard.WriteAll(f.FEN()); err != nil {
				gp.ctx.Logx.Errorf("error copy FEN: %v", err)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		gp.loadFromClipboard()
	}
	return nil
}

func (gp *GUIProcessing) loadFromClipboard() {
	fen, err := gclipboard.ReadAll()
	if err != nil {
		gp.ctx.Logx.Errorf("error read clipboard: %v", err)
		return
	}
	fen = strings.TrimSpace(fen)
	factory, err := nchess.NewFactory(fen, gp.ctx.Logx)
	if err == nil {
		err = gp.ctx.Controller.Load(factory)
	}
	if err != nil {
		gp.ctx.Logx.Warnf("error load position %q: %v", fen, err)
		go gdialog.Info(gbase.WindowTitle, fmt.Sprintf("Clipboard does not hold a playable position:\n%v", err))
	}
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.drawer.Draw(screen)

	// status goes into the left margin when there is one
	margin := (gp.size.W - gp.size.H) / 2
	if gp.status != "" && margin > gbase.StatusMinMargin {
		face := gp.ctx.AssetsWorker.Fonts().Status
		lineH := face.Metrics().Height.Ceil()
		lines := strings.Split(gp.status, "\n")
		pad := gbase.StatusPad
		sz := image.Point{X: int(margin) - 2*pad, Y: len(lines)*lineH + 2*pad}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(pad), float64(pad))
		screen.DrawImage(gp.panel.Get(sz), op)

		y := 2*pad + lineH
		for _, line := range lines {
			text.Draw(screen, line, face, 2*pad, y, gp.ctx.Theme.Text)
			y += lineH
		}
	}
	if gp.ctx.Config.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 8, int(gp.size.H)-20)
	}
}

// Layout keeps the logical screen at least as wide as it is tall, so the
// board always fits; a narrow window gets letterboxed.
func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < outsideHeight {
		outsideWidth = outsideHeight
	}
	gp.size = base.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// describeResult prints what the engine knows about the game, one fact per
// line.
func describeResult(g engine.Game) string {
	type named interface{ Name() string }
	type decided interface {
		Outcome() string
		Method() string
	}
	var lines []string
	if n, ok := g.(named); ok {
		lines = append(lines, n.Name())
	}
	if g.State() == base.GameOver {
		if d, ok := g.(decided); ok {
			lines = append(lines, fmt.Sprintf("%s (%s)", d.Outcome(), d.Method()))
		} else {
			lines = append(lines, "game over")
		}
	}
	return strings.Join(lines, "\n")
}
