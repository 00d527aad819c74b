package control

import (
	"candyboard/src/base"
	"candyboard/src/engine"
	"candyboard/src/logx"
	"errors"
	"fmt"
)

var (
	ErrBadPolicy  = errors.New("unknown game over policy")
	ErrNoCallback = errors.New("callback policy without OnGameOver")
)

// GameOverPolicy decides what a finished game turns into.
type GameOverPolicy uint8

const (
	PolicyRestart GameOverPolicy = iota
	PolicyFreeze
	PolicyCallback
)

func (p GameOverPolicy) String() string {
	switch p {
	case PolicyRestart:
		return "restart"
	case PolicyFreeze:
		return "freeze"
	case PolicyCallback:
		return "callback"
	default:
		return "invalid"
	}
}

func ParseGameOverPolicy(s string) (GameOverPolicy, error) {
	switch s {
	case "restart", "":
		return PolicyRestart, nil
	case "freeze":
		return PolicyFreeze, nil
	case "callback":
		return PolicyCallback, nil
	default:
		return PolicyRestart, fmt.Errorf("%w: %q", ErrBadPolicy, s)
	}
}

type Options struct {
	Policy GameOverPolicy
	// OnGameOver runs once per finished game under PolicyCallback.
	OnGameOver func(g engine.Game)
}

// Frame is the output of one Tick. Board and Markers are set only for the
// layers due for rebuild.
type Frame struct {
	Viewport       base.Size
	RebuildBoard   bool
	Board          []Primitive
	RebuildMarkers bool
	Markers        []Primitive
	Cursor         CursorHint
}

// Controller owns the interactive state of one board.
type Controller struct {
	factory engine.Factory
	game    engine.Game
	opts    Options
	logger  logx.Logger

	sel      Selection
	lastMove *Move
	tracker  *Tracker

	cursor        CursorHint
	cursorChanged bool
	overHandled   bool
}

func NewController(factory engine.Factory, opts Options, logger logx.Logger) (*Controller, error) {
	if opts.Policy > PolicyCallback {
		return nil, fmt.Errorf("%w: %d", ErrBadPolicy, opts.Policy)
	}
	if opts.Policy == PolicyCallback && opts.OnGameOver == nil {
		return nil, ErrNoCallback
	}
	g, err := factory()
	if err != nil {
		return nil, fmt.Errorf("error create game: %w", err)
	}
	return &Controller{
		factory: factory,
		game:    g,
		opts:    opts,
		logger:  logger.Named("control"),
		tracker: NewTracker(),
		cursor:  CursorDefault,
	}, nil
}

func (c *Controller) Game() engine.Game {
	return c.game
}

func (c *Controller) Selection() Selection {
	return c.sel
}

func (c *Controller) LastMove() (Move, bool) {
	if c.lastMove == nil {
		return Move{}, false
	}
	return *c.lastMove, true
}

func (c *Controller) Dirty(l Layer) bool {
	return c.tracker.Dirty(l)
}

func (c *Controller) Cursor() CursorHint {
	return c.cursor
}

// HandleEvent feeds one pointer event through the state machine and applies
// the resulting move to the game.
func (c *Controller) HandleEvent(ev Event, vp base.Size) {
	sel, eff := Transition(c.sel, ev, vp, c.game)

	if eff.PromotionMiss {
		to := ToSquare(ev.Pos, vp)
		c.logger.DPanicf("promotion quadrant %d is outside %v, move dropped", ToQuaterSquare(ev.Pos, vp), to)
	}
	if eff.Move != nil {
		c.applyMove(*eff.Move)
	}
	if sel != c.sel {
		c.logger.Debugf("selection %v -> %v on %v", c.sel, sel, ev.Kind)
	}
	c.sel = sel
	c.tracker.Apply(eff)

	if eff.Cursor != CursorUnchanged && eff.Cursor != c.cursor {
		c.cursor = eff.Cursor
		c.cursorChanged = true
	}
}

func (c *Controller) applyMove(mv MoveAttempt) {
	if mv.Promotion != base.NoPieceType {
		c.logger.Infof("promotion on %v to %v", mv.To, mv.Promotion)
		c.game.SetPieceType(mv.From, mv.Promotion)
	}
	if err := c.game.MakeMove(mv.From, mv.To); err != nil {
		c.logger.Errorf("error move from %v to %v: %v", mv.From, mv.To, err)
		return
	}
	c.logger.Infof("move from %v to %v", mv.From, mv.To)
	c.lastMove = &Move{From: mv.From, To: mv.To}
}

// CheckGameOver applies the configured policy when the game has ended.
func (c *Controller) CheckGameOver() error {
	if c.game.State() != base.GameOver {
		return nil
	}
	switch c.opts.Policy {
	case PolicyRestart:
		c.logger.Info("game over, restart")
		return c.Restart()
	case PolicyFreeze:
		if !c.overHandled {
			c.logger.Info("game over, board frozen")
		}
	case PolicyCallback:
		if !c.overHandled {
			c.logger.Info("game over, notify")
			c.overHandled = true
			c.opts.OnGameOver(c.game)
			return nil
		}
	}
	c.overHandled = true
	return nil
}

// Restart discards the current game and starts a fresh one.
func (c *Controller) Restart() error {
	g, err := c.factory()
	if err != nil {
		return fmt.Errorf("error restart game: %w", err)
	}
	c.reset(g)
	return nil
}

// Load switches to another factory and starts a game from it. On error the
// current game and factory are kept.
func (c *Controller) Load(factory engine.Factory) error {
	g, err := factory()
	if err != nil {
		return fmt.Errorf("error load game: %w", err)
	}
	c.factory = factory
	c.reset(g)
	return nil
}

func (c *Controller) reset(g engine.Game) {
	c.game = g
	c.sel = Selection{}
	c.lastMove = nil
	c.overHandled = false
	c.tracker.MarkAll()
}

// Tick runs one frame: input, game over check, then the board and marker
// layers in that order.
func (c *Controller) Tick(events []Event, vp base.Size) (Frame, error) {
	for _, ev := range events {
		c.HandleEvent(ev, vp)
	}
	if err := c.CheckGameOver(); err != nil {
		return Frame{}, err
	}

	f := Frame{Viewport: vp}
	if c.tracker.ShouldRebuild(LayerBoard, vp) {
		f.RebuildBoard = true
		f.Board = PlanBoard(c.game)
		c.tracker.Rebuilt(LayerBoard, vp)
	}
	if c.tracker.ShouldRebuild(LayerMarkers, vp) {
		f.RebuildMarkers = true
		f.Markers = PlanMarkers(c.game, c.sel, c.lastMove)
		c.tracker.Rebuilt(LayerMarkers, vp)
	}
	if c.cursorChanged {
		f.Cursor = c.cursor
		c.cursorChanged = false
	}
	return f, nil
}
