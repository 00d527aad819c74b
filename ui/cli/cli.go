package cli

import (
	"candyboard/src/base"
	"candyboard/src/control"
	"candyboard/src/engine"
	"candyboard/src/logx"
	"fmt"
	"io"
)

// default size until the script says otherwise
var defaultViewport = base.Size{W: 800, H: 800}

type CLIProcessing struct {
	ctrl   *control.Controller
	policy control.GameOverPolicy
	out    io.Writer
	logger logx.Logger
	res    Result
}

// Result sums up a replay.
type Result struct {
	Moves    []control.Move
	Frames   int
	GameOver int // finished games seen
}

func NewCLI(factory engine.Factory, policy control.GameOverPolicy, out io.Writer, logger logx.Logger) (*CLIProcessing, error) {
	c := &CLIProcessing{policy: policy, out: out, logger: logger.Named("replay")}
	opts := control.Options{Policy: policy}
	if policy == control.PolicyCallback {
		opts.OnGameOver = func(g engine.Game) {
			c.res.GameOver++
			fmt.Fprintf(out, "game over%s\n", outcomeOf(g))
		}
	}
	ctrl, err := control.NewController(factory, opts, logger)
	if err != nil {
		return nil, err
	}
	c.ctrl = ctrl
	return c, nil
}

func (c *CLIProcessing) Controller() *control.Controller {
	return c.ctrl
}

// Replay feeds the steps to the controller. Events queue up until a tick
// line; whatever is still queued at the end runs in a final tick.
func (c *CLIProcessing) Replay(steps []Step) (Result, error) {
	res := &c.res
	vp := defaultViewport
	var queued []control.Event
	last, hasLast := c.ctrl.LastMove()

	note := func() {
		mv, ok := c.ctrl.LastMove()
		if ok && (!hasLast || mv != last) {
			res.Moves = append(res.Moves, mv)
			printMove(c.out, len(res.Moves), mv)
		}
		last, hasLast = mv, ok
	}

	// same as Tick(queued, vp), split so every move is seen before a
	// restart can wipe it
	tick := func() error {
		game := c.ctrl.Game()
		wasOver := game.State() == base.GameOver
		for _, ev := range queued {
			c.ctrl.HandleEvent(ev, vp)
			note()
		}
		queued = queued[:0]
		f, err := c.ctrl.Tick(nil, vp)
		if err != nil {
			return err
		}
		res.Frames++
		if f.Cursor != control.CursorUnchanged {
			c.logger.Debugf("cursor %v", f.Cursor)
		}
		switch {
		case game != c.ctrl.Game():
			res.GameOver++
			fmt.Fprintf(c.out, "game over%s, new game\n", outcomeOf(game))
			last, hasLast = control.Move{}, false
		case c.policy == control.PolicyFreeze && !wasOver && game.State() == base.GameOver:
			res.GameOver++
			fmt.Fprintf(c.out, "game over%s, board frozen\n", outcomeOf(game))
		}
		return nil
	}

	for _, st := range steps {
		switch st.Kind {
		case StepSize:
			vp = st.Size()
		case StepPress:
			queued = append(queued, control.Event{Kind: control.Press, Pos: st.Pos()})
		case StepRelease:
			queued = append(queued, control.Event{Kind: control.Release, Pos: st.Pos()})
		case StepTick:
			if err := tick(); err != nil {
				return *res, fmt.Errorf("line %d: %w", st.Line, err)
			}
		}
	}
	if len(queued) > 0 || res.Frames == 0 {
		if err := tick(); err != nil {
			return *res, err
		}
	}

	var lastMove *control.Move
	if mv, ok := c.ctrl.LastMove(); ok {
		lastMove = &mv
	}
	fmt.Fprintln(c.out)
	PrintBoard(c.out, c.ctrl.Game(), lastMove)
	if f, ok := c.ctrl.Game().(engine.FENer); ok {
		fmt.Fprintf(c.out, "\nFEN %s\n", f.FEN())
	}
	return *res, nil
}

func outcomeOf(g engine.Game) string {
	if d, ok := g.(interface {
		Outcome() string
		Method() string
	}); ok {
		return fmt.Sprintf(" %s (%s)", d.Outcome(), d.Method())
	}
	return ""
}
