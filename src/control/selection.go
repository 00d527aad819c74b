package control

import (
	"candyboard/src/base"
	"candyboard/src/engine"
)

// Selection is either empty or holds the square of the picked-up piece.
type Selection struct {
	square   base.Square
	selected bool
}

func Selected(sq base.Square) Selection {
	return Selection{square: sq, selected: true}
}

func (s Selection) Square() (base.Square, bool) {
	return s.square, s.selected
}

func (s Selection) IsSelected() bool {
	return s.selected
}

func (s Selection) String() string {
	if !s.selected {
		return "none"
	}
	return s.square.String()
}

type EventKind uint8

const (
	Press EventKind = iota
	Release
)

func (k EventKind) String() string {
	if k == Release {
		return "release"
	}
	return "press"
}

// Event is a pointer button transition at a window position.
type Event struct {
	Kind EventKind
	Pos  base.Point
}

type CursorHint uint8

const (
	CursorUnchanged CursorHint = iota
	CursorDefault
	CursorGrab
)

type Move struct {
	From base.Square
	To   base.Square
}

// MoveAttempt is a legal move the controller must apply to the game.
// Promotion is base.NoPieceType unless a pawn reaches the back rank.
type MoveAttempt struct {
	Move
	Promotion base.PieceType
}

// Effects lists what a transition asks the owner of the state to do.
type Effects struct {
	Move          *MoveAttempt
	PromotionMiss bool
	DirtyBoard    bool
	DirtyMarkers  bool
	Cursor        CursorHint
}

// Transition is the selection state machine. It reads the game but never
// changes it; moves come back as Effects.Move.
//
//	Idle      + Press   -> Selected(s) if s is occupied, else Idle
//	Selected  + Press   -> move if legal, else as from Idle (markers always dirty)
//	Selected  + Release -> move if legal, else unchanged
//	Idle      + Release -> Idle
func Transition(sel Selection, ev Event, vp base.Size, r engine.Reader) (Selection, Effects) {
	var eff Effects
	if !IsOverBoard(ev.Pos, vp) || r.State() == base.GameOver {
		return sel, eff
	}
	to := ToSquare(ev.Pos, vp)
	from, selected := sel.Square()

	switch ev.Kind {
	case Press:
		eff.Cursor = CursorGrab
		if !selected {
			next := pick(to, r)
			eff.DirtyMarkers = next.selected
			return next, eff
		}
		eff.DirtyMarkers = true
		if r.LegalMoves(from).Contains(to) {
			return attempt(sel, from, to, ev.Pos, vp, r, eff)
		}
		return pick(to, r), eff
	case Release:
		eff.Cursor = CursorDefault
		if selected && r.LegalMoves(from).Contains(to) {
			return attempt(sel, from, to, ev.Pos, vp, r, eff)
		}
	}
	return sel, eff
}

func pick(sq base.Square, r engine.Reader) Selection {
	if _, ok := r.PieceAt(sq); ok {
		return Selected(sq)
	}
	return Selection{}
}

func attempt(sel Selection, from, to base.Square, pos base.Point, vp base.Size, r engine.Reader, eff Effects) (Selection, Effects) {
	mv := &MoveAttempt{Move: Move{From: from, To: to}}
	if p, ok := r.PieceAt(from); ok && needsPromotion(p, to) {
		mv.Promotion = ResolvePromotion(to, ToQuaterSquare(pos, vp))
		if mv.Promotion == base.Pawn {
			eff.PromotionMiss = true
			return sel, eff
		}
	}
	eff.Move = mv
	eff.DirtyBoard = true
	eff.DirtyMarkers = true
	return Selection{}, eff
}
