package control

import "candyboard/src/base"

type Layer uint8

const (
	LayerBoard Layer = iota
	LayerMarkers
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerBoard:
		return "board"
	case LayerMarkers:
		return "markers"
	default:
		return "unknown"
	}
}

type layerRecord struct {
	dirty bool
	size  base.Size
}

// Tracker decides once per frame which cached layer must be rebuilt.
type Tracker struct {
	layers [layerCount]layerRecord
}

// NewTracker starts with every layer dirty so the first frame draws everything.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.MarkAll()
	return t
}

func (t *Tracker) Mark(l Layer) {
	t.layers[l].dirty = true
}

func (t *Tracker) MarkAll() {
	for i := range t.layers {
		t.layers[i].dirty = true
	}
}

func (t *Tracker) Dirty(l Layer) bool {
	return t.layers[l].dirty
}

func (t *Tracker) ShouldRebuild(l Layer, size base.Size) bool {
	rec := t.layers[l]
	return rec.dirty || rec.size != size
}

func (t *Tracker) Rebuilt(l Layer, size base.Size) {
	t.layers[l] = layerRecord{dirty: false, size: size}
}

func (t *Tracker) Apply(eff Effects) {
	if eff.DirtyBoard {
		t.Mark(LayerBoard)
	}
	if eff.DirtyMarkers {
		t.Mark(LayerMarkers)
	}
}
