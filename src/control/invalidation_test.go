package control

import (
	"candyboard/src/base"
	"testing"
)

func TestTrackerStartsDirty(t *testing.T) {
	t.Parallel()
	tr := NewTracker()
	for _, l := range []Layer{LayerBoard, LayerMarkers} {
		if !tr.Dirty(l) || !tr.ShouldRebuild(l, square800) {
			t.Errorf("%v layer not due on the first frame", l)
		}
	}
}

func TestTrackerRebuilt(t *testing.T) {
	t.Parallel()
	tr := NewTracker()
	tr.Rebuilt(LayerBoard, square800)
	tr.Rebuilt(LayerMarkers, square800)
	for _, l := range []Layer{LayerBoard, LayerMarkers} {
		if tr.ShouldRebuild(l, square800) {
			t.Errorf("%v layer due right after a rebuild", l)
		}
	}

	tr.Mark(LayerMarkers)
	if tr.ShouldRebuild(LayerBoard, square800) {
		t.Errorf("marking markers invalidated the board")
	}
	if !tr.ShouldRebuild(LayerMarkers, square800) {
		t.Errorf("marked layer not due")
	}
}

func TestTrackerResize(t *testing.T) {
	t.Parallel()
	tr := NewTracker()
	tr.Rebuilt(LayerBoard, square800)
	tr.Rebuilt(LayerMarkers, square800)

	wider := base.Size{W: 1000, H: 800}
	for _, l := range []Layer{LayerBoard, LayerMarkers} {
		if tr.Dirty(l) {
			t.Errorf("%v flag set by a size change", l)
		}
		if !tr.ShouldRebuild(l, wider) {
			t.Errorf("%v layer not due after resize", l)
		}
	}
	tr.Rebuilt(LayerBoard, wider)
	if tr.ShouldRebuild(LayerBoard, wider) {
		t.Errorf("board due after rebuild at the new size")
	}
	if !tr.ShouldRebuild(LayerMarkers, wider) {
		t.Errorf("markers lost their pending resize")
	}
}

func TestTrackerApply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                string
		eff                 Effects
		wantBoard, wantMark bool
	}{
		{"nothing", Effects{}, false, false},
		{"selection", Effects{DirtyMarkers: true}, false, true},
		{"move", Effects{DirtyBoard: true, DirtyMarkers: true}, true, true},
	}
	for _, tt := range tests {
		tr := NewTracker()
		tr.Rebuilt(LayerBoard, square800)
		tr.Rebuilt(LayerMarkers, square800)
		tr.Apply(tt.eff)
		if tr.Dirty(LayerBoard) != tt.wantBoard || tr.Dirty(LayerMarkers) != tt.wantMark {
			t.Errorf("%s: dirty = %v/%v, want %v/%v", tt.name,
				tr.Dirty(LayerBoard), tr.Dirty(LayerMarkers), tt.wantBoard, tt.wantMark)
		}
	}
}
