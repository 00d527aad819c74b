package gcache

import "testing"

type sizeKey struct{ w, h int }

func TestSizedRebuildsOnNewKey(t *testing.T) {
	t.Parallel()
	var built, freed []sizeKey
	c := NewSized(func(k sizeKey) sizeKey {
		built = append(built, k)
		return k
	}, func(v sizeKey) {
		freed = append(freed, v)
	})

	steps := []struct {
		key        sizeKey
		wantBuilds int
		wantFrees  int
	}{
		{sizeKey{800, 800}, 1, 0},
		{sizeKey{800, 800}, 1, 0},
		{sizeKey{600, 600}, 2, 1},
		{sizeKey{600, 600}, 2, 1},
		{sizeKey{800, 800}, 3, 2},
	}
	for i, st := range steps {
		if got := c.Get(st.key); got != st.key {
			t.Fatalf("step %d: Get(%v) = %v", i, st.key, got)
		}
		if len(built) != st.wantBuilds || len(freed) != st.wantFrees {
			t.Fatalf("step %d: %d builds %d frees, want %d and %d", i, len(built), len(freed), st.wantBuilds, st.wantFrees)
		}
	}
	if freed[0] != (sizeKey{800, 800}) || freed[1] != (sizeKey{600, 600}) {
		t.Errorf("freed %v, want the replaced values in order", freed)
	}
}

func TestSizedRelease(t *testing.T) {
	t.Parallel()
	frees := 0
	c := NewSized(func(k int) int { return k * 2 }, func(int) { frees++ })
	c.Release()
	if frees != 0 {
		t.Fatalf("release of an empty cache freed %d values", frees)
	}
	c.Get(3)
	c.Release()
	c.Release()
	if frees != 1 {
		t.Errorf("frees = %d, want 1", frees)
	}
	if got := c.Get(3); got != 6 {
		t.Errorf("Get after release = %d, want 6", got)
	}
}

func TestSizedNilFree(t *testing.T) {
	t.Parallel()
	c := NewSized(func(k string) string { return k + "!" }, nil)
	c.Get("a")
	if got := c.Get("b"); got != "b!" {
		t.Errorf("Get = %q", got)
	}
}
