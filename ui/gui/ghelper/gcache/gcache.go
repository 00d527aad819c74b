package gcache

// Sized holds one value built for a key, usually a size. A new key releases
// the old value before building the next one.
type Sized[K comparable, V any] struct {
	key   K
	val   V
	ok    bool
	build func(K) V
	free  func(V)
}

func NewSized[K comparable, V any](build func(K) V, free func(V)) *Sized[K, V] {
	return &Sized[K, V]{build: build, free: free}
}

// Get returns the value for key, rebuilding it when key changed.
func (s *Sized[K, V]) Get(key K) V {
	if s.ok && s.key == key {
		return s.val
	}
	s.Release()
	s.key, s.val, s.ok = key, s.build(key), true
	return s.val
}

// Release frees the held value, if any.
func (s *Sized[K, V]) Release() {
	if !s.ok {
		return
	}
	if s.free != nil {
		s.free(s.val)
	}
	var zero V
	s.val, s.ok = zero, false
}
