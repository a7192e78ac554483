package rrb

import "github.com/npillmayer/schuko/tracing"

// Sequence is the persistent façade described in spec §4.4: it owns one
// reference each to root and tail and exposes the operations of §6. Every
// method returns a new Sequence; the receiver remains valid and unchanged.
type Sequence[T any] struct {
	cfg   Config
	size  int
	shift int
	root  *node[T]
	tail  *node[T]
}

// Empty returns the canonical empty sequence for the given options. It
// panics if the options produce an invalid Config, the way
// regexp.MustCompile panics on a bad pattern — branching widths are
// almost always compile-time constants, not runtime input. New returns
// the same construction with the validation error surfaced instead.
func Empty[T any](opts ...Option) Sequence[T] {
	s, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// New returns the canonical empty sequence for the given options, or
// ErrInvalidConfig if the resulting Config fails validation.
func New[T any](opts ...Option) (Sequence[T], error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return Sequence[T]{}, err
	}
	return empty[T](cfg), nil
}

func empty[T any](cfg Config) Sequence[T] {
	return Sequence[T]{
		cfg:   cfg,
		size:  0,
		shift: int(cfg.BL),
		root:  newRegular[T](cfg, nil),
		tail:  newLeaf[T](cfg, nil),
	}
}

// Len reports the total element count.
func (s Sequence[T]) Len() int { return s.size }

// tailOffset is the body size: size - tail_size.
func (s Sequence[T]) tailOffset() int {
	if s.root.isRelaxed() {
		return s.root.lastChildSize()
	}
	if s.size == 0 {
		return 0
	}
	return (s.size - 1) &^ s.cfg.leafMask()
}

// Get returns the element at i, failing with ErrOutOfRange when i is not
// smaller than Len().
func (s Sequence[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, outOfRangef("get: index %d out of range [0,%d)", i, s.size)
	}
	off := s.tailOffset()
	if i >= off {
		return s.tail.values[i-off], nil
	}
	return get(s.cfg, s.root, s.shift, i), nil
}

// ChunkAt returns the raw leaf chunk holding index i together with the
// chunk's base index in the body, letting a caller resume sequential
// access from an arbitrary position without walking the tree one element
// at a time (spec §4.3.1's array_for). The returned slice must not be
// mutated; it aliases the tree's own leaf storage.
func (s Sequence[T]) ChunkAt(i int) (values []T, base int, err error) {
	if i < 0 || i >= s.size {
		return nil, 0, outOfRangef("chunk_at: index %d out of range [0,%d)", i, s.size)
	}
	off := s.tailOffset()
	if i >= off {
		return s.tail.values, off, nil
	}
	leaf, base := arrayFor(s.cfg, s.root, s.shift, i)
	return leaf.values, base, nil
}

// PushBack appends v, returning a new sequence (spec §4.3.2).
func (s Sequence[T]) PushBack(v T) (Sequence[T], error) {
	newRoot, newShift, newTail, err := pushBack(s.cfg, s.root, s.shift, s.tailOffset(), s.tail, v)
	if err != nil {
		return Sequence[T]{}, err
	}
	tracer().Debugf("rrb: push_back -> size=%d", s.size+1)
	return Sequence[T]{cfg: s.cfg, size: s.size + 1, shift: newShift, root: newRoot, tail: newTail}, nil
}

// PushFront prepends v. immer's rrbtree keeps no symmetric head buffer;
// matching that, this is expressed as a concat of a singleton sequence
// in front of s (spec §4 supplement) rather than a bespoke tail-less path.
func (s Sequence[T]) PushFront(v T) (Sequence[T], error) {
	single := empty[T](s.cfg)
	single, err := single.PushBack(v)
	if err != nil {
		return Sequence[T]{}, err
	}
	return single.Concat(s)
}

// Update applies f to the element at i and returns a new sequence. f's
// error, if any, is wrapped as ErrUserCallback.
func (s Sequence[T]) Update(i int, f func(T) (T, error)) (Sequence[T], error) {
	if i < 0 || i >= s.size {
		return Sequence[T]{}, outOfRangef("update: index %d out of range [0,%d)", i, s.size)
	}
	off := s.tailOffset()
	if i >= off {
		newTail, err := updateTail(s.cfg, s.tail, i-off, f)
		if err != nil {
			return Sequence[T]{}, err
		}
		s.root.refs.inc()
		return Sequence[T]{cfg: s.cfg, size: s.size, shift: s.shift, root: s.root, tail: newTail}, nil
	}
	newRoot, err := updateBody(s.cfg, s.root, s.shift, i, f)
	if err != nil {
		return Sequence[T]{}, err
	}
	s.tail.refs.inc()
	return Sequence[T]{cfg: s.cfg, size: s.size, shift: s.shift, root: newRoot, tail: s.tail}, nil
}

// Assoc replaces the element at i with v.
func (s Sequence[T]) Assoc(i int, v T) (Sequence[T], error) {
	return s.Update(i, func(T) (T, error) { return v, nil })
}

// Take returns the prefix of length min(n, Len()).
func (s Sequence[T]) Take(n int) (Sequence[T], error) {
	if n <= 0 {
		return empty[T](s.cfg), nil
	}
	if n >= s.size {
		return s, nil
	}
	off := s.tailOffset()
	if n > off {
		local := n - off - 1
		if err := checkAlloc(s.cfg, local+1); err != nil {
			return Sequence[T]{}, err
		}
		values := make([]T, local+1)
		copy(values, s.tail.values[:local+1])
		s.root.refs.inc()
		return Sequence[T]{cfg: s.cfg, size: n, shift: s.shift, root: s.root, tail: newLeaf(s.cfg, values)}, nil
	}
	body, newTail, err := sliceRightBody(s.cfg, s.root, s.shift, n-1)
	if err != nil {
		return Sequence[T]{}, err
	}
	if body == nil {
		return Sequence[T]{cfg: s.cfg, size: n, shift: int(s.cfg.BL), root: newRegular[T](s.cfg, nil), tail: newTail}, nil
	}
	newRoot, newShift := normalizeRoot(s.cfg, body, s.shift)
	return Sequence[T]{cfg: s.cfg, size: n, shift: newShift, root: newRoot, tail: newTail}, nil
}

// Drop returns the suffix after dropping min(n, Len()) elements.
func (s Sequence[T]) Drop(n int) (Sequence[T], error) {
	if n <= 0 {
		return s, nil
	}
	if n >= s.size {
		return empty[T](s.cfg), nil
	}
	off := s.tailOffset()
	if n >= off {
		local := n - off
		if err := checkAlloc(s.cfg, s.tail.count()-local); err != nil {
			return Sequence[T]{}, err
		}
		values := make([]T, s.tail.count()-local)
		copy(values, s.tail.values[local:])
		return Sequence[T]{cfg: s.cfg, size: s.size - n, shift: int(s.cfg.BL), root: newRegular[T](s.cfg, nil), tail: newLeaf(s.cfg, values)}, nil
	}
	body, err := sliceLeftBody(s.cfg, s.root, s.shift, n)
	if err != nil {
		return Sequence[T]{}, err
	}
	newRoot, newShift := normalizeRoot(s.cfg, body, s.shift)
	s.tail.refs.inc()
	return Sequence[T]{cfg: s.cfg, size: s.size - n, shift: newShift, root: newRoot, tail: s.tail}, nil
}

// Concat concatenates s and other (spec §4.3.6).
func (s Sequence[T]) Concat(other Sequence[T]) (Sequence[T], error) {
	if s.size == 0 {
		other.root.refs.inc()
		other.tail.refs.inc()
		return other, nil
	}
	if other.size == 0 {
		s.root.refs.inc()
		s.tail.refs.inc()
		return s, nil
	}
	return concatSequences(s, other)
}

// ForEachChunk invokes fn(values) for every leaf range in order, stopping
// early when fn returns false (spec §4.3.7, preserving immer's for_each_chunk
// short-circuit per the supplemented-features note).
func (s Sequence[T]) ForEachChunk(fn func(values []T) bool) {
	if s.size == 0 {
		return
	}
	if !eachChunk(s.root, fn) {
		return
	}
	fn(s.tail.values)
}

func eachChunk[T any](n *node[T], fn func([]T) bool) bool {
	if n.isLeaf() {
		return fn(n.values)
	}
	for _, c := range n.children {
		if !eachChunk(c, fn) {
			return false
		}
	}
	return true
}

func tracer() tracing.Trace {
	return gtraceTracer()
}
