package rrb

import "sync/atomic"

// refCounter is the bookkeeping primitive behind every node's refs field.
// It exists to decide canMutate (single-owner detection under a
// transient), not to reclaim memory: Go's garbage collector owns that.
// inc/dec still carry the spec's signatures so the structural-sharing
// discipline is exercised end to end.
type refCounter interface {
	inc()
	// dec reports whether this was the last reference.
	dec() bool
	count() int32
}

type nonAtomicRefs struct{ n int32 }

func newNonAtomicRefs() *nonAtomicRefs { return &nonAtomicRefs{n: 1} }

func (r *nonAtomicRefs) inc()        { r.n++ }
func (r *nonAtomicRefs) dec() bool   { r.n--; return r.n == 0 }
func (r *nonAtomicRefs) count() int32 { return r.n }

type atomicRefs struct{ n int32 }

func newAtomicRefs() *atomicRefs { return &atomicRefs{n: 1} }

func (r *atomicRefs) inc()        { atomic.AddInt32(&r.n, 1) }
func (r *atomicRefs) dec() bool   { return atomic.AddInt32(&r.n, -1) == 0 }
func (r *atomicRefs) count() int32 { return atomic.LoadInt32(&r.n) }
