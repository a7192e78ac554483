package rrb

// Allocator is the heap policy consulted before every structural operation
// commits to building a new node. The default allocator never fails; tests
// substitute a FaultingAllocator to exercise the strong exception-safety
// guarantee described in spec §8.6.
type Allocator interface {
	// Alloc is called once per prospective node allocation with a size
	// hint (the child or value count the node would hold). A non-nil
	// error aborts the operation before any existing node is touched.
	Alloc(hint int) error
}

type defaultAllocator struct{}

func (defaultAllocator) Alloc(int) error { return nil }

// FaultingAllocator fails deterministically every `every`-th call, cycling
// a counter across the lifetime of the allocator. Used by the fault
// injection property tests (spec §8.6, scenario s6).
type FaultingAllocator struct {
	every int
	calls int
}

// NewFaultingAllocator returns an allocator that fails on every `every`-th
// Alloc call. A non-positive `every` disables faulting.
func NewFaultingAllocator(every int) *FaultingAllocator {
	return &FaultingAllocator{every: every}
}

// Calls reports how many times Alloc has been invoked so far.
func (f *FaultingAllocator) Calls() int { return f.calls }

func (f *FaultingAllocator) Alloc(hint int) error {
	f.calls++
	if f.every <= 0 {
		return nil
	}
	if f.calls%f.every == 0 {
		return allocationf("faulting allocator: simulated failure on call %d (hint=%d)", f.calls, hint)
	}
	return nil
}
