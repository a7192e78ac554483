package rrb

import "github.com/cockroachdb/errors"

// Sentinel errors surfaced by the façade and transient operations. Callers
// classify with errors.Is; internal call sites wrap with errors.Wrapf for a
// stack-trace-capable message.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("rrb: invalid configuration")
	// ErrOutOfRange is returned by Get, ChunkAt, Update and Assoc (and the
	// transient UpdateMut/AssocMut) when an index falls outside the
	// sequence. Take and Drop clamp their count and never return it.
	ErrOutOfRange = errors.New("rrb: index out of range")
	// ErrAllocation is returned when the configured Allocator reports a
	// simulated or real allocation failure while building a new node.
	ErrAllocation = errors.New("rrb: node allocation failed")
	// ErrUserCallback is returned when the function passed to Update fails.
	ErrUserCallback = errors.New("rrb: update callback failed")
)

func outOfRangef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}

func allocationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrAllocation, format, args...)
}

func userCallbackf(cause error) error {
	return errors.WithSecondaryError(errors.Wrap(ErrUserCallback, "update callback returned an error"), cause)
}

func checkAlloc(cfg Config, hint int) error {
	if err := cfg.Alloc.Alloc(hint); err != nil {
		return allocationf("failed to allocate node for %d element(s): %v", hint, err)
	}
	return nil
}
