package rrb

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Config holds the tunable parameters of an RRB-tree: the branching widths
// of inner nodes and leaves, the refcount policy, and the heap policy
// consulted by every node factory.
type Config struct {
	// B is the inner-node branching width in bits; fan-out is 1<<B.
	B uint8
	// BL is the leaf branching width in bits; fan-out is 1<<BL.
	BL uint8
	// Atomic selects an atomic refcount when persistent values may cross
	// goroutines; non-atomic is cheaper for single-goroutine use.
	Atomic bool
	// Alloc is consulted by every structural operation before it commits to
	// building a new node, so that allocation failure can be simulated.
	Alloc Allocator
}

// DefaultConfig is the configuration Empty uses absent any Option: B=5,
// BL=5 (the widths immer itself defaults to), non-atomic refcounts, and
// the default allocator.
func DefaultConfig() Config {
	return Config{B: 5, BL: 5, Atomic: false, Alloc: defaultAllocator{}}
}

func bitsFanout[U constraints.Unsigned](bits U) int {
	return 1 << bits
}

func (c Config) validate() error {
	if c.B == 0 || c.B > 16 {
		return errors.Wrapf(ErrInvalidConfig, "inner branching bits out of range: %d", c.B)
	}
	if c.BL == 0 || c.BL > 16 {
		return errors.Wrapf(ErrInvalidConfig, "leaf branching bits out of range: %d", c.BL)
	}
	return nil
}

func (c Config) normalized() Config {
	if c.Alloc == nil {
		c.Alloc = defaultAllocator{}
	}
	return c
}

func (c Config) branchFactor() int { return bitsFanout(c.B) }
func (c Config) leafFactor() int   { return bitsFanout(c.BL) }

func (c Config) branchMask() int { return c.branchFactor() - 1 }
func (c Config) leafMask() int   { return c.leafFactor() - 1 }

func (c Config) newRefCounter() refCounter {
	if c.Atomic {
		return newAtomicRefs()
	}
	return newNonAtomicRefs()
}

// Option mutates a Config before it is normalized and validated by Empty.
type Option func(*Config)

// WithBranching sets the inner and leaf branching widths, in bits.
func WithBranching(b, bl uint8) Option {
	return func(c *Config) { c.B, c.BL = b, bl }
}

// WithAtomicRefcount selects an atomic or non-atomic refcount primitive.
func WithAtomicRefcount(atomic bool) Option {
	return func(c *Config) { c.Atomic = atomic }
}

// WithAllocator overrides the heap policy, e.g. with a FaultingAllocator
// for exception-safety testing.
func WithAllocator(a Allocator) Option {
	return func(c *Config) { c.Alloc = a }
}
