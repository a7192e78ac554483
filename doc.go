/*
Package rrb implements a relaxed radix-balanced tree (RRB-tree): an
immutable, persistent, random-access sequence with structural sharing.

An RRB-tree behaves like a persistent vector: Get, PushBack, PushFront and
Update run in effectively O(log n) time (logarithmic in the branching
factor's base, which in practice bounds the tree height to a small
constant for any realistic size), and every mutating-looking operation
returns a new Sequence while leaving the receiver untouched. What sets it
apart from a plain bit-partitioned trie (as used by Clojure's
PersistentVector, or immer's flex_vector without relaxation) is that
inner nodes may carry an explicit cumulative size table instead of
relying on every child but the last being completely full. That
relaxation is what makes Take, Drop and Concat genuinely sub-linear:
slicing or concatenating two trees never touches every element, only the
nodes along the affected spine, and the nodes at a concatenation
boundary are repacked so that they stay densely filled.

A Transient provides an isolated, single-owner mutation session (after
Clojure's transients and immer's transient<T>): operations performed
through an edit token mutate nodes in place when it is safe to do so (the
node was created within the same session and has no other owner) and
fall back to an ordinary path-copy otherwise, without ever corrupting a
Sequence still reachable from elsewhere.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rrb

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer, following the package's own logging
// conventions.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func gtraceTracer() tracing.Trace {
	return gtrace.CoreTracer
}
