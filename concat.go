package rrb

// concatSequences implements spec §4.3.6 at the façade level: it flushes
// the left tail into the left tree (a tail-only left tree becomes a
// single-leaf body), then concatenates the two bodies, keeping the right
// tail as the final tail of the result. A tail-only right sequence is
// instead appended to a value by value with PushBack.
func concatSequences[T any](a, b Sequence[T]) (Sequence[T], error) {
	if b.tailOffset() == 0 {
		out := a
		for _, v := range b.tail.values {
			var err error
			if out, err = out.PushBack(v); err != nil {
				return Sequence[T]{}, err
			}
		}
		return out, nil
	}
	cfg := a.cfg
	lroot, lshift := a.root, a.shift
	lsize := a.tailOffset()

	if a.tail.count() > 0 {
		if err := checkAlloc(cfg, 1); err != nil {
			return Sequence[T]{}, err
		}
		fullLeftTail := copyLeaf(cfg, a.tail)
		var err error
		lroot, lshift, err = installTail(cfg, lroot, lshift, lsize, fullLeftTail)
		if err != nil {
			return Sequence[T]{}, err
		}
	} else {
		lroot.refs.inc()
	}

	rroot, rshift := b.root, b.shift
	b.tail.refs.inc()

	mergedRoot, mergedShift, err := concatTrees(cfg, lroot, lshift, rroot, rshift)
	if err != nil {
		return Sequence[T]{}, err
	}
	return Sequence[T]{cfg: cfg, size: a.size + b.size, shift: mergedShift, root: mergedRoot, tail: b.tail}, nil
}

// concatTrees merges two bodies at their own shifts into a single body,
// growing the result shift by one level only when the rebalance plan
// still needs more than one node at the merged shift (spec §4.3.6 step 5,
// "realize the concat-center").
func concatTrees[T any](cfg Config, l *node[T], lshift int, r *node[T], rshift int) (*node[T], int, error) {
	nodes, mergedShift, err := mergeBoundary(cfg, l, lshift, r, rshift)
	if err != nil {
		return nil, 0, err
	}
	if len(nodes) == 1 {
		return nodes[0], mergedShift, nil
	}
	if err := checkAlloc(cfg, len(nodes)); err != nil {
		return nil, 0, err
	}
	sizes := make([]int, len(nodes))
	cum := 0
	for i, nd := range nodes {
		cum += elementCount(cfg, nd, mergedShift)
		sizes[i] = cum
	}
	return newRelaxed(cfg, nodes, sizes), mergedShift + int(cfg.B), nil
}

// mergeBoundary implements spec §4.3.6 steps 2-4 (concat inners,
// rebalance plan, merge step) as one recursive descent: it equalizes
// height by walking into the taller side's boundary child, forms the
// concat-center once heights match, and rebalances outward one level at
// a time. It returns the rebalanced sibling list (1 or 2 nodes — the
// concat-center) at the shift matching max(lshift, rshift).
func mergeBoundary[T any](cfg Config, l *node[T], lshift int, r *node[T], rshift int) ([]*node[T], int, error) {
	switch {
	case lshift > rshift:
		last := l.count() - 1
		merged, mergedShift, err := mergeBoundary(cfg, l.children[last], lshift-int(cfg.B), r, rshift)
		if err != nil {
			return nil, 0, err
		}
		combined := append(adoptAll(l.children[:last]), merged...)
		out, err := rebalanceChildren(cfg, combined, mergedShift+int(cfg.B))
		return out, mergedShift + int(cfg.B), err

	case lshift < rshift:
		merged, mergedShift, err := mergeBoundary(cfg, l, lshift, r.children[0], rshift-int(cfg.B))
		if err != nil {
			return nil, 0, err
		}
		combined := append(append([]*node[T]{}, merged...), adoptAll(r.children[1:])...)
		out, err := rebalanceChildren(cfg, combined, mergedShift+int(cfg.B))
		return out, mergedShift + int(cfg.B), err

	case lshift == int(cfg.BL):
		lastLeaf := l.count() - 1
		boundary, err := rebalanceLeaves(cfg, l.children[lastLeaf], r.children[0])
		if err != nil {
			return nil, 0, err
		}
		combined := append(adoptAll(l.children[:lastLeaf]), boundary...)
		combined = append(combined, adoptAll(r.children[1:])...)
		out, err := rebalanceChildren(cfg, combined, lshift)
		return out, lshift, err

	default:
		last := l.count() - 1
		merged, mergedShift, err := mergeBoundary(cfg, l.children[last], lshift-int(cfg.B), r.children[0], rshift-int(cfg.B))
		if err != nil {
			return nil, 0, err
		}
		combined := append(adoptAll(l.children[:last]), merged...)
		combined = append(combined, adoptAll(r.children[1:])...)
		out, err := rebalanceChildren(cfg, combined, mergedShift+int(cfg.B))
		return out, mergedShift + int(cfg.B), err
	}
}

// rebalanceLeaves merges the two boundary leaves' raw values and repacks
// them into 1 or 2 fresh leaves (spec §4.3.6 step 4, leaf merge).
func rebalanceLeaves[T any](cfg Config, left, right *node[T]) ([]*node[T], error) {
	total := len(left.values) + len(right.values)
	leaf := cfg.leafFactor()
	numGroups := (total-1)/leaf + 1
	if err := checkAlloc(cfg, numGroups); err != nil {
		return nil, err
	}
	all := make([]T, 0, total)
	all = append(all, left.values...)
	all = append(all, right.values...)
	groupSizes := packCounts(total, leaf, numGroups)
	out := make([]*node[T], 0, numGroups)
	idx := 0
	for _, g := range groupSizes {
		values := make([]T, g)
		copy(values, all[idx:idx+g])
		idx += g
		out = append(out, newLeaf(cfg, values))
	}
	return out, nil
}

// rebalanceChildren packs a flat list of same-shift children into fresh
// parent nodes at parentShift, each holding up to branchFactor children
// (spec §4.3.6 steps 3-4: the plan caps group count at
// optimal = ceil(total/branch), and the merge step builds the parents).
func rebalanceChildren[T any](cfg Config, children []*node[T], parentShift int) ([]*node[T], error) {
	total := len(children)
	branch := cfg.branchFactor()
	numGroups := (total-1)/branch + 1
	if err := checkAlloc(cfg, numGroups); err != nil {
		return nil, err
	}
	groupSizes := packCounts(total, branch, numGroups)
	out := make([]*node[T], 0, numGroups)
	idx := 0
	childShift := parentShift - int(cfg.B)
	fullSize := cfg.leafFactor()
	if parentShift != int(cfg.BL) {
		fullSize = childCapacity(cfg, parentShift)
	}
	for _, g := range groupSizes {
		group := children[idx : idx+g]
		sizes := make([]int, g)
		cum := 0
		for j, c := range group {
			var sz int
			if parentShift == int(cfg.BL) {
				sz = c.count()
			} else {
				sz = elementCount(cfg, c, childShift)
			}
			cum += sz
			sizes[j] = cum
		}
		idx += g
		if isFullyPacked(sizes, fullSize) {
			out = append(out, newRegular(cfg, group))
		} else {
			out = append(out, newRelaxed(cfg, group, sizes))
		}
	}
	return out, nil
}

// isFullyPacked reports whether every entry, the last included, is exactly
// fullSize apart, the condition for a node to remain (or become) regular:
// tailOffset and pushTail treat a regular root's body as completely full
// leaves.
func isFullyPacked(sizes []int, fullSize int) bool {
	prev := 0
	for i := 0; i < len(sizes); i++ {
		if sizes[i]-prev != fullSize {
			return false
		}
		prev = sizes[i]
	}
	return true
}

// packCounts distributes total items into numGroups groups of at most
// capacity each, filling every group but the last to capacity.
func packCounts(total, capacity, numGroups int) []int {
	groups := make([]int, numGroups)
	remaining := total
	for i := 0; i < numGroups; i++ {
		if i == numGroups-1 {
			groups[i] = remaining
		} else {
			groups[i] = capacity
			remaining -= capacity
		}
	}
	return groups
}
