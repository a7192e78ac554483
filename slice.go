package rrb

// sliceRightBody rebuilds the subtree rooted at n (own shift `shift`) to
// keep local indices [0, last], peeling the rightmost kept leaf off as
// the new tail (spec §4.3.4). It never collapses height in-line; the
// caller normalizes afterward, matching the teacher's normalizeRoot
// pattern in btree/tree.go rather than immer's in-recursion collapse.
func sliceRightBody[T any](cfg Config, n *node[T], shift int, last int) (body *node[T], tail *node[T], err error) {
	k, childLast := locate(cfg, n, shift, last)

	if shift == int(cfg.BL) {
		leaf := n.children[k]
		if err := checkAlloc(cfg, childLast+1); err != nil {
			return nil, nil, err
		}
		values := make([]T, childLast+1)
		copy(values, leaf.values[:childLast+1])
		newTail := newLeaf(cfg, values)
		if k == 0 {
			return nil, newTail, nil
		}
		if err := checkAlloc(cfg, k); err != nil {
			return nil, nil, err
		}
		children := make([]*node[T], k)
		for i := 0; i < k; i++ {
			children[i] = n.children[i]
			children[i].refs.inc()
		}
		if n.isRelaxed() {
			return newRelaxed(cfg, children, cloneInts(n.sizes[:k])), newTail, nil
		}
		return newRegular(cfg, children), newTail, nil
	}

	subBody, newTail, err := sliceRightBody(cfg, n.children[k], shift-int(cfg.B), childLast)
	if err != nil {
		return nil, nil, err
	}
	if k == 0 && subBody == nil {
		return nil, newTail, nil
	}
	if err := checkAlloc(cfg, k+1); err != nil {
		return nil, nil, err
	}
	if subBody == nil {
		children := make([]*node[T], k)
		for i := 0; i < k; i++ {
			children[i] = n.children[i]
			children[i].refs.inc()
		}
		if n.isRelaxed() {
			return newRelaxed(cfg, children, cloneInts(n.sizes[:k])), newTail, nil
		}
		return newRegular(cfg, children), newTail, nil
	}
	children := make([]*node[T], k+1)
	for i := 0; i < k; i++ {
		children[i] = n.children[i]
		children[i].refs.inc()
	}
	children[k] = subBody
	if n.isRelaxed() {
		// The kept part of child k holds childLast+1 elements, minus the
		// ones peeled off into newTail.
		prefix := 0
		if k > 0 {
			prefix = n.sizes[k-1]
		}
		sizes := append(cloneInts(n.sizes[:k]), prefix+childLast+1-newTail.count())
		return newRelaxed(cfg, children, sizes), newTail, nil
	}
	return newRegular(cfg, children), newTail, nil
}

// sliceLeftBody rebuilds the subtree rooted at n to drop local indices
// [0, first), producing a relaxed node along the whole spine (spec
// §4.3.5): the leftmost kept child is always partial.
func sliceLeftBody[T any](cfg Config, n *node[T], shift int, first int) (*node[T], error) {
	k, childFirst := locate(cfg, n, shift, first)

	if shift == int(cfg.BL) {
		oldLeaf := n.children[k]
		if err := checkAlloc(cfg, oldLeaf.count()-childFirst); err != nil {
			return nil, err
		}
		values := make([]T, oldLeaf.count()-childFirst)
		copy(values, oldLeaf.values[childFirst:])
		partial := newLeaf(cfg, values)

		remaining := n.count() - k
		if err := checkAlloc(cfg, remaining); err != nil {
			return nil, err
		}
		children := make([]*node[T], remaining)
		children[0] = partial
		for i := k + 1; i < n.count(); i++ {
			children[i-k] = n.children[i]
			children[i-k].refs.inc()
		}
		sizes := make([]int, remaining)
		sizes[0] = len(values)
		for i := 1; i < remaining; i++ {
			sizes[i] = sizes[i-1] + leafChildSize(cfg, n, k+i)
		}
		return newRelaxed(cfg, children, sizes), nil
	}

	newChild, err := sliceLeftBody(cfg, n.children[k], shift-int(cfg.B), childFirst)
	if err != nil {
		return nil, err
	}
	if err := checkAlloc(cfg, n.count()-k); err != nil {
		return nil, err
	}
	remaining := n.count() - k
	children := make([]*node[T], remaining)
	children[0] = newChild
	for i := k + 1; i < n.count(); i++ {
		children[i-k] = n.children[i]
		children[i-k].refs.inc()
	}
	sizes := make([]int, remaining)
	sizes[0] = childElementCount(cfg, n, shift, k) - childFirst
	for i := 1; i < remaining; i++ {
		sizes[i] = sizes[i-1] + childElementCount(cfg, n, shift, k+i)
	}
	return newRelaxed(cfg, children, sizes), nil
}

// locate finds the child index holding local index i under n (whose own
// shift is shift), and i's offset within that child.
func locate[T any](cfg Config, n *node[T], shift, i int) (k, local int) {
	if n.isRelaxed() {
		k = 0
		for n.sizes[k] <= i {
			k++
		}
		local = i
		if k > 0 {
			local -= n.sizes[k-1]
		}
		return k, local
	}
	if shift == int(cfg.BL) {
		k = (i >> shift) & cfg.branchMask()
		local = i - k*cfg.leafFactor()
		return k, local
	}
	k = (i >> shift) & cfg.branchMask()
	local = i - k*childCapacity(cfg, shift)
	return k, local
}

func leafChildSize[T any](cfg Config, n *node[T], k int) int {
	if n.isRelaxed() {
		return n.childSize(k)
	}
	return n.children[k].count()
}

// normalizeRoot strips single-child wrapper levels left behind by a
// slice operation, matching the teacher's normalizeRoot in btree/tree.go.
func normalizeRoot[T any](cfg Config, root *node[T], shift int) (*node[T], int) {
	for shift > int(cfg.BL) && root.count() == 1 {
		child := root.children[0]
		child.refs.inc()
		release(root)
		root = child
		shift -= int(cfg.B)
	}
	return root, shift
}
