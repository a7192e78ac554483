package rrb

// pushTail tries to install tail as the new rightmost leaf under the
// subtree rooted at n (whose own shift is shift), by descending the
// rightmost spine and only opening a fresh child slot once the current
// rightmost child is full at its level. It reports ok=false when n has
// no room left, signalling the caller to grow the root by one level.
func pushTail[T any](cfg Config, n *node[T], shift int, tail *node[T]) (out *node[T], ok bool) {
	branch := cfg.branchFactor()
	if shift == int(cfg.BL) {
		// n's children are leaves.
		if n.count() >= branch {
			return nil, false
		}
		children := adoptAll(n.children)
		children = append(children, tail)
		if n.isRelaxed() {
			sizes := append(cloneInts(n.sizes), n.lastChildSize()+len(tail.values))
			return newRelaxed(cfg, children, sizes), true
		}
		return newRegular(cfg, children), true
	}

	childShift := shift - int(cfg.B)
	last := n.count() - 1
	newLast, absorbed := pushTail(cfg, n.children[last], childShift, tail)
	if absorbed {
		children := adoptAll(n.children)
		release(children[last])
		children[last] = newLast
		if n.isRelaxed() {
			sizes := cloneInts(n.sizes)
			sizes[len(sizes)-1] += len(tail.values)
			return newRelaxed(cfg, children, sizes), true
		}
		return newRegular(cfg, children), true
	}

	if n.count() >= branch {
		return nil, false
	}
	fresh := makePath(cfg, childShift, tail)
	children := adoptAll(n.children)
	children = append(children, fresh)
	if n.isRelaxed() {
		sizes := append(cloneInts(n.sizes), n.lastChildSize()+len(tail.values))
		return newRelaxed(cfg, children, sizes), true
	}
	return newRegular(cfg, children), true
}

// installTail installs a full leaf as the new rightmost content of the
// body (root, shift, size), growing the root by one level when it has no
// room left (spec §4.3.2's push_tail, factored out so Concat can flush a
// tail into its tree the same way PushBack does).
func installTail[T any](cfg Config, root *node[T], shift int, size int, fullTail *node[T]) (*node[T], int, error) {
	if size == 0 {
		if err := checkAlloc(cfg, 1); err != nil {
			return nil, 0, err
		}
		return makePath(cfg, shift, fullTail), shift, nil
	}

	if err := checkAlloc(cfg, 1); err != nil {
		return nil, 0, err
	}
	newRoot, ok := pushTail(cfg, root, shift, fullTail)
	if ok {
		return newRoot, shift, nil
	}

	if err := checkAlloc(cfg, 2); err != nil {
		return nil, 0, err
	}
	path := makePath(cfg, shift, fullTail)
	newShift := shift + int(cfg.B)
	// root is an existing, still-referenced node; path is brand new, so
	// only root's refcount is incremented when the grown parent adopts it.
	root.refs.inc()
	if root.isRegular() && size == nodeCapacity(cfg, shift) {
		return newRegular(cfg, []*node[T]{root, path}), newShift, nil
	}
	grown := newRelaxed(cfg, []*node[T]{root, path}, []int{size, size + len(fullTail.values)})
	return grown, newShift, nil
}

// pushBack implements spec §4.3.2. It returns a new (root, shift, tail)
// triple with the value appended, or an error from the allocator.
func pushBack[T any](cfg Config, root *node[T], shift int, size int, tail *node[T], v T) (*node[T], int, *node[T], error) {
	if tail.count() < cfg.leafFactor() {
		if err := checkAlloc(cfg, tail.count()+1); err != nil {
			return nil, 0, nil, err
		}
		values := make([]T, tail.count()+1)
		copy(values, tail.values)
		values[len(values)-1] = v
		root.refs.inc()
		return root, shift, newLeaf(cfg, values), nil
	}

	if err := checkAlloc(cfg, 1); err != nil {
		return nil, 0, nil, err
	}
	fullTail := copyLeaf(cfg, tail)

	newRoot, newShift, err := installTail(cfg, root, shift, size, fullTail)
	if err != nil {
		return nil, 0, nil, err
	}
	return newRoot, newShift, newLeaf(cfg, []T{v}), nil
}
