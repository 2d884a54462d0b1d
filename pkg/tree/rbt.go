package tree

// RBT is a red-black tree ordered by a Comparator. Insert and Remove are
// both iterative, single-pass, top-down algorithms: instead of descending
// to find an insertion or deletion point and then walking back up through
// parent pointers to fix coloring violations (the textbook approach), they
// fix violations on the way down using a sliding window of the last few
// ancestors visited, so the tree never needs parent pointers and never
// recurses.
//
// The zero value is not usable; construct with NewRBT.
type RBT[T any] struct {
	root *rbnode[T]
	cmp  Comparator[T]
}

// NewRBT constructs an empty RBT ordered by cmp. Panics if cmp is nil.
func NewRBT[T any](cmp Comparator[T]) *RBT[T] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	return &RBT[T]{cmp: cmp}
}

// IsEmpty reports whether the tree holds no payloads.
func (t *RBT[T]) IsEmpty() bool {
	return t.root == nil
}

func cloneRBNode[T any](n *rbnode[T]) *rbnode[T] {
	if n == nil {
		return nil
	}
	return &rbnode[T]{
		payload: n.payload,
		red:     n.red,
		link:    [2]*rbnode[T]{cloneRBNode(n.link[left]), cloneRBNode(n.link[right])},
	}
}

// Copy returns a new RBT holding the same payloads, colors, and shape.
func (t *RBT[T]) Copy() *RBT[T] {
	return &RBT[T]{root: cloneRBNode(t.root), cmp: t.cmp}
}

// Search reports whether a payload comparing equal to key is present.
func (t *RBT[T]) Search(key T) (T, bool) {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.payload)
		switch {
		case c == 0:
			return cur.payload, true
		case c < 0:
			cur = cur.link[left]
		default:
			cur = cur.link[right]
		}
	}
	var zero T
	return zero, false
}

// Min returns the smallest payload in the tree.
func (t *RBT[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	cur := t.root
	for cur.link[left] != nil {
		cur = cur.link[left]
	}
	return cur.payload, true
}

// Max returns the largest payload in the tree.
func (t *RBT[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	cur := t.root
	for cur.link[right] != nil {
		cur = cur.link[right]
	}
	return cur.payload, true
}

// Prev returns the largest payload strictly less than key, if any.
func (t *RBT[T]) Prev(key T) (T, bool) {
	var candidate *rbnode[T]
	cur := t.root
	for cur != nil {
		if t.cmp(cur.payload, key) < 0 {
			candidate = cur
			cur = cur.link[right]
		} else {
			cur = cur.link[left]
		}
	}
	if candidate == nil {
		var zero T
		return zero, false
	}
	return candidate.payload, true
}

// Next returns the smallest payload strictly greater than key, if any.
func (t *RBT[T]) Next(key T) (T, bool) {
	var candidate *rbnode[T]
	cur := t.root
	for cur != nil {
		if t.cmp(cur.payload, key) > 0 {
			candidate = cur
			cur = cur.link[left]
		} else {
			cur = cur.link[right]
		}
	}
	if candidate == nil {
		var zero T
		return zero, false
	}
	return candidate.payload, true
}

// Insert adds payload to the tree, or overwrites the existing payload that
// compares equal to it, maintaining every red-black invariant along the
// way in a single top-down pass. It descends with a sliding window of the
// current node and its parent/grandparent/great-grandparent; whenever it
// passes through a node with two red children it flips that node red and
// its children black (simulating a 2-3-4 tree node split), then, if that
// flip just created two reds in a row, rotates using the window to fix it
// before continuing down.
func (t *RBT[T]) Insert(payload T) (displaced T, had bool) {
	var zero T
	if t.root == nil {
		t.root = &rbnode[T]{payload: payload}
		return zero, false
	}

	head := &rbnode[T]{}
	head.link[right] = t.root

	var g, p *rbnode[T]
	anchor := head
	dir, last := right, left
	q := head.link[right]
	inserted := false

	for {
		if q == nil {
			q = &rbnode[T]{payload: payload, red: true}
			p.link[dir] = q
			inserted = true
		} else if isRed(q.link[left]) && isRed(q.link[right]) {
			q.red = true
			q.link[left].red = false
			q.link[right].red = false
		}

		if isRed(q) && isRed(p) {
			dir2 := left
			if anchor.link[right] == g {
				dir2 = right
			}
			if q == p.link[last] {
				anchor.link[dir2] = single(g, 1-last)
			} else {
				anchor.link[dir2] = double(g, 1-last)
			}
		}

		if inserted {
			break
		}

		c := t.cmp(q.payload, payload)
		if c == 0 {
			displaced = q.payload
			had = true
			q.payload = payload
			break
		}

		last = dir
		if c < 0 {
			dir = right
		} else {
			dir = left
		}

		if g != nil {
			anchor = g
		}
		g, p = p, q
		q = p.link[dir]
	}

	t.root = head.link[right]
	t.root.red = false
	return displaced, had
}

// InsertMin is a fast path for inserting a payload known to be smaller than
// every payload already in the tree. Because every step descends in the
// same direction, a red-red violation created by a color flip can only
// ever be a "straight line" shape, so only the single-rotation fixup is
// reachable — never the zig-zag double rotation Insert sometimes needs.
func (t *RBT[T]) InsertMin(payload T) (displaced T, had bool) {
	return t.insertExtreme(payload, left)
}

// InsertMax is the mirror image of InsertMin.
func (t *RBT[T]) InsertMax(payload T) (displaced T, had bool) {
	return t.insertExtreme(payload, right)
}

func (t *RBT[T]) insertExtreme(payload T, dir int) (displaced T, had bool) {
	var zero T
	if t.root == nil {
		t.root = &rbnode[T]{payload: payload}
		return zero, false
	}

	head := &rbnode[T]{}
	head.link[right] = t.root

	var g, p *rbnode[T]
	anchor := head
	q := head.link[right]

	for q != nil {
		if isRed(q.link[left]) && isRed(q.link[right]) {
			q.red = true
			q.link[left].red = false
			q.link[right].red = false
		}
		if isRed(q) && isRed(p) {
			dir2 := left
			if anchor.link[right] == g {
				dir2 = right
			}
			anchor.link[dir2] = single(g, 1-dir)
		}
		if g != nil {
			anchor = g
		}
		g, p = p, q
		q = p.link[dir]
	}

	if p != nil && t.cmp(payload, p.payload) == 0 {
		displaced = p.payload
		had = true
		p.payload = payload
	} else {
		q = &rbnode[T]{payload: payload, red: true}
		if p != nil {
			p.link[dir] = q
		}
		if isRed(q) && isRed(p) {
			dir2 := left
			if anchor.link[right] == g {
				dir2 = right
			}
			anchor.link[dir2] = single(g, 1-dir)
		}
	}

	t.root = head.link[right]
	t.root.red = false
	return displaced, had
}

// Remove deletes the payload comparing equal to key, if present, and
// reports it. Like Insert, it is a single top-down pass: it pushes red
// nodes down the search path via rotations and color flips so that by the
// time it reaches the node to delete, that node is guaranteed red (and
// therefore trivially removable without disturbing black height). The
// restructuring is driven by the classic "current is black, its relevant
// child is black, but its sibling has a red child" detection used to
// decide between a rotation and a color flip at each step.
func (t *RBT[T]) Remove(key T) (displaced T, had bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	head := &rbnode[T]{}
	head.link[right] = t.root

	var g, p *rbnode[T]
	q := head
	dir := right
	var found *rbnode[T]
	var last int

	for q.link[dir] != nil {
		last = dir
		g, p = p, q
		q = q.link[dir]

		c := t.cmp(q.payload, key)
		if c <= 0 {
			dir = right
		} else {
			dir = left
		}
		if c == 0 {
			found = q
		}

		if isRed(q) || isRed(q.link[dir]) {
			continue
		}

		if isRed(q.link[1-dir]) {
			rot := single(q, dir)
			p.link[last] = rot
			p = rot
			continue
		}

		s := p.link[1-last]
		if s == nil {
			continue
		}
		if !isRed(s.link[1-last]) && !isRed(s.link[last]) {
			p.red = false
			s.red = true
			q.red = true
			continue
		}

		dir2 := left
		if g.link[right] == p {
			dir2 = right
		}
		if isRed(s.link[last]) {
			g.link[dir2] = double(p, last)
		} else {
			g.link[dir2] = single(p, last)
		}

		newP := g.link[dir2]
		q.red = true
		newP.red = true
		newP.link[left].red = false
		newP.link[right].red = false
	}

	if found != nil {
		displaced = found.payload
		had = true
		found.payload = q.payload

		childDir := left
		if q.link[left] == nil {
			childDir = right
		}
		idx := left
		if p.link[right] == q {
			idx = right
		}
		p.link[idx] = q.link[childDir]
	}

	t.root = head.link[right]
	if t.root != nil {
		t.root.red = false
	}
	return displaced, had
}

// RemoveMin deletes and returns the smallest payload. Unlike BST, RBT does
// not get a cheaper algorithm for this than composing Min and Remove —
// the rebalancing Remove performs on the way down is already the O(log N)
// cost of finding the minimum in the first place.
func (t *RBT[T]) RemoveMin() (T, bool) {
	key, ok := t.Min()
	if !ok {
		return key, false
	}
	return t.Remove(key)
}

// RemoveMax is the mirror image of RemoveMin.
func (t *RBT[T]) RemoveMax() (T, bool) {
	key, ok := t.Max()
	if !ok {
		return key, false
	}
	return t.Remove(key)
}

// RemoveAll empties the tree, invoking destroy on every payload in
// unspecified order. As with BST.RemoveAll, coloring is irrelevant once
// the tree is being torn down, so the teardown walk ignores it and reuses
// the same rotate-and-detach technique.
func (t *RBT[T]) RemoveAll(destroy func(T)) {
	for t.root != nil {
		if t.root.link[left] != nil {
			old := t.root
			promoted := old.link[left]
			old.link[left] = promoted.link[right]
			promoted.link[right] = old
			t.root = promoted
			continue
		}
		old := t.root
		t.root = old.link[right]
		old.link[right] = nil
		if destroy != nil {
			destroy(old.payload)
		}
	}
}

// IsValid reports whether the tree satisfies the binary search property,
// the no-red-red-in-a-row property, and the equal-black-height property on
// every root-to-leaf path.
func (t *RBT[T]) IsValid() bool {
	if t.root != nil && t.root.red {
		return false
	}
	_, ok := validateRB(t.root, t.cmp, nil, nil)
	return ok
}

func (t *RBT[T]) morrisIterator() *morrisIter[*rbnode[T], T] {
	return newMorrisIter(t.root, func(n *rbnode[T]) T { return n.payload })
}
