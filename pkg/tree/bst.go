package tree

// BST is an unbalanced binary search tree ordered by a Comparator. It
// offers no self-balancing guarantee on its own — pathological insertion
// orders can degrade it to a linked list — but exposes Rebalance, an
// in-place Day-Stout-Warren-style restructuring pass, for callers who need
// to reclaim logarithmic height after a batch of insertions.
//
// The zero value is not usable; construct with NewBST.
type BST[T any] struct {
	root *bnode[T]
	cmp  Comparator[T]
}

// NewBST constructs an empty BST ordered by cmp. Panics if cmp is nil,
// mirroring the package-wide rule that a missing comparator is a
// programmer error rather than something to propagate as a return value.
func NewBST[T any](cmp Comparator[T]) *BST[T] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	return &BST[T]{cmp: cmp}
}

// IsEmpty reports whether the tree holds no payloads.
func (b *BST[T]) IsEmpty() bool {
	return b.root == nil
}

// Copy returns a new BST holding the same payloads in the same shape. Nodes
// are freshly allocated; payloads are shared by Go's usual value-copy
// semantics.
func (b *BST[T]) Copy() *BST[T] {
	return &BST[T]{root: cloneBnode(b.root), cmp: b.cmp}
}

// Insert adds payload to the tree, or overwrites the existing payload that
// compares equal to it. Reports the displaced payload and true on
// overwrite, or the zero value and false on a fresh insertion.
func (b *BST[T]) Insert(payload T) (displaced T, had bool) {
	if b.root == nil {
		b.root = &bnode[T]{payload: payload}
		return displaced, false
	}

	cur := b.root
	for {
		c := b.cmp(payload, cur.payload)
		switch {
		case c == 0:
			displaced = cur.payload
			cur.payload = payload
			return displaced, true
		case c < 0:
			if cur.left == nil {
				cur.left = &bnode[T]{payload: payload}
				return displaced, false
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = &bnode[T]{payload: payload}
				return displaced, false
			}
			cur = cur.right
		}
	}
}

// InsertMin is a fast path for inserting a payload known to be smaller than
// every payload already in the tree. It walks straight down the left spine
// in O(height) without any comparisons beyond the final one, which doubles
// as the overwrite check. Violating the monotonicity contract corrupts the
// tree's ordering invariant silently — callers that cannot guarantee it
// should use Insert instead.
func (b *BST[T]) InsertMin(payload T) (displaced T, had bool) {
	return bnodeInsertMin(&b.root, b.cmp, payload)
}

// InsertMax is the mirror image of InsertMin.
func (b *BST[T]) InsertMax(payload T) (displaced T, had bool) {
	return bnodeInsertMax(&b.root, b.cmp, payload)
}

// Search reports whether a payload comparing equal to key is present, and
// returns it if so.
func (b *BST[T]) Search(key T) (T, bool) {
	cur := b.root
	for cur != nil {
		c := b.cmp(key, cur.payload)
		switch {
		case c == 0:
			return cur.payload, true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	var zero T
	return zero, false
}

// Min returns the smallest payload in the tree.
func (b *BST[T]) Min() (T, bool) {
	if b.root == nil {
		var zero T
		return zero, false
	}
	cur := b.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.payload, true
}

// Max returns the largest payload in the tree.
func (b *BST[T]) Max() (T, bool) {
	if b.root == nil {
		var zero T
		return zero, false
	}
	cur := b.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.payload, true
}

// Prev returns the largest payload strictly less than key, if any.
func (b *BST[T]) Prev(key T) (T, bool) {
	var candidate *bnode[T]
	cur := b.root
	for cur != nil {
		if b.cmp(cur.payload, key) < 0 {
			candidate = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	if candidate == nil {
		var zero T
		return zero, false
	}
	return candidate.payload, true
}

// Next returns the smallest payload strictly greater than key, if any.
func (b *BST[T]) Next(key T) (T, bool) {
	var candidate *bnode[T]
	cur := b.root
	for cur != nil {
		if b.cmp(cur.payload, key) > 0 {
			candidate = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if candidate == nil {
		var zero T
		return zero, false
	}
	return candidate.payload, true
}

// Remove deletes the payload comparing equal to key, if present, and
// reports it.
func (b *BST[T]) Remove(key T) (T, bool) {
	var parent *bnode[T]
	cur := b.root
	for cur != nil && b.cmp(key, cur.payload) != 0 {
		parent = cur
		if b.cmp(key, cur.payload) < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		var zero T
		return zero, false
	}

	displaced := cur.payload
	b.unlink(parent, cur)
	return displaced, true
}

// RemoveMin deletes and returns the smallest payload in the tree. Unlike
// Remove, it does not need to search for the node first, so it runs in
// O(height) with a single downward pass.
func (b *BST[T]) RemoveMin() (T, bool) {
	if b.root == nil {
		var zero T
		return zero, false
	}
	var parent *bnode[T]
	cur := b.root
	for cur.left != nil {
		parent = cur
		cur = cur.left
	}
	displaced := cur.payload
	b.unlink(parent, cur)
	return displaced, true
}

// RemoveMax is the mirror image of RemoveMin.
func (b *BST[T]) RemoveMax() (T, bool) {
	if b.root == nil {
		var zero T
		return zero, false
	}
	var parent *bnode[T]
	cur := b.root
	for cur.right != nil {
		parent = cur
		cur = cur.right
	}
	displaced := cur.payload
	b.unlink(parent, cur)
	return displaced, true
}

// unlink removes node cur (whose parent is parent, or nil if cur is the
// root) from the tree, handling all three classic BST deletion shapes: a
// leaf, a single child, and two children (replaced by the in-order
// successor's payload, with the successor itself then unlinked from where
// it actually lived).
func (b *BST[T]) unlink(parent, cur *bnode[T]) {
	if cur.left != nil && cur.right != nil {
		// Two children: splice in the in-order successor's payload, then
		// remove the successor node from its original spot.
		succParent := cur
		succ := cur.right
		for succ.left != nil {
			succParent = succ
			succ = succ.left
		}
		cur.payload = succ.payload
		b.unlink(succParent, succ)
		return
	}

	var child *bnode[T]
	if cur.left != nil {
		child = cur.left
	} else {
		child = cur.right
	}

	switch {
	case parent == nil:
		b.root = child
	case parent.left == cur:
		parent.left = child
	default:
		parent.right = child
	}
}

// RemoveAll empties the tree, invoking destroy on every payload in
// unspecified order. Teardown walks the tree by repeatedly rotating right
// at the root to promote the root's left child, detaching the old root as
// a childless leaf before destroying it; this visits and frees every node
// in O(N) total time without recursion or an auxiliary stack.
func (b *BST[T]) RemoveAll(destroy func(T)) {
	for b.root != nil {
		if b.root.left != nil {
			b.root = rotateRight(b.root)
			continue
		}
		old := b.root
		b.root = old.right
		old.right = nil
		if destroy != nil {
			destroy(old.payload)
		}
	}
}

// ToList linearizes the tree into a right-leaning spine (a "vine" in
// Day-Stout-Warren terminology) holding every payload in ascending order,
// using only right rotations. It is the first phase of Rebalance and is
// exposed on its own for callers who want the degenerate shape without the
// compress phases that follow it.
func (b *BST[T]) ToList() {
	var parent *bnode[T]
	cur := b.root
	for cur != nil {
		if cur.left != nil {
			cur = rotateRight(cur)
			if parent == nil {
				b.root = cur
			} else {
				parent.right = cur
			}
			continue
		}
		parent = cur
		cur = cur.right
	}
}

// ToReversedList is the mirror image of ToList: it produces a left-leaning
// spine in descending order using only left rotations.
func (b *BST[T]) ToReversedList() {
	var parent *bnode[T]
	cur := b.root
	for cur != nil {
		if cur.right != nil {
			cur = rotateLeft(cur)
			if parent == nil {
				b.root = cur
			} else {
				parent.left = cur
			}
			continue
		}
		parent = cur
		cur = cur.left
	}
}

// compress walks the tree's right spine from the root and performs count
// left rotations at every other node along it, halving the first 2*count
// nodes of the spine. count must not exceed
// half the spine's current length, which every caller below guarantees.
func (b *BST[T]) compress(count int) {
	var parent *bnode[T]
	cur := b.root
	for i := 0; i < count; i++ {
		promoted := rotateLeft(cur)
		if parent == nil {
			b.root = promoted
		} else {
			parent.right = promoted
		}
		parent = promoted
		cur = promoted.right
	}
}

// perfectTreeSize returns the size of the largest complete binary tree
// (one with every level full) that fits within n nodes: 2^floor(log2(n+1))-1.
func perfectTreeSize(n int) int {
	m := 1
	for m*2+1 <= n {
		m = m*2 + 1
	}
	return m
}

// Rebalance restores minimal height using Day-Stout-Warren: linearize to a
// vine (ToList), rotate away the excess nodes that don't fit into the
// largest complete tree the vine's length admits, then repeatedly halve
// what remains until one node is left. Unlike the textbook presentation
// this counts the vine by walking it rather than threading a running size
// through every mutating operation, which keeps Insert/Remove free of
// bookkeeping Rebalance is the only caller that needs.
func (b *BST[T]) Rebalance() {
	if b.root == nil {
		return
	}

	b.ToList()

	n := 0
	for cur := b.root; cur != nil; cur = cur.right {
		n++
	}

	leaves := n - perfectTreeSize(n)
	b.compress(leaves)

	for size := (n - leaves) / 2; size > 0; size /= 2 {
		b.compress(size)
	}
}

// IsValid reports whether the tree satisfies the binary search property:
// every payload falls strictly between the open bounds implied by its
// ancestors.
func (b *BST[T]) IsValid() bool {
	return validateOrder(b.root, b.cmp, nil, nil)
}

func (b *BST[T]) morrisIterator() *morrisIter[*bnode[T], T] {
	return newMorrisIter(b.root, func(n *bnode[T]) T { return n.payload })
}
