package tree

// rbnode is a red-black tree node. Children are stored as a direction-
// indexed array rather than named left/right fields because the top-down
// insert and delete algorithms in rbt.go are themselves direction-generic —
// every rotation and relink is written once in terms of a direction bit and
// mirrored automatically, rather than duplicated for the left and right
// cases.
type rbnode[T any] struct {
	payload T
	link    [2]*rbnode[T]
	red     bool
}

// left/right direction constants index rbnode.link.
const (
	left  = 0
	right = 1
)

func (n *rbnode[T]) Left() *rbnode[T]      { return n.link[left] }
func (n *rbnode[T]) Right() *rbnode[T]     { return n.link[right] }
func (n *rbnode[T]) SetRight(m *rbnode[T]) { n.link[right] = m }

// isRed treats a nil node as black, matching the usual red-black tree
// convention that leaves (nil children) are black.
func isRed[T any](n *rbnode[T]) bool {
	return n != nil && n.red
}

// single performs a single rotation at root in direction dir (dir=right
// rotates right promoting the left child, dir=left rotates left promoting
// the right child) and recolors the two nodes involved: the promoted node
// becomes black and the demoted root becomes red. This recoloring is
// specific to how single is used by the insert and delete fixups below,
// not a general-purpose rotation.
func single[T any](root *rbnode[T], dir int) *rbnode[T] {
	save := root.link[1-dir]
	root.link[1-dir] = save.link[dir]
	save.link[dir] = root
	root.red = true
	save.red = false
	return save
}

// double performs the rotation pair that fixes a zig-zag: first a single
// rotation on root's dir-opposite child in the opposite direction, then a
// single rotation on root itself in dir.
func double[T any](root *rbnode[T], dir int) *rbnode[T] {
	root.link[1-dir] = single(root.link[1-dir], 1-dir)
	return single(root, dir)
}

// validateRB walks the subtree rooted at n, checking both the red-black
// coloring invariants and the symmetric order property in a single pass.
// It returns the subtree's black height (counting nil children as height
// 1, the usual convention) and whether every invariant held; on a
// violation found further down it returns (0, false) so the caller can
// abort without walking the rest of the tree.
func validateRB[T any](n *rbnode[T], cmp Comparator[T], lo, hi *T) (blackHeight int, ok bool) {
	if n == nil {
		return 1, true
	}

	if lo != nil && cmp(n.payload, *lo) <= 0 {
		return 0, false
	}
	if hi != nil && cmp(n.payload, *hi) >= 0 {
		return 0, false
	}

	if n.red && (isRed(n.link[left]) || isRed(n.link[right])) {
		return 0, false
	}

	lh, lok := validateRB(n.link[left], cmp, lo, &n.payload)
	if !lok {
		return 0, false
	}
	rh, rok := validateRB(n.link[right], cmp, &n.payload, hi)
	if !rok || lh != rh {
		return 0, false
	}

	h := lh
	if !n.red {
		h++
	}
	return h, true
}
