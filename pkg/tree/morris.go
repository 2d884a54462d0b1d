package tree

// linkable is satisfied by any node pointer type that exposes a left child,
// a right child, and a way to overwrite the right child. It lets the Morris
// traversal engine below work identically over *bnode[T] (BST) and
// *rbnode[T] (RBT) without either variant knowing about the other.
//
// N is constrained to comparable so the engine can test node pointers
// against their zero value instead of requiring a sentinel.
type linkable[N any] interface {
	comparable
	Left() N
	Right() N
	SetRight(N)
}

// morrisIter performs a Morris (threaded) in-order walk one step at a time.
// Unlike a recursive or stack-based walk, it needs no auxiliary storage: it
// temporarily rewrites nil right-links it encounters into threads pointing
// back to the in-order successor, then removes the thread the second time
// it is followed. This makes an in-progress walk resumable across Next
// calls with O(1) space, which is exactly the shape the set combinator
// engine (setops.go) needs to merge two trees without materializing either
// one's contents.
//
// A morrisIter must be driven to exhaustion (Next returning false) once
// started, or it leaves the source tree's right pointers permanently
// threaded. Callers that stop early — as the intersection and difference
// combinators do once one operand is spent — must keep calling Next on the
// abandoned iterator until it reports exhaustion, purely to finish
// unthreading; the values it yields at that point are discarded.
type morrisIter[N linkable[N], T any] struct {
	cur     N
	payload func(N) T
}

func newMorrisIter[N linkable[N], T any](root N, payload func(N) T) *morrisIter[N, T] {
	return &morrisIter[N, T]{cur: root, payload: payload}
}

// Next advances the walk and returns the next payload in ascending order,
// or (zero, false) once the tree is exhausted.
func (it *morrisIter[N, T]) Next() (T, bool) {
	var zero N
	for it.cur != zero {
		left := it.cur.Left()
		if left == zero {
			v := it.payload(it.cur)
			it.cur = it.cur.Right()
			return v, true
		}

		pred := left
		for pred.Right() != zero && pred.Right() != it.cur {
			pred = pred.Right()
		}

		if pred.Right() == zero {
			// First visit: thread pred's right link back to cur so we can
			// find our way back up once the left subtree is exhausted.
			pred.SetRight(it.cur)
			it.cur = left
		} else {
			// Second visit: the thread has served its purpose. Remove it
			// before descending right, restoring the tree's original shape.
			pred.SetRight(zero)
			v := it.payload(it.cur)
			it.cur = it.cur.Right()
			return v, true
		}
	}

	var zeroT T
	return zeroT, false
}
