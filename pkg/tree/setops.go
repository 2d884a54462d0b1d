package tree

// sequence is the minimal pull-based iteration shape the set combinator
// engine needs from any tree variant: one payload at a time, in ascending
// order. morrisIter satisfies it directly for BST and RBT; sptSequence
// adapts SPT's splay-based Min/Next into the same shape.
type sequence[T any] interface {
	Next() (T, bool)
}

// mergeOp describes which side(s) of a merge step to emit for a set
// combinator, and what to do with whatever is left once one operand is
// exhausted. Union/Intersection/Diff/SymDiff below are all the same merge
// loop parameterized by one of these.
type mergeOp struct {
	emitLeft, emitRight, emitBoth   bool
	tailLeft, tailRight             bool
}

var (
	unionOp = mergeOp{emitLeft: true, emitRight: true, emitBoth: true, tailLeft: true, tailRight: true}
	interOp = mergeOp{emitBoth: true}
	diffOp  = mergeOp{emitLeft: true, tailLeft: true}
	symOp   = mergeOp{emitLeft: true, emitRight: true, tailLeft: true, tailRight: true}
)

// mergeInto drives a and b forward in lockstep, in ascending order,
// emitting according to op. On a tie, the left operand's payload is
// emitted (matching the package-wide rule that the left operand wins
// ties). Both sequences are always driven to exhaustion, even past the
// point where nothing more will be emitted from one side — for a Morris
// sequence this is not an optimization but a correctness requirement,
// since an abandoned Morris walk leaves the source tree's right pointers
// threaded.
func mergeInto[T any](cmp Comparator[T], a, b sequence[T], op mergeOp, emit func(T)) {
	av, aok := a.Next()
	bv, bok := b.Next()

	for aok && bok {
		switch c := cmp(av, bv); {
		case c < 0:
			if op.emitLeft {
				emit(av)
			}
			av, aok = a.Next()
		case c > 0:
			if op.emitRight {
				emit(bv)
			}
			bv, bok = b.Next()
		default:
			if op.emitBoth {
				emit(av)
			}
			av, aok = a.Next()
			bv, bok = b.Next()
		}
	}

	for aok {
		if op.tailLeft {
			emit(av)
		}
		av, aok = a.Next()
	}
	for bok {
		if op.tailRight {
			emit(bv)
		}
		bv, bok = b.Next()
	}
}

// --- BST ---

func (b *BST[T]) setOp(other *BST[T], op mergeOp, emptyIdentity bool) *BST[T] {
	if b == other {
		if emptyIdentity {
			return NewBST(b.cmp)
		}
		return b.Copy()
	}

	result := NewBST(b.cmp)
	var tail *bnode[T]
	emit := func(v T) {
		n := &bnode[T]{payload: v}
		if tail == nil {
			result.root = n
		} else {
			tail.right = n
		}
		tail = n
	}
	mergeInto(b.cmp, b.morrisIterator(), other.morrisIterator(), op, emit)
	return result
}

// Union returns a new tree holding every payload present in either b or
// other. If b and other are the same tree handle, it returns Copy(b).
func (b *BST[T]) Union(other *BST[T]) *BST[T] { return b.setOp(other, unionOp, false) }

// Intersection returns a new tree holding only payloads present in both
// trees. If b and other are the same tree handle, it returns Copy(b).
func (b *BST[T]) Intersection(other *BST[T]) *BST[T] { return b.setOp(other, interOp, false) }

// Diff returns a new tree holding payloads present in b but not in other.
// If b and other are the same tree handle, it returns an empty tree.
func (b *BST[T]) Diff(other *BST[T]) *BST[T] { return b.setOp(other, diffOp, true) }

// SymDiff returns a new tree holding payloads present in exactly one of
// the two trees. If b and other are the same tree handle, it returns an
// empty tree.
func (b *BST[T]) SymDiff(other *BST[T]) *BST[T] { return b.setOp(other, symOp, true) }

// --- RBT ---

func (t *RBT[T]) setOp(other *RBT[T], op mergeOp, emptyIdentity bool) *RBT[T] {
	if t == other {
		if emptyIdentity {
			return NewRBT(t.cmp)
		}
		return t.Copy()
	}

	result := NewRBT(t.cmp)
	emit := func(v T) { result.InsertMax(v) }
	mergeInto(t.cmp, t.morrisIterator(), other.morrisIterator(), op, emit)
	return result
}

// Union returns a new tree holding every payload present in either tree.
func (t *RBT[T]) Union(other *RBT[T]) *RBT[T] { return t.setOp(other, unionOp, false) }

// Intersection returns a new tree holding only payloads present in both.
func (t *RBT[T]) Intersection(other *RBT[T]) *RBT[T] { return t.setOp(other, interOp, false) }

// Diff returns a new tree holding payloads present in t but not other.
func (t *RBT[T]) Diff(other *RBT[T]) *RBT[T] { return t.setOp(other, diffOp, true) }

// SymDiff returns a new tree holding payloads present in exactly one tree.
func (t *RBT[T]) SymDiff(other *RBT[T]) *RBT[T] { return t.setOp(other, symOp, true) }

// --- SPT ---

func (t *SPT[T]) setOp(other *SPT[T], op mergeOp, emptyIdentity bool) *SPT[T] {
	if t == other {
		if emptyIdentity {
			return NewSPT(t.cmp)
		}
		return t.Copy()
	}

	result := NewSPT(t.cmp)
	emit := func(v T) { result.InsertMax(v) }
	mergeInto(t.cmp, &sptSequence[T]{t: t}, &sptSequence[T]{t: other}, op, emit)
	return result
}

// Union returns a new tree holding every payload present in either tree.
// Both operands are splayed in the process, since every SPT access mutates
// shape; callers needing the originals untouched should pass Copy()s in.
func (t *SPT[T]) Union(other *SPT[T]) *SPT[T] { return t.setOp(other, unionOp, false) }

// Intersection returns a new tree holding only payloads present in both.
func (t *SPT[T]) Intersection(other *SPT[T]) *SPT[T] { return t.setOp(other, interOp, false) }

// Diff returns a new tree holding payloads present in t but not other.
func (t *SPT[T]) Diff(other *SPT[T]) *SPT[T] { return t.setOp(other, diffOp, true) }

// SymDiff returns a new tree holding payloads present in exactly one tree.
func (t *SPT[T]) SymDiff(other *SPT[T]) *SPT[T] { return t.setOp(other, symOp, true) }
