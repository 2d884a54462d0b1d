package tree

import (
	"context"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// ToSlice drains the tree into a freshly allocated, ascending slice of its
// payloads. It is built on the same Morris engine as the set combinators,
// so it costs no auxiliary space beyond the output slice itself.
func (b *BST[T]) ToSlice() []T {
	return drain[T](b.morrisIterator())
}

// ToSlice drains the tree into a freshly allocated, ascending slice.
func (t *RBT[T]) ToSlice() []T {
	return drain[T](t.morrisIterator())
}

// ToSlice drains the tree into a freshly allocated, ascending slice. Unlike
// BST and RBT, this splays every element to the root on the way, so the
// tree's shape is left as a long left-leaning spine afterward, with the
// largest payload at the root.
func (t *SPT[T]) ToSlice() []T {
	return drain[T](&sptSequence[T]{t: t})
}

func drain[T any](seq sequence[T]) []T {
	var out []T
	for {
		v, ok := seq.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// IsSortedRBT is a belt-and-suspenders check used by the test suite
// alongside IsValid: it drains the tree (which IsValid does not) and
// confirms golang.org/x/exp/slices agrees the result is non-decreasing.
func IsSortedRBT[T any](t *RBT[T], cmp Comparator[T]) bool {
	return slices.IsSortedFunc(t.ToSlice(), func(a, b T) int { return cmp(a, b) })
}

// ValidateConcurrent checks the red-black invariants over the left and
// right subtrees of the root concurrently. Validation only reads node
// shape and color, so splitting the work at the root and fanning the two
// halves out to an errgroup is safe even though neither half is an
// independent tree handle in its own right.
//
// This exists alongside the sequential IsValid mainly to exercise the
// concurrent-subtree-check pattern on trees large enough that it matters;
// for typical sizes the goroutine overhead dwarfs any benefit.
func (t *RBT[T]) ValidateConcurrent(ctx context.Context) (bool, error) {
	if t.root == nil {
		return true, nil
	}
	if t.root.red {
		return false, nil
	}

	root := t.root
	g, _ := errgroup.WithContext(ctx)

	var leftOK, rightOK bool
	g.Go(func() error {
		_, leftOK = validateRB(root.link[left], t.cmp, nil, &root.payload)
		return nil
	})
	g.Go(func() error {
		_, rightOK = validateRB(root.link[right], t.cmp, &root.payload, nil)
		return nil
	})

	if err := g.Wait(); err != nil {
		return false, err
	}

	if !leftOK || !rightOK {
		return false, nil
	}

	lh, _ := validateRB(root.link[left], t.cmp, nil, &root.payload)
	rh, _ := validateRB(root.link[right], t.cmp, &root.payload, nil)
	return lh == rh, nil
}
