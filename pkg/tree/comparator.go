// Package tree implements comparison-based, in-memory ordered-set containers:
// a classic binary search tree (BST), a top-down red-black tree (RBT), and a
// self-adjusting splay tree (SPT). All three share the same external shape —
// insert, search, ordered traversal, deletion, bulk teardown, and the set
// combinators Union/Intersection/Diff/SymDiff — driven entirely off a
// caller-supplied Comparator, with no constraint on the payload type itself.
package tree

// Comparator orders two payloads of type T. It must return a negative number
// when a sorts before b, zero when they are equivalent for ordering purposes,
// and a positive number when a sorts after b.
//
// A Comparator must be a strict weak ordering: consistent across calls and
// transitive. None of the trees in this package inspect payload equality any
// other way, so two payloads that compare equal are treated as the same key
// even if they differ in other fields — inserting one displaces the other.
type Comparator[T any] func(a, b T) int
