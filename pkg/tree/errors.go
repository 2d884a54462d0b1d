package tree

import "errors"

var (
	// ErrNilComparator is the value the New* constructors panic with when
	// asked to build a tree without a Comparator. A tree has no way to order its
	// payloads without one, so this is a programmer error, not a runtime
	// condition callers should branch on.
	ErrNilComparator = errors.New("tree: comparator must not be nil")
)
