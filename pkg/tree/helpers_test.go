package tree

import "cmp"

// intCmp and strCmp are the Comparators every test file in this package
// reaches for. They live here once instead of being redeclared per file.
func intCmp(a, b int) int { return cmp.Compare(a, b) }

func strCmp(a, b string) int { return cmp.Compare(a, b) }
