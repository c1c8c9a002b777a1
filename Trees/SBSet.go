package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/ostset/Sets"
)

// SBSet is a set of cmp.Ordered values on a size-balanced binary search tree.
// T is the type of values it will hold, S is the type of the counters that
// store the sizes of the subtrees. S must be wide enough for the largest size
// the set will reach, so the additional memory cost is 2*size(S)*n.
// After any sequence of insertions every node satisfies
// max(lc, rc) <= 2*min(lc, rc)+1, so the height D is at most about
// 1.71*log2(n+1). Remove doesn't rebalance; see the package documentation.
// The zero value isn't usable; create it with New or From.
type SBSet[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty SBSet.
func New[T cmp.Ordered, S constraints.Unsigned]() *SBSet[T, S] {
	return &SBSet[T, S]{base[T, S]{compare: cmp.Compare[T]}}
}

// From builds a perfectly balanced SBSet from the given slice, which must be
// sorted in ascending order and mustn't contain duplicates. This is faster
// than repeatedly calling Insert. The slice isn't retained.
// If safe==true the order is verified first and From panics with
// Sets.InvalidSliceError if it's broken. Otherwise it's up to the caller to
// ensure it, as the tree is corrupt if it isn't.
// Recursive. Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *SBSet[T, S] {
	if safe {
		Sets.MustAscend(sli, cmp.Compare[T])
	}
	return &SBSet[T, S]{base[T, S]{root: build[T, S](sli), compare: cmp.Compare[T]}}
}
