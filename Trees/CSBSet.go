package Trees

import (
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/ostset/Sets"
)

// CSBSet is the version of SBSet for any type with a user supplied ordering.
// All methods behave exactly as in SBSet except that comparisons go through
// the comparator, which must be a consistent total order: it returns a
// negative number if a<b, 0 if a==b, a positive number if a>b. See
// cmp.Compare for an example. Elements the comparator reports as equal are
// duplicates.
type CSBSet[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// NewC is the CSBSet equivalence of New.
func NewC[T any, S constraints.Unsigned](cmp func(a, b T) int) *CSBSet[T, S] {
	return &CSBSet[T, S]{base[T, S]{compare: cmp}}
}

// FromC is the CSBSet equivalence of From. sli must be ascending under cmp.
func FromC[T any, S constraints.Unsigned](sli []T, cmp func(a, b T) int, safe bool) *CSBSet[T, S] {
	if safe {
		Sets.MustAscend(sli, cmp)
	}
	return &CSBSet[T, S]{base[T, S]{root: build[T, S](sli), compare: cmp}}
}
