// Package Sets holds the interfaces shared by the set implementations in this
// module, plus the checks they share for bulk input.
package Sets

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Set of unique elements. Insert and Remove report whether the set changed;
// inserting a present element or removing an absent one is not an error.
type Set[E any] interface {
	Insert(E) bool
	Remove(E) bool
	Has(E) bool
}

// OrderedSet is a Set over a total order that also answers order-statistics
// queries. S is the type used to count elements.
// Ranks and Select indexes are 1 based. Methods with a bool as the second
// return value use it to indicate whether the first one is defined; when it
// isn't, the first value is the zero value of E.
type OrderedSet[E any, S constraints.Unsigned] interface {
	Set[E]
	//Size of the set.
	Size() S
	//Height of the underlying tree in edges, -1 when empty.
	Height() int
	Minimum() (E, bool)
	Maximum() (E, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v E) (E, bool)
	//Successor returns the smallest element greater than v.
	Successor(v E) (E, bool)
	//Select the i-th smallest element, 1<=i<=Size().
	Select(i S) (E, bool)
	//RankOf v in ascending order, or 0 if v isn't in the set.
	RankOf(v E) S
	//CountGeq counts the elements >= v.
	CountGeq(v E) S
	//CountLeq counts the elements <= v.
	CountLeq(v E) S
	//CountRange counts the elements in [lo, hi]. It's 0 if hi<lo.
	CountRange(lo, hi E) S
	//ExtractRange returns the elements in [lo, hi] in ascending order. The
	//result is never nil.
	ExtractRange(lo, hi E) []E
	//InOrder calls f on each element in ascending order until f returns false.
	InOrder(f func(E) bool)
	Clear()
}

// InvalidSliceError is the panic value used by bulk constructors when they are
// asked to verify their input and it isn't strictly ascending.
type InvalidSliceError[E any] struct {
	Prev, Next E
	At         int // index of Next
}

func (e InvalidSliceError[E]) Error() string {
	return fmt.Sprintf("slice is not strictly ascending at index %d: %v is followed by %v", e.At, e.Prev, e.Next)
}

// MustAscend panics with InvalidSliceError unless s is strictly ascending
// according to cmp.
// Time: O(n)
func MustAscend[E any](s []E, cmp func(E, E) int) {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) >= 0 {
			panic(InvalidSliceError[E]{s[i-1], s[i], i})
		}
	}
}
