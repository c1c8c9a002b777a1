package arrTree

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/ostset/Sets"
)

// ArrSet is Trees.SBSet with its nodes stored in slices. It answers the same
// queries with the same complexities and keeps the same balance invariant,
// but allocates only when the arena grows.
type ArrSet[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs []T //vs[i-1] corresponds to ifs[i]
}

var _ Sets.OrderedSet[int, uint] = (*ArrSet[int, uint])(nil)

// New empty set with room for hint elements.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *ArrSet[T, S] {
	return &ArrSet[T, S]{base: base[S]{ifs: make([]info[S], 1, int(hint)+1)}, vs: make([]T, 0, hint)}
}

// From a given ascending value slice without duplicates, directly build a
// perfectly balanced tree. The slice is handed to the tree and mustn't be
// used by the caller later. If safe==true the order is verified first and
// From panics with Sets.InvalidSliceError if it's broken.
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, safe bool) *ArrSet[T, S] {
	if safe {
		Sets.MustAscend(vs, cmp.Compare[T])
	}
	u := &ArrSet[T, S]{base: base[S]{ifs: make([]info[S], len(vs)+1)}, vs: vs}
	u.order = make([]S, len(vs))
	for i := range u.order {
		u.order[i] = S(i + 1)
	}
	u.root = u.link(u.order)
	return u
}

func (u *ArrSet[T, S]) getV(i S) T {
	return u.vs[i-1]
}

// alloc a slot for v, taking it from the free list if there is one.
func (u *ArrSet[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{}
		u.vs[i-1] = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

func (u *ArrSet[T, S]) release(i S) {
	u.vs[i-1] = *new(T)
	u.addFree(i)
}

// Insert v. Returns true if v wasn't in the set. Going back up the search
// path, every ancestor's counter is incremented and its subtree is rebuilt
// if it fails the balance predicate.
// Time: O(D), amortized over the rebuilds.
func (u *ArrSet[T, S]) Insert(v T) bool {
	path := u.path[:0]
	for curI := u.root; curI != 0; {
		path = append(path, curI)
		if cv := u.getV(curI); v < cv {
			curI = u.ifs[curI].l
		} else if v > cv {
			curI = u.ifs[curI].r
		} else {
			u.path = path
			return false
		}
	}
	u.path = path
	child := u.alloc(v)
	for i := len(path) - 1; i > -1; i-- {
		p := path[i]
		if n := &u.ifs[p]; v < u.getV(p) {
			n.l = child
			n.lc++
		} else {
			n.r = child
			n.rc++
		}
		if child = p; !sizeBalanced(u.ifs[p].lc, u.ifs[p].rc) {
			child = u.rebuild(p)
		}
	}
	u.root = child
	return true
}

// Remove v. Returns true if v was in the set. A node with two children takes
// the value of the minimum of its right subtree, whose slot is freed instead.
// Remove doesn't rebalance.
// Time: O(D)
func (u *ArrSet[T, S]) Remove(v T) bool {
	path := u.path[:0]
	defer func() { u.path = path }()
	for link := &u.root; *link != 0; {
		curI := *link
		if cv := u.getV(curI); v < cv {
			path = append(path, curI)
			link = &u.ifs[curI].l
		} else if v > cv {
			path = append(path, curI)
			link = &u.ifs[curI].r
		} else {
			for _, p := range path {
				if v < u.getV(p) {
					u.ifs[p].lc--
				} else {
					u.ifs[p].rc--
				}
			}
			if cur := &u.ifs[curI]; cur.l == 0 {
				*link = cur.r
				u.release(curI)
			} else if cur.r == 0 {
				*link = cur.l
				u.release(curI)
			} else {
				cur.rc--
				si := &cur.r
				for u.ifs[*si].l != 0 {
					u.ifs[*si].lc--
					si = &u.ifs[*si].l
				}
				m := *si
				u.vs[curI-1] = u.getV(m)
				*si = u.ifs[m].r
				u.release(m)
			}
			return true
		}
	}
	return false
}

// Clear the set. The arena keeps its capacity.
// Time: O(n) to drop the references held by the values.
func (u *ArrSet[T, S]) Clear() {
	clear(u.vs)
	u.vs, u.ifs = u.vs[:0], u.ifs[:1]
	u.ifs[0] = info[S]{}
	u.root, u.free = 0, 0
}

// Compact moves the elements into new slices without free slots, so that the
// arena holds exactly Size() elements, and rebuilds the tree perfectly.
// Time: O(n)
func (u *ArrSet[T, S]) Compact() {
	*u = *From[T, S](u.Slice(), false)
}

// Slots is the number of slots in the arena, free or not.
func (u *ArrSet[T, S]) Slots() int {
	return len(u.ifs) - 1
}
