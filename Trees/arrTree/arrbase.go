// Package arrTree implements the size-balanced ordered set of package Trees
// on slices instead of pointers. Nodes are slots of an arena addressed by
// index, freed slots are kept in a free list and reused before the arena
// grows, and every operation except ExtractRange is iterative, so deep trees
// never grow the goroutine stack.
package arrTree

import (
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/ostset/Queues"
)

// A node in the tree. l and r are indexes into base.ifs, lc and rc the sizes
// of the subtrees rooting at them.
// The zero value is the empty subtree.
type info[S constraints.Unsigned] struct {
	l, r, lc, rc S
}

type base[S constraints.Unsigned] struct {
	root, free S         // free is the beginning of the linked list of free slots; info[S].l is next.
	ifs        []info[S] // ifs[0] is the empty subtree and stays zero. len(ifs)=number of slots+1.
	path       []S       // scratch for the search path of Insert and Remove.
	order      []S       // scratch for the in-order slots of a rebuilt subtree.
}

func sizeBalanced[S constraints.Unsigned](lc, rc S) bool {
	return max(lc, rc) <= 2*min(lc, rc)+1
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

func (u *base[S]) sizeOf(i S) S {
	if i == 0 {
		return 0
	}
	return u.ifs[i].lc + u.ifs[i].rc + 1
}

// Size of the set.
// Time: O(1)
func (u *base[S]) Size() S {
	return u.sizeOf(u.root)
}

// flatten appends the slots of the subtree rooting at i to dst in order.
// Time: O(k); Space: O(D)
func (u *base[S]) flatten(dst []S, i S) []S {
	var st []S
	for ; i != 0; i = u.ifs[i].l {
		st = append(st, i)
	}
	for len(st) > 0 {
		i, st = st[len(st)-1], st[:len(st)-1]
		dst = append(dst, i)
		for i = u.ifs[i].r; i != 0; i = u.ifs[i].l {
			st = append(st, i)
		}
	}
	return dst
}

// link the slots in order, which must list them in ascending order of their
// values, into a perfectly balanced subtree and return its root. The middle
// of every span becomes the root of that span.
// Time: O(k); Space: O(log k)
func (u *base[S]) link(order []S) S {
	if len(order) == 0 {
		return 0
	}
	mid := func(lo, hi int) int { return lo + (hi-lo+1)>>1 }
	st := make([][2]int, 1, 32) //[lo,hi] inclusive
	st[0] = [2]int{0, len(order) - 1}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		m := mid(top[0], top[1])
		n := &u.ifs[order[m]]
		*n = info[S]{lc: S(m - top[0]), rc: S(top[1] - m)}
		if top[0] < m {
			n.l = order[mid(top[0], m-1)]
			st = append(st, [2]int{top[0], m - 1})
		}
		if m < top[1] {
			n.r = order[mid(m+1, top[1])]
			st = append(st, [2]int{m + 1, top[1]})
		}
	}
	return order[mid(0, len(order)-1)]
}

// rebuild the subtree rooting at i perfectly balanced, reusing its slots, and
// return its new root.
// Time: O(k)
func (u *base[S]) rebuild(i S) S {
	u.order = u.flatten(u.order[:0], i)
	return u.link(u.order)
}

// Rebalance the whole tree perfectly. Remove never rebalances, so this is the
// way to bound the height after many removals.
// Time: O(n)
func (u *base[S]) Rebalance() {
	u.root = u.rebuild(u.root)
}

// Height of the tree in edges; -1 when empty.
// Time: O(n)
func (u *base[S]) Height() int {
	h := -1
	if u.root == 0 {
		return h
	}
	q := Queues.MakeArrayQueue[S](uint(u.Size()/2 + 1))
	for q.Push(u.root); !q.Empty(); h++ {
		for n := q.Size(); n > 0; n-- {
			i, _ := q.Pop()
			c := u.ifs[i]
			if c.l != 0 {
				q.Push(c.l)
			}
			if c.r != 0 {
				q.Push(c.r)
			}
		}
	}
	return h
}
