package Trees

import (
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/ostset/Queues"
)

// base is the part shared by SBSet and CSBSet. compare returns a negative
// number if a<b, 0 if a==b and a positive number if a>b.
type base[T any, S constraints.Unsigned] struct {
	root    *node[T, S]
	compare func(a, b T) int
	buf     []T // scratch space for rebuild, kept between calls.
}

// Size of the set.
// Time: O(1)
func (u *base[T, S]) Size() S {
	return size(u.root)
}

// Clear removes all elements. The nodes are left to the garbage collector.
// Time: O(1)
func (u *base[T, S]) Clear() {
	u.root, u.buf = nil, nil
}

// rebuild the subtree rooting at n into a perfectly balanced one made of new
// nodes and return its root. The old nodes are dropped.
// Time: O(k) where k is the size of the subtree.
func (u *base[T, S]) rebuild(n *node[T, S]) *node[T, S] {
	u.buf = appendInOrder(u.buf[:0], n)
	r := build[T, S](u.buf)
	clear(u.buf)
	return r
}

// Rebalance rebuilds the whole tree perfectly balanced. Remove never
// rebalances, so this is the way to bound the height after many removals.
// Time: O(n)
func (u *base[T, S]) Rebalance() {
	u.root = u.rebuild(u.root)
}

// insert v to the subtree rooting at *curPtr recursively. curPtr is the link
// from the parent, so the subtree can be replaced. Returns false if v is
// already present, in which case nothing is modified.
// The balance predicate is checked at every node on the way back up, and the
// subtree is rebuilt at each node where it fails.
func (u *base[T, S]) insert(curPtr **node[T, S], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T, S]{v: v}
		return true
	}
	inserted := false
	if order := u.compare(v, cur.v); order < 0 {
		if inserted = u.insert(&cur.l, v); inserted {
			cur.lc++
		}
	} else if order > 0 {
		if inserted = u.insert(&cur.r, v); inserted {
			cur.rc++
		}
	} else {
		return false
	}
	if inserted && !sizeBalanced(cur.lc, cur.rc) {
		*curPtr = u.rebuild(cur)
	}
	return inserted
}

// Insert v. Returns true if v wasn't in the set.
// Recursive. Time: O(D), amortized over the rebuilds.
func (u *base[T, S]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// remove v from the subtree rooting at *curPtr recursively. Returns false if
// v isn't in the subtree. A node with two children takes the minimum of its
// right subtree as its value and that minimum is removed from the right
// subtree instead. remove never rebalances, so after removals D is bounded by
// the height before them rather than by O(log n).
func (u *base[T, S]) remove(curPtr **node[T, S], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	deleted := false
	if order := u.compare(v, cur.v); order < 0 {
		if deleted = u.remove(&cur.l, v); deleted {
			cur.lc--
		}
	} else if order > 0 {
		if deleted = u.remove(&cur.r, v); deleted {
			cur.rc--
		}
	} else {
		deleted = true
		if cur.l == nil {
			*curPtr = cur.r
		} else if cur.r == nil {
			*curPtr = cur.l
		} else {
			m := cur.r
			for m.l != nil {
				m = m.l
			}
			cur.v = m.v
			u.remove(&cur.r, cur.v)
			cur.rc--
		}
	}
	return deleted
}

// Remove v. Returns true if v was in the set.
// Recursive. Time: O(D)
func (u *base[T, S]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Has v in the set.
// Time: O(D); Space: O(1)
func (u *base[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if order := u.compare(v, cur.v); order < 0 {
			cur = cur.l
		} else if order > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Height of the tree in edges; -1 when empty. Walks the tree level by level.
// Time: O(n); Space: O(width of the tree)
func (u *base[T, S]) Height() int {
	h := -1
	if u.root == nil {
		return h
	}
	q := Queues.MakeArrayQueue[*node[T, S]](uint(u.Size()/2 + 1))
	for q.Push(u.root); !q.Empty(); h++ {
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return h
}

// Corrupt reports whether the tree breaks the ordering or whether some counter
// disagrees with the real size of its subtree. It doesn't check balance.
// Recursive. Time: O(n)
func (u *base[T, S]) Corrupt() bool {
	var prev *T
	_, bad := u.corrupt(u.root, &prev)
	return bad
}

func (u *base[T, S]) corrupt(n *node[T, S], prev **T) (S, bool) {
	if n == nil {
		return 0, false
	}
	lsz, bad := u.corrupt(n.l, prev)
	if bad || (*prev != nil && u.compare(**prev, n.v) >= 0) {
		return 0, true
	}
	*prev = &n.v
	rsz, bad := u.corrupt(n.r, prev)
	if bad || lsz != n.lc || rsz != n.rc {
		return 0, true
	}
	return lsz + rsz + 1, false
}
