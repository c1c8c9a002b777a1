package Trees

// Minimum element of the set.
// Time: O(D); Space: O(1)
func (u *base[T, S]) Minimum() (v T, has bool) {
	if cur := u.root; cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
	return
}

// Maximum element of the set. (zero, false) when the set is empty.
// Time: O(D); Space: O(1)
func (u *base[T, S]) Maximum() (v T, has bool) {
	if cur := u.root; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
	return
}

// Predecessor returns the greatest element less than v.
// Time: O(D); Space: O(1)
func (u *base[T, S]) Predecessor(v T) (T, bool) {
	var p *node[T, S]
	for cur := u.root; cur != nil; {
		if u.compare(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor returns the smallest element greater than v.
// Time: O(D); Space: O(1)
func (u *base[T, S]) Successor(v T) (T, bool) {
	var p *node[T, S]
	for cur := u.root; cur != nil; {
		if u.compare(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Select the i-th smallest element, 1<=i<=Size(). Returns (zero, false) for
// any other i.
// Time: O(D); Space: O(1)
func (u *base[T, S]) Select(i S) (T, bool) {
	if i == 0 || i > u.Size() {
		return *new(T), false
	}
	for cur := u.root; ; {
		if i <= cur.lc {
			cur = cur.l
		} else if i == cur.lc+1 {
			return cur.v, true
		} else {
			i -= cur.lc + 1
			cur = cur.r
		}
	}
}

// RankOf v, the position of v in ascending order starting from 1. Returns 0
// if v isn't in the set.
// Time: O(D); Space: O(1)
func (u *base[T, S]) RankOf(v T) S {
	var ra S
	for cur := u.root; cur != nil; {
		if order := u.compare(v, cur.v); order < 0 {
			cur = cur.l
		} else if order > 0 {
			ra += cur.lc + 1
			cur = cur.r
		} else {
			return ra + cur.lc + 1
		}
	}
	return 0
}

// CountGeq counts the elements greater than or equal to v. Whenever v<=cur.v,
// cur and its whole right subtree qualify.
// Time: O(D); Space: O(1)
func (u *base[T, S]) CountGeq(v T) (c S) {
	for cur := u.root; cur != nil; {
		if u.compare(v, cur.v) <= 0 {
			c += cur.rc + 1
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

// CountLeq counts the elements less than or equal to v.
// Time: O(D); Space: O(1)
func (u *base[T, S]) CountLeq(v T) (c S) {
	for cur := u.root; cur != nil; {
		if u.compare(v, cur.v) >= 0 {
			c += cur.lc + 1
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return
}

// CountRange counts the elements in [lo, hi]; 0 if hi<lo.
// Every element is counted by at least one of CountGeq(lo) and CountLeq(hi),
// and exactly the ones in range are counted by both.
// Time: O(D); Space: O(1)
func (u *base[T, S]) CountRange(lo, hi T) S {
	if u.compare(hi, lo) < 0 {
		return 0
	}
	return u.CountGeq(lo) + u.CountLeq(hi) - u.Size()
}

// ExtractRange returns the elements in [lo, hi] in ascending order. The result
// is empty, never nil, when nothing qualifies or hi<lo.
// Recursive. Time: O(D+k) where k is the number of elements returned.
func (u *base[T, S]) ExtractRange(lo, hi T) []T {
	if u.compare(hi, lo) < 0 {
		return []T{}
	}
	return u.extractRange(make([]T, 0, u.CountRange(lo, hi)), u.root, lo, hi)
}

// extractRange appends the elements of the subtree rooting at n that are in
// [lo, hi] to dst. Subtrees entirely outside the range aren't visited.
func (u *base[T, S]) extractRange(dst []T, n *node[T, S], lo, hi T) []T {
	for n != nil {
		if u.compare(hi, n.v) < 0 {
			n = n.l
		} else if u.compare(lo, n.v) > 0 {
			n = n.r
		} else {
			dst = u.extractRange(dst, n.l, lo, hi)
			dst = append(dst, n.v)
			n = n.r
		}
	}
	return dst
}

// InOrder calls f on every element in ascending order until f returns false.
// The set must not be modified during the iteration.
// Time: O(n); Space: O(D)
func (u *base[T, S]) InOrder(f func(T) bool) {
	st := make([]*node[T, S], 0, 32)
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// Slice of all elements in ascending order.
// Time: O(n)
func (u *base[T, S]) Slice() []T {
	return appendInOrder(make([]T, 0, u.Size()), u.root)
}
