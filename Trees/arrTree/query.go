package arrTree

func (u *ArrSet[T, S]) Has(v T) bool {
	for curI := u.root; curI != 0; {
		if cv := u.getV(curI); v < cv {
			curI = u.ifs[curI].l
		} else if v > cv {
			curI = u.ifs[curI].r
		} else {
			return true
		}
	}
	return false
}

func (u *ArrSet[T, S]) Minimum() (T, bool) {
	if curI := u.root; curI != 0 {
		for u.ifs[curI].l != 0 {
			curI = u.ifs[curI].l
		}
		return u.getV(curI), true
	}
	return *new(T), false
}

func (u *ArrSet[T, S]) Maximum() (T, bool) {
	if curI := u.root; curI != 0 {
		for u.ifs[curI].r != 0 {
			curI = u.ifs[curI].r
		}
		return u.getV(curI), true
	}
	return *new(T), false
}

// Predecessor of v, the greatest element less than v.
func (u *ArrSet[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v <= u.getV(curI) {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.getV(p), true
}

// Successor of v, the smallest element greater than v.
func (u *ArrSet[T, S]) Successor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v < u.getV(curI) {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.getV(p), true
}

// Select the k-th smallest element, starting from 1.
func (u *ArrSet[T, S]) Select(k S) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	for curI := u.root; ; {
		if cur := u.ifs[curI]; k <= cur.lc {
			curI = cur.l
		} else if k > cur.lc+1 {
			k -= cur.lc + 1
			curI = cur.r
		} else {
			return u.getV(curI), true
		}
	}
}

// RankOf v, starting from 1. 0 if v isn't found.
func (u *ArrSet[T, S]) RankOf(v T) S {
	var ra S
	for curI := u.root; curI != 0; {
		if cur := u.ifs[curI]; v < u.getV(curI) {
			curI = cur.l
		} else if v > u.getV(curI) {
			ra += cur.lc + 1
			curI = cur.r
		} else {
			return ra + cur.lc + 1
		}
	}
	return 0
}

func (u *ArrSet[T, S]) CountGeq(v T) (c S) {
	for curI := u.root; curI != 0; {
		if cur := u.ifs[curI]; v <= u.getV(curI) {
			c += cur.rc + 1
			curI = cur.l
		} else {
			curI = cur.r
		}
	}
	return
}

func (u *ArrSet[T, S]) CountLeq(v T) (c S) {
	for curI := u.root; curI != 0; {
		if cur := u.ifs[curI]; v >= u.getV(curI) {
			c += cur.lc + 1
			curI = cur.r
		} else {
			curI = cur.l
		}
	}
	return
}

func (u *ArrSet[T, S]) CountRange(lo, hi T) S {
	if hi < lo {
		return 0
	}
	return u.CountGeq(lo) + u.CountLeq(hi) - u.Size()
}

// ExtractRange returns the elements in [lo, hi] in ascending order, never nil.
// Recursive. Time: O(D+k)
func (u *ArrSet[T, S]) ExtractRange(lo, hi T) []T {
	if hi < lo {
		return []T{}
	}
	return u.extractRange(make([]T, 0, u.CountRange(lo, hi)), u.root, lo, hi)
}

func (u *ArrSet[T, S]) extractRange(dst []T, curI S, lo, hi T) []T {
	for curI != 0 {
		if cv := u.getV(curI); hi < cv {
			curI = u.ifs[curI].l
		} else if lo > cv {
			curI = u.ifs[curI].r
		} else {
			dst = u.extractRange(dst, u.ifs[curI].l, lo, hi)
			dst = append(dst, cv)
			curI = u.ifs[curI].r
		}
	}
	return dst
}

// InOrder calls f on every element in ascending order until f returns false.
func (u *ArrSet[T, S]) InOrder(f func(T) bool) {
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.getV(curI)) {
			return
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
}

// Slice of all elements in ascending order, in a new slice.
func (u *ArrSet[T, S]) Slice() []T {
	s := make([]T, 0, u.Size())
	u.InOrder(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Corrupt reports whether the ordering or some counter is broken, or whether
// a slot is both in the tree and in the free list.
// Time: O(n)
func (u *ArrSet[T, S]) Corrupt() bool {
	free := make(map[S]struct{})
	for i := u.free; i != 0; i = u.ifs[i].l {
		if _, in := free[i]; in || int(i) >= len(u.ifs) {
			return true
		}
		free[i] = struct{}{}
	}
	if int(u.Size())+len(free) != u.Slots() || len(u.vs) != u.Slots() {
		return true
	}
	order := u.flatten(nil, u.root)
	if len(order) != int(u.Size()) {
		return true
	}
	for k, i := range order {
		if _, in := free[i]; in || (k > 0 && u.getV(order[k-1]) >= u.getV(i)) {
			return true
		}
		if c := u.ifs[i]; c.lc != u.sizeOf(c.l) || c.rc != u.sizeOf(c.r) {
			return true
		}
	}
	return false
}
