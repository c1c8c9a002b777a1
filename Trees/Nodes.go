package Trees

import "golang.org/x/exp/constraints"

// A node in the set.
// lc and rc are the numbers of nodes in the left and right subtree, not
// counting the node itself. A nil *node is the empty subtree. Every node is
// owned by exactly one parent, or by the set when it's the root.
type node[T any, S constraints.Unsigned] struct {
	v      T
	l, r   *node[T, S]
	lc, rc S
}

// size of the subtree rooting at n.
// Time: O(1)
func size[T any, S constraints.Unsigned](n *node[T, S]) S {
	if n == nil {
		return 0
	}
	return n.lc + n.rc + 1
}

// sizeBalanced is the balance predicate checked after every insertion: the
// bigger subtree holds at most 2*smaller+1 nodes. This keeps the height in
// O(log n) without rotations.
func sizeBalanced[S constraints.Unsigned](lc, rc S) bool {
	return max(lc, rc) <= 2*min(lc, rc)+1
}

// build a perfectly balanced subtree from the ascending slice s. The middle
// element becomes the root, so the height is bits.Len(len(s))-1.
// Recursive. Time: O(n)
func build[T any, S constraints.Unsigned](s []T) *node[T, S] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &node[T, S]{s[mid], build[T, S](s[:mid]), build[T, S](s[mid+1:]), S(mid), S(len(s) - mid - 1)}
}

// appendInOrder appends the values in the subtree rooting at n to dst in
// ascending order.
// Recursive on left children only. Time: O(n)
func appendInOrder[T any, S constraints.Unsigned](dst []T, n *node[T, S]) []T {
	for ; n != nil; n = n.r {
		dst = appendInOrder(dst, n.l)
		dst = append(dst, n.v)
	}
	return dst
}
