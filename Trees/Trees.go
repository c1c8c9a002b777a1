// Package Trees implements an ordered set on a size-balanced binary search
// tree.
//
// Every node stores the sizes of its two subtrees. Those counters make rank,
// select and counting queries run in O(D), where D is the height of the tree,
// instead of walking whole subtrees. Balance is restored after insertions by
// flattening each subtree on the insertion path whose sizes drift more than
// about 2:1 apart and rebuilding it perfectly balanced; no rotations are used.
// Removals never rebalance: the height after a sequence of removals is bounded
// by the height before it, and the next insertions repair the touched paths.
// Call Rebalance to rebuild the whole tree explicitly.
//
// Receivers that has a bool as a second return value use it to indicate
// whether the first return value is defined. When it's false the first value
// is the zero value of T.
// Methods implemented recursively are noted, otherwise they are iterative.
// None of the types here are safe for concurrent use.
package Trees

import "github.com/g-m-twostay/ostset/Sets"

var (
	_ Sets.OrderedSet[int, uint]    = (*SBSet[int, uint])(nil)
	_ Sets.OrderedSet[string, uint] = (*CSBSet[string, uint])(nil)
)

