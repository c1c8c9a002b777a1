package Trees

import (
	"slices"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// The functions below answer the same queries as the O(D) ones by walking the
// whole tree. They are the reference the fast ones are checked against.

func countSlow[T any, S constraints.Unsigned](c *node[T, S], pred func(T) bool) (n S) {
	if c == nil {
		return 0
	}
	n = countSlow(c.l, pred) + countSlow(c.r, pred)
	if pred(c.v) {
		n++
	}
	return
}

func (u *base[T, S]) selectSlow(i S) (v T, has bool) {
	var sofar S
	u.InOrder(func(x T) bool {
		if sofar++; sofar == i {
			v, has = x, true
		}
		return !has
	})
	return
}

func (u *base[T, S]) rankSlow(v T) S {
	if !u.Has(v) {
		return 0
	}
	return countSlow(u.root, func(x T) bool { return u.compare(x, v) <= 0 })
}

func (u *base[T, S]) geqSlow(v T) S {
	return countSlow(u.root, func(x T) bool { return u.compare(x, v) >= 0 })
}

func (u *base[T, S]) leqSlow(v T) S {
	return countSlow(u.root, func(x T) bool { return u.compare(x, v) <= 0 })
}

func (u *base[T, S]) rangeSlow(lo, hi T) S {
	return countSlow(u.root, func(x T) bool { return u.compare(x, lo) >= 0 && u.compare(x, hi) <= 0 })
}

const (
	tOpsN     = 20000
	tOpsRange = 3000
	tCheckGap = 997
)

// crossCheck compares every query against the slow versions and against a
// red-black tree set and a B-tree holding the same elements.
func crossCheck(t *testing.T, tree *SBSet[int, uint32], rb *treeset.Set, bt *btree.BTreeG[int]) {
	t.Helper()
	if int(tree.Size()) != rb.Size() || int(tree.Size()) != bt.Len() {
		t.Fatalf("tree size is %d, want %d", tree.Size(), rb.Size())
	}
	want := make([]int, 0, rb.Size())
	for _, v := range rb.Values() {
		want = append(want, v.(int))
	}
	if !slices.Equal(tree.Slice(), want) {
		t.Fatal("in-order differs from treeset")
	}
	probes := []uint32{0, tree.Size(), tree.Size() + 1}
	for rep := 0; rep < 200; rep++ {
		probes = append(probes, uint32(rg.Intn(len(want)+1)))
	}
	for _, i := range probes {
		a, ok := tree.Select(i)
		b, okSlow := tree.selectSlow(i)
		if a != b || ok != okSlow {
			t.Fatalf("Select(%d) = %d %t, slow gives %d %t", i, a, ok, b, okSlow)
		}
		if ok && a != want[i-1] {
			t.Fatalf("Select(%d) = %d, treeset gives %d", i, a, want[i-1])
		}
	}
	for rep := 0; rep < 200; rep++ {
		v := rg.Intn(tOpsRange+20) - 10
		if a, b := tree.RankOf(v), tree.rankSlow(v); a != b {
			t.Fatalf("RankOf(%d) = %d, slow gives %d", v, a, b)
		}
		if a, b := tree.CountGeq(v), tree.geqSlow(v); a != b {
			t.Fatalf("CountGeq(%d) = %d, slow gives %d", v, a, b)
		}
		if a, b := tree.CountLeq(v), tree.leqSlow(v); a != b {
			t.Fatalf("CountLeq(%d) = %d, slow gives %d", v, a, b)
		}
		lo, hi := v, v+rg.Intn(tOpsRange/4)-tOpsRange/16
		if a, b := tree.CountRange(lo, hi), tree.rangeSlow(lo, hi); a != b {
			t.Fatalf("CountRange(%d, %d) = %d, slow gives %d", lo, hi, a, b)
		}
		got := tree.ExtractRange(lo, hi)
		exp := []int{}
		if lo <= hi {
			bt.AscendRange(lo, hi+1, func(x int) bool {
				exp = append(exp, x)
				return true
			})
		}
		if !slices.Equal(got, exp) {
			t.Fatalf("ExtractRange(%d, %d) = %v, btree gives %v", lo, hi, got, exp)
		}
	}
}

func TestSBSet_Oracle(t *testing.T) {
	tree := New[int, uint32]()
	rb := treeset.NewWithIntComparator()
	bt := btree.NewOrderedG[int](8)
	insertOnly := true
	for i := 0; i < tOpsN; i++ {
		v := rg.Intn(tOpsRange)
		if i == tOpsN/2 {
			insertOnly = false
		}
		if insertOnly || rg.Intn(3) > 0 {
			_, had := bt.ReplaceOrInsert(v)
			if tree.Insert(v) == had {
				t.Fatalf("Insert(%d) disagrees with btree", v)
			}
			rb.Add(v)
		} else {
			_, had := bt.Delete(v)
			if tree.Remove(v) != had {
				t.Fatalf("Remove(%d) disagrees with btree", v)
			}
			rb.Remove(v)
		}
		if i%tCheckGap == 0 {
			tree.check(t, insertOnly)
			crossCheck(t, tree, rb, bt)
		}
	}
	tree.check(t, false)
	crossCheck(t, tree, rb, bt)
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

func TestSBSet_Remove(t *testing.T) {
	tree := New[int, uint16]()
	content := hashmap.New[int, struct{}]()
	if tree.Remove(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content.Set(a[i], struct{}{})
	}
	for i, n := 0, rg.Intn(len(a)); i < n; i++ {
		_, in := content.Get(a[i])
		if b := tree.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		content.Del(a[i])
	}
	tree.check(t, false)
	if int(tree.Size()) != content.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), content.Len())
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	content.Range(func(k int, _ struct{}) bool {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
		return true
	})
	tree.InOrder(func(v int) bool {
		if _, in := content.Get(v); !in {
			t.Errorf("tree has non existent key %v", v)
		}
		return true
	})
	for rep := 0; rep < tAddN/2; rep++ {
		v := rg.Intn(tAddValRange)
		tree.Insert(v)
		content.Set(v, struct{}{})
	}
	tree.check(t, false)
	if int(tree.Size()) != content.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), content.Len())
	}
}
