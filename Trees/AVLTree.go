package Trees

import (
	"cmp"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"golang.org/x/exp/constraints"
)

// AVLTree is a sorted map on a binary search tree that keeps, for every node, the heights of the
// two subtrees within 1 of each other. This bounds the depth D by 1.44*log2(n+2), so Put, Get and
// Remove are O(log n).
// The zero value isn't usable, create it using NewAVL or NewAVLFunc.
type AVLTree[K any, V any] struct {
	base[K, V]
}

// NewAVL returns an empty AVLTree ordering keys by <.
func NewAVL[K constraints.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{makeBase[K, V](cmp.Compare[K])}
}

// NewAVLFunc returns an empty AVLTree ordering keys by cmp. See NewBSTFunc.
func NewAVLFunc[K any, V any](cmp func(a, b K) int) *AVLTree[K, V] {
	return &AVLTree[K, V]{makeBase[K, V](cmp)}
}

// Put [Go_Collections.Map.Put]. An existing entry with an equal key is replaced, key included.
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V]) Put(key K, val V) (V, bool) {
	i, c := u.find(key)
	if i != 0 && c == 0 {
		old := u.ns[i].e.Val
		u.ns[i].e = Go_Collections.Entry[K, V]{Key: key, Val: val}
		return old, true
	}
	u.rebalance(u.insertUnder(i, c, Go_Collections.Entry[K, V]{Key: key, Val: val}))
	return *new(V), false
}

// Remove [Go_Collections.Map.Remove]
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V]) Remove(key K) (V, bool) {
	i, c := u.find(key)
	if i == 0 || c != 0 {
		return *new(V), false
	}
	old := u.ns[i].e.Val
	u.rebalance(u.removeNode(i))
	return old, true
}

// tallerChild of i. On a tie the child on the same side as i is under its parent is picked, so that
// the restructuring is a single rotation; the left one if i is the root.
func (u *AVLTree[K, V]) tallerChild(i handle) handle {
	l, r := u.ns[i].l, u.ns[i].r
	if lh, rh := u.ns[l].h, u.ns[r].h; lh > rh {
		return l
	} else if lh < rh {
		return r
	}
	if p := u.ns[i].p; p == 0 {
		if l != 0 {
			return l
		}
		return r
	} else if u.ns[p].l == i {
		return l
	}
	return r
}

// rebalance walks from i up to the root recomputing heights. The first unbalanced node z met is
// restructured with its taller child y and y's taller child x, and the walk continues above the
// new subtree root.
// Time: O(log n)
func (u *AVLTree[K, V]) rebalance(i handle) {
	for cur := i; cur != 0; cur = u.ns[cur].p {
		u.updateHeight(cur)
		if b := u.balance(cur); b > 1 || b < -1 {
			cur = u.restructure(u.tallerChild(u.tallerChild(cur)))
		}
	}
}

// Corrupt reports whether the tree violates the binary search tree order, has inconsistent parent
// links, stale heights, or a node whose balance factor is outside [-1,1].
func (u *AVLTree[K, V]) Corrupt() bool {
	return u.corrupt(true)
}
