package Trees

import (
	"cmp"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"golang.org/x/exp/constraints"
)

// BSTree is a sorted map on an unbalanced binary search tree with no repeated keys. Its depth D
// depends on the insertion order, O(n) in the worst case.
// The zero value isn't usable, create it using NewBST or NewBSTFunc.
type BSTree[K any, V any] struct {
	base[K, V]
}

// NewBST returns an empty BSTree ordering keys by <.
func NewBST[K constraints.Ordered, V any]() *BSTree[K, V] {
	return &BSTree[K, V]{makeBase[K, V](cmp.Compare[K])}
}

// NewBSTFunc returns an empty BSTree ordering keys by cmp, which returns a negative number when
// a<b, 0 when a==b, a positive number otherwise. cmp must be a total order.
func NewBSTFunc[K any, V any](cmp func(a, b K) int) *BSTree[K, V] {
	return &BSTree[K, V]{makeBase[K, V](cmp)}
}

// Put [Go_Collections.Map.Put]. An existing entry with an equal key is replaced, key included.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Put(key K, val V) (V, bool) {
	i, c := u.find(key)
	if i != 0 && c == 0 {
		old := u.ns[i].e.Val
		u.ns[i].e = Go_Collections.Entry[K, V]{Key: key, Val: val}
		return old, true
	}
	u.insertUnder(i, c, Go_Collections.Entry[K, V]{Key: key, Val: val})
	return *new(V), false
}

// Remove [Go_Collections.Map.Remove]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Remove(key K) (V, bool) {
	i, c := u.find(key)
	if i == 0 || c != 0 {
		return *new(V), false
	}
	old := u.ns[i].e.Val
	u.removeNode(i)
	return old, true
}

// Corrupt reports whether the tree violates the binary search tree order or has inconsistent
// parent links.
func (u *BSTree[K, V]) Corrupt() bool {
	return u.corrupt(false)
}
