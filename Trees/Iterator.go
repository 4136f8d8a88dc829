package Trees

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Iterators"
)

// inOrder walks the tree in ascending key order through the parent handles, so it needs no stack.
// The tree must not be modified during the iteration; doing so doesn't panic, but the entries given
// afterwards are undefined.
type inOrder[K any, V any] struct {
	t          *base[K, V]
	next, prev handle
}

func newInOrder[K any, V any](t *base[K, V]) *inOrder[K, V] {
	u := &inOrder[K, V]{t: t}
	u.Rewind()
	return u
}

func (u *inOrder[K, V]) HasNext() bool {
	return u.next != 0
}

// Next [Go_Collections.Iterator.Next]
// Time: amortized O(1)
func (u *inOrder[K, V]) Next() (Go_Collections.Entry[K, V], error) {
	if u.next == 0 {
		return Go_Collections.Entry[K, V]{}, &Go_Collections.NoSuchElementError{}
	}
	cur := u.next
	u.next, u.prev = u.t.successor(cur), cur
	return u.t.ns[cur].e, nil
}

func (u *inOrder[K, V]) HasPrevious() bool {
	return u.prev != 0
}

// Previous [Go_Collections.TwoWayIterator.Previous]
// Time: amortized O(1)
func (u *inOrder[K, V]) Previous() (Go_Collections.Entry[K, V], error) {
	if u.prev == 0 {
		return Go_Collections.Entry[K, V]{}, &Go_Collections.NoSuchElementError{}
	}
	cur := u.prev
	u.next, u.prev = cur, u.t.predecessor(cur)
	return u.t.ns[cur].e, nil
}

// Rewind to the minimum.
// Time: O(D)
func (u *inOrder[K, V]) Rewind() {
	u.next, u.prev = 0, 0
	if u.t.root != 0 {
		u.next = u.t.minimum(u.t.root)
	}
}

// FullForward to after the maximum.
// Time: O(D)
func (u *inOrder[K, V]) FullForward() {
	u.next, u.prev = 0, 0
	if u.t.root != 0 {
		u.prev = u.t.maximum(u.t.root)
	}
}

// Iterator of the entries in ascending key order.
// Time: O(D)
func (u *base[K, V]) Iterator() Go_Collections.Iterator[Go_Collections.Entry[K, V]] {
	return newInOrder(u)
}

// TwoWayIterator of the entries, Next going in ascending and Previous in descending key order.
func (u *base[K, V]) TwoWayIterator() Go_Collections.TwoWayIterator[Go_Collections.Entry[K, V]] {
	return newInOrder(u)
}

// Keys in ascending order.
func (u *base[K, V]) Keys() Go_Collections.Iterator[K] {
	return Iterators.NewKeys[K, V](newInOrder(u))
}

// Values in ascending order of their keys.
func (u *base[K, V]) Values() Go_Collections.Iterator[V] {
	return Iterators.NewValues[K, V](newInOrder(u))
}
