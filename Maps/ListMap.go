package Maps

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Iterators"
)

type listNode[K comparable, V any] struct {
	e  Go_Collections.Entry[K, V]
	nx *listNode[K, V]
}

// ListMap is a map on a singly linked list with linear lookups. It's meant for a handful of
// entries, mainly as the bucket of ChainMap. New entries go to the front.
// The zero value is an empty map ready to use.
type ListMap[K comparable, V any] struct {
	head *listNode[K, V]
	sz   int
}

func NewListMap[K comparable, V any]() *ListMap[K, V] {
	return new(ListMap[K, V])
}

func (u *ListMap[K, V]) find(key K) *listNode[K, V] {
	for cur := u.head; cur != nil; cur = cur.nx {
		if cur.e.Key == key {
			return cur
		}
	}
	return nil
}

// Put [Go_Collections.Map.Put]
// Time: O(n)
func (u *ListMap[K, V]) Put(key K, val V) (V, bool) {
	if n := u.find(key); n != nil {
		old := n.e.Val
		n.e.Val = val
		return old, true
	}
	u.head = &listNode[K, V]{Go_Collections.Entry[K, V]{Key: key, Val: val}, u.head}
	u.sz++
	return *new(V), false
}

// Get [Go_Collections.Map.Get]
// Time: O(n)
func (u *ListMap[K, V]) Get(key K) (V, bool) {
	if n := u.find(key); n != nil {
		return n.e.Val, true
	}
	return *new(V), false
}

// Remove [Go_Collections.Map.Remove]
// Time: O(n)
func (u *ListMap[K, V]) Remove(key K) (V, bool) {
	for prev := &u.head; *prev != nil; prev = &(*prev).nx {
		if cur := *prev; cur.e.Key == key {
			*prev = cur.nx
			u.sz--
			return cur.e.Val, true
		}
	}
	return *new(V), false
}

func (u *ListMap[K, V]) Size() int {
	return u.sz
}

func (u *ListMap[K, V]) IsEmpty() bool {
	return u.sz == 0
}

// Iterator from the most recently added entry.
func (u *ListMap[K, V]) Iterator() Go_Collections.Iterator[Go_Collections.Entry[K, V]] {
	return &listIterator[K, V]{u.head, u.head}
}

func (u *ListMap[K, V]) Keys() Go_Collections.Iterator[K] {
	return Iterators.NewKeys(u.Iterator())
}

func (u *ListMap[K, V]) Values() Go_Collections.Iterator[V] {
	return Iterators.NewValues(u.Iterator())
}

type listIterator[K comparable, V any] struct {
	first, next *listNode[K, V]
}

func (u *listIterator[K, V]) HasNext() bool {
	return u.next != nil
}

func (u *listIterator[K, V]) Next() (Go_Collections.Entry[K, V], error) {
	if u.next == nil {
		return Go_Collections.Entry[K, V]{}, &Go_Collections.NoSuchElementError{}
	}
	cur := u.next
	u.next = cur.nx
	return cur.e, nil
}

func (u *listIterator[K, V]) Rewind() {
	u.next = u.first
}
