package Lists

import (
	"cmp"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"golang.org/x/exp/constraints"
)

// SortedDoublyLinkedList keeps elements in ascending order of cmp. Equal elements keep their
// insertion order.
type SortedDoublyLinkedList[E any] struct {
	head, tail *node[E]
	sz         int
	cmp        func(a, b E) int
}

func NewSorted[E constraints.Ordered]() *SortedDoublyLinkedList[E] {
	return &SortedDoublyLinkedList[E]{cmp: cmp.Compare[E]}
}

// NewSortedFunc orders by cmp, which returns a negative number when a<b, 0 when a==b, a positive
// number otherwise.
func NewSortedFunc[E any](cmp func(a, b E) int) *SortedDoublyLinkedList[E] {
	return &SortedDoublyLinkedList[E]{cmp: cmp}
}

func (u *SortedDoublyLinkedList[E]) IsEmpty() bool {
	return u.sz == 0
}

func (u *SortedDoublyLinkedList[E]) Size() int {
	return u.sz
}

func (u *SortedDoublyLinkedList[E]) Iterator() Go_Collections.Iterator[E] {
	return newIterator(u.head)
}

// TwoWayIterator in ascending order.
func (u *SortedDoublyLinkedList[E]) TwoWayIterator() Go_Collections.TwoWayIterator[E] {
	return newTwoWayIterator(u.head, u.tail)
}

// Min element.
// Time: O(1)
func (u *SortedDoublyLinkedList[E]) Min() (E, error) {
	if u.head == nil {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "Min"}
	}
	return u.head.v, nil
}

// Max element.
// Time: O(1)
func (u *SortedDoublyLinkedList[E]) Max() (E, error) {
	if u.tail == nil {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "Max"}
	}
	return u.tail.v, nil
}

func (u *SortedDoublyLinkedList[E]) find(e E) *node[E] {
	for cur := u.head; cur != nil; cur = cur.nx {
		if c := u.cmp(cur.v, e); c == 0 {
			return cur
		} else if c > 0 {
			break
		}
	}
	return nil
}

// Get [Go_Collections.SortedList.Get]
// Time: O(n)
func (u *SortedDoublyLinkedList[E]) Get(e E) (E, bool) {
	if n := u.find(e); n != nil {
		return n.v, true
	}
	return *new(E), false
}

func (u *SortedDoublyLinkedList[E]) Contains(e E) bool {
	return u.find(e) != nil
}

// Add e after the last element that isn't greater than it.
// Time: O(n)
func (u *SortedDoublyLinkedList[E]) Add(e E) {
	cur := u.head
	for cur != nil && u.cmp(cur.v, e) <= 0 {
		cur = cur.nx
	}
	n := &node[E]{v: e}
	if cur == nil { //after tail
		n.pv = u.tail
		if u.tail == nil {
			u.head = n
		} else {
			u.tail.nx = n
		}
		u.tail = n
	} else {
		n.pv, n.nx = cur.pv, cur
		if cur.pv == nil {
			u.head = n
		} else {
			cur.pv.nx = n
		}
		cur.pv = n
	}
	u.sz++
}

// Remove the first element comparing equal to e.
// Time: O(n)
func (u *SortedDoublyLinkedList[E]) Remove(e E) (E, bool) {
	n := u.find(e)
	if n == nil {
		return *new(E), false
	}
	if n == u.head {
		u.head = n.nx
	}
	if n == u.tail {
		u.tail = n.pv
	}
	n.unlink()
	u.sz--
	return n.v, true
}
