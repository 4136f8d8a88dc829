package Lists

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
)

var (
	_ Go_Collections.TwoWayList[int] = (*DoublyLinkedList[int])(nil)
	_ Go_Collections.List[int]       = (*ArrayList[int])(nil)
	_ Go_Collections.SortedList[int] = (*SortedDoublyLinkedList[int])(nil)
)

// DoublyLinkedList with head and tail references. The zero value isn't usable, create it with New
// or NewFunc.
// Walking nx from head reaches tail in exactly sz-1 steps and pv from tail reaches head the same way.
type DoublyLinkedList[E any] struct {
	head, tail *node[E]
	sz         int
	eq         func(a, b E) bool
}

// New list whose IndexOf compares elements with ==.
func New[E comparable]() *DoublyLinkedList[E] {
	return &DoublyLinkedList[E]{eq: func(a, b E) bool { return a == b }}
}

// NewFunc list whose IndexOf compares elements with eq.
func NewFunc[E any](eq func(a, b E) bool) *DoublyLinkedList[E] {
	return &DoublyLinkedList[E]{eq: eq}
}

// From builds a list holding elems in order.
func From[E comparable](elems ...E) *DoublyLinkedList[E] {
	u := New[E]()
	for _, e := range elems {
		u.AddLast(e)
	}
	return u
}

func (u *DoublyLinkedList[E]) IsEmpty() bool {
	return u.sz == 0
}

func (u *DoublyLinkedList[E]) Size() int {
	return u.sz
}

// Iterator from head to tail.
// Time: O(1)
func (u *DoublyLinkedList[E]) Iterator() Go_Collections.Iterator[E] {
	return newIterator(u.head)
}

// TwoWayIterator over the list, starting before the head.
// Time: O(1)
func (u *DoublyLinkedList[E]) TwoWayIterator() Go_Collections.TwoWayIterator[E] {
	return newTwoWayIterator(u.head, u.tail)
}

// AddFirst inserts e before the head.
// Time: O(1)
func (u *DoublyLinkedList[E]) AddFirst(e E) {
	n := &node[E]{v: e, nx: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.pv = n
	}
	u.head = n
	u.sz++
}

// AddLast inserts e after the tail.
// Time: O(1)
func (u *DoublyLinkedList[E]) AddLast(e E) {
	n := &node[E]{v: e, pv: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.nx = n
	}
	u.tail = n
	u.sz++
}

// Add e so that it ends up at pos.
// Time: O(min(pos, Size()-pos))
func (u *DoublyLinkedList[E]) Add(pos int, e E) error {
	if pos < 0 || pos > u.sz {
		return &Go_Collections.InvalidPositionError{Pos: pos, Size: u.sz}
	}
	if pos == 0 {
		u.AddFirst(e)
	} else if pos == u.sz {
		u.AddLast(e)
	} else {
		cur := u.nodeAt(pos)
		n := &node[E]{v: e, pv: cur.pv, nx: cur}
		cur.pv.nx = n
		cur.pv = n
		u.sz++
	}
	return nil
}

// nodeAt pos, walking from whichever end is closer. 0<=pos<sz.
func (u *DoublyLinkedList[E]) nodeAt(pos int) *node[E] {
	if pos < u.sz>>1 {
		cur := u.head
		for ; pos > 0; pos-- {
			cur = cur.nx
		}
		return cur
	}
	cur := u.tail
	for i := u.sz - 1; i > pos; i-- {
		cur = cur.pv
	}
	return cur
}

// GetFirst element.
// Time: O(1)
func (u *DoublyLinkedList[E]) GetFirst() (E, error) {
	if u.head == nil {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "GetFirst"}
	}
	return u.head.v, nil
}

// GetLast element.
// Time: O(1)
func (u *DoublyLinkedList[E]) GetLast() (E, error) {
	if u.tail == nil {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "GetLast"}
	}
	return u.tail.v, nil
}

// Get the element at pos.
// Time: O(min(pos, Size()-pos))
func (u *DoublyLinkedList[E]) Get(pos int) (E, error) {
	if pos < 0 || pos >= u.sz {
		return *new(E), &Go_Collections.InvalidPositionError{Pos: pos, Size: u.sz}
	}
	return u.nodeAt(pos).v, nil
}

// IndexOf [Go_Collections.List.IndexOf]
// Time: O(n)
func (u *DoublyLinkedList[E]) IndexOf(e E) int {
	i := 0
	for cur := u.head; cur != nil; cur = cur.nx {
		if u.eq(cur.v, e) {
			return i
		}
		i++
	}
	return -1
}

// RemoveFirst element.
// Time: O(1)
func (u *DoublyLinkedList[E]) RemoveFirst() (E, error) {
	if u.head == nil {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "RemoveFirst"}
	}
	return u.removeNode(u.head), nil
}

// RemoveLast element.
// Time: O(1)
func (u *DoublyLinkedList[E]) RemoveLast() (E, error) {
	if u.tail == nil {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "RemoveLast"}
	}
	return u.removeNode(u.tail), nil
}

// Remove the element at pos.
// Time: O(min(pos, Size()-pos))
func (u *DoublyLinkedList[E]) Remove(pos int) (E, error) {
	if pos < 0 || pos >= u.sz {
		return *new(E), &Go_Collections.InvalidPositionError{Pos: pos, Size: u.sz}
	}
	return u.removeNode(u.nodeAt(pos)), nil
}

func (u *DoublyLinkedList[E]) removeNode(n *node[E]) E {
	if n == u.head {
		u.head = n.nx
	}
	if n == u.tail {
		u.tail = n.pv
	}
	n.unlink()
	u.sz--
	return n.v
}
