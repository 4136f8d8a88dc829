package Lists

import Go_Collections "github.com/g-m-twostay/go-collections"

// iterator walks nx links from first.
type iterator[E any] struct {
	first, next *node[E]
}

func newIterator[E any](first *node[E]) *iterator[E] {
	return &iterator[E]{first, first}
}

func (u *iterator[E]) HasNext() bool {
	return u.next != nil
}

func (u *iterator[E]) Next() (E, error) {
	if u.next == nil {
		return *new(E), &Go_Collections.NoSuchElementError{}
	}
	cur := u.next
	u.next = cur.nx
	return cur.v, nil
}

func (u *iterator[E]) Rewind() {
	u.next = u.first
}

// twoWayIterator keeps prev one step behind next: prev is always the node last returned by either
// Next or Previous, or the node before it when it was returned by Previous.
type twoWayIterator[E any] struct {
	iterator[E]
	last, prev *node[E]
}

func newTwoWayIterator[E any](first, last *node[E]) *twoWayIterator[E] {
	return &twoWayIterator[E]{iterator: iterator[E]{first, first}, last: last}
}

func (u *twoWayIterator[E]) Next() (E, error) {
	if u.next == nil {
		return *new(E), &Go_Collections.NoSuchElementError{}
	}
	cur := u.next
	u.next, u.prev = cur.nx, cur
	return cur.v, nil
}

func (u *twoWayIterator[E]) HasPrevious() bool {
	return u.prev != nil
}

func (u *twoWayIterator[E]) Previous() (E, error) {
	if u.prev == nil {
		return *new(E), &Go_Collections.NoSuchElementError{}
	}
	cur := u.prev
	u.next, u.prev = cur, cur.pv
	return cur.v, nil
}

// FullForward [Go_Collections.TwoWayIterator.FullForward]
// Time: O(1)
func (u *twoWayIterator[E]) FullForward() {
	u.next, u.prev = nil, u.last
}

func (u *twoWayIterator[E]) Rewind() {
	u.next, u.prev = u.first, nil
}
