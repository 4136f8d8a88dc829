package Iterators

import Go_Collections "github.com/g-m-twostay/go-collections"

// Filter gives the elements of a source iterator that satisfy a predicate, in source order.
// It looks one match ahead: the next match is searched for on creation, on Rewind, and right
// after each Next, so HasNext is O(1). The predicate is therefore evaluated on an element before
// the call to Next that returns it, which matters for predicates with side effects.
// Restartable iff the source is.
type Filter[T any] struct {
	src  Go_Collections.Iterator[T]
	pred func(T) bool
	next T
	has  bool
}

// NewFilter wraps src. Consumes src up to its first match.
// Time: O(k) where k is the number of leading elements of src that don't match.
func NewFilter[T any](src Go_Collections.Iterator[T], pred func(T) bool) *Filter[T] {
	u := &Filter[T]{src: src, pred: pred}
	u.advance()
	return u
}

// advance buffers the next match of src, if any.
func (u *Filter[T]) advance() {
	u.next, u.has = *new(T), false
	for u.src.HasNext() {
		v, err := u.src.Next()
		if err != nil {
			return
		}
		if u.pred(v) {
			u.next, u.has = v, true
			return
		}
	}
}

// HasNext [Go_Collections.Iterator.HasNext]
// Time: O(1)
func (u *Filter[T]) HasNext() bool {
	return u.has
}

// Next [Go_Collections.Iterator.Next]
// Time: O(k) where k is the number of skipped non matching elements.
func (u *Filter[T]) Next() (T, error) {
	if !u.has {
		return *new(T), &Go_Collections.NoSuchElementError{}
	}
	v := u.next
	u.advance()
	return v, nil
}

// Rewind the source and look for its first match again.
func (u *Filter[T]) Rewind() {
	u.src.Rewind()
	u.advance()
}
