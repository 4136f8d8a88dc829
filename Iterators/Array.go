package Iterators

import Go_Collections "github.com/g-m-twostay/go-collections"

// Array iterates over a slice in index order. The slice is captured at creation, so the view is
// frozen: growing the structure the slice came from isn't visible, overwriting its elements is.
type Array[T any] struct {
	elems []T
	cur   int
}

// NewArray iterator over elems. Pass elems[:n] to iterate over only the first n elements.
func NewArray[T any](elems []T) *Array[T] {
	return &Array[T]{elems: elems}
}

// HasNext [Go_Collections.Iterator.HasNext]
// Time: O(1)
func (u *Array[T]) HasNext() bool {
	return u.cur < len(u.elems)
}

// Next [Go_Collections.Iterator.Next]
// Time: O(1)
func (u *Array[T]) Next() (T, error) {
	if !u.HasNext() {
		return *new(T), &Go_Collections.NoSuchElementError{}
	}
	u.cur++
	return u.elems[u.cur-1], nil
}

// Rewind [Go_Collections.Iterator.Rewind]
// Time: O(1)
func (u *Array[T]) Rewind() {
	u.cur = 0
}

type empty[T any] struct{}

// Empty iterator. Always exhausted.
func Empty[T any]() Go_Collections.Iterator[T] {
	return empty[T]{}
}

func (empty[T]) HasNext() bool {
	return false
}

func (empty[T]) Next() (T, error) {
	return *new(T), &Go_Collections.NoSuchElementError{}
}

func (empty[T]) Rewind() {}
