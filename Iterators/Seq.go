package Iterators

import (
	"iter"

	Go_Collections "github.com/g-m-twostay/go-collections"
)

// Seq adapts it for range-over-func. The returned sequence continues from the current position of
// it and consumes it; call it.Rewind first to range over everything.
func Seq[T any](it Go_Collections.Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Seq2 adapts an entry iterator the same way as Seq.
func Seq2[K any, V any](it Go_Collections.Iterator[Go_Collections.Entry[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it.HasNext() {
			e, err := it.Next()
			if err != nil || !yield(e.Key, e.Val) {
				return
			}
		}
	}
}

// Collect the remaining elements of it into a slice.
func Collect[T any](it Go_Collections.Iterator[T]) []T {
	var r []T
	for v := range Seq(it) {
		r = append(r, v)
	}
	return r
}

// Count the remaining elements of it.
func Count[T any](it Go_Collections.Iterator[T]) (n int) {
	for range Seq(it) {
		n++
	}
	return
}
