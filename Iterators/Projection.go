package Iterators

import Go_Collections "github.com/g-m-twostay/go-collections"

// Transform applies f to each element of a source iterator. Order, laziness and restartability are
// those of the source.
type Transform[S any, T any] struct {
	src Go_Collections.Iterator[S]
	f   func(S) T
}

func NewTransform[S any, T any](src Go_Collections.Iterator[S], f func(S) T) *Transform[S, T] {
	return &Transform[S, T]{src, f}
}

func (u *Transform[S, T]) HasNext() bool {
	return u.src.HasNext()
}

func (u *Transform[S, T]) Next() (T, error) {
	if !u.src.HasNext() {
		return *new(T), &Go_Collections.NoSuchElementError{}
	}
	s, err := u.src.Next()
	if err != nil {
		return *new(T), err
	}
	return u.f(s), nil
}

func (u *Transform[S, T]) Rewind() {
	u.src.Rewind()
}

// Keys of an entry iterator.
type Keys[K any, V any] struct {
	src Go_Collections.Iterator[Go_Collections.Entry[K, V]]
}

func NewKeys[K any, V any](src Go_Collections.Iterator[Go_Collections.Entry[K, V]]) *Keys[K, V] {
	return &Keys[K, V]{src}
}

func (u *Keys[K, V]) HasNext() bool {
	return u.src.HasNext()
}

func (u *Keys[K, V]) Next() (K, error) {
	e, err := u.src.Next()
	return e.Key, err
}

func (u *Keys[K, V]) Rewind() {
	u.src.Rewind()
}

// Values of an entry iterator.
type Values[K any, V any] struct {
	src Go_Collections.Iterator[Go_Collections.Entry[K, V]]
}

func NewValues[K any, V any](src Go_Collections.Iterator[Go_Collections.Entry[K, V]]) *Values[K, V] {
	return &Values[K, V]{src}
}

func (u *Values[K, V]) HasNext() bool {
	return u.src.HasNext()
}

func (u *Values[K, V]) Next() (V, error) {
	e, err := u.src.Next()
	return e.Val, err
}

func (u *Values[K, V]) Rewind() {
	u.src.Rewind()
}
