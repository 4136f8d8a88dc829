package Lists

import (
	"slices"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Iterators"
)

const growFactor = 2

// ArrayList is a List backed by a slice that doubles when full. Insertions and removals away from
// the end shift the later elements.
type ArrayList[E any] struct {
	elems []E
	eq    func(a, b E) bool
}

// NewArrayList with room for capacity elements before growing.
func NewArrayList[E comparable](capacity int) *ArrayList[E] {
	return NewArrayListFunc[E](capacity, func(a, b E) bool { return a == b })
}

func NewArrayListFunc[E any](capacity int, eq func(a, b E) bool) *ArrayList[E] {
	if capacity <= 0 {
		capacity = Go_Collections.DefaultCapacity
	}
	return &ArrayList[E]{make([]E, 0, capacity), eq}
}

func (u *ArrayList[E]) IsEmpty() bool {
	return len(u.elems) == 0
}

func (u *ArrayList[E]) Size() int {
	return len(u.elems)
}

// Iterator over the current elements. Its length is fixed at creation, later shifts of the elements
// are visible to it.
func (u *ArrayList[E]) Iterator() Go_Collections.Iterator[E] {
	return Iterators.NewArray(u.elems[:len(u.elems):len(u.elems)])
}

func (u *ArrayList[E]) GetFirst() (E, error) {
	if len(u.elems) == 0 {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "GetFirst"}
	}
	return u.elems[0], nil
}

func (u *ArrayList[E]) GetLast() (E, error) {
	if len(u.elems) == 0 {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "GetLast"}
	}
	return u.elems[len(u.elems)-1], nil
}

// Get [Go_Collections.List.Get]
// Time: O(1)
func (u *ArrayList[E]) Get(pos int) (E, error) {
	if pos < 0 || pos >= len(u.elems) {
		return *new(E), &Go_Collections.InvalidPositionError{Pos: pos, Size: len(u.elems)}
	}
	return u.elems[pos], nil
}

func (u *ArrayList[E]) IndexOf(e E) int {
	return slices.IndexFunc(u.elems, func(x E) bool { return u.eq(x, e) })
}

// grow the backing array by growFactor when it's full.
func (u *ArrayList[E]) grow() {
	if len(u.elems) == cap(u.elems) {
		ne := make([]E, len(u.elems), max(cap(u.elems)*growFactor, 1))
		copy(ne, u.elems)
		u.elems = ne
	}
}

// AddFirst [Go_Collections.List.AddFirst]
// Time: O(n)
func (u *ArrayList[E]) AddFirst(e E) {
	u.grow()
	u.elems = slices.Insert(u.elems, 0, e)
}

// AddLast [Go_Collections.List.AddLast]
// Time: amortized O(1)
func (u *ArrayList[E]) AddLast(e E) {
	u.grow()
	u.elems = append(u.elems, e)
}

func (u *ArrayList[E]) Add(pos int, e E) error {
	if pos < 0 || pos > len(u.elems) {
		return &Go_Collections.InvalidPositionError{Pos: pos, Size: len(u.elems)}
	}
	u.grow()
	u.elems = slices.Insert(u.elems, pos, e)
	return nil
}

func (u *ArrayList[E]) RemoveFirst() (E, error) {
	if len(u.elems) == 0 {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "RemoveFirst"}
	}
	return u.removeAt(0), nil
}

// RemoveLast [Go_Collections.List.RemoveLast]
// Time: O(1)
func (u *ArrayList[E]) RemoveLast() (E, error) {
	if len(u.elems) == 0 {
		return *new(E), &Go_Collections.EmptyStructureError{Op: "RemoveLast"}
	}
	return u.removeAt(len(u.elems) - 1), nil
}

func (u *ArrayList[E]) Remove(pos int) (E, error) {
	if pos < 0 || pos >= len(u.elems) {
		return *new(E), &Go_Collections.InvalidPositionError{Pos: pos, Size: len(u.elems)}
	}
	return u.removeAt(pos), nil
}

// removeAt shifts the later elements down and clears the freed slot.
func (u *ArrayList[E]) removeAt(pos int) E {
	e := u.elems[pos]
	u.elems = slices.Delete(u.elems, pos, pos+1) //Delete zeroes the vacated tail element.
	return e
}
