package Go_Collections

// List is a positional sequence. Positions start at 0.
type List[E any] interface {
	IsEmpty() bool
	Size() int
	Iterator() Iterator[E]
	//GetFirst returns an EmptyStructureError on an empty list.
	GetFirst() (E, error)
	//GetLast returns an EmptyStructureError on an empty list.
	GetLast() (E, error)
	//Get element at pos. Returns an InvalidPositionError unless 0<=pos<Size().
	Get(pos int) (E, error)
	//IndexOf the first element equal to e, -1 if there is none.
	IndexOf(e E) int
	AddFirst(e E)
	AddLast(e E)
	//Add e at pos, shifting the later ones. Returns an InvalidPositionError unless 0<=pos<=Size().
	Add(pos int, e E) error
	RemoveFirst() (E, error)
	RemoveLast() (E, error)
	Remove(pos int) (E, error)
}

// TwoWayList is a List that can also be iterated backwards.
type TwoWayList[E any] interface {
	List[E]
	TwoWayIterator() TwoWayIterator[E]
}

// SortedList keeps its elements ordered by a comparator.
type SortedList[E any] interface {
	IsEmpty() bool
	Size() int
	Iterator() Iterator[E]
	Min() (E, error)
	Max() (E, error)
	//Get the first element that compares equal to e.
	Get(e E) (E, bool)
	Contains(e E) bool
	Add(e E)
	//Remove the first element equal to e.
	Remove(e E) (E, bool)
}
