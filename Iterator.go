package Go_Collections

// Iterator is a restartable lazy sequence.
// Iterators aren't fail-fast: they hold direct references into the structure they came from, and the
// result of Next is undefined if that structure is modified during the iteration. Snapshot
// iterators(slice backed) keep seeing the slice they were created with.
type Iterator[T any] interface {
	//HasNext reports whether Next would return an element. It doesn't consume anything.
	HasNext() bool
	//Next element of the iteration. Returns a NoSuchElementError when HasNext is false.
	Next() (T, error)
	//Rewind restarts the iteration, after which Next returns the first element again.
	Rewind()
}

// TwoWayIterator is an Iterator that can also walk backwards.
// The two cursors are coupled: right after Next returns x, Previous returns x as well, and right
// after Previous returns x, Next returns x.
type TwoWayIterator[T any] interface {
	Iterator[T]
	HasPrevious() bool
	//Previous element of the iteration. Returns a NoSuchElementError when HasPrevious is false.
	Previous() (T, error)
	//FullForward moves to the end of the iteration, after which Previous returns the last element.
	FullForward()
}
