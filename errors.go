package Go_Collections

import "strconv"

// Sentinels for errors.Is. The typed errors returned by the structures match them regardless of
// their fields.
var (
	ErrEmptyStructure  error = &EmptyStructureError{}
	ErrInvalidPosition error = &InvalidPositionError{}
	ErrNoSuchElement   error = &NoSuchElementError{}
)

// EmptyStructureError is returned when reading or removing an end of an empty structure.
type EmptyStructureError struct {
	Op string //the failed operation, may be empty.
}

func (e *EmptyStructureError) Error() string {
	if e.Op == "" {
		return "structure is empty"
	}
	return "structure is empty: cannot " + e.Op
}

func (e *EmptyStructureError) Is(target error) bool {
	_, ok := target.(*EmptyStructureError)
	return ok
}

// InvalidPositionError is returned for positional access outside [0,Size), or [0,Size] for insertions.
type InvalidPositionError struct {
	Pos, Size int
}

func (e *InvalidPositionError) Error() string {
	return "invalid position " + strconv.Itoa(e.Pos) + " for size " + strconv.Itoa(e.Size)
}

func (e *InvalidPositionError) Is(target error) bool {
	_, ok := target.(*InvalidPositionError)
	return ok
}

// NoSuchElementError is returned by Next or Previous of an exhausted iterator.
type NoSuchElementError struct {
}

func (e *NoSuchElementError) Error() string {
	return "iteration has no more elements"
}

func (e *NoSuchElementError) Is(target error) bool {
	_, ok := target.(*NoSuchElementError)
	return ok
}
