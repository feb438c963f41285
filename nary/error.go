package nary

import "fmt"

type constError string

// ErrInsertPosition may be returned from [Forest.AddChildAt].
const ErrInsertPosition = constError("cannot insert")

func (errStr constError) Error() string { return string(errStr) }

func insertPositionError(at, length int) error {
	return fmt.Errorf(
		"%w: position %d exceeds child count %d",
		ErrInsertPosition, at, length)
}
