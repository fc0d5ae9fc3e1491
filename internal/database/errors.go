package database

import (
	"errors"
	"fmt"
)

// ErrDataAccess matches every *Error with errors.Is
var ErrDataAccess = errors.New("data access failure")

// Error is returned by every ProjectDao method that fails. The enclosing
// transaction has already been rolled back by the time the caller sees it.
type Error struct {
	Op  string // DAO operation, e.g. "fetch project"
	Err error  // driver or binding error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataAccess, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDataAccess
func (e *Error) Is(target error) bool {
	return target == ErrDataAccess
}
