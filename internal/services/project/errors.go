package project

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound matches every *NotFoundError with errors.Is
var ErrProjectNotFound = errors.New("project not found")

// NotFoundError reports an identifier that does not resolve to a project.
// It is an expected outcome, unlike a data access failure.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project with ID=%d does not exist", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrProjectNotFound
}

func notFound(id int) error {
	return &NotFoundError{ID: id}
}
