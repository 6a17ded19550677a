package forgery

import (
	"errors"
	"fmt"

	"github.com/rossipedia/Forgery/logger"
)

var (
	// ErrFieldNotFound a record has no field of the requested name
	ErrFieldNotFound = logger.ErrFieldNotFound
	// ErrNilArgument a required argument is nil
	ErrNilArgument = errors.New("argument must not be nil")
	// ErrPrimaryKeyRequired update or delete of a type without key columns
	ErrPrimaryKeyRequired = errors.New("primary key required")
	// ErrEmptyCommandText command text is blank
	ErrEmptyCommandText = errors.New("command text must not be empty")
	// ErrInvalidModel describing or parsing a type panicked
	ErrInvalidModel = errors.New("invalid model")
	// ErrDuplicatedKey a write violated a unique key, as reported by the dialect
	ErrDuplicatedKey = errors.New("duplicated key not allowed")
)

// FieldNotFoundError a mapped column missing from the record being materialized
type FieldNotFoundError struct {
	Column string
	Err    error
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("column %s: %v", e.Column, ErrFieldNotFound)
}

func (e *FieldNotFoundError) Unwrap() error {
	if e.Err == nil {
		return ErrFieldNotFound
	}
	return e.Err
}

func nilArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}
