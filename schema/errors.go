package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrMultipleIdentity more than one identity field declared
	ErrMultipleIdentity = errors.New("multiple identity fields")
	// ErrNoUpdatableColumns update requested for a type without non-key columns
	ErrNoUpdatableColumns = errors.New("no updatable columns")
	// ErrConflictingTimestamp a field marked both created and modified timestamp
	ErrConflictingTimestamp = errors.New("cannot be both created and modified timestamp")
	// ErrTimestampType a timestamp field that is not a time.Time
	ErrTimestampType = errors.New("timestamp field is not of type time.Time")
	// ErrDuplicateColumn two fields resolve to the same column name
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrInvalidField a field declared without a name or accessor
	ErrInvalidField = errors.New("invalid field")
	// ErrNoConstructor no constructor qualifies under a selection strategy
	ErrNoConstructor = errors.New("no qualifying constructor")
	// ErrAmbiguousConstructor more than one constructor qualifies
	ErrAmbiguousConstructor = errors.New("ambiguous constructor")
	// ErrInvalidEnumValue a stored value names no member of the enumeration
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrUnsupportedConversion a value that cannot be coerced to the field type
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// ValidationError a metadata configuration error found while parsing a type
type ValidationError struct {
	Type  string
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid schema %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("invalid schema %s: field %s: %v", e.Type, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
