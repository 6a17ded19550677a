package schema

import (
	"fmt"
)

// TypeDescriptor the type-erased shape of a mapped type
type TypeDescriptor interface {
	TypeName() string
	Members() []Member
	ConstructorInfos() []*ConstructorInfo
}

// Member a declared field and whether it may be assigned after construction
type Member struct {
	DataField
	Writable bool
}

// FieldResolutionStrategy decides what counts as a mappable field of a type
type FieldResolutionStrategy interface {
	EnumerateFields(TypeDescriptor) ([]DataField, error)
}

// ConstructorSelector picks the constructor used to build a type
type ConstructorSelector interface {
	SelectConstructor(TypeDescriptor) (*ConstructorInfo, error)
}

// WritableFields every writable member, in declaration order
type WritableFields struct{}

func (WritableFields) EnumerateFields(desc TypeDescriptor) ([]DataField, error) {
	var fields []DataField
	for _, member := range desc.Members() {
		if member.Writable {
			fields = append(fields, member.DataField)
		}
	}
	return fields, nil
}

// ConstructorParameters the parameters of the constructor chosen by Selector
type ConstructorParameters struct {
	Selector ConstructorSelector
}

func (s ConstructorParameters) EnumerateFields(desc TypeDescriptor) ([]DataField, error) {
	constructor, err := s.Selector.SelectConstructor(desc)
	if err != nil {
		return nil, err
	}
	return append([]DataField(nil), constructor.Params...), nil
}

// DefaultConstructor the single zero-parameter constructor
type DefaultConstructor struct{}

func (DefaultConstructor) SelectConstructor(desc TypeDescriptor) (*ConstructorInfo, error) {
	return single(desc, "a default constructor", func(c *ConstructorInfo) bool {
		return len(c.Params) == 0
	})
}

// MostSpecificConstructor the constructor with the most parameters, first declared on a tie
type MostSpecificConstructor struct{}

func (MostSpecificConstructor) SelectConstructor(desc TypeDescriptor) (*ConstructorInfo, error) {
	var selected *ConstructorInfo
	for _, c := range desc.ConstructorInfos() {
		if selected == nil || len(c.Params) > len(selected.Params) {
			selected = c
		}
	}

	if selected == nil {
		return nil, &ValidationError{Type: desc.TypeName(), Err: fmt.Errorf("%w: the type provides no constructors", ErrNoConstructor)}
	}
	return selected, nil
}

// MarkedConstructor the single constructor declared with Mark
type MarkedConstructor struct{}

func (MarkedConstructor) SelectConstructor(desc TypeDescriptor) (*ConstructorInfo, error) {
	return single(desc, "a marked constructor", func(c *ConstructorInfo) bool {
		return c.Marked
	})
}

func single(desc TypeDescriptor, what string, fc func(*ConstructorInfo) bool) (*ConstructorInfo, error) {
	var matches []*ConstructorInfo
	for _, c := range desc.ConstructorInfos() {
		if fc(c) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, &ValidationError{Type: desc.TypeName(), Err: fmt.Errorf("%w: the type does not provide %s", ErrNoConstructor, what)}
	}
	return nil, &ValidationError{Type: desc.TypeName(), Err: fmt.Errorf("%w: the type provides %d candidates for %s", ErrAmbiguousConstructor, len(matches), what)}
}
