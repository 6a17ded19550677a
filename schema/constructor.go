package schema

import (
	"fmt"
	"reflect"
)

// Parameter a constructor parameter; Convert coerces a record value to its type
type Parameter struct {
	DataField
	Convert func(interface{}) (interface{}, error)
}

// Param declares a constructor parameter of type A
func Param[A any](name string) Parameter {
	return Parameter{
		DataField: DataField{FieldName: name, FieldType: reflect.TypeOf((*A)(nil)).Elem()},
		Convert: func(v interface{}) (interface{}, error) {
			value, err := Coerce[A](v)
			if err != nil {
				return nil, fmt.Errorf("failed to convert parameter %s: %w", name, err)
			}
			return value, nil
		},
	}
}

// Constructor builds a T from positional arguments matching Params
type Constructor[T any] struct {
	Params []Parameter
	Marked bool
	New    func(args []interface{}) (T, error)
}

// NewConstructor declares a constructor of T
func NewConstructor[T any](fn func(args []interface{}) (T, error), params ...Parameter) *Constructor[T] {
	return &Constructor[T]{Params: params, New: fn}
}

// Mark flags the constructor for MarkedConstructor selection
func (c *Constructor[T]) Mark() *Constructor[T] {
	c.Marked = true
	return c
}

// Info the type-erased view used by constructor selectors
func (c *Constructor[T]) Info(index int) *ConstructorInfo {
	info := &ConstructorInfo{Index: index, Marked: c.Marked}
	for _, p := range c.Params {
		info.Params = append(info.Params, p.DataField)
	}
	return info
}

// ConstructorInfo describes a declared constructor without its type
type ConstructorInfo struct {
	Index  int
	Params []DataField
	Marked bool
}

func defaultConstructor[T any]() *Constructor[T] {
	return &Constructor[T]{New: func([]interface{}) (T, error) {
		var zero T
		return zero, nil
	}}
}
