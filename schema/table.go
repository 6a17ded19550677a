package schema

import (
	"reflect"

	"github.com/rossipedia/Forgery/utils"
)

// Model is implemented by types that describe their own table mapping.
// Describe is called on the zero value, once per parse.
type Model[T any] interface {
	Describe(*Table[T])
}

// Table collects the declaration of a mapped type
type Table[T any] struct {
	// Name the type name used by table naming, the Go type name by default
	Name string
	// Table explicit table name, wins over every naming rule
	Table string
	// Prefix type level table prefix, prepended to Name
	Prefix string

	fields               []*Field[T]
	constructors         []*Constructor[T]
	defaultConstructor   *Constructor[T]
	noDefaultConstructor bool
}

// NewTable an empty description of T
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		Name:               reflect.TypeOf((*T)(nil)).Elem().Name(),
		defaultConstructor: defaultConstructor[T](),
	}
}

// Describe returns the declaration of a Model type
func Describe[T Model[T]]() *Table[T] {
	var zero T
	table := NewTable[T]()
	zero.Describe(table)
	return table
}

// Fields appends members in declaration order
func (t *Table[T]) Fields(fields ...*Field[T]) *Table[T] {
	t.fields = append(t.fields, fields...)
	return t
}

// Construct declares constructors of T
func (t *Table[T]) Construct(constructors ...*Constructor[T]) *Table[T] {
	t.constructors = append(t.constructors, constructors...)
	return t
}

// NoDefaultConstructor removes the implicit zero-argument constructor
func (t *Table[T]) NoDefaultConstructor() *Table[T] {
	t.noDefaultConstructor = true
	return t
}

// TypeName implements TypeDescriptor
func (t *Table[T]) TypeName() string {
	return t.Name
}

// Members implements TypeDescriptor
func (t *Table[T]) Members() []Member {
	members := make([]Member, 0, len(t.fields))
	for _, field := range t.fields {
		members = append(members, Member{DataField: field.DataField(), Writable: !field.Config.ReadOnly})
	}
	return members
}

// ConstructorInfos implements TypeDescriptor
func (t *Table[T]) ConstructorInfos() []*ConstructorInfo {
	constructors := t.allConstructors()
	infos := make([]*ConstructorInfo, 0, len(constructors))
	for idx, c := range constructors {
		infos = append(infos, c.Info(idx))
	}
	return infos
}

// Constructor returns the constructor a ConstructorInfo was taken from
func (t *Table[T]) Constructor(info *ConstructorInfo) *Constructor[T] {
	constructors := t.allConstructors()
	if info == nil || info.Index < 0 || info.Index >= len(constructors) {
		return nil
	}
	return constructors[info.Index]
}

// Field looks a declared member up by name, case-insensitively
func (t *Table[T]) Field(name string) *Field[T] {
	for _, field := range t.fields {
		if utils.EqualFold(field.Name, name) {
			return field
		}
	}
	return nil
}

func (t *Table[T]) allConstructors() []*Constructor[T] {
	if t.noDefaultConstructor {
		return t.constructors
	}
	if t.defaultConstructor == nil {
		t.defaultConstructor = defaultConstructor[T]()
	}
	return append([]*Constructor[T]{t.defaultConstructor}, t.constructors...)
}
