package forgery

import (
	"fmt"

	"github.com/rossipedia/Forgery/schema"
)

// RecordBuilder builds a T from one record
type RecordBuilder[T any] interface {
	Build(rec Record) (*T, error)
}

// InitializerBuilder constructs T with its default constructor then assigns
// every writable field from the record value of the same name
type InitializerBuilder[T any] struct {
	constructor *schema.Constructor[T]
	fields      []*schema.Field[T]
}

// NewInitializerBuilder resolves the default constructor and writable fields of table
func NewInitializerBuilder[T any](table *schema.Table[T]) (*InitializerBuilder[T], error) {
	info, err := schema.DefaultConstructor{}.SelectConstructor(table)
	if err != nil {
		return nil, err
	}

	dataFields, err := schema.WritableFields{}.EnumerateFields(table)
	if err != nil {
		return nil, err
	}

	builder := &InitializerBuilder[T]{constructor: table.Constructor(info)}
	for _, df := range dataFields {
		field := table.Field(df.FieldName)
		if field == nil {
			return nil, &schema.ValidationError{Type: table.TypeName(), Field: df.FieldName, Err: schema.ErrInvalidField}
		}
		builder.fields = append(builder.fields, field)
	}
	return builder, nil
}

func (b *InitializerBuilder[T]) Build(rec Record) (*T, error) {
	if rec == nil {
		return nil, nilArgument("record")
	}

	obj, err := b.constructor.New(nil)
	if err != nil {
		return nil, err
	}

	for _, field := range b.fields {
		value, err := rec.GetValue(field.Name)
		if err != nil {
			return nil, columnError(field.Name, err)
		}
		if err := assign(field, &obj, value); err != nil {
			return nil, columnError(field.Name, err)
		}
	}
	return &obj, nil
}

// assign sets value on field, resolving enumeration members stored by name
func assign[T any](field *schema.Field[T], obj *T, value interface{}) error {
	if s, ok := value.(string); ok && field.IsEnum {
		return field.SetEnumName(obj, s)
	}
	return field.Set(obj, value)
}

// ConstructorBuilder calls the constructor picked by a selector with the record
// values named after its parameters, converted to the parameter types
type ConstructorBuilder[T any] struct {
	constructor *schema.Constructor[T]
}

// NewConstructorBuilder resolves the constructor of table with selector
func NewConstructorBuilder[T any](table *schema.Table[T], selector schema.ConstructorSelector) (*ConstructorBuilder[T], error) {
	if selector == nil {
		return nil, nilArgument("selector")
	}

	info, err := selector.SelectConstructor(table)
	if err != nil {
		return nil, err
	}

	constructor := table.Constructor(info)
	if constructor == nil {
		return nil, &schema.ValidationError{Type: table.TypeName(), Err: fmt.Errorf("%w: constructor #%d", schema.ErrNoConstructor, info.Index)}
	}
	return &ConstructorBuilder[T]{constructor: constructor}, nil
}

func (b *ConstructorBuilder[T]) Build(rec Record) (*T, error) {
	if rec == nil {
		return nil, nilArgument("record")
	}

	args := make([]interface{}, 0, len(b.constructor.Params))
	for _, param := range b.constructor.Params {
		value, err := rec.GetValue(param.FieldName)
		if err != nil {
			return nil, columnError(param.FieldName, err)
		}

		arg, err := param.Convert(value)
		if err != nil {
			return nil, columnError(param.FieldName, err)
		}
		args = append(args, arg)
	}

	obj, err := b.constructor.New(args)
	if err != nil {
		return nil, err
	}
	return &obj, nil
}
