package schema

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Kind the value kind of a field, used to pick a typed record accessor
type Kind uint8

const (
	KindOther Kind = iota
	KindString
	KindBool
	KindByte
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindTime
	KindUUID
)

var kindNames = [...]string{"other", "string", "bool", "byte", "int16", "int32", "int64", "float32", "float64", "time", "uuid"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var TimeReflectType = reflect.TypeOf(time.Time{})

func kindOf[V any]() Kind {
	var zero V
	switch any(zero).(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case uint8:
		return KindByte
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case time.Time:
		return KindTime
	case uuid.UUID:
		return KindUUID
	}
	return KindOther
}

// FieldConfig the markers declared on a single field
type FieldConfig struct {
	Key               bool
	Identity          bool
	Ignore            bool
	ReadOnly          bool
	CreatedTimestamp  bool
	ModifiedTimestamp bool
	// EnumSaveStrategy field level override, nil when the field declares none
	EnumSaveStrategy *EnumSaveStrategy
}

// Tag sets a marker on a FieldConfig
type Tag func(*FieldConfig)

var (
	// Key marks a field as part of the row key
	Key Tag = func(c *FieldConfig) { c.Key = true }
	// Identity marks a field whose value is generated by the database on insert
	Identity Tag = func(c *FieldConfig) { c.Identity = true }
	// Ignore excludes a field from the schema
	Ignore Tag = func(c *FieldConfig) { c.Ignore = true }
	// ReadOnly marks a member that cannot be set: it produces no column and is
	// left out of WritableFields, though a constructor parameter may still name it
	ReadOnly Tag = func(c *FieldConfig) { c.ReadOnly = true }
	// CreatedTimestamp the field is set to the current time on insert only
	CreatedTimestamp Tag = func(c *FieldConfig) { c.CreatedTimestamp = true }
	// ModifiedTimestamp the field is set to the current time on insert and update
	ModifiedTimestamp Tag = func(c *FieldConfig) { c.ModifiedTimestamp = true }
)

// SaveEnumAs overrides the save strategy of an enum field
func SaveEnumAs(strategy EnumSaveStrategy) Tag {
	return func(c *FieldConfig) {
		c.EnumSaveStrategy = &strategy
	}
}

// WithConfig copies every marker of cfg onto the field
func WithConfig(cfg FieldConfig) Tag {
	return func(c *FieldConfig) {
		*c = cfg
	}
}

// Field describes one member of a mapped type T
type Field[T any] struct {
	Name      string
	FieldType reflect.Type
	Kind      Kind
	Config    FieldConfig
	IsEnum    bool

	ValueOf func(*T) interface{}
	Set     func(*T, interface{}) error

	// set for enum fields only
	EnumName       func(*T) string
	SetEnumName    func(*T, string) error
	SetEnumOrdinal func(*T, int64) error
	enumStrategy   func() (EnumSaveStrategy, bool)
}

func (field *Field[T]) String() string {
	return fmt.Sprintf("%s %v", field.Name, field.FieldType)
}

// DataField the name/type view of the field
func (field *Field[T]) DataField() DataField {
	return DataField{FieldName: field.Name, FieldType: field.FieldType}
}

// NewField declares a member; addr returns the member's address inside obj
func NewField[T, V any](name string, addr func(obj *T) *V, tags ...Tag) *Field[T] {
	field := &Field[T]{
		Name:      name,
		FieldType: reflect.TypeOf((*V)(nil)).Elem(),
		Kind:      kindOf[V](),
	}

	for _, tag := range tags {
		tag(&field.Config)
	}

	field.ValueOf = func(obj *T) interface{} {
		return *addr(obj)
	}

	field.Set = func(obj *T, v interface{}) error {
		value, err := Coerce[V](v)
		if err != nil {
			return fmt.Errorf("failed to set field %s: %w", name, err)
		}
		*addr(obj) = value
		return nil
	}

	return field
}

// NewEnumField declares an enumeration member
func NewEnumField[T any, E Enum[E]](name string, addr func(obj *T) *E, tags ...Tag) *Field[T] {
	field := NewField(name, addr, tags...)
	field.IsEnum = true

	field.EnumName = func(obj *T) string {
		return (*addr(obj)).String()
	}

	field.SetEnumName = func(obj *T, s string) error {
		member, ok := enumByName[E](s)
		if !ok {
			return fmt.Errorf("%w: %q is not a member of %v", ErrInvalidEnumValue, s, field.FieldType)
		}
		*addr(obj) = member
		return nil
	}

	field.SetEnumOrdinal = func(obj *T, ordinal int64) error {
		member, ok := enumByOrdinal[E](ordinal)
		if !ok {
			return fmt.Errorf("%w: %d is not a member of %v", ErrInvalidEnumValue, ordinal, field.FieldType)
		}
		*addr(obj) = member
		return nil
	}

	var zero E
	if s, ok := any(zero).(EnumSaveStrategyer); ok {
		field.enumStrategy = func() (EnumSaveStrategy, bool) {
			return s.EnumSaveStrategy(), true
		}
	}

	return field
}

// enumSaveStrategy resolves field, then enum type, then module level markers
func (field *Field[T]) enumSaveStrategy(fallback EnumSaveStrategy) EnumSaveStrategy {
	if field.Config.EnumSaveStrategy != nil {
		return *field.Config.EnumSaveStrategy
	}
	if field.enumStrategy != nil {
		if s, ok := field.enumStrategy(); ok {
			return s
		}
	}
	return fallback
}
