package schema

import (
	"fmt"

	"github.com/rossipedia/Forgery/utils"
)

// Schema the table metadata derived from a mapped type; immutable once parsed
type Schema[T any] struct {
	Name           string
	Table          string
	Columns        []*Column[T]
	IdentityColumn *Column[T]
	columnsByName  map[string]*Column[T]
}

// Column one mapped field
type Column[T any] struct {
	Name                string
	ParamName           string
	IsKey               bool
	IsIdentity          bool
	IsEnum              bool
	EnumSaveStrategy    EnumSaveStrategy
	IsCreatedTimestamp  bool
	IsModifiedTimestamp bool
	Kind                Kind
	Field               *Field[T]
}

func (schema *Schema[T]) String() string {
	return fmt.Sprintf("%s(%s)", schema.Name, schema.Table)
}

// LookUpColumn finds a column by name, case-insensitively
func (schema *Schema[T]) LookUpColumn(name string) *Column[T] {
	return schema.columnsByName[utils.Fold(name)]
}

// KeyColumns columns used in WHERE clauses
func (schema *Schema[T]) KeyColumns() []*Column[T] {
	return schema.filter((*Column[T]).IsKeyColumn)
}

// InsertableColumns every column but the identity
func (schema *Schema[T]) InsertableColumns() []*Column[T] {
	return schema.filter((*Column[T]).IsInsertable)
}

// UpdatableColumns every column but identity, key and created timestamp ones
func (schema *Schema[T]) UpdatableColumns() []*Column[T] {
	return schema.filter((*Column[T]).IsUpdatable)
}

// UpdateBindColumns the columns an update binds: the SET columns and the WHERE keys
func (schema *Schema[T]) UpdateBindColumns() []*Column[T] {
	return schema.filter(func(column *Column[T]) bool {
		return column.IsUpdatable() || column.IsKey
	})
}

func (schema *Schema[T]) filter(fc func(*Column[T]) bool) []*Column[T] {
	columns := make([]*Column[T], 0, len(schema.Columns))
	for _, column := range schema.Columns {
		if fc(column) {
			columns = append(columns, column)
		}
	}
	return columns
}

func (column *Column[T]) IsKeyColumn() bool {
	return column.IsKey
}

func (column *Column[T]) IsInsertable() bool {
	return !column.IsIdentity
}

func (column *Column[T]) IsUpdatable() bool {
	return !(column.IsIdentity || column.IsKey || column.IsCreatedTimestamp)
}

// Parse builds the schema of a Model type
func Parse[T Model[T]](defaults Defaults) (*Schema[T], error) {
	return ParseTable(Describe[T](), defaults)
}

// ParseTable builds a schema from an explicit declaration
func ParseTable[T any](t *Table[T], defaults Defaults) (*Schema[T], error) {
	schema := &Schema[T]{
		Name:          t.Name,
		Table:         tableName(t, defaults.namer()),
		columnsByName: map[string]*Column[T]{},
	}

	for _, field := range t.fields {
		// only settable members become columns
		if field == nil || field.Config.Ignore || field.Config.ReadOnly {
			continue
		}

		column, err := schema.parseColumn(field, defaults)
		if err != nil {
			return nil, err
		}

		if _, ok := schema.columnsByName[utils.Fold(column.Name)]; ok {
			return nil, &ValidationError{Type: schema.Name, Field: field.Name, Err: ErrDuplicateColumn}
		}

		if column.IsIdentity {
			if schema.IdentityColumn != nil {
				return nil, &ValidationError{Type: schema.Name, Field: field.Name, Err: ErrMultipleIdentity}
			}
			schema.IdentityColumn = column
		}

		schema.columnsByName[utils.Fold(column.Name)] = column
		schema.Columns = append(schema.Columns, column)
	}

	return schema, nil
}

func (schema *Schema[T]) parseColumn(field *Field[T], defaults Defaults) (*Column[T], error) {
	if field.Name == "" || field.ValueOf == nil || field.Set == nil {
		return nil, &ValidationError{Type: schema.Name, Field: field.Name, Err: ErrInvalidField}
	}

	column := &Column[T]{
		Name:                field.Name,
		ParamName:           "@" + field.Name,
		IsKey:               field.Config.Key,
		IsIdentity:          field.Config.Identity,
		IsEnum:              field.IsEnum,
		IsCreatedTimestamp:  field.Config.CreatedTimestamp,
		IsModifiedTimestamp: field.Config.ModifiedTimestamp,
		Kind:                field.Kind,
		Field:               field,
	}

	if column.IsEnum {
		column.EnumSaveStrategy = field.enumSaveStrategy(defaults.EnumSaveStrategy)
	}

	if column.IsCreatedTimestamp && column.IsModifiedTimestamp {
		return nil, &ValidationError{Type: schema.Name, Field: field.Name, Err: ErrConflictingTimestamp}
	}

	if (column.IsCreatedTimestamp || column.IsModifiedTimestamp) && field.FieldType != TimeReflectType {
		return nil, &ValidationError{Type: schema.Name, Field: field.Name, Err: ErrTimestampType}
	}

	return column, nil
}
