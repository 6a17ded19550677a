package forgery

import (
	"context"
	"reflect"
	"sync"

	"github.com/rossipedia/Forgery/schema"
)

// Model the cached mapping artifacts of T. Every artifact is built on first use
// and shared by all callers afterwards.
type Model[T any] struct {
	mapper *Mapper
	schema *schema.Schema[T]
	table  *schema.Table[T]

	selectStatement func() string
	insertStatement func() string
	updateStatement func() (string, error)
	deleteStatement func() (string, error)

	insertBinder func() binder[T]
	updateBinder func() (binder[T], error)
	deleteBinder func() (binder[T], error)
}

// G returns the model of T, parsing its description on first access
func G[T schema.Model[T]](m *Mapper) (*Model[T], error) {
	if m == nil {
		return nil, nilArgument("mapper")
	}

	v, err := m.load(reflect.TypeOf((*T)(nil)).Elem(), func() (interface{}, error) {
		return newModel(m, schema.Describe[T]())
	})
	if err != nil {
		return nil, err
	}
	return v.(*Model[T]), nil
}

func newModel[T any](m *Mapper, table *schema.Table[T]) (*Model[T], error) {
	ctx := context.Background()

	s, err := schema.ParseTable(table, m.defaults())
	if err != nil {
		return nil, m.logError(ctx, "failed to parse schema", err)
	}
	m.Logger.Info(ctx, "parsed schema %s with %d columns", s, len(s.Columns))

	model := &Model[T]{mapper: m, schema: s, table: table}

	model.selectStatement = sync.OnceValue(func() string { return buildSelect(s) })
	model.insertStatement = sync.OnceValue(func() string { return buildInsert(s) })
	model.updateStatement = sync.OnceValues(func() (string, error) {
		sql, err := buildUpdate(s)
		return sql, m.logError(ctx, "failed to build update statement", err)
	})
	model.deleteStatement = sync.OnceValues(func() (string, error) {
		sql, err := buildDelete(s)
		return sql, m.logError(ctx, "failed to build delete statement", err)
	})

	model.insertBinder = sync.OnceValue(func() binder[T] {
		return model.buildBinder(opInsert, s.InsertableColumns())
	})
	model.updateBinder = sync.OnceValues(func() (binder[T], error) {
		if _, err := model.updateStatement(); err != nil {
			return nil, err
		}
		return model.buildBinder(opUpdate, s.UpdateBindColumns()), nil
	})
	model.deleteBinder = sync.OnceValues(func() (binder[T], error) {
		if _, err := model.deleteStatement(); err != nil {
			return nil, err
		}
		return model.buildBinder(opDelete, s.KeyColumns()), nil
	})

	return model, nil
}

// GetSchema the column metadata of T
func (model *Model[T]) GetSchema() *schema.Schema[T] {
	return model.schema
}

// Table the description T was parsed from
func (model *Model[T]) Table() *schema.Table[T] {
	return model.table
}

// SelectStatement SELECT <columns> FROM <table>, with a trailing space for criteria
func (model *Model[T]) SelectStatement() string {
	return model.selectStatement()
}

// InsertStatement inserts every column but the identity, returning the identity when there is one
func (model *Model[T]) InsertStatement() string {
	return model.insertStatement()
}

// UpdateStatement updates the updatable columns of the row matching the key columns
func (model *Model[T]) UpdateStatement() (string, error) {
	return model.updateStatement()
}

// DeleteStatement deletes the row matching the key columns
func (model *Model[T]) DeleteStatement() (string, error) {
	return model.deleteStatement()
}

// GetSchema the column metadata of T under the Default mapper
func GetSchema[T schema.Model[T]]() (*schema.Schema[T], error) {
	model, err := G[T](Default)
	if err != nil {
		return nil, err
	}
	return model.GetSchema(), nil
}

// SelectStatement the select statement of T under the Default mapper
func SelectStatement[T schema.Model[T]]() (string, error) {
	model, err := G[T](Default)
	if err != nil {
		return "", err
	}
	return model.SelectStatement(), nil
}

// InsertStatement the insert statement of T under the Default mapper
func InsertStatement[T schema.Model[T]]() (string, error) {
	model, err := G[T](Default)
	if err != nil {
		return "", err
	}
	return model.InsertStatement(), nil
}

// UpdateStatement the update statement of T under the Default mapper
func UpdateStatement[T schema.Model[T]]() (string, error) {
	model, err := G[T](Default)
	if err != nil {
		return "", err
	}
	return model.UpdateStatement()
}

// DeleteStatement the delete statement of T under the Default mapper
func DeleteStatement[T schema.Model[T]]() (string, error) {
	model, err := G[T](Default)
	if err != nil {
		return "", err
	}
	return model.DeleteStatement()
}

// MapRecord materializes rec as a T under the Default mapper
func MapRecord[T schema.Model[T]](rec Record) (*T, error) {
	model, err := G[T](Default)
	if err != nil {
		return nil, err
	}
	return model.MapRecord(rec)
}

// BindInsertParameters binds the insert parameters of obj under the Default mapper
func BindInsertParameters[T schema.Model[T]](cmd Command, obj *T) error {
	model, err := G[T](Default)
	if err != nil {
		return err
	}
	return model.BindInsertParameters(cmd, obj)
}

// BindUpdateParameters binds the update parameters of obj under the Default mapper
func BindUpdateParameters[T schema.Model[T]](cmd Command, obj *T) error {
	model, err := G[T](Default)
	if err != nil {
		return err
	}
	return model.BindUpdateParameters(cmd, obj)
}

// BindDeleteParameters binds the delete parameters of obj under the Default mapper
func BindDeleteParameters[T schema.Model[T]](cmd Command, obj *T) error {
	model, err := G[T](Default)
	if err != nil {
		return err
	}
	return model.BindDeleteParameters(cmd, obj)
}

// InsertAndCaptureIdentity executes an insert command under the Default mapper
func InsertAndCaptureIdentity[T schema.Model[T]](ctx context.Context, cmd Command, obj *T) (int64, error) {
	model, err := G[T](Default)
	if err != nil {
		return 0, err
	}
	return model.InsertAndCaptureIdentity(ctx, cmd, obj)
}
