package forgery

import (
	"time"

	"github.com/rossipedia/Forgery/schema"
)

type operation int

const (
	opInsert operation = iota
	opUpdate
	opDelete
)

type binder[T any] func(cmd Command, obj *T)

func (model *Model[T]) buildBinder(op operation, columns []*schema.Column[T]) binder[T] {
	nowFunc := model.mapper.NowFunc
	return func(cmd Command, obj *T) {
		now := nowFunc()
		for _, column := range columns {
			setParameter(cmd, column.ParamName, columnValue(op, column, obj, now))
		}
	}
}

// columnValue timestamps win over the field value, then enums resolve to their
// name or ordinal, everything else is bound as is
func columnValue[T any](op operation, column *schema.Column[T], obj *T, now time.Time) interface{} {
	switch {
	case column.IsCreatedTimestamp && op == opInsert,
		column.IsModifiedTimestamp && (op == opInsert || op == opUpdate):
		return now
	case column.IsEnum && column.EnumSaveStrategy == schema.EnumString:
		return column.Field.EnumName(obj)
	case column.IsEnum:
		return schema.EnumDBValue(column.Field.ValueOf(obj), schema.EnumNumeric)
	}
	return column.Field.ValueOf(obj)
}

// setParameter overwrites the parameter named name in place, adding it when missing
func setParameter(cmd Command, name string, value interface{}) {
	params := cmd.Parameters()
	if params.Contains(name) {
		params.Get(name).SetValue(value)
		return
	}

	p := cmd.CreateParameter()
	p.SetName(name)
	p.SetValue(value)
	params.Add(p)
}

// BindInsertParameters binds every insertable column of obj to cmd
func (model *Model[T]) BindInsertParameters(cmd Command, obj *T) error {
	if cmd == nil {
		return nilArgument("cmd")
	}
	if obj == nil {
		return nilArgument("obj")
	}

	model.insertBinder()(cmd, obj)
	return nil
}

// BindUpdateParameters binds the SET and key columns of obj to cmd
func (model *Model[T]) BindUpdateParameters(cmd Command, obj *T) error {
	if cmd == nil {
		return nilArgument("cmd")
	}
	if obj == nil {
		return nilArgument("obj")
	}

	bind, err := model.updateBinder()
	if err != nil {
		return err
	}
	bind(cmd, obj)
	return nil
}

// BindDeleteParameters binds the key columns of obj to cmd
func (model *Model[T]) BindDeleteParameters(cmd Command, obj *T) error {
	if cmd == nil {
		return nilArgument("cmd")
	}
	if obj == nil {
		return nilArgument("obj")
	}

	bind, err := model.deleteBinder()
	if err != nil {
		return err
	}
	bind(cmd, obj)
	return nil
}
