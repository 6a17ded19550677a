package forgery

import (
	"errors"
	"fmt"
	"iter"

	"github.com/rossipedia/Forgery/schema"
	"github.com/rossipedia/Forgery/utils"
)

// MapRecord materializes rec into a new T, column by column
func (model *Model[T]) MapRecord(rec Record) (*T, error) {
	if rec == nil {
		return nil, nilArgument("record")
	}

	obj := new(T)
	for _, column := range model.schema.Columns {
		if err := readColumn(rec, column, obj); err != nil {
			return nil, columnError(column.Name, err)
		}
	}
	return obj, nil
}

// MapAll materializes every remaining record of reader
func (model *Model[T]) MapAll(reader Reader) ([]*T, error) {
	var results []*T
	for obj, err := range model.Rows(reader) {
		if err != nil {
			return results, err
		}
		results = append(results, obj)
	}
	return results, nil
}

// Rows iterates reader, yielding one materialized T per record.
// Iteration stops after the first error.
func (model *Model[T]) Rows(reader Reader) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		if reader == nil {
			yield(nil, nilArgument("reader"))
			return
		}

		for reader.Next() {
			obj, err := model.MapRecord(reader)
			if !yield(obj, err) || err != nil {
				return
			}
		}

		if err := reader.Err(); err != nil {
			yield(nil, err)
		}
	}
}

func readColumn[T any](rec Record, column *schema.Column[T], obj *T) error {
	if column.IsEnum {
		return readEnum(rec, column, obj)
	}

	if column.Kind == schema.KindOther {
		value, err := rec.GetValue(column.Name)
		if err != nil {
			return err
		}
		return column.Field.Set(obj, value)
	}

	ordinal, err := rec.GetOrdinal(column.Name)
	if err != nil {
		return err
	}

	value, err := typedValue(rec, ordinal, column.Kind)
	if err != nil {
		return err
	}
	return column.Field.Set(obj, value)
}

func readEnum[T any](rec Record, column *schema.Column[T], obj *T) error {
	value, err := rec.GetValue(column.Name)
	if err != nil || value == nil {
		return err
	}

	if column.EnumSaveStrategy == schema.EnumString {
		return column.Field.SetEnumName(obj, utils.ToString(value))
	}

	ordinal, err := schema.CoerceInt64(value)
	if err != nil {
		return err
	}
	return column.Field.SetEnumOrdinal(obj, ordinal)
}

func typedValue(rec Record, i int, kind schema.Kind) (interface{}, error) {
	switch kind {
	case schema.KindString:
		return rec.GetString(i)
	case schema.KindBool:
		return rec.GetBool(i)
	case schema.KindByte:
		return rec.GetByte(i)
	case schema.KindInt16:
		return rec.GetInt16(i)
	case schema.KindInt32:
		return rec.GetInt32(i)
	case schema.KindInt64:
		return rec.GetInt64(i)
	case schema.KindFloat32:
		return rec.GetFloat32(i)
	case schema.KindFloat64:
		return rec.GetFloat64(i)
	case schema.KindTime:
		return rec.GetTime(i)
	case schema.KindUUID:
		return rec.GetUUID(i)
	}
	return nil, fmt.Errorf("%w: no typed accessor for kind %d", schema.ErrUnsupportedConversion, kind)
}

func columnError(name string, err error) error {
	if errors.Is(err, ErrFieldNotFound) {
		return &FieldNotFoundError{Column: name, Err: err}
	}
	return fmt.Errorf("failed to map column %s: %w", name, err)
}
