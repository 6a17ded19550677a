package schema

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"github.com/rossipedia/Forgery/utils"
)

var uuidReflectType = reflect.TypeOf(uuid.UUID{})

// Coerce converts a value read from a record to V.
// nil leaves the zero value; sql.Scanner destinations scan the value themselves.
func Coerce[V any](src interface{}) (V, error) {
	var dest V
	if src == nil {
		return dest, nil
	}

	if v, ok := src.(V); ok {
		return v, nil
	}

	if scanner, ok := any(&dest).(sql.Scanner); ok {
		return dest, scanner.Scan(src)
	}

	err := convertAssign(reflect.ValueOf(&dest).Elem(), src)
	return dest, err
}

func convertAssign(dest reflect.Value, src interface{}) error {
	if src == nil {
		dest.Set(reflect.Zero(dest.Type()))
		return nil
	}

	if p, ok := src.(*time.Time); ok {
		if p == nil {
			dest.Set(reflect.Zero(dest.Type()))
			return nil
		}
		src = *p
	}

	sv := reflect.ValueOf(src)
	if sv.Type().AssignableTo(dest.Type()) {
		dest.Set(sv)
		return nil
	}

	switch dest.Type() {
	case TimeReflectType:
		return setTime(dest, src)
	case uuidReflectType:
		return setUUID(dest, src)
	}

	switch dest.Kind() {
	case reflect.Ptr:
		elem := reflect.New(dest.Type().Elem())
		if err := convertAssign(elem.Elem(), src); err != nil {
			return err
		}
		dest.Set(elem)
		return nil
	case reflect.Bool:
		switch data := src.(type) {
		case bool:
			dest.SetBool(data)
		case string:
			b, err := strconv.ParseBool(data)
			if err != nil {
				return err
			}
			dest.SetBool(b)
		case []byte:
			return convertAssign(dest, string(data))
		default:
			i, err := toInt64(src)
			if err != nil {
				return err
			}
			dest.SetBool(i != 0)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := toInt64(src)
		if err != nil {
			return err
		}
		if dest.OverflowInt(i) {
			return fmt.Errorf("%w: %v overflows %v", ErrUnsupportedConversion, src, dest.Type())
		}
		dest.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := toInt64(src)
		if err != nil {
			return err
		}
		if i < 0 || dest.OverflowUint(uint64(i)) {
			return fmt.Errorf("%w: %v overflows %v", ErrUnsupportedConversion, src, dest.Type())
		}
		dest.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := toFloat64(src)
		if err != nil {
			return err
		}
		dest.SetFloat(f)
		return nil
	case reflect.String:
		switch data := src.(type) {
		case time.Time:
			dest.SetString(data.Format(time.RFC3339Nano))
		default:
			dest.SetString(utils.ToString(data))
		}
		return nil
	case reflect.Slice:
		if dest.Type().Elem().Kind() == reflect.Uint8 {
			if s, ok := src.(string); ok {
				dest.SetBytes([]byte(s))
				return nil
			}
		}
	}

	if sv.Type().ConvertibleTo(dest.Type()) {
		dest.Set(sv.Convert(dest.Type()))
		return nil
	}

	return fmt.Errorf("%w: %T to %v", ErrUnsupportedConversion, src, dest.Type())
}

func setTime(dest reflect.Value, src interface{}) error {
	switch data := src.(type) {
	case time.Time:
		dest.Set(reflect.ValueOf(data))
	case string:
		t, err := now.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse %q as time: %w", data, err)
		}
		dest.Set(reflect.ValueOf(t))
	case []byte:
		return setTime(dest, string(data))
	case int64:
		dest.Set(reflect.ValueOf(time.Unix(data, 0)))
	default:
		return fmt.Errorf("%w: %T to %v", ErrUnsupportedConversion, src, dest.Type())
	}
	return nil
}

func setUUID(dest reflect.Value, src interface{}) error {
	var (
		id  uuid.UUID
		err error
	)

	switch data := src.(type) {
	case string:
		id, err = uuid.Parse(data)
	case []byte:
		if len(data) == 16 {
			id, err = uuid.FromBytes(data)
		} else {
			id, err = uuid.ParseBytes(data)
		}
	case [16]byte:
		id = uuid.UUID(data)
	default:
		return fmt.Errorf("%w: %T to %v", ErrUnsupportedConversion, src, dest.Type())
	}

	if err != nil {
		return err
	}
	dest.Set(reflect.ValueOf(id))
	return nil
}

func toInt64(src interface{}) (int64, error) {
	switch data := src.(type) {
	case string:
		return strconv.ParseInt(data, 10, 64)
	case []byte:
		return strconv.ParseInt(string(data), 10, 64)
	case bool:
		if data {
			return 1, nil
		}
		return 0, nil
	case time.Time:
		return data.Unix(), nil
	case interface{ Ordinal() int64 }:
		return data.Ordinal(), nil
	}

	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrUnsupportedConversion, f)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w: %T to int64", ErrUnsupportedConversion, src)
}

func toFloat64(src interface{}) (float64, error) {
	switch data := src.(type) {
	case string:
		return strconv.ParseFloat(data, 64)
	case []byte:
		return strconv.ParseFloat(string(data), 64)
	}

	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return 0, fmt.Errorf("%w: %T to float64", ErrUnsupportedConversion, src)
}

// CoerceInt64 converts a stored value to the ordinal of an enum
func CoerceInt64(src interface{}) (int64, error) {
	return toInt64(src)
}
