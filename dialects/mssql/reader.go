package mssql

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	mssqldb "github.com/microsoft/go-mssqldb"
	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/schema"
	"github.com/rossipedia/Forgery/utils"
)

// Reader adapts *sql.Rows to forgery.Reader, buffering the current row.
// NULL reads as the zero value of typed getters.
type Reader struct {
	rows    *sql.Rows
	columns []string
	ordinal map[string]int
	values  []interface{}
	err     error
}

// NewReader wraps rows; the reader owns and closes them
func NewReader(rows *sql.Rows) (*Reader, error) {
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}

	reader := &Reader{rows: rows, columns: columns, ordinal: make(map[string]int, len(columns))}
	for idx, column := range columns {
		key := utils.Fold(column)
		if _, ok := reader.ordinal[key]; !ok {
			reader.ordinal[key] = idx
		}
	}
	return reader, nil
}

func (r *Reader) Next() bool {
	if !r.rows.Next() {
		return false
	}

	values := make([]interface{}, len(r.columns))
	dest := make([]interface{}, len(r.columns))
	for idx := range values {
		dest[idx] = &values[idx]
	}

	if err := r.rows.Scan(dest...); err != nil {
		r.values, r.err = nil, err
		return false
	}
	r.values = values
	return true
}

func (r *Reader) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}

func (r *Reader) Close() error {
	return r.rows.Close()
}

func (r *Reader) GetOrdinal(name string) (int, error) {
	if idx, ok := r.ordinal[utils.Fold(name)]; ok {
		return idx, nil
	}
	return -1, fmt.Errorf("%w: %s", forgery.ErrFieldNotFound, name)
}

func (r *Reader) GetValue(name string) (interface{}, error) {
	idx, err := r.GetOrdinal(name)
	if err != nil {
		return nil, err
	}
	return r.value(idx)
}

func (r *Reader) value(i int) (interface{}, error) {
	if r.values == nil {
		return nil, fmt.Errorf("no current row")
	}
	if i < 0 || i >= len(r.values) {
		return nil, fmt.Errorf("ordinal %d out of range", i)
	}
	return r.values[i], nil
}

func typed[V any](r *Reader, i int) (V, error) {
	v, err := r.value(i)
	if err != nil {
		var zero V
		return zero, err
	}
	return schema.Coerce[V](v)
}

func (r *Reader) GetString(i int) (string, error)   { return typed[string](r, i) }
func (r *Reader) GetBool(i int) (bool, error)       { return typed[bool](r, i) }
func (r *Reader) GetByte(i int) (byte, error)       { return typed[byte](r, i) }
func (r *Reader) GetInt16(i int) (int16, error)     { return typed[int16](r, i) }
func (r *Reader) GetInt32(i int) (int32, error)     { return typed[int32](r, i) }
func (r *Reader) GetInt64(i int) (int64, error)     { return typed[int64](r, i) }
func (r *Reader) GetFloat32(i int) (float32, error) { return typed[float32](r, i) }
func (r *Reader) GetFloat64(i int) (float64, error) { return typed[float64](r, i) }
func (r *Reader) GetTime(i int) (time.Time, error)  { return typed[time.Time](r, i) }

// GetUUID reads a uniqueidentifier, which SQL Server stores with its first
// three groups byte-swapped
func (r *Reader) GetUUID(i int) (uuid.UUID, error) {
	v, err := r.value(i)
	if err != nil || v == nil {
		return uuid.Nil, err
	}

	if s, ok := v.(string); ok {
		return uuid.Parse(s)
	}

	var id mssqldb.UniqueIdentifier
	if err := id.Scan(v); err != nil {
		return uuid.Nil, err
	}
	return uuid.UUID(id), nil
}
