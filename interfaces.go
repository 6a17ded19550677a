package forgery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record one row of a tabular data source.
// Unknown names fail with an error wrapping ErrFieldNotFound; typed getters
// return the zero value for NULL.
type Record interface {
	GetOrdinal(name string) (int, error)
	GetValue(name string) (interface{}, error)

	GetString(i int) (string, error)
	GetBool(i int) (bool, error)
	GetByte(i int) (byte, error)
	GetInt16(i int) (int16, error)
	GetInt32(i int) (int32, error)
	GetInt64(i int) (int64, error)
	GetFloat32(i int) (float32, error)
	GetFloat64(i int) (float64, error)
	GetTime(i int) (time.Time, error)
	GetUUID(i int) (uuid.UUID, error)
}

// Reader a forward-only cursor over records
type Reader interface {
	Record
	Next() bool
	Err() error
	Close() error
}

// Parameter a named command parameter
type Parameter interface {
	Name() string
	SetName(string)
	Value() interface{}
	SetValue(interface{})
}

// Parameters the parameter collection of a command
type Parameters interface {
	Contains(name string) bool
	Get(name string) Parameter
	Index(i int) Parameter
	Len() int
	Add(Parameter) int
}

// Command a parameterized statement bound to a connection
type Command interface {
	CommandText() string
	SetCommandText(string)
	CreateParameter() Parameter
	Parameters() Parameters
	ExecuteNonQuery(ctx context.Context) (int64, error)
	ExecuteScalar(ctx context.Context) (interface{}, error)
	ExecuteReader(ctx context.Context) (Reader, error)
}

// Connection creates commands
type Connection interface {
	CreateCommand() Command
}
