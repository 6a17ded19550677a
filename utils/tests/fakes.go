package tests

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/schema"
	"github.com/rossipedia/Forgery/utils"
)

// Record an in-memory record; names resolve case-insensitively.
// Calls lists every accessor invoked, e.g. "GetString(1)" or "GetValue(Name)".
type Record struct {
	Columns []string
	Values  []interface{}
	Calls   []string
}

// NewRecord builds a record from alternating column names and values
func NewRecord(pairs ...interface{}) *Record {
	rec := &Record{}
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Columns = append(rec.Columns, pairs[i].(string))
		rec.Values = append(rec.Values, pairs[i+1])
	}
	return rec
}

func (r *Record) GetOrdinal(name string) (int, error) {
	r.Calls = append(r.Calls, "GetOrdinal("+name+")")
	for idx, column := range r.Columns {
		if utils.EqualFold(column, name) {
			return idx, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", forgery.ErrFieldNotFound, name)
}

func (r *Record) GetValue(name string) (interface{}, error) {
	r.Calls = append(r.Calls, "GetValue("+name+")")
	for idx, column := range r.Columns {
		if utils.EqualFold(column, name) {
			return r.Values[idx], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", forgery.ErrFieldNotFound, name)
}

func get[V any](r *Record, accessor string, i int) (V, error) {
	r.Calls = append(r.Calls, fmt.Sprintf("%s(%d)", accessor, i))
	if i < 0 || i >= len(r.Values) {
		var zero V
		return zero, fmt.Errorf("ordinal %d out of range", i)
	}
	return schema.Coerce[V](r.Values[i])
}

func (r *Record) GetString(i int) (string, error)   { return get[string](r, "GetString", i) }
func (r *Record) GetBool(i int) (bool, error)       { return get[bool](r, "GetBool", i) }
func (r *Record) GetByte(i int) (byte, error)       { return get[byte](r, "GetByte", i) }
func (r *Record) GetInt16(i int) (int16, error)     { return get[int16](r, "GetInt16", i) }
func (r *Record) GetInt32(i int) (int32, error)     { return get[int32](r, "GetInt32", i) }
func (r *Record) GetInt64(i int) (int64, error)     { return get[int64](r, "GetInt64", i) }
func (r *Record) GetFloat32(i int) (float32, error) { return get[float32](r, "GetFloat32", i) }
func (r *Record) GetFloat64(i int) (float64, error) { return get[float64](r, "GetFloat64", i) }
func (r *Record) GetTime(i int) (time.Time, error)  { return get[time.Time](r, "GetTime", i) }
func (r *Record) GetUUID(i int) (uuid.UUID, error)  { return get[uuid.UUID](r, "GetUUID", i) }

// Reader iterates Records in order
type Reader struct {
	*Record
	Records []*Record
	Error   error
	Closed  bool
	pos     int
}

func NewReader(records ...*Record) *Reader {
	return &Reader{Records: records}
}

func (r *Reader) Next() bool {
	if r.Closed || r.pos >= len(r.Records) {
		return false
	}
	r.Record = r.Records[r.pos]
	r.pos++
	return true
}

func (r *Reader) Err() error {
	return r.Error
}

func (r *Reader) Close() error {
	r.Closed = true
	return nil
}

// Parameter a named value
type Parameter struct {
	name  string
	value interface{}
}

func (p *Parameter) Name() string               { return p.name }
func (p *Parameter) SetName(name string)        { p.name = name }
func (p *Parameter) Value() interface{}         { return p.value }
func (p *Parameter) SetValue(value interface{}) { p.value = value }

// Parameters an ordered parameter list
type Parameters struct {
	list []forgery.Parameter
}

func (ps *Parameters) Contains(name string) bool {
	return ps.Get(name) != nil
}

func (ps *Parameters) Get(name string) forgery.Parameter {
	for _, p := range ps.list {
		if utils.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}

func (ps *Parameters) Index(i int) forgery.Parameter {
	return ps.list[i]
}

func (ps *Parameters) Len() int {
	return len(ps.list)
}

func (ps *Parameters) Add(p forgery.Parameter) int {
	ps.list = append(ps.list, p)
	return len(ps.list) - 1
}

// Values parameter values by name
func (ps *Parameters) Values() map[string]interface{} {
	values := make(map[string]interface{}, len(ps.list))
	for _, p := range ps.list {
		values[p.Name()] = p.Value()
	}
	return values
}

// Command records what it executes and answers with the configured results
type Command struct {
	Text           string
	Params         Parameters
	NonQueryResult int64
	ScalarResult   interface{}
	ReaderResult   *Reader
	Error          error
	Executed       []string
}

func (c *Command) CommandText() string                { return c.Text }
func (c *Command) SetCommandText(text string)         { c.Text = text }
func (c *Command) CreateParameter() forgery.Parameter { return &Parameter{} }
func (c *Command) Parameters() forgery.Parameters     { return &c.Params }

func (c *Command) ExecuteNonQuery(ctx context.Context) (int64, error) {
	c.Executed = append(c.Executed, "ExecuteNonQuery")
	if c.Error != nil {
		return 0, c.Error
	}
	return c.NonQueryResult, ctx.Err()
}

func (c *Command) ExecuteScalar(ctx context.Context) (interface{}, error) {
	c.Executed = append(c.Executed, "ExecuteScalar")
	if c.Error != nil {
		return nil, c.Error
	}
	return c.ScalarResult, ctx.Err()
}

func (c *Command) ExecuteReader(ctx context.Context) (forgery.Reader, error) {
	c.Executed = append(c.Executed, "ExecuteReader")
	if c.Error != nil {
		return nil, c.Error
	}
	if c.ReaderResult == nil {
		return NewReader(), ctx.Err()
	}
	return c.ReaderResult, ctx.Err()
}

// Connection hands out Commands prepared by Prepare and keeps them for inspection
type Connection struct {
	Prepare  func(*Command)
	Commands []*Command
}

func (c *Connection) CreateCommand() forgery.Command {
	cmd := &Command{}
	if c.Prepare != nil {
		c.Prepare(cmd)
	}
	c.Commands = append(c.Commands, cmd)
	return cmd
}

// Last the most recently created command
func (c *Connection) Last() *Command {
	if len(c.Commands) == 0 {
		return nil
	}
	return c.Commands[len(c.Commands)-1]
}
