package mssql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	// registers the sqlserver driver
	_ "github.com/microsoft/go-mssqldb"
	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/utils"
)

// DriverName the database/sql driver commands run on
const DriverName = "sqlserver"

var indexedParam = regexp.MustCompile(`@(\d+)\b`)

// ConnPool db conns pool interface, satisfied by *sql.DB, *sql.Conn and *sql.Tx
type ConnPool interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Connection a forgery.Connection running commands on a ConnPool
type Connection struct {
	ConnPool ConnPool
}

// New wraps pool
func New(pool ConnPool) *Connection {
	return &Connection{ConnPool: pool}
}

// Open opens a SQL Server database from a sqlserver:// dsn
func Open(dsn string) (*Connection, *sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", DriverName, err)
	}
	return New(db), db, nil
}

func (c *Connection) CreateCommand() forgery.Command {
	return &Command{pool: c.ConnPool}
}

// Command runs its text with the parameters bound as named arguments.
// Indexed parameters (@0, @1 ...) are sent positionally as @p1, @p2 ...
type Command struct {
	pool   ConnPool
	text   string
	params Parameters
}

func (c *Command) CommandText() string                { return c.text }
func (c *Command) SetCommandText(text string)         { c.text = text }
func (c *Command) CreateParameter() forgery.Parameter { return &Parameter{} }
func (c *Command) Parameters() forgery.Parameters     { return &c.params }

// Statement the text and arguments handed to database/sql
func (c *Command) Statement() (string, []interface{}) {
	var (
		query      = c.text
		named      []interface{}
		positional = map[int]interface{}{}
	)

	for _, p := range c.params.list {
		name := strings.TrimPrefix(p.Name(), "@")
		if idx, err := strconv.Atoi(name); err == nil {
			positional[idx] = p.Value()
			continue
		}
		named = append(named, sql.Named(name, p.Value()))
	}

	if len(positional) == 0 {
		return query, named
	}

	indexes := make([]int, 0, len(positional))
	for idx := range positional {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	ordinals := make(map[int]int, len(indexes))
	args := make([]interface{}, 0, len(indexes)+len(named))
	for ordinal, idx := range indexes {
		ordinals[idx] = ordinal + 1
		args = append(args, positional[idx])
	}

	query = indexedParam.ReplaceAllStringFunc(query, func(placeholder string) string {
		idx, _ := strconv.Atoi(placeholder[1:])
		if ordinal, ok := ordinals[idx]; ok {
			return "@p" + strconv.Itoa(ordinal)
		}
		return placeholder
	})
	return query, append(args, named...)
}

func (c *Command) ExecuteNonQuery(ctx context.Context) (int64, error) {
	query, args := c.Statement()
	result, err := c.pool.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, TranslateErr(err)
	}
	return result.RowsAffected()
}

// ExecuteScalar the first column of the first row, nil when no row comes back
func (c *Command) ExecuteScalar(ctx context.Context) (interface{}, error) {
	query, args := c.Statement()

	var value interface{}
	if err := c.pool.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, TranslateErr(err)
	}
	return value, nil
}

func (c *Command) ExecuteReader(ctx context.Context) (forgery.Reader, error) {
	query, args := c.Statement()
	rows, err := c.pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, TranslateErr(err)
	}
	return NewReader(rows)
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

// Parameters parameters in insertion order, looked up case-insensitively
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
