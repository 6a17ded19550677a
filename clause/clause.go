package clause

import (
	"strconv"
	"strings"
)

// Writer write interface
type Writer interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
}

// Builder builder interface
type Builder interface {
	Writer
}

// Interface clause interface
type Interface interface {
	Name() string
	Build(Builder)
}

// Expression expression interface
type Expression interface {
	Build(builder Builder)
}

// Build writes clauses in order, separated by a single space
func Build(builder Builder, clauses ...Interface) {
	for idx, c := range clauses {
		if idx > 0 {
			builder.WriteByte(' ')
		}
		c.Build(builder)
	}
}

// SQL renders clauses into a statement
func SQL(clauses ...Interface) string {
	var sql strings.Builder
	Build(&sql, clauses...)
	return sql.String()
}

// Named the parameter placeholder of a named value
func Named(name string) string {
	return "@" + name
}

// Indexed the parameter placeholder of a positional value, @0, @1 ...
func Indexed(index int) string {
	return "@" + strconv.Itoa(index)
}
