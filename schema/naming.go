package schema

import (
	"github.com/jinzhu/inflection"
)

// Namer resolves table names from type names when a type declares none
type Namer interface {
	TableName(typeName string) string
}

// NamingStrategy module level table naming
type NamingStrategy struct {
	TablePrefix  string
	PluralTables bool
}

// TableName prefix + type name, pluralized when PluralTables is set
func (ns NamingStrategy) TableName(typeName string) string {
	if ns.PluralTables {
		typeName = inflection.Plural(typeName)
	}
	return ns.TablePrefix + typeName
}

// Defaults module level markers applied when a type or enum declares none
type Defaults struct {
	Namer            Namer
	EnumSaveStrategy EnumSaveStrategy
}

func (d Defaults) namer() Namer {
	if d.Namer == nil {
		return NamingStrategy{}
	}
	return d.Namer
}

// tableName resolution order: explicit name, type prefix, module namer, bare type name
func tableName[T any](t *Table[T], namer Namer) string {
	switch {
	case t.Table != "":
		return t.Table
	case t.Prefix != "":
		return t.Prefix + t.Name
	}

	if name := namer.TableName(t.Name); name != "" {
		return name
	}
	return t.Name
}
