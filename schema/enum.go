package schema

import (
	"fmt"

	"github.com/rossipedia/Forgery/utils"
)

// EnumSaveStrategy how an enumeration value is written to its column
type EnumSaveStrategy int

const (
	// EnumNumeric stores the member ordinal
	EnumNumeric EnumSaveStrategy = iota
	// EnumString stores the member name
	EnumString
)

func (s EnumSaveStrategy) String() string {
	switch s {
	case EnumNumeric:
		return "numeric"
	case EnumString:
		return "string"
	}
	return fmt.Sprintf("EnumSaveStrategy(%d)", int(s))
}

// ParseEnumSaveStrategy parses "numeric" or "string", case-insensitively
func ParseEnumSaveStrategy(s string) (EnumSaveStrategy, error) {
	switch {
	case utils.EqualFold(s, "numeric"), s == "":
		return EnumNumeric, nil
	case utils.EqualFold(s, "string"):
		return EnumString, nil
	}
	return EnumNumeric, fmt.Errorf("unknown enum save strategy %q", s)
}

// Enum is implemented by enumeration types that can be mapped to a column.
//
// Members must be callable on the zero value and return every declared member.
type Enum[E any] interface {
	comparable
	String() string
	Ordinal() int64
	Members() []E
}

// EnumSaveStrategyer is implemented by enumeration types that declare their own
// save strategy. A field level SaveEnumAs tag still takes precedence.
type EnumSaveStrategyer interface {
	EnumSaveStrategy() EnumSaveStrategy
}

func enumByName[E Enum[E]](name string) (E, bool) {
	var zero E
	for _, member := range zero.Members() {
		if utils.EqualFold(member.String(), name) {
			return member, true
		}
	}
	return zero, false
}

func enumByOrdinal[E Enum[E]](ordinal int64) (E, bool) {
	var zero E
	for _, member := range zero.Members() {
		if member.Ordinal() == ordinal {
			return member, true
		}
	}
	return zero, false
}

// EnumDBValue returns the value a bare enumeration should be bound as: its name
// when the enumeration type saves as string, its ordinal otherwise.
// Values that are not enumerations are returned unchanged.
func EnumDBValue(v interface{}, fallback EnumSaveStrategy) interface{} {
	enum, ok := v.(interface {
		String() string
		Ordinal() int64
	})
	if !ok {
		return v
	}

	strategy := fallback
	if s, ok := v.(EnumSaveStrategyer); ok {
		strategy = s.EnumSaveStrategy()
	}
	if strategy == EnumString {
		return enum.String()
	}
	return enum.Ordinal()
}
