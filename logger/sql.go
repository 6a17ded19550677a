package logger

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/rossipedia/Forgery/utils"
)

const (
	tmFmtWithMS = "2006-01-02 15:04:05.999"
	nullStr     = "NULL"
)

var paramRegexp = regexp.MustCompile(`@(\w+)`)

func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// ExplainSQL renders sql with every @name placeholder replaced by the literal
// of the sql.NamedArg of the same name. Placeholders without a value are kept.
func ExplainSQL(query string, escaper string, vars ...interface{}) string {
	literals := make(map[string]string, len(vars))
	for _, v := range vars {
		arg, ok := v.(sql.NamedArg)
		if !ok {
			continue
		}
		literals[utils.Fold(arg.Name)] = literal(arg.Value, escaper)
	}

	if len(literals) == 0 {
		return query
	}

	return paramRegexp.ReplaceAllStringFunc(query, func(placeholder string) string {
		if lit, ok := literals[utils.Fold(placeholder[1:])]; ok {
			return lit
		}
		return placeholder
	})
}

func literal(v interface{}, escaper string) string {
	if valuer, ok := v.(driver.Valuer); ok {
		v, _ = valuer.Value()
	}

	switch v := v.(type) {
	case nil:
		return nullStr
	case bool:
		return fmt.Sprint(v)
	case time.Time:
		if v.IsZero() {
			return escaper + "0000-00-00 00:00:00" + escaper
		}
		return escaper + v.Format(tmFmtWithMS) + escaper
	case *time.Time:
		if v == nil {
			return nullStr
		}
		return literal(*v, escaper)
	case []byte:
		if s := string(v); isPrintable(s) {
			return escaper + strings.ReplaceAll(s, escaper, escaper+escaper) + escaper
		}
		return escaper + "<binary>" + escaper
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return utils.ToString(v)
	case float64, float32:
		return fmt.Sprintf("%.6f", v)
	case string:
		return escaper + strings.ReplaceAll(v, escaper, escaper+escaper) + escaper
	}
	return escaper + strings.ReplaceAll(fmt.Sprint(v), escaper, escaper+escaper) + escaper
}
