package schema

import (
	"fmt"
	"reflect"

	"github.com/rossipedia/Forgery/utils"
)

// DataField a mappable name/type pair, either a member or a constructor parameter
type DataField struct {
	FieldName string
	FieldType reflect.Type
}

// Equal names compare case-insensitively, types exactly
func (f DataField) Equal(other DataField) bool {
	return f.FieldType == other.FieldType && utils.EqualFold(f.FieldName, other.FieldName)
}

// Key a comparable representation honouring Equal, usable as a map key
func (f DataField) Key() string {
	return fmt.Sprintf("%s:%v", utils.Fold(f.FieldName), f.FieldType)
}

func (f DataField) String() string {
	return fmt.Sprintf("%s %v", f.FieldName, f.FieldType)
}
