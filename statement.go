package forgery

import (
	"fmt"

	"github.com/rossipedia/Forgery/clause"
	"github.com/rossipedia/Forgery/schema"
)

func clauseColumns[T any](columns []*schema.Column[T]) []clause.Column {
	results := make([]clause.Column, 0, len(columns))
	for _, column := range columns {
		results = append(results, clause.Column{Name: column.Name, Param: column.ParamName})
	}
	return results
}

func clauseTable[T any](s *schema.Schema[T]) clause.Table {
	return clause.Table{Name: s.Table}
}

func buildSelect[T any](s *schema.Schema[T]) string {
	return clause.SQL(
		clause.Select{Columns: clauseColumns(s.Columns)},
		clause.From{Table: clauseTable(s)},
	) + " "
}

func buildInsert[T any](s *schema.Schema[T]) string {
	clauses := []clause.Interface{
		clause.Insert{Table: clauseTable(s)},
		clause.Values{Columns: clauseColumns(s.InsertableColumns())},
	}

	if s.IdentityColumn != nil {
		clauses = append(clauses, clause.ScopeIdentity{Column: clause.NewColumn(s.IdentityColumn.Name)})
	}
	return clause.SQL(clauses...)
}

func buildUpdate[T any](s *schema.Schema[T]) (string, error) {
	updatable := s.UpdatableColumns()
	if len(updatable) == 0 {
		return "", &schema.ValidationError{Type: s.Name, Err: schema.ErrNoUpdatableColumns}
	}

	where, err := keyWhere(s)
	if err != nil {
		return "", err
	}

	return clause.SQL(
		clause.Update{Table: clauseTable(s)},
		clause.Set(clauseColumns(updatable)),
		where,
	), nil
}

func buildDelete[T any](s *schema.Schema[T]) (string, error) {
	where, err := keyWhere(s)
	if err != nil {
		return "", err
	}

	return clause.SQL(clause.Delete{Table: clauseTable(s)}, where), nil
}

func keyWhere[T any](s *schema.Schema[T]) (clause.Where, error) {
	keys := s.KeyColumns()
	if len(keys) == 0 {
		return clause.Where{}, fmt.Errorf("%w: %s", ErrPrimaryKeyRequired, s.Name)
	}
	return clause.KeyWhere(clauseColumns(keys)), nil
}
