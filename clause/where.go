package clause

const (
	AndWithSpace = " AND "
)

// Where where clause, expressions are joined with AND
type Where struct {
	Exprs []Expression
}

// Name where clause name
func (where Where) Name() string {
	return "WHERE"
}

// Build build where clause
func (where Where) Build(builder Builder) {
	builder.WriteString("WHERE ")
	for idx, expr := range where.Exprs {
		if idx > 0 {
			builder.WriteString(AndWithSpace)
		}
		expr.Build(builder)
	}
}

// KeyWhere matches every column against its parameter
func KeyWhere(columns []Column) Where {
	exprs := make([]Expression, 0, len(columns))
	for _, column := range columns {
		exprs = append(exprs, Eq{Column: column})
	}
	return Where{Exprs: exprs}
}
