package clause

// Table table name
type Table struct {
	Name string
}

func (table Table) Build(builder Builder) {
	builder.WriteString(table.Name)
}

// Column column name with its parameter placeholder
type Column struct {
	Name  string
	Param string
}

// NewColumn a column bound to the parameter named after it
func NewColumn(name string) Column {
	return Column{Name: name, Param: Named(name)}
}

func (column Column) Build(builder Builder) {
	builder.WriteString(column.Name)
}

func (column Column) param() string {
	if column.Param == "" {
		return Named(column.Name)
	}
	return column.Param
}

// Expr raw expression
type Expr struct {
	SQL string
}

func (expr Expr) Build(builder Builder) {
	builder.WriteString(expr.SQL)
}

// Eq equal to its parameter, written without spaces: Name=@Name
type Eq struct {
	Column Column
}

func (eq Eq) Build(builder Builder) {
	eq.Column.Build(builder)
	builder.WriteByte('=')
	builder.WriteString(eq.Column.param())
}

func writeColumns(builder Builder, columns []Column) {
	for idx, column := range columns {
		if idx > 0 {
			builder.WriteString(", ")
		}
		column.Build(builder)
	}
}

func writeParams(builder Builder, columns []Column) {
	for idx, column := range columns {
		if idx > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(column.param())
	}
}
