package clause

// Select select columns
type Select struct {
	Columns []Column
}

func (s Select) Name() string {
	return "SELECT"
}

func (s Select) Build(builder Builder) {
	builder.WriteString("SELECT ")
	if len(s.Columns) > 0 {
		writeColumns(builder, s.Columns)
	} else {
		builder.WriteByte('*')
	}
}

// From from clause
type From struct {
	Table Table
}

func (from From) Name() string {
	return "FROM"
}

func (from From) Build(builder Builder) {
	builder.WriteString("FROM ")
	from.Table.Build(builder)
}
