package clause

type Insert struct {
	Table Table
}

// Name insert clause name
func (insert Insert) Name() string {
	return "INSERT"
}

// Build build insert clause
func (insert Insert) Build(builder Builder) {
	builder.WriteString("INSERT INTO ")
	insert.Table.Build(builder)
}

// Values column list followed by the parameter of every column
type Values struct {
	Columns []Column
}

func (Values) Name() string {
	return "VALUES"
}

func (values Values) Build(builder Builder) {
	if len(values.Columns) == 0 {
		builder.WriteString("DEFAULT VALUES")
		return
	}

	builder.WriteByte('(')
	writeColumns(builder, values.Columns)
	builder.WriteString(") VALUES (")
	writeParams(builder, values.Columns)
	builder.WriteByte(')')
}

// ScopeIdentity selects the identity value generated by the preceding insert
type ScopeIdentity struct {
	Column Column
}

func (ScopeIdentity) Name() string {
	return "SCOPE_IDENTITY"
}

func (identity ScopeIdentity) Build(builder Builder) {
	builder.WriteString("SELECT SCOPE_IDENTITY() AS ")
	identity.Column.Build(builder)
}
