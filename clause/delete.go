package clause

type Delete struct {
	Table Table
}

func (d Delete) Name() string {
	return "DELETE"
}

func (d Delete) Build(builder Builder) {
	builder.WriteString("DELETE FROM ")
	d.Table.Build(builder)
}
