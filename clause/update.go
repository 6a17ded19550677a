package clause

type Update struct {
	Table Table
}

// Name update clause name
func (update Update) Name() string {
	return "UPDATE"
}

// Build build update clause
func (update Update) Build(builder Builder) {
	builder.WriteString("UPDATE ")
	update.Table.Build(builder)
}

// Set assigns every column its parameter
type Set []Column

func (set Set) Name() string {
	return "SET"
}

func (set Set) Build(builder Builder) {
	builder.WriteString("SET ")
	for idx, column := range set {
		if idx > 0 {
			builder.WriteString(", ")
		}
		Eq{Column: column}.Build(builder)
	}
}
