package schema_test

import (
	"time"

	"github.com/rossipedia/Forgery/schema"
)

type Color int64

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	return [...]string{"Red", "Green", "Blue"}[c]
}

func (c Color) Ordinal() int64 { return int64(c) }
func (Color) Members() []Color { return []Color{Red, Green, Blue} }

// Shade saves as string unless a field says otherwise
type Shade int64

const (
	Light Shade = iota + 1
	Dark
)

func (s Shade) String() string {
	switch s {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	}
	return ""
}

func (s Shade) Ordinal() int64                          { return int64(s) }
func (Shade) Members() []Shade                          { return []Shade{Light, Dark} }
func (Shade) EnumSaveStrategy() schema.EnumSaveStrategy { return schema.EnumString }

type Widget struct {
	Id       int64
	Name     string
	Color    Color
	Shade    Shade
	Created  time.Time
	Modified time.Time
	Secret   string
}

func (Widget) Describe(t *schema.Table[Widget]) {
	t.Fields(
		schema.NewField("Id", func(w *Widget) *int64 { return &w.Id }, schema.Key, schema.Identity),
		schema.NewField("Name", func(w *Widget) *string { return &w.Name }),
		schema.NewEnumField("Color", func(w *Widget) *Color { return &w.Color }),
		schema.NewEnumField("Shade", func(w *Widget) *Shade { return &w.Shade }),
		schema.NewField("Created", func(w *Widget) *time.Time { return &w.Created }, schema.CreatedTimestamp),
		schema.NewField("Modified", func(w *Widget) *time.Time { return &w.Modified }, schema.ModifiedTimestamp),
		schema.NewField("Secret", func(w *Widget) *string { return &w.Secret }, schema.Ignore),
	)
}

type Point struct {
	X, Y  int32
	Label string
}

func NewPoint(x, y int32) Point { return Point{X: x, Y: y} }

func (Point) Describe(t *schema.Table[Point]) {
	t.Table = "Points"
	t.Fields(
		schema.NewField("X", func(p *Point) *int32 { return &p.X }, schema.Key),
		schema.NewField("Y", func(p *Point) *int32 { return &p.Y }, schema.Key),
		schema.NewField("Label", func(p *Point) *string { return &p.Label }, schema.ReadOnly),
	)
	t.Construct(
		schema.NewConstructor(func(args []interface{}) (Point, error) {
			return NewPoint(args[0].(int32), args[1].(int32)), nil
		}, schema.Param[int32]("X"), schema.Param[int32]("Y")).Mark(),
	)
}

func columnNames[T any](columns []*schema.Column[T]) []string {
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, column.Name)
	}
	return names
}
