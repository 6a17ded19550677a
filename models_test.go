package forgery_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/logger"
	"github.com/rossipedia/Forgery/schema"
	"github.com/stretchr/testify/require"
)

type Status int64

const (
	StatusActive Status = iota
	StatusInactive
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	}
	return ""
}

func (s Status) Ordinal() int64  { return int64(s) }
func (Status) Members() []Status { return []Status{StatusActive, StatusInactive} }

type Level int64

const (
	Low Level = iota
	Medium
	High
)

func (l Level) String() string {
	return [...]string{"Low", "Medium", "High"}[l]
}

func (l Level) Ordinal() int64 { return int64(l) }
func (Level) Members() []Level { return []Level{Low, Medium, High} }

type Type struct {
	Id     int32
	Name   string
	Status Status
}

func (Type) Describe(t *schema.Table[Type]) {
	t.Fields(
		schema.NewField("Id", func(o *Type) *int32 { return &o.Id }, schema.Key, schema.Identity),
		schema.NewField("Name", func(o *Type) *string { return &o.Name }),
		schema.NewEnumField("Status", func(o *Type) *Status { return &o.Status }, schema.SaveEnumAs(schema.EnumString)),
	)
}

type Pair struct {
	Left, Right int64
	Value       string
}

func (Pair) Describe(t *schema.Table[Pair]) {
	t.Fields(
		schema.NewField("Left", func(o *Pair) *int64 { return &o.Left }, schema.Key),
		schema.NewField("Right", func(o *Pair) *int64 { return &o.Right }, schema.Key),
		schema.NewField("Value", func(o *Pair) *string { return &o.Value }),
	)
}

type Prefixed struct {
	Id   int64
	Name string
}

func (Prefixed) Describe(t *schema.Table[Prefixed]) {
	t.Prefix = "tbl"
	t.Fields(
		schema.NewField("Id", func(o *Prefixed) *int64 { return &o.Id }, schema.Key),
		schema.NewField("Name", func(o *Prefixed) *string { return &o.Name }),
	)
}

type Foo struct {
	FooBar string
}

func (Foo) Describe(t *schema.Table[Foo]) {
	t.Fields(schema.NewField("FooBar", func(o *Foo) *string { return &o.FooBar }))
}

type Stamped struct {
	Id       int64
	Level    Level
	Flag     bool
	Small    int16
	Ratio    float64
	Ref      uuid.UUID
	Created  time.Time
	Modified time.Time
}

func (Stamped) Describe(t *schema.Table[Stamped]) {
	t.Fields(
		schema.NewField("Id", func(o *Stamped) *int64 { return &o.Id }, schema.Key),
		schema.NewEnumField("Level", func(o *Stamped) *Level { return &o.Level }),
		schema.NewField("Flag", func(o *Stamped) *bool { return &o.Flag }),
		schema.NewField("Small", func(o *Stamped) *int16 { return &o.Small }),
		schema.NewField("Ratio", func(o *Stamped) *float64 { return &o.Ratio }),
		schema.NewField("Ref", func(o *Stamped) *uuid.UUID { return &o.Ref }),
		schema.NewField("Created", func(o *Stamped) *time.Time { return &o.Created }, schema.CreatedTimestamp),
		schema.NewField("Modified", func(o *Stamped) *time.Time { return &o.Modified }, schema.ModifiedTimestamp),
	)
}

type KeyOnly struct {
	Id int64
}

func (KeyOnly) Describe(t *schema.Table[KeyOnly]) {
	t.Fields(schema.NewField("Id", func(o *KeyOnly) *int64 { return &o.Id }, schema.Key))
}

type NoKey struct {
	Name string
}

func (NoKey) Describe(t *schema.Table[NoKey]) {
	t.Fields(schema.NewField("Name", func(o *NoKey) *string { return &o.Name }))
}

type Broken struct {
	A, B int64
}

func (Broken) Describe(t *schema.Table[Broken]) {
	t.Fields(
		schema.NewField("A", func(o *Broken) *int64 { return &o.A }, schema.Key, schema.Identity),
		schema.NewField("B", func(o *Broken) *int64 { return &o.B }, schema.Identity),
	)
}

type Panicky struct {
	Id int64
}

func (Panicky) Describe(t *schema.Table[Panicky]) {
	panic("description unavailable")
}

type Point struct {
	X, Y  int32
	Label string
}

func NewPoint(x, y int32) Point { return Point{X: x, Y: y, Label: "constructed"} }

func (Point) Describe(t *schema.Table[Point]) {
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

func newMapper(opts ...forgery.Option) *forgery.Mapper {
	return forgery.New(append([]forgery.Option{forgery.WithLogger(logger.Discard)}, opts...)...)
}

func mustModel[T schema.Model[T]](t *testing.T, m *forgery.Mapper) *forgery.Model[T] {
	t.Helper()
	model, err := forgery.G[T](m)
	require.NoError(t, err)
	return model
}
