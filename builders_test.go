package forgery_test

import (
	"testing"

	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/schema"
	"github.com/rossipedia/Forgery/utils/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializerBuilder(t *testing.T) {
	builder, err := forgery.NewInitializerBuilder(schema.Describe[Type]())
	require.NoError(t, err)

	rec := tests.NewRecord("Id", int64(6), "Name", "init", "Status", "Inactive")
	obj, err := builder.Build(rec)
	require.NoError(t, err)
	assert.Equal(t, &Type{Id: 6, Name: "init", Status: StatusInactive}, obj)
	assert.Equal(t, []string{"GetValue(Id)", "GetValue(Name)", "GetValue(Status)"}, rec.Calls)

	t.Run("EnumOrdinal", func(t *testing.T) {
		obj, err := builder.Build(tests.NewRecord("Id", int64(6), "Name", "init", "Status", int64(1)))
		require.NoError(t, err)
		assert.Equal(t, StatusInactive, obj.Status)
	})

	t.Run("SkipsReadOnly", func(t *testing.T) {
		builder, err := forgery.NewInitializerBuilder(schema.Describe[Point]())
		require.NoError(t, err)

		obj, err := builder.Build(tests.NewRecord("X", int32(1), "Y", int32(2), "Label", "ignored"))
		require.NoError(t, err)
		assert.Equal(t, &Point{X: 1, Y: 2}, obj)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := builder.Build(tests.NewRecord("Id", int64(6), "Name", "init"))
		assert.ErrorIs(t, err, forgery.ErrFieldNotFound)

		_, err = builder.Build(tests.NewRecord("Id", int64(6), "Name", "init", "Status", "Closed"))
		assert.ErrorIs(t, err, schema.ErrInvalidEnumValue)

		_, err = builder.Build(nil)
		assert.ErrorIs(t, err, forgery.ErrNilArgument)
	})

	t.Run("NoDefaultConstructor", func(t *testing.T) {
		table := schema.Describe[Point]()
		table.NoDefaultConstructor()

		_, err := forgery.NewInitializerBuilder(table)
		assert.ErrorIs(t, err, schema.ErrNoConstructor)
	})
}

func TestConstructorBuilder(t *testing.T) {
	for _, selector := range []schema.ConstructorSelector{schema.MarkedConstructor{}, schema.MostSpecificConstructor{}} {
		builder, err := forgery.NewConstructorBuilder(schema.Describe[Point](), selector)
		require.NoError(t, err)

		rec := tests.NewRecord("Label", "ignored", "Y", int64(4), "X", "3")
		obj, err := builder.Build(rec)
		require.NoError(t, err)
		assert.Equal(t, &Point{X: 3, Y: 4, Label: "constructed"}, obj)
		assert.Equal(t, []string{"GetValue(X)", "GetValue(Y)"}, rec.Calls)
	}

	t.Run("DefaultConstructor", func(t *testing.T) {
		builder, err := forgery.NewConstructorBuilder(schema.Describe[Point](), schema.DefaultConstructor{})
		require.NoError(t, err)

		obj, err := builder.Build(tests.NewRecord())
		require.NoError(t, err)
		assert.Equal(t, &Point{}, obj)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := forgery.NewConstructorBuilder(schema.Describe[Point](), nil)
		assert.ErrorIs(t, err, forgery.ErrNilArgument)

		_, err = forgery.NewConstructorBuilder(schema.Describe[Type](), schema.MarkedConstructor{})
		assert.ErrorIs(t, err, schema.ErrNoConstructor)

		builder, err := forgery.NewConstructorBuilder(schema.Describe[Point](), schema.MarkedConstructor{})
		require.NoError(t, err)

		_, err = builder.Build(tests.NewRecord("X", int32(1)))
		assert.ErrorIs(t, err, forgery.ErrFieldNotFound)

		_, err = builder.Build(tests.NewRecord("X", "one", "Y", int32(1)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "X")
	})
}
