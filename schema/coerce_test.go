package schema_test

import (
	"database/sql"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rossipedia/Forgery/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	t.Run("Integers", func(t *testing.T) {
		v, err := schema.Coerce[int32](int64(7))
		require.NoError(t, err)
		assert.Equal(t, int32(7), v)

		v, err = schema.Coerce[int32]([]byte("42"))
		require.NoError(t, err)
		assert.Equal(t, int32(42), v)

		_, err = schema.Coerce[int16](int64(1 << 20))
		assert.ErrorIs(t, err, schema.ErrUnsupportedConversion)

		_, err = schema.Coerce[byte](int64(-1))
		assert.ErrorIs(t, err, schema.ErrUnsupportedConversion)
	})

	t.Run("DecimalText", func(t *testing.T) {
		for text, want := range map[string]int64{"010": 10, "08": 8, "-007": -7, "+12": 12} {
			v, err := schema.Coerce[int64](text)
			require.NoError(t, err, text)
			assert.Equal(t, want, v, text)
		}

		for _, text := range []string{"0x1F", "0b11", "0o17", "1_000", "1.5", ""} {
			_, err := schema.Coerce[int64](text)
			assert.Error(t, err, text)
		}
	})

	t.Run("FractionalFloats", func(t *testing.T) {
		v, err := schema.Coerce[int32](float32(3))
		require.NoError(t, err)
		assert.Equal(t, int32(3), v)

		for _, f := range []interface{}{2.5, float32(-0.25), math.NaN(), math.Inf(1), 1e19} {
			_, err := schema.Coerce[int64](f)
			assert.ErrorIs(t, err, schema.ErrUnsupportedConversion, "%v", f)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		s, err := schema.Coerce[string](nil)
		require.NoError(t, err)
		assert.Empty(t, s)

		at, err := schema.Coerce[time.Time](nil)
		require.NoError(t, err)
		assert.True(t, at.IsZero())
	})

	t.Run("Bool", func(t *testing.T) {
		b, err := schema.Coerce[bool](int64(1))
		require.NoError(t, err)
		assert.True(t, b)

		b, err = schema.Coerce[bool]("false")
		require.NoError(t, err)
		assert.False(t, b)
	})

	t.Run("Time", func(t *testing.T) {
		at, err := schema.Coerce[time.Time]("2024-05-01 10:30:00")
		require.NoError(t, err)
		assert.Equal(t, 2024, at.Year())
		assert.Equal(t, time.May, at.Month())
		assert.Equal(t, 10, at.Hour())

		_, err = schema.Coerce[time.Time](3.5)
		assert.ErrorIs(t, err, schema.ErrUnsupportedConversion)
	})

	t.Run("UUID", func(t *testing.T) {
		want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

		id, err := schema.Coerce[uuid.UUID](want.String())
		require.NoError(t, err)
		assert.Equal(t, want, id)

		id, err = schema.Coerce[uuid.UUID](want[:])
		require.NoError(t, err)
		assert.Equal(t, want, id)
	})

	t.Run("Scanner", func(t *testing.T) {
		ns, err := schema.Coerce[sql.NullString]("x")
		require.NoError(t, err)
		assert.Equal(t, sql.NullString{String: "x", Valid: true}, ns)
	})

	t.Run("Pointer", func(t *testing.T) {
		p, err := schema.Coerce[*int64]("5")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, int64(5), *p)
	})

	t.Run("String", func(t *testing.T) {
		s, err := schema.Coerce[string](int64(9))
		require.NoError(t, err)
		assert.Equal(t, "9", s)
	})

	t.Run("Float", func(t *testing.T) {
		f, err := schema.Coerce[float64]("1.25")
		require.NoError(t, err)
		assert.Equal(t, 1.25, f)
	})
}

func TestCoerceInt64(t *testing.T) {
	for _, v := range []interface{}{int64(2), int32(2), "2", []byte("2"), 2.0, Blue} {
		i, err := schema.CoerceInt64(v)
		require.NoError(t, err)
		assert.Equal(t, int64(2), i)
	}

	_, err := schema.CoerceInt64(struct{}{})
	assert.ErrorIs(t, err, schema.ErrUnsupportedConversion)

	_, err = schema.CoerceInt64(2.5)
	assert.ErrorIs(t, err, schema.ErrUnsupportedConversion)

	i, err := schema.CoerceInt64("010")
	require.NoError(t, err)
	assert.Equal(t, int64(10), i)
}
