package forgery_test

import (
	"context"
	"errors"
	"testing"

	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/utils/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndCaptureIdentity(t *testing.T) {
	model := mustModel[Type](t, newMapper())
	ctx := context.Background()

	t.Run("Identity", func(t *testing.T) {
		obj := &Type{Name: "new"}
		cmd := &tests.Command{Text: model.InsertStatement(), ScalarResult: int64(41)}
		require.NoError(t, model.BindInsertParameters(cmd, obj))

		rows, err := model.InsertAndCaptureIdentity(ctx, cmd, obj)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
		assert.Equal(t, int32(41), obj.Id)
		assert.Equal(t, []string{"ExecuteScalar"}, cmd.Executed)
	})

	t.Run("DecimalIdentity", func(t *testing.T) {
		obj := &Type{}
		rows, err := model.InsertAndCaptureIdentity(ctx, &tests.Command{ScalarResult: []byte("42")}, obj)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
		assert.Equal(t, int32(42), obj.Id)
	})

	t.Run("NoValue", func(t *testing.T) {
		obj := &Type{Id: 3}
		rows, err := model.InsertAndCaptureIdentity(ctx, &tests.Command{}, obj)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)
		assert.Equal(t, int32(3), obj.Id)
	})

	t.Run("CommandError", func(t *testing.T) {
		obj := &Type{}
		rows, err := model.InsertAndCaptureIdentity(ctx, &tests.Command{Error: errors.New("timeout"), ScalarResult: int64(5)}, obj)
		assert.EqualError(t, err, "timeout")
		assert.Equal(t, int64(0), rows)
		assert.Equal(t, int32(0), obj.Id)
	})

	t.Run("Canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		obj := &Type{}
		rows, err := model.InsertAndCaptureIdentity(canceled, &tests.Command{ScalarResult: int64(5)}, obj)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int64(0), rows)
		assert.Equal(t, int32(0), obj.Id)
	})

	t.Run("NilArguments", func(t *testing.T) {
		_, err := model.InsertAndCaptureIdentity(ctx, nil, &Type{})
		assert.ErrorIs(t, err, forgery.ErrNilArgument)
		_, err = model.InsertAndCaptureIdentity(ctx, &tests.Command{}, nil)
		assert.ErrorIs(t, err, forgery.ErrNilArgument)
	})
}

func TestInsertWithoutIdentity(t *testing.T) {
	model := mustModel[Pair](t, newMapper())

	cmd := &tests.Command{NonQueryResult: 1, ScalarResult: int64(99)}
	obj := &Pair{Left: 1, Right: 2, Value: "v"}
	require.NoError(t, model.BindInsertParameters(cmd, obj))

	rows, err := model.InsertAndCaptureIdentity(context.Background(), cmd, obj)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, []string{"ExecuteNonQuery"}, cmd.Executed)
	assert.Equal(t, &Pair{Left: 1, Right: 2, Value: "v"}, obj)
}

func TestInsertAndCaptureIdentityDefault(t *testing.T) {
	obj := &Type{}
	rows, err := forgery.InsertAndCaptureIdentity(context.Background(), &tests.Command{ScalarResult: int64(12)}, obj)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, int32(12), obj.Id)
}
