package forgery

import (
	"context"
	"strings"
	"time"

	"github.com/rossipedia/Forgery/clause"
	"github.com/rossipedia/Forgery/schema"
)

// CreateCommand a command on conn with the given text
func (m *Mapper) CreateCommand(conn Connection, text string) (Command, error) {
	if conn == nil {
		return nil, nilArgument("conn")
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyCommandText
	}

	cmd := conn.CreateCommand()
	cmd.SetCommandText(text)
	return cmd, nil
}

// AddIndexedParameters binds values as @0, @1 ... in order.
// Enumerations are bound by name or ordinal following their save strategy.
func (m *Mapper) AddIndexedParameters(cmd Command, values ...interface{}) error {
	if cmd == nil {
		return nilArgument("cmd")
	}

	for idx, value := range values {
		setParameter(cmd, clause.Indexed(idx), schema.EnumDBValue(value, m.EnumSaveStrategy))
	}
	return nil
}

// ExecuteNonQueryText executes text with indexed parameters, returning the affected rows
func (m *Mapper) ExecuteNonQueryText(ctx context.Context, conn Connection, text string, values ...interface{}) (int64, error) {
	cmd, err := m.CreateCommand(conn, text)
	if err != nil {
		return 0, err
	}
	if err := m.AddIndexedParameters(cmd, values...); err != nil {
		return 0, err
	}
	return m.executeNonQuery(ctx, cmd)
}

// ExecuteReaderText executes text with indexed parameters; the caller closes the reader
func (m *Mapper) ExecuteReaderText(ctx context.Context, conn Connection, text string, values ...interface{}) (Reader, error) {
	cmd, err := m.CreateCommand(conn, text)
	if err != nil {
		return nil, err
	}
	if err := m.AddIndexedParameters(cmd, values...); err != nil {
		return nil, err
	}
	return m.executeReader(ctx, cmd)
}

// CreateInsertCommand an insert command with the parameters of obj bound,
// a nil obj binds the zero value of T
func (model *Model[T]) CreateInsertCommand(conn Connection, obj *T) (Command, error) {
	cmd, err := model.mapper.CreateCommand(conn, model.InsertStatement())
	if err != nil {
		return nil, err
	}
	return cmd, model.BindInsertParameters(cmd, orNew(obj))
}

// CreateUpdateCommand an update command with the parameters of obj bound
func (model *Model[T]) CreateUpdateCommand(conn Connection, obj *T) (Command, error) {
	sql, err := model.UpdateStatement()
	if err != nil {
		return nil, err
	}

	cmd, err := model.mapper.CreateCommand(conn, sql)
	if err != nil {
		return nil, err
	}
	return cmd, model.BindUpdateParameters(cmd, orNew(obj))
}

// CreateDeleteCommand a delete command with the key parameters of obj bound
func (model *Model[T]) CreateDeleteCommand(conn Connection, obj *T) (Command, error) {
	sql, err := model.DeleteStatement()
	if err != nil {
		return nil, err
	}

	cmd, err := model.mapper.CreateCommand(conn, sql)
	if err != nil {
		return nil, err
	}
	return cmd, model.BindDeleteParameters(cmd, orNew(obj))
}

// CreateSelectCommand the select statement followed by criteria, e.g.
// "WHERE Name=@0", with values bound as indexed parameters
func (model *Model[T]) CreateSelectCommand(conn Connection, criteria string, values ...interface{}) (Command, error) {
	cmd, err := model.mapper.CreateCommand(conn, model.SelectStatement()+criteria)
	if err != nil {
		return nil, err
	}
	return cmd, model.mapper.AddIndexedParameters(cmd, values...)
}

// Insert inserts obj, capturing its identity
func (model *Model[T]) Insert(ctx context.Context, conn Connection, obj *T) (int64, error) {
	if obj == nil {
		return 0, nilArgument("obj")
	}

	cmd, err := model.CreateInsertCommand(conn, obj)
	if err != nil {
		return 0, err
	}
	return model.InsertAndCaptureIdentity(ctx, cmd, obj)
}

// Update updates the row of obj, returning the affected rows
func (model *Model[T]) Update(ctx context.Context, conn Connection, obj *T) (int64, error) {
	if obj == nil {
		return 0, nilArgument("obj")
	}

	cmd, err := model.CreateUpdateCommand(conn, obj)
	if err != nil {
		return 0, err
	}
	return model.mapper.executeNonQuery(ctx, cmd)
}

// Delete deletes the row of obj, returning the affected rows
func (model *Model[T]) Delete(ctx context.Context, conn Connection, obj *T) (int64, error) {
	if obj == nil {
		return 0, nilArgument("obj")
	}

	cmd, err := model.CreateDeleteCommand(conn, obj)
	if err != nil {
		return 0, err
	}
	return model.mapper.executeNonQuery(ctx, cmd)
}

// Query selects the rows matching criteria. The trace covers reading and
// mapping, so a mapping failure is reported with the statement that caused it.
func (model *Model[T]) Query(ctx context.Context, conn Connection, criteria string, values ...interface{}) ([]*T, error) {
	cmd, err := model.CreateSelectCommand(conn, criteria, values...)
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	reader, err := cmd.ExecuteReader(ctx)
	if err != nil {
		model.mapper.trace(ctx, begin, cmd, 0, err)
		return nil, err
	}
	defer reader.Close()

	results, err := model.MapAll(reader)
	model.mapper.trace(ctx, begin, cmd, int64(len(results)), err)
	return results, err
}

func orNew[T any](obj *T) *T {
	if obj == nil {
		return new(T)
	}
	return obj
}

// CreateCommand a command on conn under the Default mapper
func CreateCommand(conn Connection, text string) (Command, error) {
	return Default.CreateCommand(conn, text)
}

// AddIndexedParameters binds values as @0, @1 ... under the Default mapper
func AddIndexedParameters(cmd Command, values ...interface{}) error {
	return Default.AddIndexedParameters(cmd, values...)
}

// ExecuteNonQueryText executes text under the Default mapper
func ExecuteNonQueryText(ctx context.Context, conn Connection, text string, values ...interface{}) (int64, error) {
	return Default.ExecuteNonQueryText(ctx, conn, text, values...)
}

// ExecuteReaderText executes text under the Default mapper
func ExecuteReaderText(ctx context.Context, conn Connection, text string, values ...interface{}) (Reader, error) {
	return Default.ExecuteReaderText(ctx, conn, text, values...)
}
