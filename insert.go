package forgery

import (
	"context"
	"time"
)

// InsertAndCaptureIdentity executes an insert command whose parameters are
// already bound. With an identity column the generated value is written back
// into obj and 1 is returned once a value comes back; without one the number
// of affected rows is returned.
func (model *Model[T]) InsertAndCaptureIdentity(ctx context.Context, cmd Command, obj *T) (int64, error) {
	if cmd == nil {
		return 0, nilArgument("cmd")
	}
	if obj == nil {
		return 0, nilArgument("obj")
	}

	identity := model.schema.IdentityColumn
	if identity == nil {
		return model.mapper.executeNonQuery(ctx, cmd)
	}

	begin := time.Now()
	value, err := cmd.ExecuteScalar(ctx)

	var rows int64
	if err == nil && value != nil {
		if err = identity.Field.Set(obj, value); err == nil {
			rows = 1
		}
	}

	model.mapper.trace(ctx, begin, cmd, rows, err)
	return rows, err
}
