package forgery

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rossipedia/Forgery/logger"
)

// trace reports an executed command to the logger, with its parameters inlined
// unless the logger filters them
func (m *Mapper) trace(ctx context.Context, begin time.Time, cmd Command, rows int64, err error) {
	m.Logger.Trace(ctx, begin, func() (string, int64) {
		sql, vars := cmd.CommandText(), namedArgs(cmd.Parameters())
		if filter, ok := m.Logger.(logger.ParamsFilter); ok {
			sql, vars = filter.ParamsFilter(ctx, sql, vars...)
		}
		return logger.ExplainSQL(sql, "'", vars...), rows
	}, err)
}

func namedArgs(params Parameters) []interface{} {
	if params == nil {
		return nil
	}

	args := make([]interface{}, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		p := params.Index(i)
		args = append(args, sql.Named(strings.TrimPrefix(p.Name(), "@"), p.Value()))
	}
	return args
}

func (m *Mapper) executeNonQuery(ctx context.Context, cmd Command) (int64, error) {
	begin := time.Now()
	rows, err := cmd.ExecuteNonQuery(ctx)
	m.trace(ctx, begin, cmd, rows, err)
	return rows, err
}

func (m *Mapper) executeReader(ctx context.Context, cmd Command) (Reader, error) {
	begin := time.Now()
	reader, err := cmd.ExecuteReader(ctx)
	m.trace(ctx, begin, cmd, -1, err)
	return reader, err
}
