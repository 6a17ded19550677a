package migrations

import (
	"context"
	"fmt"

	forgery "github.com/rossipedia/Forgery"
)

// Migration a reversible schema change
type Migration struct {
	Name string
	Up   func(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error
	Down func(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error
}

// All migrations in apply order
var All = []Migration{
	{Name: "20250821_051926_create_task", Up: UpTask, Down: DownTask},
	// Add other migrations here
}

// MigrateAll applies every migration in order
func MigrateAll(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	for _, migration := range All {
		if err := migration.Up(ctx, m, conn); err != nil {
			return fmt.Errorf("migration %s: %w", migration.Name, err)
		}
		m.Logger.Info(ctx, "applied migration %s", migration.Name)
	}
	return nil
}

// RollbackAll reverts every migration in reverse order
func RollbackAll(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	for i := len(All) - 1; i >= 0; i-- {
		migration := All[i]
		if err := migration.Down(ctx, m, conn); err != nil {
			return fmt.Errorf("rollback %s: %w", migration.Name, err)
		}
		m.Logger.Info(ctx, "rolled back migration %s", migration.Name)
	}
	return nil
}
