package cli

import (
	"fmt"

	"github.com/rossipedia/Forgery/internal/migrations"
	"github.com/spf13/cobra"
)

func (app *App) migrateCommand() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables of the bundled models, or drop them with --down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, closer, err := app.connect()
			if err != nil {
				return err
			}
			defer closer.Close()

			if down {
				if err := migrations.RollbackAll(cmd.Context(), app.Mapper, conn); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Rollback completed!")
				return nil
			}

			if err := migrations.MigrateAll(cmd.Context(), app.Mapper, conn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations completed!")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back every migration")
	return cmd
}
