package cli

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/internal/models"
	"github.com/rossipedia/Forgery/schema"
	"github.com/spf13/cobra"
)

func (app *App) statementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "statements",
		Short: "Print the SQL generated for the Task model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := forgery.G[models.Task](app.Mapper)
			if err != nil {
				return err
			}
			return printStatements(cmd.OutOrStdout(), model, app.Config.NoColor)
		},
	}
}

func printStatements[T any](w io.Writer, model *forgery.Model[T], noColor bool) error {
	update, err := model.UpdateStatement()
	if err != nil {
		return err
	}
	remove, err := model.DeleteStatement()
	if err != nil {
		return err
	}

	label := paint(noColor, color.Bold, color.FgGreen)
	for _, stmt := range []struct{ name, sql string }{
		{"select", model.SelectStatement()},
		{"insert", model.InsertStatement()},
		{"update", update},
		{"delete", remove},
	} {
		label.Fprintf(w, "%-7s", stmt.name)
		fmt.Fprintln(w, stmt.sql)
	}
	return nil
}

func (app *App) schemaCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Describe the columns mapped for the Task model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := forgery.G[models.Task](app.Mapper)
			if err != nil {
				return err
			}

			if raw {
				dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true, MaxDepth: 3}
				dumper.Fdump(cmd.OutOrStdout(), model.GetSchema())
				return nil
			}

			printSchema(cmd.OutOrStdout(), model.GetSchema(), app.Config.NoColor)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "dump the parsed schema structure")
	return cmd
}

func printSchema[T any](w io.Writer, s *schema.Schema[T], noColor bool) {
	fmt.Fprintf(w, "%s -> %s\n", s.Name, s.Table)

	t := &table{headers: []string{"COLUMN", "KIND", "KEY", "IDENTITY", "ENUM", "TIMESTAMP"}}
	for _, column := range s.Columns {
		var enum, timestamp string
		if column.IsEnum {
			enum = column.EnumSaveStrategy.String()
		}
		switch {
		case column.IsCreatedTimestamp:
			timestamp = "created"
		case column.IsModifiedTimestamp:
			timestamp = "modified"
		}
		t.addRow(column.Name, column.Kind.String(), yesNo(column.IsKey), yesNo(column.IsIdentity), enum, timestamp)
	}
	t.render(w, noColor)
}
