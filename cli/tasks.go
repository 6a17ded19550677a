package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/internal/models"
	"github.com/spf13/cobra"
)

func (app *App) tasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the Tasks table",
	}
	cmd.AddCommand(app.tasksListCommand(), app.tasksAddCommand(), app.tasksDoneCommand(), app.tasksRemoveCommand())
	return cmd
}

// withTasks runs fc with the Task model on a fresh connection
func (app *App) withTasks(fc func(model *forgery.Model[models.Task], conn forgery.Connection) error) error {
	model, err := forgery.G[models.Task](app.Mapper)
	if err != nil {
		return err
	}

	conn, closer, err := app.connect()
	if err != nil {
		return err
	}
	defer closer.Close()

	return fc(model, conn)
}

func (app *App) tasksListCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withTasks(func(model *forgery.Model[models.Task], conn forgery.Connection) error {
				criteria, values := "WHERE IsDone=@0 ORDER BY Id", []interface{}{false}
				if all {
					criteria, values = "ORDER BY Id", nil
				}

				tasks, err := model.Query(cmd.Context(), conn, criteria, values...)
				if err != nil {
					return err
				}
				printTasks(cmd.OutOrStdout(), tasks, app.Config.NoColor)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include finished tasks")
	return cmd
}

func printTasks(w io.Writer, tasks []*models.Task, noColor bool) {
	t := &table{headers: []string{"ID", "NAME", "STATUS", "DUE", "DESCRIPTION"}}
	for _, task := range tasks {
		var due string
		if !task.DueDate.IsZero() {
			due = task.DueDate.Format(time.DateOnly)
		}
		t.addRow(strconv.Itoa(int(task.Id)), task.Name, task.Status.String(), due, task.Description)
	}
	t.render(w, noColor)
}

func (app *App) tasksAddCommand() *cobra.Command {
	var description, due string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &models.Task{Name: args[0], Description: description, Status: models.StatusOpen}
			if due != "" {
				t, err := now.Parse(due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				task.DueDate = t
			}

			return app.withTasks(func(model *forgery.Model[models.Task], conn forgery.Connection) error {
				if _, err := model.Insert(cmd.Context(), conn, task); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added task %d\n", task.Id)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVar(&due, "due", "", "due date, e.g. 2025-09-01 or \"2025-09-01 17:00\"")
	return cmd
}

func (app *App) tasksDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			return app.withTasks(func(model *forgery.Model[models.Task], conn forgery.Connection) error {
				tasks, err := model.Query(cmd.Context(), conn, "WHERE Id=@0", id)
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					return fmt.Errorf("task %d not found", id)
				}

				task := tasks[0]
				task.IsDone, task.Status = true, models.StatusDone
				if _, err := model.Update(cmd.Context(), conn, task); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "task %d done\n", id)
				return nil
			})
		},
	}
}

func (app *App) tasksRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			return app.withTasks(func(model *forgery.Model[models.Task], conn forgery.Connection) error {
				rows, err := model.Delete(cmd.Context(), conn, &models.Task{Id: id})
				if err != nil {
					return err
				}
				if rows == 0 {
					return fmt.Errorf("task %d not found", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", id)
				return nil
			})
		},
	}
}

func parseTaskID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return int32(id), nil
}
