package cli_test

import (
	"bytes"
	"database/sql"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	forgery "github.com/rossipedia/Forgery"
	"github.com/rossipedia/Forgery/cli"
	"github.com/rossipedia/Forgery/dialects/mssql"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	taskSelect = "SELECT Id, Name, IsDone, Description, DueDate, Status, Created, Modified FROM Tasks "
	taskInsert = "INSERT INTO Tasks (Name, IsDone, Description, DueDate, Status, Created, Modified) " +
		"VALUES (@Name, @IsDone, @Description, @DueDate, @Status, @Created, @Modified) SELECT SCOPE_IDENTITY() AS Id"
	taskUpdate = "UPDATE Tasks SET Name=@Name, IsDone=@IsDone, Description=@Description, DueDate=@DueDate, " +
		"Status=@Status, Modified=@Modified WHERE Id=@Id"
	taskDelete = "DELETE FROM Tasks WHERE Id=@Id"
)

func mustTime(t *testing.T, s string) time.Time {
	at, err := time.ParseInLocation(time.DateTime, s, time.Local)
	require.NoError(t, err)
	return at
}

var taskColumns = []string{"Id", "Name", "IsDone", "Description", "DueDate", "Status", "Created", "Modified"}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newApp(t *testing.T) (*cli.App, sqlmock.Sqlmock) {
	t.Setenv("FORGERY_DSN", "")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &cli.App{
		Viper: viper.New(),
		Connect: func(string) (forgery.Connection, io.Closer, error) {
			return mssql.New(db), nopCloser{}, nil
		},
	}, mock
}

func run(app *cli.App, args ...string) (string, error) {
	out := &bytes.Buffer{}
	app.Out, app.Err = out, &bytes.Buffer{}

	cmd := app.Command()
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestStatementsCommand(t *testing.T) {
	app, _ := newApp(t)

	out, err := run(app, "statements")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "select "+taskSelect, lines[0])
	assert.Equal(t, "insert "+taskInsert, lines[1])
	assert.Equal(t, "update "+taskUpdate, lines[2])
	assert.Equal(t, "delete "+taskDelete, lines[3])
}

func TestSchemaCommand(t *testing.T) {
	app, _ := newApp(t)

	out, err := run(app, "schema")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Task -> Tasks\n"))

	rows := map[string][]string{}
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows[fields[0]] = fields
		}
	}

	assert.Equal(t, []string{"Id", "int32", "yes", "yes"}, rows["Id"])
	assert.Equal(t, []string{"Name", "string"}, rows["Name"])
	assert.Equal(t, "string", rows["Status"][len(rows["Status"])-1])
	assert.Equal(t, []string{"Created", "time", "created"}, rows["Created"])
	assert.Equal(t, []string{"Modified", "time", "modified"}, rows["Modified"])

	out, err = run(app, "schema", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "IdentityColumn")
	assert.Contains(t, out, `"Tasks"`)
}

func TestTasksList(t *testing.T) {
	app, mock := newApp(t)
	due := mustTime(t, "2025-09-01 00:00:00")

	mock.ExpectQuery(taskSelect+"WHERE IsDone=@p1 ORDER BY Id").
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(int64(1), "Write docs", false, "user guide", due, "InProgress", due, due).
			AddRow(int64(2), "Review", false, nil, nil, "Open", due, due))

	out, err := run(app, "tasks", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "NAME", "STATUS", "DUE", "DESCRIPTION"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "Write", "docs", "InProgress", "2025-09-01", "user", "guide"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "Review", "Open"}, strings.Fields(lines[2]))

	mock.ExpectQuery(taskSelect + "ORDER BY Id").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	out, err = run(app, "tasks", "list", "--all")
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "NAME", "STATUS", "DUE", "DESCRIPTION"}, strings.Fields(out))
}

func TestTasksAdd(t *testing.T) {
	app, mock := newApp(t)

	mock.ExpectQuery(taskInsert).
		WithArgs(
			sql.Named("Name", "Ship it"),
			sql.Named("IsDone", false),
			sql.Named("Description", "release 1.0"),
			sql.Named("DueDate", mustTime(t, "2025-10-01 00:00:00")),
			sql.Named("Status", "Open"),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"Id"}).AddRow(int64(12)))

	out, err := run(app, "tasks", "add", "Ship it", "-d", "release 1.0", "--due", "2025-10-01")
	require.NoError(t, err)
	assert.Equal(t, "added task 12\n", out)

	_, err = run(app, "tasks", "add", "Later", "--due", "someday")
	assert.ErrorContains(t, err, "invalid due date")
}

func TestTasksDone(t *testing.T) {
	app, mock := newApp(t)
	at := mustTime(t, "2025-09-01 00:00:00")

	mock.ExpectQuery(taskSelect+"WHERE Id=@p1").
		WithArgs(int32(3)).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(int64(3), "Write docs", false, "", at, "InProgress", at, at))
	mock.ExpectExec(taskUpdate).
		WithArgs(
			sql.Named("Id", int32(3)),
			sql.Named("Name", "Write docs"),
			sql.Named("IsDone", true),
			sql.Named("Description", ""),
			sql.Named("DueDate", at),
			sql.Named("Status", "Done"),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	out, err := run(app, "tasks", "done", "3")
	require.NoError(t, err)
	assert.Equal(t, "task 3 done\n", out)

	mock.ExpectQuery(taskSelect+"WHERE Id=@p1").
		WithArgs(int32(4)).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err = run(app, "tasks", "done", "4")
	assert.EqualError(t, err, "task 4 not found")

	_, err = run(app, "tasks", "done", "four")
	assert.EqualError(t, err, `invalid task id "four"`)
}

func TestTasksRemove(t *testing.T) {
	app, mock := newApp(t)

	mock.ExpectExec(taskDelete).
		WithArgs(sql.Named("Id", int32(5))).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(taskDelete).
		WithArgs(sql.Named("Id", int32(6))).
		WillReturnResult(sqlmock.NewResult(0, 0))

	out, err := run(app, "tasks", "rm", "5")
	require.NoError(t, err)
	assert.Equal(t, "deleted task 5\n", out)

	_, err = run(app, "tasks", "remove", "6")
	assert.EqualError(t, err, "task 6 not found")
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("FORGERY_DSN", "")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := &cli.App{
		Viper: viper.New(),
		Connect: func(string) (forgery.Connection, io.Closer, error) {
			return mssql.New(db), nopCloser{}, nil
		},
	}

	mock.ExpectExec(`IF OBJECT_ID\(N'Tasks', N'U'\) IS NULL\s+CREATE TABLE Tasks`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	out, err := run(app, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "Migrations completed!\n", out)

	mock.ExpectExec(`DROP TABLE Tasks`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	out, err = run(app, "migrate", "--down")
	require.NoError(t, err)
	assert.Equal(t, "Rollback completed!\n", out)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectWithoutDSN(t *testing.T) {
	t.Setenv("FORGERY_DSN", "")

	app := &cli.App{Viper: viper.New(), Connect: cli.ConnectMSSQL}
	_, err := run(app, "tasks", "list")
	assert.ErrorIs(t, err, cli.ErrNoDSN)
}
