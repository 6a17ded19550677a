package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rossipedia/Forgery/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	fields, err := cli.ParseFields("title:string, pinned:bool,ref:uuid")
	require.NoError(t, err)
	assert.Equal(t, []cli.FieldInfo{{"title", "string"}, {"pinned", "bool"}, {"ref", "uuid"}}, fields)

	for _, attr := range []string{"title", ":string", "title:text", "a:string,b"} {
		_, err := cli.ParseFields(attr)
		assert.Error(t, err, attr)
	}
}

func TestGenerateModel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/app\n\ngo 1.23\n"), 0644))

	fields, err := cli.ParseFields("title:string,pinned:bool,ref:uuid")
	require.NoError(t, err)

	files, err := cli.GenerateModel("note", fields, dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "internal", "models", "note.go"), files[0])

	model := read(t, files[0])
	assert.Contains(t, model, "type Note struct {")
	assert.Contains(t, model, `"github.com/google/uuid"`)
	assert.Contains(t, model, `schema.NewField("Title", func(m *Note) *string { return &m.Title }),`)
	assert.Contains(t, model, `schema.NewField("Id", func(m *Note) *int64 { return &m.Id }, schema.Key, schema.Identity),`)
	assert.Contains(t, model, "schema.CreatedTimestamp")

	migration := read(t, files[1])
	assert.Contains(t, migration, `"example.com/app/internal/models"`)
	assert.Contains(t, migration, "func UpNote(")
	assert.Contains(t, migration, "Pinned BIT NOT NULL,")
	assert.Contains(t, migration, "Ref UNIQUEIDENTIFIER NOT NULL,")

	master := read(t, files[2])
	assert.Contains(t, master, "Up: UpNote, Down: DownNote},")

	_, err = cli.GenerateModel("Label", []cli.FieldInfo{{"text", "string"}}, dir)
	require.NoError(t, err)
	master = read(t, files[2])
	assert.Contains(t, master, "Up: UpNote, Down: DownNote},")
	assert.Contains(t, master, "Up: UpLabel, Down: DownLabel},")

	_, err = cli.GenerateModel("Empty", nil, dir)
	assert.Error(t, err)

	_, err = cli.GenerateModel("Orphan", fields, t.TempDir())
	assert.ErrorContains(t, err, "go.mod")
}

func TestGenerateConfig(t *testing.T) {
	dir := t.TempDir()

	file, err := cli.GenerateConfig(dir, "sqlserver://sa:pw@db?database=app")
	require.NoError(t, err)
	assert.Contains(t, read(t, file), `dsn: "sqlserver://sa:pw@db?database=app"`)

	_, err = cli.GenerateConfig(dir, "")
	assert.ErrorContains(t, err, "already exists")
}

func read(t *testing.T, file string) string {
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	return string(data)
}
