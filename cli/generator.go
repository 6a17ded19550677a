package cli

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FieldInfo a field of a generated model, e.g. name:string
type FieldInfo struct {
	Name string
	Type string
}

// ParseFields parses "name:string,done:bool"
func ParseFields(attr string) ([]FieldInfo, error) {
	var fields []FieldInfo
	for _, a := range strings.Split(attr, ",") {
		parts := strings.Split(strings.TrimSpace(a), ":")
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("attribute format is invalid: %q", a)
		}
		if _, ok := fieldTypes[parts[1]]; !ok {
			return nil, fmt.Errorf("attribute %s: unknown type %q", parts[0], parts[1])
		}
		fields = append(fields, FieldInfo{Name: parts[0], Type: parts[1]})
	}
	return fields, nil
}

// Go type and SQL Server column type of each attribute type
var fieldTypes = map[string]struct{ goType, sqlType string }{
	"string": {"string", "NVARCHAR(MAX) NULL"},
	"int":    {"int32", "INT NOT NULL"},
	"bigint": {"int64", "BIGINT NOT NULL"},
	"float":  {"float64", "FLOAT NOT NULL"},
	"bool":   {"bool", "BIT NOT NULL"},
	"time":   {"time.Time", "DATETIME2 NOT NULL"},
	"uuid":   {"uuid.UUID", "UNIQUEIDENTIFIER NOT NULL"},
}

// GenerateModel writes a mapped model, its create table migration, and
// registers the migration in internal/migrations/migrate.go
func GenerateModel(modelName string, fields []FieldInfo, baseFolder string) ([]string, error) {
	if modelName == "" || len(fields) == 0 {
		return nil, fmt.Errorf("modelName and fields must be provided")
	}
	modelName = capitalize(modelName)

	modelsFolder := filepath.Join(baseFolder, "internal", "models")
	migrationsFolder := filepath.Join(baseFolder, "internal", "migrations")
	for _, folder := range []string{modelsFolder, migrationsFolder} {
		if err := os.MkdirAll(folder, os.ModePerm); err != nil {
			return nil, err
		}
	}

	moduleName, err := getModuleName(baseFolder)
	if err != nil {
		return nil, err
	}

	modelFile := filepath.Join(modelsFolder, strings.ToLower(modelName)+".go")
	if err := writeSource(modelFile, modelSource(modelName, fields)); err != nil {
		return nil, err
	}

	migrationName := fmt.Sprintf("%s_create_%s", time.Now().Format("20060102_150405"), strings.ToLower(modelName))
	migrationFile := filepath.Join(migrationsFolder, migrationName+".go")
	if err := writeSource(migrationFile, migrationSource(modelName, fields, moduleName)); err != nil {
		return nil, err
	}

	masterFile, err := updateMasterMigration(migrationsFolder, modelName, migrationName)
	if err != nil {
		return nil, err
	}
	return []string{modelFile, migrationFile, masterFile}, nil
}

func writeSource(filename, src string) error {
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return os.WriteFile(filename, formatted, 0644)
}

func modelSource(modelName string, fields []FieldInfo) string {
	var (
		members  []string
		declared []string
		imports  string
	)

	for _, field := range fields {
		name, typ := capitalize(field.Name), fieldTypes[field.Type].goType
		if field.Type == "uuid" {
			imports = "\t\"github.com/google/uuid\"\n"
		}
		members = append(members, fmt.Sprintf("\t%s %s", name, typ))
		declared = append(declared, fmt.Sprintf("\t\tschema.NewField(%q, func(m *%s) *%s { return &m.%s }),", name, modelName, typ, name))
	}

	return fmt.Sprintf(`package models

import (
	"time"

%s	"github.com/rossipedia/Forgery/schema"
)

type %[2]s struct {
	Id int64
%[3]s
	Created  time.Time
	Modified time.Time
}

func (%[2]s) Describe(t *schema.Table[%[2]s]) {
	t.Fields(
		schema.NewField("Id", func(m *%[2]s) *int64 { return &m.Id }, schema.Key, schema.Identity),
%[4]s
		schema.NewField("Created", func(m *%[2]s) *time.Time { return &m.Created }, schema.CreatedTimestamp),
		schema.NewField("Modified", func(m *%[2]s) *time.Time { return &m.Modified }, schema.ModifiedTimestamp),
	)
}
`, imports, modelName, strings.Join(members, "\n"), strings.Join(declared, "\n"))
}

func migrationSource(modelName string, fields []FieldInfo, moduleName string) string {
	columns := []string{"\t\tId BIGINT IDENTITY(1,1) NOT NULL PRIMARY KEY,"}
	for _, field := range fields {
		columns = append(columns, fmt.Sprintf("\t\t%s %s,", capitalize(field.Name), fieldTypes[field.Type].sqlType))
	}
	columns = append(columns, "\t\tCreated DATETIME2 NOT NULL,", "\t\tModified DATETIME2 NOT NULL")

	return fmt.Sprintf(`package migrations

import (
	"context"

	forgery "github.com/rossipedia/Forgery"
	"%[1]s/internal/models"
)

// Up%[2]s creates the table of %[2]s
func Up%[2]s(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	model, err := forgery.G[models.%[2]s](m)
	if err != nil {
		return err
	}

	table := model.GetSchema().Table
	_, err = m.ExecuteNonQueryText(ctx, conn, "IF OBJECT_ID(N'"+table+"', N'U') IS NULL CREATE TABLE "+table+` + "` (\n%[3]s\n\t)`" + `)
	return err
}

// Down%[2]s drops the table of %[2]s
func Down%[2]s(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	model, err := forgery.G[models.%[2]s](m)
	if err != nil {
		return err
	}

	table := model.GetSchema().Table
	_, err = m.ExecuteNonQueryText(ctx, conn, "IF OBJECT_ID(N'"+table+"', N'U') IS NOT NULL DROP TABLE "+table)
	return err
}
`, moduleName, modelName, strings.Join(columns, "\n"))
}

const masterMigrationSource = `package migrations

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
	// Add other migrations here
}

// MigrateAll applies every migration in order
func MigrateAll(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	for _, migration := range All {
		if err := migration.Up(ctx, m, conn); err != nil {
			return fmt.Errorf("migration %s: %w", migration.Name, err)
		}
	}
	return nil
}

// RollbackAll reverts every migration in reverse order
func RollbackAll(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	for i := len(All) - 1; i >= 0; i-- {
		if err := All[i].Down(ctx, m, conn); err != nil {
			return fmt.Errorf("rollback %s: %w", All[i].Name, err)
		}
	}
	return nil
}
`

const migrationsMarker = "// Add other migrations here"

func updateMasterMigration(migrationsFolder, modelName, migrationName string) (string, error) {
	masterFile := filepath.Join(migrationsFolder, "migrate.go")

	text := masterMigrationSource
	if data, err := os.ReadFile(masterFile); err == nil {
		text = string(data)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if !strings.Contains(text, migrationsMarker) {
		return "", fmt.Errorf("%s: marker %q not found", masterFile, migrationsMarker)
	}

	entry := fmt.Sprintf("{Name: %q, Up: Up%s, Down: Down%s},", migrationName, modelName, modelName)
	if !strings.Contains(text, "Up"+modelName+",") {
		text = strings.Replace(text, migrationsMarker, entry+"\n\t"+migrationsMarker, 1)
	}

	return masterFile, os.WriteFile(masterFile, []byte(text), 0644)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
