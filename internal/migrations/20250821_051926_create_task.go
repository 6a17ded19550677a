package migrations

import (
	"context"

	forgery "github.com/rossipedia/Forgery"
)

// UpTask creates table Tasks
func UpTask(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	_, err := m.ExecuteNonQueryText(ctx, conn, `IF OBJECT_ID(N'Tasks', N'U') IS NULL
CREATE TABLE Tasks (
	Id INT IDENTITY(1,1) NOT NULL PRIMARY KEY,
	Name NVARCHAR(200) NOT NULL,
	IsDone BIT NOT NULL,
	Description NVARCHAR(MAX) NULL,
	DueDate DATETIME2 NOT NULL,
	Status NVARCHAR(20) NOT NULL,
	Created DATETIME2 NOT NULL,
	Modified DATETIME2 NOT NULL
)`)
	return err
}

// DownTask drops table Tasks
func DownTask(ctx context.Context, m *forgery.Mapper, conn forgery.Connection) error {
	_, err := m.ExecuteNonQueryText(ctx, conn, `IF OBJECT_ID(N'Tasks', N'U') IS NOT NULL DROP TABLE Tasks`)
	return err
}
