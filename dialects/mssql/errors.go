package mssql

import (
	"errors"
	"fmt"

	mssqldb "github.com/microsoft/go-mssqldb"
	forgery "github.com/rossipedia/Forgery"
)

// server error numbers of unique constraint and unique index violations
var duplicatedKeyNumbers = map[int32]bool{
	2601: true,
	2627: true,
}

// TranslateErr wraps SQL Server duplicate key errors with forgery.ErrDuplicatedKey,
// every other error is returned as is
func TranslateErr(err error) error {
	var serverErr mssqldb.Error
	if !errors.As(err, &serverErr) {
		return err
	}

	if duplicatedKeyNumbers[serverErr.Number] {
		return fmt.Errorf("%w: %w", forgery.ErrDuplicatedKey, err)
	}
	for _, e := range serverErr.All {
		if duplicatedKeyNumbers[e.Number] {
			return fmt.Errorf("%w: %w", forgery.ErrDuplicatedKey, err)
		}
	}
	return err
}
