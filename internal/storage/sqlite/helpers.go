// Package sqlite implements the storage repositories on SQLite (modernc.org/sqlite).
// It backs local development and the repository tests; schema comes from the embedded
// goose migrations.
package sqlite

import (
	"errors"
	"strings"
	"time"

	"taskhub-api/internal/models"

	sq "github.com/Masterminds/squirrel"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const userColumns = "id, username, email, password_hash, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func constraintCode(err error) int {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()
	}
	return 0
}

// uniqueViolation reports whether err is a UNIQUE failure on the given "table.column".
func uniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	code := constraintCode(err)
	if code != 0 && code != sqlite3lib.SQLITE_CONSTRAINT_UNIQUE && code != sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY {
		return false
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		(column == "" || strings.Contains(message, column))
}

func foreignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if constraintCode(err) == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var createdAt, updatedAt int64
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt, &updatedAt); err != nil {
		return u, err
	}
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}
