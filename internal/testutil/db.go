package testutil

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-api/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB returns an in-memory SQLite database with every embedded migration
// applied. The pool is capped at one connection so all queries, including
// transactions, see the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	db, err := database.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// Count returns the number of rows in table matching the optional condition.
func Count(t *testing.T, db *gorm.DB, table string, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	q := db.Table(table)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
