// Package dbtest opens isolated in-memory databases carrying the full
// embedded migration schema, for repository tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/madisvain/upcount/internal/migration"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open returns a fresh in-memory database with every embedded migration
// script applied in order.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and makes the
	// pragma stick.
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.Exec("PRAGMA foreign_keys = ON").Error)

	scripts, err := migration.Scripts()
	require.NoError(t, err)
	for _, script := range scripts {
		require.NoError(t, conn.Exec(script.SQL).Error, "migration %s", script.Name)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return conn
}
