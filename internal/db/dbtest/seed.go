package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SeedOrganization inserts a minimal organization row for tests.
func SeedOrganization(t *testing.T, conn *gorm.DB, id, name string) {
	t.Helper()
	require.NoError(t, conn.Exec(
		`INSERT INTO organizations (id, name) VALUES (?, ?)`, id, name,
	).Error)
}

// SeedClient inserts a minimal client row for tests.
func SeedClient(t *testing.T, conn *gorm.DB, id, organizationID, name string) {
	t.Helper()
	require.NoError(t, conn.Exec(
		`INSERT INTO clients (id, organizationId, name) VALUES (?, ?, ?)`, id, organizationID, name,
	).Error)
}
