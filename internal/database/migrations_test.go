package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrations_TableAbsentUntilApplied(t *testing.T) {
	db, err := ConnectSQLite(filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	// before migrations the items table must not exist
	var n int64
	err = db.Raw("SELECT COUNT(*) FROM items").Scan(&n).Error
	require.Error(t, err)
	require.Contains(t, err.Error(), "no such table")

	require.NoError(t, RunMigrations(sqlDB))

	// same query passes once the migration is applied
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM items").Scan(&n).Error)
	require.Equal(t, int64(0), n)

	v, dirty, err := MigrationVersion(sqlDB)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), v)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := ConnectSQLite(filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, RunMigrations(sqlDB))
	require.NoError(t, RunMigrations(sqlDB)) // second run is a no-op
}

func TestCreateMigration_SequenceNumbers(t *testing.T) {
	dir := t.TempDir()

	up1, down1, err := CreateMigration(dir, "create items")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(up1, "0001_create_items.up.sql"))
	require.True(t, strings.HasSuffix(down1, "0001_create_items.down.sql"))

	up2, _, err := CreateMigration(dir, "add sku")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(up2, "0002_add_sku.up.sql"))

	_, _, err = CreateMigration(dir, "  ")
	require.Error(t, err)
}
