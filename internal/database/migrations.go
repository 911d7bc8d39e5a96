package database

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/coreapp/item-service/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator builds a migrate instance over the embedded migration scripts
// and the given sqlite handle.
func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies all pending embedded migrations. It is idempotent
// and safe to call on every startup.
func RunMigrations(db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warnf("failed to close migration source: %v", srcErr)
		}
		if dbErr != nil {
			logger.Warnf("failed to close migration database: %v", dbErr)
		}
	}()

	err = m.Up()
	if err == migrate.ErrNoChange {
		logger.Infof("no migrations to apply (database up-to-date)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	v, _, _ := m.Version()
	logger.Infof("applied migrations, schema version %d", v)
	return nil
}

// MigrationVersion reports the current schema version and whether the last
// migration left the database dirty. Version 0 means no migration applied.
func MigrationVersion(db *sql.DB) (uint, bool, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	v, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration version: %w", err)
	}
	return v, dirty, nil
}

// CreateMigration writes an empty up/down migration pair into dir with the
// next sequence number, e.g. 0002_add_items_sku.up.sql. Returns the two
// created paths.
func CreateMigration(dir, name string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("migration name is required")
	}
	name = strings.ReplaceAll(strings.ToLower(name), " ", "_")

	next, err := nextSequence(dir)
	if err != nil {
		return "", "", err
	}

	up := filepath.Join(dir, fmt.Sprintf("%04d_%s.up.sql", next, name))
	down := filepath.Join(dir, fmt.Sprintf("%04d_%s.down.sql", next, name))
	for _, p := range []string{up, down} {
		if err := os.WriteFile(p, []byte("-- "+name+"\n"), 0o644); err != nil {
			return "", "", fmt.Errorf("write %s: %w", p, err)
		}
	}
	return up, down, nil
}

// nextSequence scans dir for NNNN_*.sql files and returns max+1 (1 when empty).
func nextSequence(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read migrations dir: %w", err)
	}
	seqs := []int{0}
	for _, e := range entries {
		base := e.Name()
		if !strings.HasSuffix(base, ".sql") {
			continue
		}
		idx := strings.IndexByte(base, '_')
		if idx <= 0 {
			continue
		}
		n, err := strconv.Atoi(base[:idx])
		if err != nil {
			continue
		}
		seqs = append(seqs, n)
	}
	sort.Ints(seqs)
	return seqs[len(seqs)-1] + 1, nil
}
