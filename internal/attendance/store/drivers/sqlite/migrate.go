package sqlite

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/migrations"
)

// ApplyMigrations brings the schema up to the newest embedded migration.
// golang-migrate wraps each file in its own transaction.
func (m *Store) ApplyMigrations() error {
	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	db, err := migratesqlite.WithInstance(m.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("prepare migration driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", src, "sqlite", db)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		version, dirty, _ := mg.Version()
		return fmt.Errorf("migrate up (version %d, dirty %t): %w", version, dirty, err)
	}
	return nil
}
