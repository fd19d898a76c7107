package database

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

var ErrNoChange = migrate.ErrNoChange

const migrationsPath = "migrations"

//go:embed migrations/*.sql
var fs embed.FS

// Migrate applies all pending embedded migrations. An already up-to-date
// schema is not an error.
func Migrate(db *sql.DB, databaseName string) error {
	d, err := iofs.New(fs, migrationsPath)
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", d, databaseName, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); errors.Is(err, migrate.ErrNoChange) {
		return nil
	} else if err != nil {
		return err
	}

	return nil
}
