package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigratePostgres applies every pending "up" migration under dir of fsys.
// It opens its own database/sql handle through the pgx stdlib driver.
func MigratePostgres(fsys fs.FS, dir, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer closeMigrationDB(db)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}
	return runMigrations(fsys, dir, "postgres", driver)
}

// MigrateMySQL applies every pending "up" migration under dir of fsys.
func MigrateMySQL(fsys fs.FS, dir, dsn string) error {
	cfg, err := MySQLConfig(dsn)
	if err != nil {
		return err
	}
	cfg.MultiStatements = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer closeMigrationDB(db)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return fmt.Errorf("could not create mysql driver instance for migrations: %w", err)
	}
	return runMigrations(fsys, dir, "mysql", driver)
}

func runMigrations(fsys fs.FS, dir, name string, driver migratedb.Driver) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()

	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply.", slog.String("store", name))
	} else {
		slog.Info("Database migrations applied successfully.", slog.String("store", name))
	}
	return nil
}

func closeMigrationDB(db *sql.DB) {
	if cerr := db.Close(); cerr != nil {
		slog.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
	}
}
