package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLConfig parses dsn and forces the settings the transaction store relies on:
// DATETIME columns scan into time.Time and are read and written in UTC.
func MySQLConfig(dsn string) (*mysql.Config, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql DSN cannot be empty")
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mysql DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg, nil
}

// NewMySQLDB opens a MySQL handle. When check is set the handle is pinged before it is returned.
func NewMySQLDB(ctx context.Context, dsn string, check bool) (*sql.DB, error) {
	cfg, err := MySQLConfig(dsn)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	if check {
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping mysql: %w", err)
		}
	}

	slog.Info("Connected to MySQL database.", slog.String("addr", cfg.Addr), slog.String("db", cfg.DBName))
	return db, nil
}
