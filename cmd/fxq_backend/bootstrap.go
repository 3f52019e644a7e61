package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_quote_app/internal/adapters/quoteapi"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_quote_app/internal/core/ports/services"
	"github.com/SscSPs/fx_quote_app/internal/core/services"
	"github.com/SscSPs/fx_quote_app/internal/platform/config"
	"github.com/SscSPs/fx_quote_app/internal/repositories/database/memory"
	"github.com/SscSPs/fx_quote_app/internal/repositories/database/mongodb"
	"github.com/SscSPs/fx_quote_app/internal/repositories/database/mysql"
	"github.com/SscSPs/fx_quote_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_quote_app/migrations"
	"github.com/SscSPs/fx_quote_app/pkg/database"
)

// application bundles the wired services with the store that backs them.
type application struct {
	services *portssvc.ServiceContainer
	health   portsrepo.HealthChecker
	close    func()
}

// storeHandle is an opened transaction store.
type storeHandle struct {
	repos   portsrepo.RepositoryProvider
	health  portsrepo.HealthChecker
	migrate func(ctx context.Context) error
	close   func()
}

func newQuoteClient(cfg *config.Config) *quoteapi.AwesomeClient {
	return quoteapi.NewAwesomeClient(cfg.QuoteAPIBaseURL, cfg.QuoteAPITimeout)
}

// newApplication opens the configured store, optionally migrates it and wires the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...", slog.String("store", string(cfg.StoreDriver)))
		if err := store.migrate(ctx); err != nil {
			store.close()
			return nil, err
		}
	}

	return &application{
		services: services.NewServiceContainer(newQuoteClient(cfg), store.repos),
		health:   store.health,
		close:    store.close,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (*storeHandle, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return &storeHandle{
			repos:  pgsql.NewRepositoryProvider(pool),
			health: pool,
			migrate: func(ctx context.Context) error {
				return database.MigratePostgres(migrations.FS, "postgres", cfg.DatabaseURL)
			},
			close: func() { database.ClosePgxPool(pool) },
		}, nil

	case config.StoreMySQL:
		db, err := database.NewMySQLDB(ctx, cfg.MySQLDSN, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mysql: %w", err)
		}
		repo := mysql.NewSQLTransactionRepository(db)
		return &storeHandle{
			repos:  portsrepo.RepositoryProvider{TransactionRepo: repo},
			health: repo,
			migrate: func(ctx context.Context) error {
				return database.MigrateMySQL(migrations.FS, "mysql", cfg.MySQLDSN)
			},
			close: func() {
				if err := db.Close(); err != nil {
					slog.Error("Error closing mysql connection", slog.String("error", err.Error()))
				}
			},
		}, nil

	case config.StoreMongoDB:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongodb: %w", err)
		}
		repo := mongodb.NewMongoTransactionRepository(client.Database(cfg.MongoDatabase))
		return &storeHandle{
			repos:   portsrepo.RepositoryProvider{TransactionRepo: repo},
			health:  repo,
			migrate: repo.EnsureIndexes,
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					slog.Error("Error disconnecting from mongodb", slog.String("error", err.Error()))
				}
			},
		}, nil

	case config.StoreMemory:
		repo := memory.NewTransactionRepository()
		return &storeHandle{
			repos:   portsrepo.RepositoryProvider{TransactionRepo: repo},
			health:  repo,
			migrate: func(context.Context) error { return nil },
			close:   func() {},
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
