package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
}

// HealthChecker is implemented by stores that can report connectivity.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
