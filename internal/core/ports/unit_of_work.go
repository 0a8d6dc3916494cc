package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
type UnitOfWork interface {
	// Begin starts the transaction; calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit commits and ends the transaction.
	Commit(ctx context.Context) error

	// Rollback aborts the transaction. After a successful Commit it returns
	// an error that callers deferring Rollback ignore.
	Rollback(ctx context.Context) error

	// ServiceOrderRepository returns a repository bound to the current transaction.
	ServiceOrderRepository() ServiceOrderRepository
}
