package commands

import (
	"context"

	"workshop/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ServiceOrderRepoFactory provides the repository bound to a unit of work.
	ServiceOrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// ServiceOrderUoW is the unit of work shared by every service order command.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	repo := uow.ServiceOrderRepository()
	//	// ... load, mutate, update
	//
	//	return uow.Commit(ctx)
	ServiceOrderUoW interface {
		TxManager
		ServiceOrderRepoFactory
	}

	ServiceOrderUoWFactory interface {
		Create() ServiceOrderUoW
	}
)
