package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// CreateServiceOrderCommandHandler creates orders stamped with the clock's
// current time.
type CreateServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	clock      kernel.Clock
}

// NewCreateServiceOrderCommandHandler creates the handler.
func NewCreateServiceOrderCommandHandler(
	uowFactory ServiceOrderUoWFactory,
	clock kernel.Clock,
) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle builds the aggregate and stores it in a single transaction.
func (h *CreateServiceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateServiceOrderCommand,
) (*serviceorder.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	order, err := serviceorder.NewServiceOrder(
		cmd.OrderID(), cmd.Number(), cmd.Title(), cmd.Priority(), h.clock.Now(), cmd.Details(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ServiceOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
