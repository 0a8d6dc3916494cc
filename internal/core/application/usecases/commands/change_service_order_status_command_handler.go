package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

// ChangeServiceOrderStatusCommandHandler persists status changes and
// announces them once the transaction is committed.
//
// Requesting the status an order already has succeeds without writing or
// publishing anything.
type ChangeServiceOrderStatusCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	publisher  ports.StatusChangePublisher
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewChangeServiceOrderStatusCommandHandler creates the handler. A nil
// logger falls back to slog.Default.
func NewChangeServiceOrderStatusCommandHandler(
	uowFactory ServiceOrderUoWFactory,
	publisher ports.StatusChangePublisher,
	clock kernel.Clock,
	logger *slog.Logger,
) ChangeServiceOrderStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ChangeServiceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "ChangeServiceOrderStatusCommandHandler"),
	}
}

// Handle loads the order, applies the new status and updates it with an
// optimistic version check. A failed publish is logged and does not undo the
// committed change.
func (h *ChangeServiceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeServiceOrderStatusCommand,
) (*serviceorder.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ServiceOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if expected, ok := cmd.ExpectedVersion(); ok && order.Version() != expected {
		return nil, errs.NewVersionIsInvalidError(
			"version",
			fmt.Errorf("order %s is at version %d, expected %d", order.ID(), order.Version(), expected),
		)
	}

	from := order.Status()
	at := h.clock.Now()
	if err = order.ChangeStatus(cmd.Target(), at); err != nil {
		if errors.Is(err, serviceorder.ErrStatusUnchanged) {
			return order, nil
		}
		return nil, err
	}

	if err = repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := ports.StatusChangedEvent{
		OrderID:    order.ID(),
		Number:     order.Number(),
		From:       from,
		To:         order.Status(),
		Source:     cmd.Source(),
		Version:    order.Version(),
		OccurredAt: at,
	}
	if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish status change",
			"order_id", order.ID().String(),
			"to", order.Status().String(),
			"error", err)
	}

	return order, nil
}
