package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/core/domain/services"
)

// ApplyQuickActionCommandHandler applies card buttons. Buttons bypass the
// transition policy and the order's age; the only check is that the button
// is rendered on the column the order currently sits in.
type ApplyQuickActionCommandHandler struct {
	uowFactory   ServiceOrderUoWFactory
	changeStatus ChangeServiceOrderStatusCommandHandler
	columns      pipeline.Columns
	clock        kernel.Clock
}

// NewApplyQuickActionCommandHandler creates the handler. Status writes go
// through changeStatus so quick actions publish the same events as drops.
func NewApplyQuickActionCommandHandler(
	uowFactory ServiceOrderUoWFactory,
	changeStatus ChangeServiceOrderStatusCommandHandler,
	columns pipeline.Columns,
	clock kernel.Clock,
) ApplyQuickActionCommandHandler {
	return ApplyQuickActionCommandHandler{
		uowFactory:   uowFactory,
		changeStatus: changeStatus,
		columns:      columns,
		clock:        clock,
	}
}

// Handle presses the button on the stored order and writes the button's
// target pinned to the loaded version.
//
// Example:
//
//	cmd, err := NewApplyQuickActionCommand(orderID, "start")
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, pipeline.ErrQuickActionNotAvailable) {
//	    // the order is no longer in the button's column
//	}
func (h *ApplyQuickActionCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyQuickActionCommand,
) (QuickActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return QuickActionResult{}, err
	}

	order, err := h.uowFactory.Create().ServiceOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return QuickActionResult{}, err
	}

	var requested *serviceorder.Status
	// Quick actions never consult the policy; pipeline.New only requires one.
	board, err := pipeline.New(h.columns, services.NewTransitionPolicy(), h.clock, pipeline.Callbacks{
		StatusChanger: pipeline.StatusChangerFunc(func(_ kernel.UUID, target serviceorder.Status) {
			requested = &target
		}),
	})
	if err != nil {
		return QuickActionResult{}, err
	}

	action, err := board.QuickAction(order, cmd.Action().Name)
	if err != nil {
		return QuickActionResult{}, err
	}

	change, err := NewChangeServiceOrderStatusCommand(order.ID(), *requested, SourceQuickAction)
	if err != nil {
		return QuickActionResult{}, err
	}
	if change, err = change.WithExpectedVersion(order.Version()); err != nil {
		return QuickActionResult{}, err
	}

	updated, err := h.changeStatus.Handle(ctx, change)
	if err != nil {
		return QuickActionResult{}, err
	}

	return QuickActionResult{Action: action, Order: updated}, nil
}
