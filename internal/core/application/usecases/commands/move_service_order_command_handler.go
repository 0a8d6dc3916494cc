package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/core/domain/services"
)

// MoveServiceOrderCommandHandler replays a drag-and-drop on the server: the
// loaded order is dragged over the target column and dropped, and a status
// change the pipeline requests is written through changeStatus pinned to the
// version the decision was based on.
type MoveServiceOrderCommandHandler struct {
	uowFactory   ServiceOrderUoWFactory
	changeStatus ChangeServiceOrderStatusCommandHandler
	columns      pipeline.Columns
	policy       services.TransitionPolicy
	clock        kernel.Clock
}

// NewMoveServiceOrderCommandHandler creates the handler. columns must match
// the board the user sees; drops on other statuses are rejected.
func NewMoveServiceOrderCommandHandler(
	uowFactory ServiceOrderUoWFactory,
	changeStatus ChangeServiceOrderStatusCommandHandler,
	columns pipeline.Columns,
	policy services.TransitionPolicy,
	clock kernel.Clock,
) MoveServiceOrderCommandHandler {
	return MoveServiceOrderCommandHandler{
		uowFactory:   uowFactory,
		changeStatus: changeStatus,
		columns:      columns,
		policy:       policy,
		clock:        clock,
	}
}

// Handle returns the policy decision. A rejected or no-op drop is not an
// error and leaves the order untouched.
func (h *MoveServiceOrderCommandHandler) Handle(ctx context.Context, cmd MoveServiceOrderCommand) (MoveResult, error) {
	if err := cmd.Validate(); err != nil {
		return MoveResult{}, err
	}

	order, err := h.uowFactory.Create().ServiceOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return MoveResult{}, err
	}

	var requested *serviceorder.Status
	board, err := pipeline.New(h.columns, h.policy, h.clock, pipeline.Callbacks{
		StatusChanger: pipeline.StatusChangerFunc(func(_ kernel.UUID, target serviceorder.Status) {
			requested = &target
		}),
	})
	if err != nil {
		return MoveResult{}, err
	}

	column, ok := board.Columns().Lookup(cmd.Target())
	if !ok {
		column = pipeline.Column{Status: cmd.Target()}
	}

	board.DragStart(order)
	board.DragOver(column)
	decision := board.Drop(column)

	if requested == nil {
		return MoveResult{Decision: decision, Order: order}, nil
	}

	change, err := NewChangeServiceOrderStatusCommand(order.ID(), *requested, SourceDrop)
	if err != nil {
		return MoveResult{}, err
	}
	if change, err = change.WithExpectedVersion(order.Version()); err != nil {
		return MoveResult{}, err
	}

	updated, err := h.changeStatus.Handle(ctx, change)
	if err != nil {
		return MoveResult{}, err
	}

	return MoveResult{Decision: decision, Order: updated}, nil
}
