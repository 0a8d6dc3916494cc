package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/guard"
)

var ErrMoveServiceOrderCommandIsNotConstructed = errors.New(
	"MoveServiceOrderCommand must be created via NewMoveServiceOrderCommand constructor",
)

// MoveServiceOrderCommand drops an order card onto the target column.
type MoveServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  serviceorder.Status

	guard guard.ConstructorGuard
}

func NewMoveServiceOrderCommand(orderID kernel.UUID, target serviceorder.Status) (MoveServiceOrderCommand, error) {
	cmd := MoveServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return MoveServiceOrderCommand{}, err
	}

	return cmd, nil
}

func (c MoveServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveServiceOrderCommandIsNotConstructed)
}

func (c MoveServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MoveServiceOrderCommand) Target() serviceorder.Status {
	return c.target
}

func (c *MoveServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MoveServiceOrderCommand) setTarget(target serviceorder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

// MoveResult is the outcome of a drop. Order is the stored state after the
// drop, changed or not.
type MoveResult struct {
	Decision services.Decision
	Order    *serviceorder.ServiceOrder
}

// Moved reports whether the drop requested a status change.
func (r MoveResult) Moved() bool {
	return r.Decision.Allowed()
}
