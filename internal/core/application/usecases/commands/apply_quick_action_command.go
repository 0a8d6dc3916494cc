package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/pkg/guard"
)

var ErrApplyQuickActionCommandIsNotConstructed = errors.New(
	"ApplyQuickActionCommand must be created via NewApplyQuickActionCommand constructor",
)

// ApplyQuickActionCommand presses a card button such as "start" or "deliver".
//
// Example:
//
//	cmd, err := NewApplyQuickActionCommand(orderID, "complete")
//	if errors.Is(err, pipeline.ErrUnknownQuickAction) {
//	    return echo.NewHTTPError(http.StatusNotFound, err.Error())
//	}
type ApplyQuickActionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  pipeline.QuickAction

	guard guard.ConstructorGuard
}

// NewApplyQuickActionCommand resolves the action name against the catalogue.
func NewApplyQuickActionCommand(orderID kernel.UUID, action string) (ApplyQuickActionCommand, error) {
	cmd := ApplyQuickActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return ApplyQuickActionCommand{}, err
	}

	return cmd, nil
}

func (c ApplyQuickActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyQuickActionCommandIsNotConstructed)
}

func (c ApplyQuickActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ApplyQuickActionCommand) Action() pipeline.QuickAction {
	return c.action
}

func (c *ApplyQuickActionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApplyQuickActionCommand) setAction(name string) error {
	action, err := pipeline.LookupQuickAction(name)
	if err != nil {
		return err
	}
	c.action = action
	return nil
}

// QuickActionResult carries the applied action and the stored order.
type QuickActionResult struct {
	Action pipeline.QuickAction
	Order  *serviceorder.ServiceOrder
}
