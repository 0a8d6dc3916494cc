package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
		"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor",
	)
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	ErrTitleIsRequired  = errs.NewValueIsRequiredError("title")
)

// CreateServiceOrderCommand registers a new repair job. The order starts in
// PENDING and appears in the first board column.
//
// Example:
//
//	cmd, err := NewCreateServiceOrderCommand(
//	    kernel.NewUUID(), "OS-000124", "Replace battery", serviceorder.PriorityNormal,
//	    serviceorder.Details{CustomerName: "Carla Dias", DeviceType: "Notebook"},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid service order: %w", err)
//	}
//	order, err := handler.Handle(ctx, cmd)
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	number   string
	title    string
	priority serviceorder.Priority
	details  serviceorder.Details

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand validates identity, number, title and priority.
// Details are checked by the aggregate.
func NewCreateServiceOrderCommand(
	orderID kernel.UUID,
	number, title string,
	priority serviceorder.Priority,
	details serviceorder.Details,
) (CreateServiceOrderCommand, error) {
	cmd := CreateServiceOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNumber(number),
		cmd.setTitle(title),
		cmd.setPriority(priority),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

func (c CreateServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateServiceOrderCommand) Number() string {
	return c.number
}

func (c CreateServiceOrderCommand) Title() string {
	return c.title
}

func (c CreateServiceOrderCommand) Priority() serviceorder.Priority {
	return c.priority
}

func (c CreateServiceOrderCommand) Details() serviceorder.Details {
	return c.details
}

func (c *CreateServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateServiceOrderCommand) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return ErrNumberIsRequired
	}
	c.number = number
	return nil
}

func (c *CreateServiceOrderCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *CreateServiceOrderCommand) setPriority(priority serviceorder.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
