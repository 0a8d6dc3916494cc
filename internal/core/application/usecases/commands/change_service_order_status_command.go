package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// Sources recorded on StatusChanged events.
const (
	SourceAPI         = "api"
	SourceDrop        = "drop"
	SourceQuickAction = "quick_action"
)

var (
	ErrChangeServiceOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeServiceOrderStatusCommand must be created via NewChangeServiceOrderStatusCommand constructor",
	)
	ErrSourceIsRequired = errs.NewValueIsRequiredError("source")
)

// ChangeServiceOrderStatusCommand writes a new status. It applies no
// transition policy; callers that need one evaluate it before building the
// command.
//
// Example:
//
//	cmd, err := NewChangeServiceOrderStatusCommand(orderID, serviceorder.Completed, SourceAPI)
//	if err != nil {
//	    return err
//	}
//	order, err := handler.Handle(ctx, cmd.WithExpectedVersion(loaded.Version()))
type ChangeServiceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  serviceorder.Status
	source  string

	expectedVersion    int
	hasExpectedVersion bool

	guard guard.ConstructorGuard
}

func NewChangeServiceOrderStatusCommand(
	orderID kernel.UUID,
	target serviceorder.Status,
	source string,
) (ChangeServiceOrderStatusCommand, error) {
	cmd := ChangeServiceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setSource(source),
	); err != nil {
		return ChangeServiceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// WithExpectedVersion pins the version the caller based its decision on.
// The handler refuses to write when the stored order has moved on since.
func (c ChangeServiceOrderStatusCommand) WithExpectedVersion(version int) (ChangeServiceOrderStatusCommand, error) {
	if version < 0 {
		return c, errs.NewValueIsOutOfRangeError("expected version", version, 0, "unbounded")
	}
	c.expectedVersion = version
	c.hasExpectedVersion = true
	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeServiceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeServiceOrderStatusCommandIsNotConstructed)
}

func (c ChangeServiceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeServiceOrderStatusCommand) Target() serviceorder.Status {
	return c.target
}

func (c ChangeServiceOrderStatusCommand) Source() string {
	return c.source
}

// ExpectedVersion returns the pinned version, if any.
func (c ChangeServiceOrderStatusCommand) ExpectedVersion() (int, bool) {
	return c.expectedVersion, c.hasExpectedVersion
}

func (c *ChangeServiceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeServiceOrderStatusCommand) setTarget(target serviceorder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ChangeServiceOrderStatusCommand) setSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return ErrSourceIsRequired
	}
	c.source = source
	return nil
}
