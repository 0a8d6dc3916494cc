package serviceorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// DefaultOverdueAfter is the age after which an order counts as overdue.
const DefaultOverdueAfter = 7 * 24 * time.Hour

const (
	maxNumberLength = 32
	maxTitleLength  = 200
)

var (
	ErrServiceOrderIsNotConstructed = errors.New("ServiceOrder must be created via NewServiceOrder or RestoreServiceOrder")

	// ErrStatusUnchanged is returned by ChangeStatus when the target equals the current status.
	ErrStatusUnchanged = errors.New("service order already has the requested status")
)

// Details carries the display-only data attached to an order. Every field is optional.
type Details struct {
	CustomerName string
	DeviceType   string
	DeviceBrand  string
	LaborCost    *kernel.Money
}

// ServiceOrder is a repair job. Identity, number, priority and creation time
// are fixed at construction; status is the only field that changes during
// the pipeline lifecycle.
type ServiceOrder struct {
	id        kernel.UUID
	number    string
	title     string
	status    Status
	priority  Priority
	createdAt time.Time
	updatedAt time.Time
	details   Details

	// version is the optimistic locking counter maintained by the repository.
	version int

	guard guard.ConstructorGuard
}

// NewServiceOrder creates an order in PENDING.
//
// Example:
//
//	o, err := serviceorder.NewServiceOrder(
//	    kernel.NewUUID(), "OS-000123", "Replace phone screen",
//	    serviceorder.PriorityHigh, clock.Now(),
//	    serviceorder.Details{CustomerName: "Ana Souza", DeviceType: "Smartphone"},
//	)
func NewServiceOrder(
	id kernel.UUID,
	number, title string,
	priority Priority,
	createdAt time.Time,
	details Details,
) (*ServiceOrder, error) {
	return RestoreServiceOrder(id, number, title, Pending, priority, createdAt, createdAt, details, 0)
}

// RestoreServiceOrder rehydrates an order from persistence. All invariants are
// checked again so corrupt rows never become aggregates.
func RestoreServiceOrder(
	id kernel.UUID,
	number, title string,
	status Status,
	priority Priority,
	createdAt, updatedAt time.Time,
	details Details,
	version int,
) (*ServiceOrder, error) {
	o := &ServiceOrder{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setTitle(title),
		o.setStatus(status),
		o.setPriority(priority),
		o.setTimestamps(createdAt, updatedAt),
		o.setDetails(details),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *ServiceOrder) Validate() error {
	if o == nil {
		return ErrServiceOrderIsNotConstructed
	}
	return o.guard.Validate(ErrServiceOrderIsNotConstructed)
}

func (o *ServiceOrder) ID() kernel.UUID      { return o.id }
func (o *ServiceOrder) Number() string       { return o.number }
func (o *ServiceOrder) Title() string        { return o.title }
func (o *ServiceOrder) Status() Status       { return o.status }
func (o *ServiceOrder) Priority() Priority   { return o.priority }
func (o *ServiceOrder) CreatedAt() time.Time { return o.createdAt }
func (o *ServiceOrder) UpdatedAt() time.Time { return o.updatedAt }
func (o *ServiceOrder) Details() Details     { return o.details }
func (o *ServiceOrder) Version() int         { return o.version }

// IsEqual compares orders by identity.
func (o *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// AgeAt returns how long the order has existed at now.
func (o *ServiceOrder) AgeAt(now time.Time) time.Duration {
	return now.Sub(o.createdAt)
}

// IsOverdueAt reports whether the order is strictly older than after at now.
func (o *ServiceOrder) IsOverdueAt(now time.Time, after time.Duration) bool {
	return o.AgeAt(now) > after
}

// ChangeStatus moves the order to target. It enforces only the enumeration
// invariant; whether a user may request the move is a policy decision made
// before calling it.
func (o *ServiceOrder) ChangeStatus(target Status, at time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == o.status {
		return ErrStatusUnchanged
	}

	o.status = target
	if at.After(o.updatedAt) {
		o.updatedAt = at
	}
	return nil
}

// MarkPersisted records the version written by the repository.
func (o *ServiceOrder) MarkPersisted(version int) {
	o.version = version
}

func (o *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ServiceOrder) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if len(number) > maxNumberLength {
		return errs.NewValueIsOutOfRangeError("number length", len(number), 1, maxNumberLength)
	}
	o.number = number
	return nil
}

func (o *ServiceOrder) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", len(title), 1, maxTitleLength)
	}
	o.title = title
	return nil
}

func (o *ServiceOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *ServiceOrder) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *ServiceOrder) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("%s is before createdAt %s", updatedAt.Format(time.RFC3339), createdAt.Format(time.RFC3339)),
		)
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}

func (o *ServiceOrder) setDetails(details Details) error {
	if details.LaborCost != nil {
		if err := details.LaborCost.Validate(); err != nil {
			return err
		}
	}
	details.CustomerName = strings.TrimSpace(details.CustomerName)
	details.DeviceType = strings.TrimSpace(details.DeviceType)
	details.DeviceBrand = strings.TrimSpace(details.DeviceBrand)
	o.details = details
	return nil
}

func (o *ServiceOrder) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	o.version = version
	return nil
}
