package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status is the lifecycle state of a service order.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Pending is the intake state; every order is created here.
	Pending

	// InProgress means a technician is working on the device.
	InProgress

	// WaitingParts means work is paused until parts arrive.
	WaitingParts

	// Completed means the repair is done and the device awaits pickup.
	Completed

	// Delivered means the device was handed back to the customer.
	Delivered

	// Cancelled means the job was abandoned.
	Cancelled
)

// wireNames are the persisted and JSON representations.
var wireNames = map[Status]string{
	Pending:      "PENDING",
	InProgress:   "IN_PROGRESS",
	WaitingParts: "WAITING_PARTS",
	Completed:    "COMPLETED",
	Delivered:    "DELIVERED",
	Cancelled:    "CANCELLED",
}

// AllStatuses returns the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, InProgress, WaitingParts, Completed, Delivered, Cancelled}
}

// ParseStatus converts a wire name such as "IN_PROGRESS" into a Status.
// Matching is exact; "in_progress" or "Unknown" are rejected.
func ParseStatus(s string) (Status, error) {
	for status, name := range wireNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate reports whether s is one of the six lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := wireNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := wireNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText encodes the wire name; invalid statuses cannot be encoded.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a wire name.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// BaselineTargets lists the statuses a non-overdue order may normally be
// moved to from s. The switch is exhaustive over the enumeration; adding a
// status without a row here is caught by the exhaustive linter and by tests.
func (s Status) BaselineTargets() []Status {
	switch s {
	case Pending:
		return []Status{InProgress, Cancelled, Completed}
	case InProgress:
		return []Status{WaitingParts, Completed, Cancelled, Pending}
	case WaitingParts:
		return []Status{InProgress, Cancelled, Completed}
	case Completed:
		return []Status{Delivered, InProgress}
	case Delivered:
		return []Status{InProgress}
	case Cancelled:
		return []Status{Pending, InProgress}
	case Unknown:
		return nil
	default:
		return nil
	}
}

// CanBaselineTransitionTo reports whether the baseline table lists target for s.
func (s Status) CanBaselineTransitionTo(target Status) bool {
	for _, allowed := range s.BaselineTargets() {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsAlwaysAllowedTarget reports whether s can be reached from any status
// regardless of the baseline table or the order's age.
func (s Status) IsAlwaysAllowedTarget() bool {
	switch s {
	case Pending, InProgress, WaitingParts, Completed:
		return true
	case Unknown, Delivered, Cancelled:
		return false
	default:
		return false
	}
}

// IsTerminal reports whether s ends the normal lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsOpen reports whether the order still needs work or pickup.
func (s Status) IsOpen() bool {
	return s != Delivered && s != Cancelled && s != Unknown
}
