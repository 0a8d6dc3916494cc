package services

import (
	"time"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
)

// Decision is the outcome of evaluating a requested move.
type Decision int

const (
	// DecisionRejected means the move must not be requested.
	DecisionRejected Decision = iota

	// DecisionNoOp means the target equals the current status.
	DecisionNoOp

	// DecisionAllowedAlways means the target is one of the always-allowed statuses.
	DecisionAllowedAlways

	// DecisionAllowedOverdue means the order is overdue and any target is accepted.
	DecisionAllowedOverdue

	// DecisionAllowedBaseline means the baseline transition table lists the target.
	DecisionAllowedBaseline
)

var decisionNames = map[Decision]string{
	DecisionRejected:        "rejected",
	DecisionNoOp:            "no_op",
	DecisionAllowedAlways:   "allowed_always",
	DecisionAllowedOverdue:  "allowed_overdue",
	DecisionAllowedBaseline: "allowed_baseline",
}

// Allowed reports whether a status change has to be requested.
func (d Decision) Allowed() bool {
	return d == DecisionAllowedAlways || d == DecisionAllowedOverdue || d == DecisionAllowedBaseline
}

func (d Decision) String() string {
	if name, ok := decisionNames[d]; ok {
		return name
	}
	return "unknown"
}

// TransitionPolicy decides drag-and-drop moves between pipeline columns.
//
// Rules, evaluated in order:
//  1. target equal to the current status: no-op
//  2. target is PENDING, IN_PROGRESS, WAITING_PARTS or COMPLETED: allowed
//  3. order older than the overdue threshold: allowed for any target
//  4. baseline table lists the target: allowed
//  5. otherwise rejected
//
// In practice only DELIVERED and CANCELLED targets on non-overdue orders ever
// reach the baseline table.
//
// Example:
//
//	policy := services.NewTransitionPolicy()
//	if policy.Decide(order, serviceorder.Cancelled, clock.Now()).Allowed() {
//	    changer.ChangeStatus(order.ID(), serviceorder.Cancelled)
//	}
type TransitionPolicy struct {
	overdueAfter time.Duration
}

// NewTransitionPolicy returns the policy with the default seven day threshold.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{overdueAfter: serviceorder.DefaultOverdueAfter}
}

// NewTransitionPolicyWithThreshold returns a policy with a custom overdue threshold.
func NewTransitionPolicyWithThreshold(overdueAfter time.Duration) (TransitionPolicy, error) {
	if overdueAfter <= 0 {
		return TransitionPolicy{}, errs.NewValueIsOutOfRangeError("overdue threshold", overdueAfter.String(), "1ns", "unbounded")
	}
	return TransitionPolicy{overdueAfter: overdueAfter}, nil
}

// OverdueAfter returns the configured threshold.
func (p TransitionPolicy) OverdueAfter() time.Duration {
	if p.overdueAfter <= 0 {
		return serviceorder.DefaultOverdueAfter
	}
	return p.overdueAfter
}

// Decide evaluates a move of order to target at now. Invalid orders or
// targets are rejected.
func (p TransitionPolicy) Decide(order *serviceorder.ServiceOrder, target serviceorder.Status, now time.Time) Decision {
	if order.Validate() != nil || target.Validate() != nil {
		return DecisionRejected
	}

	switch {
	case target == order.Status():
		return DecisionNoOp
	case target.IsAlwaysAllowedTarget():
		return DecisionAllowedAlways
	case order.IsOverdueAt(now, p.OverdueAfter()):
		return DecisionAllowedOverdue
	case order.Status().CanBaselineTransitionTo(target):
		return DecisionAllowedBaseline
	default:
		return DecisionRejected
	}
}

// Allows is Decide(...).Allowed().
func (p TransitionPolicy) Allows(order *serviceorder.ServiceOrder, target serviceorder.Status, now time.Time) bool {
	return p.Decide(order, target, now).Allowed()
}
