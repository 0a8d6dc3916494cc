package pipeline

import (
	"errors"

	"workshop/internal/core/domain/model/serviceorder"
)

var (
	ErrUnknownQuickAction      = errors.New("unknown quick action")
	ErrQuickActionNotAvailable = errors.New("quick action is not offered on the order's column")
)

// QuickAction is a button shown on cards of its Source column. Pressing it
// requests Target directly, without consulting the transition policy.
type QuickAction struct {
	Name   string
	Label  string
	Source serviceorder.Status
	Target serviceorder.Status
}

var quickActions = []QuickAction{
	{Name: "start", Label: "Start", Source: serviceorder.Pending, Target: serviceorder.InProgress},
	{Name: "wait", Label: "Wait", Source: serviceorder.InProgress, Target: serviceorder.WaitingParts},
	{Name: "complete", Label: "Complete", Source: serviceorder.InProgress, Target: serviceorder.Completed},
	{Name: "resume", Label: "Resume", Source: serviceorder.WaitingParts, Target: serviceorder.InProgress},
	{Name: "deliver", Label: "Deliver", Source: serviceorder.Completed, Target: serviceorder.Delivered},
}

// QuickActions returns the full button catalogue.
func QuickActions() []QuickAction {
	out := make([]QuickAction, len(quickActions))
	copy(out, quickActions)
	return out
}

// ActionsFor returns the buttons offered on cards in the status column.
func ActionsFor(status serviceorder.Status) []QuickAction {
	var out []QuickAction
	for _, a := range quickActions {
		if a.Source == status {
			out = append(out, a)
		}
	}
	return out
}

// LookupQuickAction finds an action by name.
func LookupQuickAction(name string) (QuickAction, error) {
	for _, a := range quickActions {
		if a.Name == name {
			return a, nil
		}
	}
	return QuickAction{}, ErrUnknownQuickAction
}

// AvailableOn reports whether the button is rendered for an order in status.
func (a QuickAction) AvailableOn(status serviceorder.Status) bool {
	return a.Source == status
}
