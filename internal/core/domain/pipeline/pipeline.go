package pipeline

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/services"
)

var (
	ErrStatusChangerIsRequired = errors.New("pipeline requires a status changer")
	ErrClockIsRequired         = errors.New("pipeline requires a clock")
)

// StatusChanger receives status change requests. The pipeline does not wait
// for or interpret the result; persistence, retries and error reporting are
// the implementation's business.
type StatusChanger interface {
	RequestStatusChange(orderID kernel.UUID, target serviceorder.Status)
}

// StatusChangerFunc adapts a function to StatusChanger.
type StatusChangerFunc func(orderID kernel.UUID, target serviceorder.Status)

// RequestStatusChange calls f.
func (f StatusChangerFunc) RequestStatusChange(orderID kernel.UUID, target serviceorder.Status) {
	f(orderID, target)
}

// Callbacks are the caller-supplied outputs of the pipeline.
type Callbacks struct {
	StatusChanger StatusChanger

	// OnEdit and OnViewDetails are optional.
	OnEdit        func(order *serviceorder.ServiceOrder)
	OnViewDetails func(order *serviceorder.ServiceOrder)
}

// Pipeline is the service order board component. It owns only the ephemeral
// drag session; events are expected to arrive sequentially from one
// interactive session, so Pipeline is not safe for concurrent use.
type Pipeline struct {
	columns   Columns
	policy    services.TransitionPolicy
	clock     kernel.Clock
	callbacks Callbacks
	session   DragSession
}

// New builds a pipeline over the caller's column configuration.
//
// Example:
//
//	p, err := pipeline.New(pipeline.DefaultColumns(), services.NewTransitionPolicy(), kernel.NewSystemClock(),
//	    pipeline.Callbacks{StatusChanger: pipeline.StatusChangerFunc(func(id kernel.UUID, s serviceorder.Status) {
//	        go client.UpdateStatus(context.Background(), id, s)
//	    })})
func New(columns Columns, policy services.TransitionPolicy, clock kernel.Clock, callbacks Callbacks) (*Pipeline, error) {
	if callbacks.StatusChanger == nil {
		return nil, ErrStatusChangerIsRequired
	}
	if clock == nil {
		return nil, ErrClockIsRequired
	}
	checked, err := NewColumns(columns...)
	if err != nil {
		return nil, err
	}
	return &Pipeline{columns: checked, policy: policy, clock: clock, callbacks: callbacks}, nil
}

// Columns returns the configured columns.
func (p *Pipeline) Columns() Columns {
	return p.columns
}

// Session returns the current drag session.
func (p *Pipeline) Session() DragSession {
	return p.session
}

// Board partitions orders by the configured columns.
func (p *Pipeline) Board(orders []*serviceorder.ServiceOrder) []Bucket {
	return Partition(orders, p.columns)
}

// DragStart marks order as the active drag source.
func (p *Pipeline) DragStart(order *serviceorder.ServiceOrder) {
	p.session = p.session.Start(order)
}

// DragOver records column as the drag-over target.
func (p *Pipeline) DragOver(column Column) {
	p.session = p.session.Over(column)
}

// DragLeave clears the drag-over target if the pointer left column's subtree.
func (p *Pipeline) DragLeave(column Column, pointerInside bool) {
	p.session = p.session.Leave(column, pointerInside)
}

// DragEnd abandons the drag.
func (p *Pipeline) DragEnd() {
	p.session = p.session.End()
}

// Drop completes the drag on column. When the transition policy allows the
// move the status change is requested. The drag session is cleared in every
// case.
func (p *Pipeline) Drop(column Column) services.Decision {
	var order *serviceorder.ServiceOrder
	p.session, order = p.session.Drop(column)

	if order == nil {
		return services.DecisionRejected
	}
	if _, ok := p.columns.Lookup(column.Status); !ok {
		return services.DecisionRejected
	}

	decision := p.policy.Decide(order, column.Status, p.clock.Now())
	if decision.Allowed() {
		p.callbacks.StatusChanger.RequestStatusChange(order.ID(), column.Status)
	}
	return decision
}

// QuickAction presses the named button on order's card. The fixed target is
// requested without consulting the transition policy or the order's age.
func (p *Pipeline) QuickAction(order *serviceorder.ServiceOrder, name string) (QuickAction, error) {
	if err := order.Validate(); err != nil {
		return QuickAction{}, err
	}
	action, err := LookupQuickAction(name)
	if err != nil {
		return QuickAction{}, err
	}
	if !action.AvailableOn(order.Status()) {
		return QuickAction{}, ErrQuickActionNotAvailable
	}

	p.callbacks.StatusChanger.RequestStatusChange(order.ID(), action.Target)
	return action, nil
}

// Edit forwards an explicit edit request.
func (p *Pipeline) Edit(order *serviceorder.ServiceOrder) {
	if p.callbacks.OnEdit != nil && order != nil {
		p.callbacks.OnEdit(order)
	}
}

// ViewDetails forwards a view-details request.
func (p *Pipeline) ViewDetails(order *serviceorder.ServiceOrder) {
	if p.callbacks.OnViewDetails != nil && order != nil {
		p.callbacks.OnViewDetails(order)
	}
}

// CardActivated handles a click on a card. Clicks inside the quick-action
// area do not open the details view.
func (p *Pipeline) CardActivated(order *serviceorder.ServiceOrder, fromQuickActionArea bool) {
	if fromQuickActionArea {
		return
	}
	p.ViewDetails(order)
}
