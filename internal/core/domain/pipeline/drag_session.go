package pipeline

import "workshop/internal/core/domain/model/serviceorder"

// DragState is the interaction state of a drag-and-drop gesture.
type DragState int

const (
	Idle DragState = iota
	Dragging
	DraggingOver
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case DraggingOver:
		return "dragging_over"
	default:
		return "unknown"
	}
}

// DragSession tracks one drag gesture: the dragged order and the column
// currently under the pointer. It is a value; every event returns the next
// session and leaves the receiver untouched.
//
//	Idle --start--> Dragging --over--> DraggingOver
//	                   ^                    |
//	                   +------leave---------+
//	any --drop/end--> Idle
type DragSession struct {
	state DragState
	order *serviceorder.ServiceOrder
	over  serviceorder.Status
}

// State returns the current interaction state.
func (s DragSession) State() DragState {
	return s.state
}

// DraggedOrder returns the order being dragged, if any.
func (s DragSession) DraggedOrder() (*serviceorder.ServiceOrder, bool) {
	return s.order, s.order != nil
}

// OverColumn returns the status of the column under the pointer, if any.
func (s DragSession) OverColumn() (serviceorder.Status, bool) {
	return s.over, s.state == DraggingOver
}

// Start begins dragging order. Starting a new drag replaces any previous one.
func (s DragSession) Start(order *serviceorder.ServiceOrder) DragSession {
	if order == nil {
		return DragSession{}
	}
	return DragSession{state: Dragging, order: order}
}

// Over records column as the drag-over target; repeated events overwrite it.
// Without a dragged order the event is ignored.
func (s DragSession) Over(column Column) DragSession {
	if s.state == Idle {
		return s
	}
	return DragSession{state: DraggingOver, order: s.order, over: column.Status}
}

// Leave clears the drag-over target when the pointer left column's drop zone.
// pointerInside is true when the pointer only moved between child elements
// of the same column; such events are ignored to avoid flicker.
func (s DragSession) Leave(column Column, pointerInside bool) DragSession {
	if pointerInside || s.state != DraggingOver || s.over != column.Status {
		return s
	}
	return DragSession{state: Dragging, order: s.order}
}

// Drop ends the gesture on column. It returns the idle session and the
// dragged order, which is nil when nothing was being dragged.
func (s DragSession) Drop(_ Column) (DragSession, *serviceorder.ServiceOrder) {
	return DragSession{}, s.order
}

// End abandons the gesture without a drop.
func (s DragSession) End() DragSession {
	return DragSession{}
}
