// Package pipeline implements the Kanban-style service order board.
//
// A board is a caller-supplied ordered list of Columns, one per status.
// Partition groups orders into those columns on every render; the package
// never caches or locally mutates orders, so a move only shows up once the
// caller supplies a refreshed order collection.
//
// Two paths request status changes:
//   - drag-and-drop, driven through a DragSession and gated by
//     services.TransitionPolicy
//   - quick actions (start, wait, complete, resume, deliver), which bypass the
//     policy and the order's age entirely
//
// Both hand the request to a StatusChanger and ignore its outcome.
package pipeline
