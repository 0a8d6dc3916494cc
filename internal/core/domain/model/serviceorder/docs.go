// Package serviceorder models the repair/service job tracked from intake to
// delivery.
//
// The package includes:
//   - ServiceOrder: the aggregate root; status is its only field the pipeline mutates
//   - Status: the closed status enumeration and the baseline transition table
//   - Priority: display-only urgency of an order
//
// Status lifecycle (baseline table used by drag-and-drop moves):
//
//	PENDING       -> IN_PROGRESS, CANCELLED, COMPLETED
//	IN_PROGRESS   -> WAITING_PARTS, COMPLETED, CANCELLED, PENDING
//	WAITING_PARTS -> IN_PROGRESS, CANCELLED, COMPLETED
//	COMPLETED     -> DELIVERED, IN_PROGRESS
//	DELIVERED     -> IN_PROGRESS
//	CANCELLED     -> PENDING, IN_PROGRESS
//
// The aggregate itself accepts any valid target; which moves a user may
// request is decided by services.TransitionPolicy.
package serviceorder
