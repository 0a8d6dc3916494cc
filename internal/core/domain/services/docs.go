// Package services provides domain services that decide on service orders
// without owning them.
//
// The package includes:
//   - TransitionPolicy: decides whether a drag-and-drop move of an order to a
//     target status may be requested
//
// Domain services here are pure: they read aggregates and an explicit "now"
// and never persist or mutate anything.
package services
