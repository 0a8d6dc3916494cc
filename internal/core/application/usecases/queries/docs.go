// Package queries contains the read side of the workshop: order listings,
// single order lookups, the pipeline board and the overdue count. Handlers
// read straight from the database with SQL and never open a unit of work.
package queries
