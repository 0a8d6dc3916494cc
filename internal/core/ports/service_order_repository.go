// Package ports defines the contracts between the workshop core and its
// infrastructure: repositories, the unit of work and outbound events.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// ServiceOrderRepository persists service order aggregates.
type ServiceOrderRepository interface {
	// Add stores a new order. The order number must be unique.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update writes an existing order using optimistic locking: the stored
	// version must equal aggregate.Version(), otherwise an
	// errs.VersionIsInvalidError is returned. On success the aggregate's
	// version is advanced.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get loads an order or returns an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)
}
