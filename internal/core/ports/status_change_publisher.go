package ports

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// StatusChangedEvent is emitted after a status change has been committed.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	Number     string
	From       serviceorder.Status
	To         serviceorder.Status
	Source     string
	Version    int
	OccurredAt time.Time
}

// StatusChangePublisher delivers StatusChangedEvents to other services.
type StatusChangePublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
