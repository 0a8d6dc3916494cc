package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CountOverdueServiceOrdersQueryHandler counts open orders created before
// now minus the query threshold.
//
// Example:
//
//	handler := NewCountOverdueServiceOrdersQueryHandler(db, kernel.NewSystemClock())
//	query, err := NewCountOverdueServiceOrdersQuery(7 * 24 * time.Hour)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders created before %s are still open\n", response.Count, response.Cutoff)
type CountOverdueServiceOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewCountOverdueServiceOrdersQueryHandler creates the handler. The clock
// supplies the instant the threshold is measured from.
func NewCountOverdueServiceOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) CountOverdueServiceOrdersQueryHandler {
	return CountOverdueServiceOrdersQueryHandler{db: db, clock: clock}
}

// Handle counts orders whose status is neither DELIVERED nor CANCELLED and
// whose age is strictly greater than the threshold.
func (h CountOverdueServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountOverdueServiceOrdersQuery,
) (CountOverdueServiceOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountOverdueServiceOrdersQueryResponse{}, err
	}

	open := make(pq.StringArray, 0, len(serviceorder.AllStatuses()))
	for _, s := range serviceorder.AllStatuses() {
		if s.IsOpen() {
			open = append(open, s.String())
		}
	}

	cutoff := h.clock.Now().Add(-query.Threshold())

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM service_orders
		WHERE status = ANY(?)
		  AND created_at < ?
	`, open, cutoff).Scan(&count).Error
	if err != nil {
		return CountOverdueServiceOrdersQueryResponse{}, err
	}

	return CountOverdueServiceOrdersQueryResponse{Count: count, Cutoff: cutoff}, nil
}
