package queries

import (
	"context"
	"database/sql"

	"workshop/internal/core/domain/model/serviceorder"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListServiceOrdersQueryHandler lists orders oldest first, which is also the
// order cards keep inside a board column.
//
// Example:
//
//	handler := NewListServiceOrdersQueryHandler(db)
//	query, err := NewListServiceOrdersQuery(serviceorder.InProgress, serviceorder.WaitingParts)
//	if err != nil {
//	    return err
//	}
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, v := range views {
//	    fmt.Println(v.Number, v.Status)
//	}
type ListServiceOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListServiceOrdersQueryHandler creates a handler reading through db.
func NewListServiceOrdersQueryHandler(db *gorm.DB) ListServiceOrdersQueryHandler {
	return ListServiceOrdersQueryHandler{db: db}
}

// Handle returns the orders in the requested statuses, or every order when
// the query carries no filter. Results are sorted by creation time, then number.
func (h ListServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListServiceOrdersQuery,
) ([]ServiceOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.load(ctx, query.Statuses())
	if err != nil {
		return nil, err
	}

	views := make([]ServiceOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewServiceOrderView(o))
	}
	return views, nil
}

func (h ListServiceOrdersQueryHandler) load(
	ctx context.Context,
	statuses []serviceorder.Status,
) ([]*serviceorder.ServiceOrder, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if len(statuses) == 0 {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT` + serviceOrderColumns + `
			FROM service_orders
			ORDER BY created_at, number
		`).Rows()
	} else {
		names := make(pq.StringArray, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT`+serviceOrderColumns+`
			FROM service_orders
			WHERE status = ANY(?)
			ORDER BY created_at, number
		`, names).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanServiceOrders(rows)
}
