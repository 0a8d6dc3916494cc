package queries

import (
	"context"

	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetServiceOrderQueryHandler loads a single order read model by ID.
type GetServiceOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceOrderQueryHandler creates a handler reading through db.
func NewGetServiceOrderQueryHandler(db *gorm.DB) GetServiceOrderQueryHandler {
	return GetServiceOrderQueryHandler{db: db}
}

// Handle returns an errs.ObjectNotFoundError for unknown IDs.
func (h GetServiceOrderQueryHandler) Handle(ctx context.Context, query GetServiceOrderQuery) (ServiceOrderView, error) {
	if err := query.Validate(); err != nil {
		return ServiceOrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+serviceOrderColumns+`
		FROM service_orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return ServiceOrderView{}, err
	}
	defer rows.Close()

	orders, err := scanServiceOrders(rows)
	if err != nil {
		return ServiceOrderView{}, err
	}
	if len(orders) == 0 {
		return ServiceOrderView{}, errs.NewObjectNotFoundError("service order", query.OrderID().String())
	}

	return NewServiceOrderView(orders[0]), nil
}
