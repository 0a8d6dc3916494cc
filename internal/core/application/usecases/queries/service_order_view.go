package queries

import (
	"database/sql"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// serviceOrderColumns is the select list understood by scanServiceOrders.
const serviceOrderColumns = `
	id,
	number,
	title,
	status,
	priority,
	customer_name,
	device_type,
	device_brand,
	labor_cost,
	created_at,
	updated_at,
	version`

// ServiceOrderView is the read model of a service order.
type ServiceOrderView struct {
	ID           kernel.UUID
	Number       string
	Title        string
	Status       serviceorder.Status
	Priority     serviceorder.Priority
	CustomerName string
	DeviceType   string
	DeviceBrand  string
	LaborCost    *kernel.Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int
}

// NewServiceOrderView projects an aggregate onto the read model.
func NewServiceOrderView(o *serviceorder.ServiceOrder) ServiceOrderView {
	details := o.Details()
	return ServiceOrderView{
		ID:           o.ID(),
		Number:       o.Number(),
		Title:        o.Title(),
		Status:       o.Status(),
		Priority:     o.Priority(),
		CustomerName: details.CustomerName,
		DeviceType:   details.DeviceType,
		DeviceBrand:  details.DeviceBrand,
		LaborCost:    details.LaborCost,
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		Version:      o.Version(),
	}
}

// scanServiceOrders rehydrates rows selected with serviceOrderColumns. Rows
// go through the aggregate so the read side never shows data the domain
// would reject.
func scanServiceOrders(rows *sql.Rows) ([]*serviceorder.ServiceOrder, error) {
	orders := make([]*serviceorder.ServiceOrder, 0)

	for rows.Next() {
		var (
			id                                    uuid.UUID
			number, title, status, priority       string
			customerName, deviceType, deviceBrand string
			laborCost                             decimal.NullDecimal
			createdAt, updatedAt                  time.Time
			version                               int
		)

		if err := rows.Scan(
			&id,
			&number,
			&title,
			&status,
			&priority,
			&customerName,
			&deviceType,
			&deviceBrand,
			&laborCost,
			&createdAt,
			&updatedAt,
			&version,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		parsedStatus, err := serviceorder.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		parsedPriority, err := serviceorder.ParsePriority(priority)
		if err != nil {
			return nil, err
		}

		details := serviceorder.Details{
			CustomerName: customerName,
			DeviceType:   deviceType,
			DeviceBrand:  deviceBrand,
		}
		if laborCost.Valid {
			cost, costErr := kernel.NewMoney(laborCost.Decimal)
			if costErr != nil {
				return nil, costErr
			}
			details.LaborCost = &cost
		}

		o, err := serviceorder.RestoreServiceOrder(
			orderID, number, title, parsedStatus, parsedPriority,
			createdAt.UTC(), updatedAt.UTC(), details, version,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
