package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetServiceOrderQueryIsNotConstructed = errors.New(
	"GetServiceOrderQuery must be created via NewGetServiceOrderQuery constructor",
)

type GetServiceOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetServiceOrderQuery(orderID kernel.UUID) (GetServiceOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetServiceOrderQuery{}, err
	}
	return GetServiceOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetServiceOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceOrderQueryIsNotConstructed)
}

func (q GetServiceOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
