package queries

import (
	"errors"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"
)

var ErrListServiceOrdersQueryIsNotConstructed = errors.New(
	"ListServiceOrdersQuery must be created via NewListServiceOrdersQuery constructor",
)

// ListServiceOrdersQuery lists orders, optionally restricted to statuses.
//
// Example:
//
//	query, err := NewListServiceOrdersQuery(serviceorder.Pending, serviceorder.InProgress)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type ListServiceOrdersQuery struct {
	statuses []serviceorder.Status

	guard guard.ConstructorGuard
}

// NewListServiceOrdersQuery lists every order when no status is given.
func NewListServiceOrdersQuery(statuses ...serviceorder.Status) (ListServiceOrdersQuery, error) {
	seen := make(map[serviceorder.Status]struct{}, len(statuses))
	unique := make([]serviceorder.Status, 0, len(statuses))

	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListServiceOrdersQuery{}, err
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}

	return ListServiceOrdersQuery{statuses: unique, guard: guard.NewConstructorGuard()}, nil
}

func (q ListServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListServiceOrdersQueryIsNotConstructed)
}

// Statuses returns the filter; empty means no filter.
func (q ListServiceOrdersQuery) Statuses() []serviceorder.Status {
	out := make([]serviceorder.Status, len(q.statuses))
	copy(out, q.statuses)
	return out
}
