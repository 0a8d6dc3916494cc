package queries

import (
	"errors"
	"time"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrCountOverdueServiceOrdersQueryIsNotConstructed = errors.New(
	"CountOverdueServiceOrdersQuery must be created via NewCountOverdueServiceOrdersQuery constructor",
)

// CountOverdueServiceOrdersQuery counts open orders strictly older than the
// threshold. DELIVERED and CANCELLED orders are closed.
type CountOverdueServiceOrdersQuery struct {
	threshold time.Duration

	guard guard.ConstructorGuard
}

func NewCountOverdueServiceOrdersQuery(threshold time.Duration) (CountOverdueServiceOrdersQuery, error) {
	if threshold <= 0 {
		return CountOverdueServiceOrdersQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, "1ns", "unbounded")
	}
	return CountOverdueServiceOrdersQuery{threshold: threshold, guard: guard.NewConstructorGuard()}, nil
}

func (q CountOverdueServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOverdueServiceOrdersQueryIsNotConstructed)
}

func (q CountOverdueServiceOrdersQuery) Threshold() time.Duration {
	return q.threshold
}

type CountOverdueServiceOrdersQueryResponse struct {
	Count int64

	// Cutoff is the creation instant orders must precede to be counted.
	Cutoff time.Time
}
