package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetPipelineBoardQueryHandler partitions every stored order by the
// configured columns. Overdue flags are computed against the clock with the
// same threshold the transition policy uses.
type GetPipelineBoardQueryHandler struct {
	orders  ListServiceOrdersQueryHandler
	columns pipeline.Columns
	policy  services.TransitionPolicy
	clock   kernel.Clock
}

// NewGetPipelineBoardQueryHandler creates the board handler. policy supplies
// the overdue threshold only; no move is decided here.
func NewGetPipelineBoardQueryHandler(
	db *gorm.DB,
	columns pipeline.Columns,
	policy services.TransitionPolicy,
	clock kernel.Clock,
) GetPipelineBoardQueryHandler {
	return GetPipelineBoardQueryHandler{
		orders:  NewListServiceOrdersQueryHandler(db),
		columns: columns,
		policy:  policy,
		clock:   clock,
	}
}

// Handle returns one column per configured status, in configuration order,
// with the quick actions offered on it. Orders in unconfigured statuses are
// only counted in Unplaced.
func (h GetPipelineBoardQueryHandler) Handle(
	ctx context.Context,
	query GetPipelineBoardQuery,
) (GetPipelineBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPipelineBoardQueryResponse{}, err
	}

	orders, err := h.orders.load(ctx, nil)
	if err != nil {
		return GetPipelineBoardQueryResponse{}, err
	}

	now := h.clock.Now()
	buckets := pipeline.Partition(orders, h.columns)

	response := GetPipelineBoardQueryResponse{
		Columns:  make([]BoardColumn, 0, len(buckets)),
		Unplaced: len(pipeline.Unplaced(orders, h.columns)),
	}
	for _, b := range buckets {
		column := BoardColumn{
			Column:  b.Column,
			Actions: pipeline.ActionsFor(b.Column.Status),
			Cards:   make([]BoardCard, 0, len(b.Orders)),
		}
		for _, o := range b.Orders {
			column.Cards = append(column.Cards, BoardCard{
				ServiceOrderView: NewServiceOrderView(o),
				Overdue:          o.IsOverdueAt(now, h.policy.OverdueAfter()),
			})
		}
		response.Columns = append(response.Columns, column)
	}

	return response, nil
}
