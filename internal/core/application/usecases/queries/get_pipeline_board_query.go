package queries

import (
	"errors"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/pkg/guard"
)

var ErrGetPipelineBoardQueryIsNotConstructed = errors.New(
	"GetPipelineBoardQuery must be created via NewGetPipelineBoardQuery constructor",
)

// GetPipelineBoardQuery renders the board: one bucket per configured column
// in configuration order.
type GetPipelineBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPipelineBoardQuery() GetPipelineBoardQuery {
	return GetPipelineBoardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPipelineBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetPipelineBoardQueryIsNotConstructed)
}

// BoardCard is an order as shown inside a column.
type BoardCard struct {
	ServiceOrderView

	// Overdue means drag-and-drop accepts any target column for this card.
	Overdue bool
}

// BoardColumn is one rendered column with its cards and card buttons.
type BoardColumn struct {
	Column  pipeline.Column
	Actions []pipeline.QuickAction
	Cards   []BoardCard
}

// Count is the badge shown in the column header.
func (c BoardColumn) Count() int {
	return len(c.Cards)
}

// GetPipelineBoardQueryResponse is the full board. Orders whose status has
// no configured column are not shown and only counted in Unplaced.
type GetPipelineBoardQueryResponse struct {
	Columns  []BoardColumn
	Unplaced int
}

// Column returns the bucket for status.
func (r GetPipelineBoardQueryResponse) Column(status serviceorder.Status) (BoardColumn, bool) {
	for _, c := range r.Columns {
		if c.Column.Status == status {
			return c, true
		}
	}
	return BoardColumn{}, false
}
