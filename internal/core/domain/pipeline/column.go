package pipeline

import (
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
)

// Column maps a status to its display label and colors.
type Column struct {
	Status     serviceorder.Status
	Label      string
	Color      string
	LightColor string
}

// NewColumn validates the status and label.
func NewColumn(status serviceorder.Status, label, color, lightColor string) (Column, error) {
	if err := status.Validate(); err != nil {
		return Column{}, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return Column{}, errs.NewValueIsRequiredError("column label")
	}
	return Column{Status: status, Label: label, Color: color, LightColor: lightColor}, nil
}

// Columns is the ordered board configuration; order is left-to-right.
type Columns []Column

// NewColumns rejects duplicate statuses so that every order lands in at most one column.
func NewColumns(columns ...Column) (Columns, error) {
	seen := make(map[serviceorder.Status]struct{}, len(columns))
	for _, c := range columns {
		if err := c.Status.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[c.Status]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"columns",
				fmt.Errorf("status %s is configured twice", c.Status),
			)
		}
		seen[c.Status] = struct{}{}
	}
	return Columns(columns), nil
}

// DefaultColumns is the standard six column board.
func DefaultColumns() Columns {
	return Columns{
		{Status: serviceorder.Pending, Label: "Pending", Color: "yellow", LightColor: "yellow-50"},
		{Status: serviceorder.InProgress, Label: "In progress", Color: "blue", LightColor: "blue-50"},
		{Status: serviceorder.WaitingParts, Label: "Waiting parts", Color: "orange", LightColor: "orange-50"},
		{Status: serviceorder.Completed, Label: "Completed", Color: "green", LightColor: "green-50"},
		{Status: serviceorder.Delivered, Label: "Delivered", Color: "gray", LightColor: "gray-50"},
		{Status: serviceorder.Cancelled, Label: "Cancelled", Color: "red", LightColor: "red-50"},
	}
}

// Lookup returns the column configured for status.
func (cs Columns) Lookup(status serviceorder.Status) (Column, bool) {
	for _, c := range cs {
		if c.Status == status {
			return c, true
		}
	}
	return Column{}, false
}

// Statuses returns the configured statuses in column order.
func (cs Columns) Statuses() []serviceorder.Status {
	out := make([]serviceorder.Status, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Status)
	}
	return out
}
