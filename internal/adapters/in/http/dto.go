package http

import (
	"time"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"
)

type NewServiceOrderRequest struct {
	Number       string  `json:"number"`
	Title        string  `json:"title"`
	Priority     string  `json:"priority"`
	CustomerName string  `json:"customer_name,omitempty"`
	DeviceType   string  `json:"device_type,omitempty"`
	DeviceBrand  string  `json:"device_brand,omitempty"`
	LaborCost    *string `json:"labor_cost,omitempty"`
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

type MoveRequest struct {
	Target string `json:"target"`
}

type ServiceOrderResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	CustomerName string    `json:"customer_name"`
	DeviceType   string    `json:"device_type"`
	DeviceBrand  string    `json:"device_brand"`
	LaborCost    *string   `json:"labor_cost"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

type MoveResponse struct {
	Moved    bool                 `json:"moved"`
	Decision string               `json:"decision"`
	Order    ServiceOrderResponse `json:"order"`
}

type QuickActionResponse struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

type QuickActionResultResponse struct {
	Action QuickActionResponse  `json:"action"`
	Order  ServiceOrderResponse `json:"order"`
}

type ColumnResponse struct {
	Status     string                `json:"status"`
	Label      string                `json:"label"`
	Color      string                `json:"color"`
	LightColor string                `json:"light_color"`
	Actions    []QuickActionResponse `json:"actions"`
}

type BoardCardResponse struct {
	ServiceOrderResponse
	Overdue bool `json:"overdue"`
}

type BoardColumnResponse struct {
	ColumnResponse
	Count int                 `json:"count"`
	Cards []BoardCardResponse `json:"cards"`
}

type BoardResponse struct {
	Columns  []BoardColumnResponse `json:"columns"`
	Unplaced int                   `json:"unplaced"`
}

func toServiceOrderResponse(v queries.ServiceOrderView) ServiceOrderResponse {
	var laborCost *string
	if v.LaborCost != nil {
		s := v.LaborCost.String()
		laborCost = &s
	}
	return ServiceOrderResponse{
		ID:           v.ID.String(),
		Number:       v.Number,
		Title:        v.Title,
		Status:       v.Status.String(),
		Priority:     v.Priority.String(),
		CustomerName: v.CustomerName,
		DeviceType:   v.DeviceType,
		DeviceBrand:  v.DeviceBrand,
		LaborCost:    laborCost,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		Version:      v.Version,
	}
}

func orderResponse(o *serviceorder.ServiceOrder) ServiceOrderResponse {
	return toServiceOrderResponse(queries.NewServiceOrderView(o))
}

func toQuickActionResponses(actions []pipeline.QuickAction) []QuickActionResponse {
	out := make([]QuickActionResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, toQuickActionResponse(a))
	}
	return out
}

func toQuickActionResponse(a pipeline.QuickAction) QuickActionResponse {
	return QuickActionResponse{Name: a.Name, Label: a.Label, Target: a.Target.String()}
}

func toColumnResponse(c pipeline.Column, actions []pipeline.QuickAction) ColumnResponse {
	return ColumnResponse{
		Status:     c.Status.String(),
		Label:      c.Label,
		Color:      c.Color,
		LightColor: c.LightColor,
		Actions:    toQuickActionResponses(actions),
	}
}

func toBoardResponse(board queries.GetPipelineBoardQueryResponse) BoardResponse {
	response := BoardResponse{
		Columns:  make([]BoardColumnResponse, 0, len(board.Columns)),
		Unplaced: board.Unplaced,
	}
	for _, column := range board.Columns {
		cards := make([]BoardCardResponse, 0, len(column.Cards))
		for _, card := range column.Cards {
			cards = append(cards, BoardCardResponse{
				ServiceOrderResponse: toServiceOrderResponse(card.ServiceOrderView),
				Overdue:              card.Overdue,
			})
		}
		response.Columns = append(response.Columns, BoardColumnResponse{
			ColumnResponse: toColumnResponse(column.Column, column.Actions),
			Count:          column.Count(),
			Cards:          cards,
		})
	}
	return response
}
