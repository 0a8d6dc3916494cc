package serviceorderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceOrderDTO is the service_orders row. Status and priority are stored
// by wire name so the table stays readable from psql and reporting tools.
type ServiceOrderDTO struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Number       string              `gorm:"size:32;not null;uniqueIndex"`
	Title        string              `gorm:"size:200;not null"`
	Status       string              `gorm:"size:16;not null;index"`
	Priority     string              `gorm:"size:16;not null"`
	CustomerName string              `gorm:"size:200;not null"`
	DeviceType   string              `gorm:"size:100;not null"`
	DeviceBrand  string              `gorm:"size:100;not null"`
	LaborCost    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CreatedAt    time.Time           `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt    time.Time           `gorm:"not null;autoUpdateTime:false"`
	Version      int                 `gorm:"not null;default:0"`
}

func (ServiceOrderDTO) TableName() string {
	return "service_orders"
}

func fromDomain(aggregate *serviceorder.ServiceOrder) ServiceOrderDTO {
	details := aggregate.Details()

	var laborCost decimal.NullDecimal
	if details.LaborCost != nil {
		laborCost = decimal.NewNullDecimal(details.LaborCost.Decimal())
	}

	return ServiceOrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		Title:        aggregate.Title(),
		Status:       aggregate.Status().String(),
		Priority:     aggregate.Priority().String(),
		CustomerName: details.CustomerName,
		DeviceType:   details.DeviceType,
		DeviceBrand:  details.DeviceBrand,
		LaborCost:    laborCost,
		CreatedAt:    aggregate.CreatedAt().UTC(),
		UpdatedAt:    aggregate.UpdatedAt().UTC(),
		Version:      aggregate.Version(),
	}
}

func toDomain(dto ServiceOrderDTO) (*serviceorder.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := serviceorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := serviceorder.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	details := serviceorder.Details{
		CustomerName: dto.CustomerName,
		DeviceType:   dto.DeviceType,
		DeviceBrand:  dto.DeviceBrand,
	}
	if dto.LaborCost.Valid {
		cost, costErr := kernel.NewMoney(dto.LaborCost.Decimal)
		if costErr != nil {
			return nil, costErr
		}
		details.LaborCost = &cost
	}

	return serviceorder.RestoreServiceOrder(
		id, dto.Number, dto.Title, status, priority,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), details, dto.Version,
	)
}
