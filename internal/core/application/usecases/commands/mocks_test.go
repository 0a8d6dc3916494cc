package commands_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.May, 10, 9, 30, 0, 0, time.UTC)

type MockServiceOrderRepository struct{ mock.Mock }

func (m *MockServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

type MockServiceOrderUoW struct{ mock.Mock }

func (m *MockServiceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

type MockServiceOrderUoWFactory struct{ mock.Mock }

func (m *MockServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceOrderUoW)
}

type MockStatusChangePublisher struct{ mock.Mock }

func (m *MockStatusChangePublisher) PublishStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func orderIn(t *testing.T, status serviceorder.Status, age time.Duration, version int) *serviceorder.ServiceOrder {
	t.Helper()
	created := now.Add(-age)
	o, err := serviceorder.RestoreServiceOrder(
		kernel.NewUUID(), "OS-000777", "Tablet charging port", status, serviceorder.PriorityNormal,
		created, created, serviceorder.Details{CustomerName: "Joana Lima", DeviceType: "Tablet"}, version,
	)
	require.NoError(t, err)
	return o
}

// persistAt mimics the repository advancing the version on Update.
func persistAt(version int) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*serviceorder.ServiceOrder).MarkPersisted(version)
	}
}
