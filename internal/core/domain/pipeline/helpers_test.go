package pipeline_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.August, 1, 10, 0, 0, 0, time.UTC)

func orderIn(t *testing.T, status serviceorder.Status, age time.Duration) *serviceorder.ServiceOrder {
	t.Helper()
	created := now.Add(-age)
	o, err := serviceorder.RestoreServiceOrder(
		kernel.NewUUID(), "OS-42", "Notebook hinge", status, serviceorder.PriorityHigh,
		created, created, serviceorder.Details{CustomerName: "Bruno"}, 0,
	)
	require.NoError(t, err)
	return o
}

type MockStatusChanger struct {
	mock.Mock
}

func (m *MockStatusChanger) RequestStatusChange(orderID kernel.UUID, target serviceorder.Status) {
	m.Called(orderID, target)
}
