package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moveFixture struct {
	repo      *MockServiceOrderRepository
	uow       *MockServiceOrderUoW
	factory   *MockServiceOrderUoWFactory
	publisher *MockStatusChangePublisher
	handler   commands.MoveServiceOrderCommandHandler
}

func newMoveFixture(columns pipeline.Columns) *moveFixture {
	f := &moveFixture{
		repo:      new(MockServiceOrderRepository),
		uow:       new(MockServiceOrderUoW),
		factory:   new(MockServiceOrderUoWFactory),
		publisher: new(MockStatusChangePublisher),
	}
	clock := kernel.NewFixedClock(now)
	change := commands.NewChangeServiceOrderStatusCommandHandler(f.factory, f.publisher, clock, nil)
	f.handler = commands.NewMoveServiceOrderCommandHandler(f.factory, change, columns, services.NewTransitionPolicy(), clock)
	return f
}

func (f *moveFixture) expectLoad(t *testing.T, order *serviceorder.ServiceOrder) {
	t.Helper()
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("ServiceOrderRepository").Return(f.repo).Once()
	f.repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
}

func (f *moveFixture) expectChange(t *testing.T, order *serviceorder.ServiceOrder) {
	t.Helper()
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("ServiceOrderRepository").Return(f.repo).Once()
	f.repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
	f.repo.On("Update", mock.Anything, order).Return(nil).Run(persistAt(order.Version() + 1)).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
}

func TestMoveServiceOrderCommandHandler_FreshPendingOrderCanBeCancelled(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newMoveFixture(pipeline.DefaultColumns())
	order := orderIn(t, serviceorder.Pending, 48*time.Hour, 2)
	f.expectLoad(t, order)
	f.expectChange(t, order)
	f.publisher.On("PublishStatusChanged", ctx, mock.MatchedBy(func(e ports.StatusChangedEvent) bool {
		return e.Source == commands.SourceDrop && e.From == serviceorder.Pending && e.To == serviceorder.Cancelled
	})).Return(nil).Once()

	cmd, err := commands.NewMoveServiceOrderCommand(order.ID(), serviceorder.Cancelled)
	require.NoError(t, err)

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, services.DecisionAllowedBaseline, result.Decision)
	assert.True(t, result.Moved())
	assert.Equal(t, serviceorder.Cancelled, result.Order.Status())
	assert.Equal(t, 3, result.Order.Version())
	f.factory.AssertExpectations(t)
	f.repo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestMoveServiceOrderCommandHandler_FreshDeliveredOrderCannotBeCancelled(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newMoveFixture(pipeline.DefaultColumns())
	order := orderIn(t, serviceorder.Delivered, 24*time.Hour, 6)
	f.expectLoad(t, order)

	cmd, err := commands.NewMoveServiceOrderCommand(order.ID(), serviceorder.Cancelled)
	require.NoError(t, err)

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, services.DecisionRejected, result.Decision)
	assert.False(t, result.Moved())
	assert.Equal(t, serviceorder.Delivered, result.Order.Status())
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMoveServiceOrderCommandHandler_OverdueDeliveredOrderCanBeCancelled(t *testing.T) {
	ctx := t.Context()
	f := newMoveFixture(pipeline.DefaultColumns())
	order := orderIn(t, serviceorder.Delivered, 10*24*time.Hour, 1)
	f.expectLoad(t, order)
	f.expectChange(t, order)
	f.publisher.On("PublishStatusChanged", ctx, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewMoveServiceOrderCommand(order.ID(), serviceorder.Cancelled)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.DecisionAllowedOverdue, result.Decision)
	assert.Equal(t, serviceorder.Cancelled, result.Order.Status())
}

func TestMoveServiceOrderCommandHandler_DropOnOwnColumnIsNoOp(t *testing.T) {
	ctx := t.Context()
	f := newMoveFixture(pipeline.DefaultColumns())
	order := orderIn(t, serviceorder.InProgress, time.Hour, 1)
	f.expectLoad(t, order)

	cmd, err := commands.NewMoveServiceOrderCommand(order.ID(), serviceorder.InProgress)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.DecisionNoOp, result.Decision)
	f.publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestMoveServiceOrderCommandHandler_UnconfiguredColumnIsRejected(t *testing.T) {
	ctx := t.Context()
	pending, err := pipeline.NewColumn(serviceorder.Pending, "Pending", "yellow", "yellow-50")
	require.NoError(t, err)
	f := newMoveFixture(pipeline.Columns{pending})
	order := orderIn(t, serviceorder.Pending, time.Hour, 1)
	f.expectLoad(t, order)

	cmd, err := commands.NewMoveServiceOrderCommand(order.ID(), serviceorder.InProgress)
	require.NoError(t, err)

	result, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.DecisionRejected, result.Decision)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestMoveServiceOrderCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	f := newMoveFixture(pipeline.DefaultColumns())
	id := kernel.NewUUID()
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("ServiceOrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("service order", id)).Once()

	cmd, err := commands.NewMoveServiceOrderCommand(id, serviceorder.Completed)
	require.NoError(t, err)

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMoveServiceOrderCommandHandler_InvalidCommand(t *testing.T) {
	f := newMoveFixture(pipeline.DefaultColumns())

	_, err := f.handler.Handle(t.Context(), commands.MoveServiceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrMoveServiceOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
