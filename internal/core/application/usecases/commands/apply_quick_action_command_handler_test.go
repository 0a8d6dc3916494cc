package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuickActionHandler(f *moveFixture) commands.ApplyQuickActionCommandHandler {
	clock := kernel.NewFixedClock(now)
	change := commands.NewChangeServiceOrderStatusCommandHandler(f.factory, f.publisher, clock, nil)
	return commands.NewApplyQuickActionCommandHandler(f.factory, change, pipeline.DefaultColumns(), clock)
}

func TestApplyQuickActionCommandHandler_DeliverBypassesPolicy(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newMoveFixture(pipeline.DefaultColumns())
	handler := newQuickActionHandler(f)
	order := orderIn(t, serviceorder.Completed, time.Hour, 3)
	f.expectLoad(t, order)
	f.expectChange(t, order)
	f.publisher.On("PublishStatusChanged", ctx, mock.MatchedBy(func(e ports.StatusChangedEvent) bool {
		return e.Source == commands.SourceQuickAction && e.To == serviceorder.Delivered
	})).Return(nil).Once()

	cmd, err := commands.NewApplyQuickActionCommand(order.ID(), "deliver")
	require.NoError(t, err)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "deliver", result.Action.Name)
	assert.Equal(t, serviceorder.Delivered, result.Order.Status())
	f.publisher.AssertExpectations(t)
}

func TestApplyQuickActionCommandHandler_ActionNotOnOrderColumn(t *testing.T) {
	ctx := t.Context()
	f := newMoveFixture(pipeline.DefaultColumns())
	handler := newQuickActionHandler(f)
	order := orderIn(t, serviceorder.Pending, time.Hour, 0)
	f.expectLoad(t, order)

	cmd, err := commands.NewApplyQuickActionCommand(order.ID(), "complete")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, pipeline.ErrQuickActionNotAvailable)
	assert.Equal(t, serviceorder.Pending, order.Status())
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestApplyQuickActionCommandHandler_InvalidCommand(t *testing.T) {
	f := newMoveFixture(pipeline.DefaultColumns())
	handler := newQuickActionHandler(f)

	_, err := handler.Handle(t.Context(), commands.ApplyQuickActionCommand{})

	require.ErrorIs(t, err, commands.ErrApplyQuickActionCommandIsNotConstructed)
}
