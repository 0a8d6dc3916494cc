package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyQuickActionCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewApplyQuickActionCommand(id, "deliver")

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "deliver", cmd.Action().Name)
	assert.Equal(t, serviceorder.Delivered, cmd.Action().Target)
}

func TestNewApplyQuickActionCommand_UnknownAction(t *testing.T) {
	_, err := commands.NewApplyQuickActionCommand(kernel.NewUUID(), "archive")

	require.ErrorIs(t, err, pipeline.ErrUnknownQuickAction)
}
