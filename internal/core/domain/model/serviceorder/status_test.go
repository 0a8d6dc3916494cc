package serviceorder_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ParseRoundTrip(t *testing.T) {
	for _, status := range serviceorder.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			parsed, err := serviceorder.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}
}

func TestStatus_ParseRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "UNKNOWN", "in_progress", "Pending", "CLOSED"} {
		t.Run(fmt.Sprintf("rejects %q", name), func(t *testing.T) {
			status, err := serviceorder.ParseStatus(name)

			assert.Equal(t, serviceorder.Unknown, status)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("accepts every lifecycle status", func(t *testing.T) {
		for _, status := range serviceorder.AllStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("rejects unknown and out of range values", func(t *testing.T) {
		for _, status := range []serviceorder.Status{serviceorder.Unknown, serviceorder.Status(7), serviceorder.Status(-1)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_JSON(t *testing.T) {
	type payload struct {
		Status serviceorder.Status `json:"status"`
	}

	data, err := json.Marshal(payload{Status: serviceorder.WaitingParts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"WAITING_PARTS"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"status":"DELIVERED"}`), &decoded))
	assert.Equal(t, serviceorder.Delivered, decoded.Status)

	require.Error(t, json.Unmarshal([]byte(`{"status":"SHIPPED"}`), &decoded))

	_, err = json.Marshal(payload{})
	require.Error(t, err)
}

func TestStatus_BaselineTargets(t *testing.T) {
	s := func(ss ...serviceorder.Status) []serviceorder.Status { return ss }

	expected := map[serviceorder.Status][]serviceorder.Status{
		serviceorder.Pending:      s(serviceorder.InProgress, serviceorder.Cancelled, serviceorder.Completed),
		serviceorder.InProgress:   s(serviceorder.WaitingParts, serviceorder.Completed, serviceorder.Cancelled, serviceorder.Pending),
		serviceorder.WaitingParts: s(serviceorder.InProgress, serviceorder.Cancelled, serviceorder.Completed),
		serviceorder.Completed:    s(serviceorder.Delivered, serviceorder.InProgress),
		serviceorder.Delivered:    s(serviceorder.InProgress),
		serviceorder.Cancelled:    s(serviceorder.Pending, serviceorder.InProgress),
	}

	for _, from := range serviceorder.AllStatuses() {
		t.Run(from.String(), func(t *testing.T) {
			assert.Equal(t, expected[from], from.BaselineTargets())
		})
	}

	assert.Empty(t, serviceorder.Unknown.BaselineTargets())
}

func TestStatus_CanBaselineTransitionTo(t *testing.T) {
	assert.True(t, serviceorder.Pending.CanBaselineTransitionTo(serviceorder.Cancelled))
	assert.True(t, serviceorder.Completed.CanBaselineTransitionTo(serviceorder.Delivered))
	assert.False(t, serviceorder.Delivered.CanBaselineTransitionTo(serviceorder.Cancelled))
	assert.False(t, serviceorder.Pending.CanBaselineTransitionTo(serviceorder.Delivered))
	assert.False(t, serviceorder.Pending.CanBaselineTransitionTo(serviceorder.Pending))
}

func TestStatus_IsAlwaysAllowedTarget(t *testing.T) {
	always := map[serviceorder.Status]bool{
		serviceorder.Pending:      true,
		serviceorder.InProgress:   true,
		serviceorder.WaitingParts: true,
		serviceorder.Completed:    true,
		serviceorder.Delivered:    false,
		serviceorder.Cancelled:    false,
	}

	for status, want := range always {
		assert.Equal(t, want, status.IsAlwaysAllowedTarget(), status.String())
	}
	assert.False(t, serviceorder.Unknown.IsAlwaysAllowedTarget())
}

func TestStatus_IsOpen(t *testing.T) {
	assert.True(t, serviceorder.Pending.IsOpen())
	assert.True(t, serviceorder.Completed.IsOpen())
	assert.False(t, serviceorder.Delivered.IsOpen())
	assert.False(t, serviceorder.Cancelled.IsOpen())
	assert.True(t, serviceorder.Delivered.IsTerminal())
	assert.False(t, serviceorder.Cancelled.IsTerminal())
}
