package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasoighar/backend/internal/model"
	"github.com/rasoighar/backend/internal/testhelpers"
)

func TestDeriveAlert(t *testing.T) {
	tests := []struct {
		name   string
		fire   bool
		gas    float64
		weight float64
		want   string
	}{
		{name: "calm reading", fire: false, gas: 100, weight: 500, want: ""},
		{name: "fire outranks everything", fire: true, gas: 999, weight: 1, want: "Fire detected in kitchen!"},
		{name: "gas above threshold", fire: false, gas: 401, weight: 500, want: "High gas concentration detected!"},
		{name: "gas at threshold is calm", fire: false, gas: 400, weight: 500, want: ""},
		{name: "gas outranks low weight", fire: false, gas: 500, weight: 50, want: "High gas concentration detected!"},
		{name: "low weight", fire: false, gas: 100, weight: 199, want: "Low weight detected – check inventory!"},
		{name: "weight at threshold is calm", fire: false, gas: 100, weight: 200, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAlert(tt.fire, tt.gas, tt.weight))
		})
	}
}

func TestRegisterDevice(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewIoTService(db, "test-secret")
	ctx := context.Background()

	device, err := svc.RegisterDevice(ctx, "kitchen-01", "Kitchen Hub", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "kitchen-01", device.DeviceID)
	assert.NotEqual(t, "s3cret", device.SecretHash)

	t.Run("duplicate device id rejected", func(t *testing.T) {
		_, err := svc.RegisterDevice(ctx, "kitchen-01", "Another", "other")
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "deviceId", verr.Field)
	})

	t.Run("missing secret rejected", func(t *testing.T) {
		_, err := svc.RegisterDevice(ctx, "kitchen-02", "Hub", "")
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "secret", verr.Field)
	})
}

func TestIssueAndValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewIoTService(db, "test-secret")
	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, "kitchen-01", "Kitchen Hub", "s3cret")
	require.NoError(t, err)

	token, err := svc.IssueToken(ctx, "kitchen-01", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kitchen-01", claims.DeviceID)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.IssueToken(ctx, "kitchen-01", "wrong")
		assert.ErrorIs(t, err, ErrInvalidDeviceCredentials)
	})

	t.Run("unknown device", func(t *testing.T) {
		_, err := svc.IssueToken(ctx, "nope", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidDeviceCredentials)
	})

	t.Run("token signed with another key rejected", func(t *testing.T) {
		other := NewIoTService(db, "different-secret")
		_, err := other.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestRecordReading(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewIoTService(db, "test-secret")
	ctx := context.Background()

	reading, err := svc.RecordReading(ctx, &model.SensorReading{
		DeviceID: "kitchen-01",
		Gas:      450,
		Weight:   1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "High gas concentration detected!", reading.Alert)

	_, err = svc.RecordReading(ctx, &model.SensorReading{DeviceID: "kitchen-01", Gas: 10, Weight: 900})
	require.NoError(t, err)

	t.Run("missing device id rejected", func(t *testing.T) {
		_, err := svc.RecordReading(ctx, &model.SensorReading{Gas: 10})
		var verr *model.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("latest readings", func(t *testing.T) {
		readings, err := svc.LatestReadings(ctx, 1)
		require.NoError(t, err)
		require.Len(t, readings, 1)

		readings, err = svc.LatestReadings(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, readings, 2)
	})
}
