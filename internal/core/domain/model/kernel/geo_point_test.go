package kernel_test

import (
	"testing"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(40.7128, -74.0060)

		require.NoError(t, err)
		assert.InDelta(t, 40.7128, point.Latitude(), 1e-9)
		assert.InDelta(t, -74.0060, point.Longitude(), 1e-9)
	})

	t.Run("boundary values", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90, 180)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(-90, -180)
		require.NoError(t, err)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.01, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGeoPointIsEqual(t *testing.T) {
	first, err := kernel.NewGeoPoint(40.6782, -73.9442)
	require.NoError(t, err)
	same, err := kernel.NewGeoPoint(40.6782, -73.9442)
	require.NoError(t, err)
	other, err := kernel.NewGeoPoint(40.6782, -73.9441)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
}
