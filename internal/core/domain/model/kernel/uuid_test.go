package kernel_test

import (
	"testing"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.NotEqual(t, uuid.Nil, id.Raw())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero UUID is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.Error(t, err)
	})
}

func TestUUIDFromRaw(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		raw := uuid.New()
		id, err := kernel.UUIDFromRaw(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.Raw())
	})

	t.Run("zero UUID is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromRaw(uuid.Nil)

		require.Error(t, err)
	})
}

func TestUUIDIsEqual(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
}

func TestUUIDValidate_ZeroValue(t *testing.T) {
	var id kernel.UUID

	err := id.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
