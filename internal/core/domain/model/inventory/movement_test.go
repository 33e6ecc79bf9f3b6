package inventory_test

import (
	"testing"
	"time"

	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockMovement(t *testing.T) {
	store := mustGLN(t, "0698420391022")
	warehouse := mustGLN(t, "1234567890128")

	t.Run("should enforce per-type location rules", func(t *testing.T) {
		_, err := inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Receipt, 10, nil, nil, movedAt())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Sale, 10, nil, &store, movedAt())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Transfer, 10, &store, &store, movedAt())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Receipt, 0, nil, &store, movedAt())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should carry a batch number", func(t *testing.T) {
		m, err := inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Transfer, 10, &store, &warehouse, movedAt())
		require.NoError(t, err)

		withBatch := m.WithBatchNumber("BATCH-2025-0042")
		assert.Equal(t, "BATCH-2025-0042", withBatch.BatchNumber())
		assert.Empty(t, m.BatchNumber())
	})
}

func TestStockMovement_Reversal(t *testing.T) {
	store := mustGLN(t, "0698420391022")

	t.Run("reversal swaps endpoints and links the original", func(t *testing.T) {
		original, err := inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Receipt, 10, nil, &store, movedAt())
		require.NoError(t, err)

		reversal, err := original.Reversal(kernel.NewUUID(), movedAt().Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, reversal.Validate())
		require.NotNil(t, reversal.ReversalOf())
		assert.True(t, reversal.ReversalOf().IsEqual(original.ID()))
		require.NotNil(t, reversal.FromLocation())
		assert.True(t, reversal.FromLocation().IsEqual(store))
		assert.Nil(t, reversal.ToLocation())
		assert.Equal(t, original.Quantity(), reversal.Quantity())
	})

	t.Run("a reversal cannot itself be reversed", func(t *testing.T) {
		original, err := inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Receipt, 10, nil, &store, movedAt())
		require.NoError(t, err)
		reversal, err := original.Reversal(kernel.NewUUID(), movedAt().Add(time.Hour))
		require.NoError(t, err)

		_, err = reversal.Reversal(kernel.NewUUID(), movedAt().Add(2*time.Hour))
		require.Error(t, err)
	})

	t.Run("reversal undoes the original on an item", func(t *testing.T) {
		item, err := inventory.NewItem(kernel.NewUUID(), "SKU-OGK-35", store)
		require.NoError(t, err)

		original, err := inventory.NewStockMovement(kernel.NewUUID(), "SKU-OGK-35",
			inventory.Receipt, 10, nil, &store, movedAt())
		require.NoError(t, err)
		require.NoError(t, item.ApplyMovement(original))

		reversal, err := original.Reversal(kernel.NewUUID(), movedAt().Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, item.ApplyMovement(reversal))

		assert.Zero(t, item.OnHand())
	})
}
