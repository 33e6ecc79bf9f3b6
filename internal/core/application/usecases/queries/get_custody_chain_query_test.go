package queries_test

import (
	"testing"

	"cannacommerce/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustodyChainQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		query, err := queries.NewGetCustodyChainQuery("BATCH-2025-0042")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "BATCH-2025-0042", query.BatchNumber())
	})

	t.Run("should reject empty batch number", func(t *testing.T) {
		_, err := queries.NewGetCustodyChainQuery("")
		require.ErrorIs(t, err, queries.ErrCustodyChainBatchNumberIsRequired)
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.GetCustodyChainQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetCustodyChainQueryIsNotConstructed)
	})
}

func TestNewGetOpenOrdersQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		query := queries.NewGetOpenOrdersQuery()
		require.NoError(t, query.Validate())
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.GetOpenOrdersQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOpenOrdersQueryIsNotConstructed)
	})
}

func TestNewGetItemsBelowReorderPointQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		query := queries.NewGetItemsBelowReorderPointQuery()
		require.NoError(t, query.Validate())
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.GetItemsBelowReorderPointQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetItemsBelowReorderPointQueryIsNotConstructed)
	})
}
