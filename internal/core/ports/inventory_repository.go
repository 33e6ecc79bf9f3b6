package ports

import (
	"context"

	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for stock positions
// and their movement history. Movement records are append-only.
type InventoryRepository interface {
	// AddItem persists a new stock position.
	AddItem(ctx context.Context, item *inventory.Item) error

	// UpdateItem persists changed counts for an existing stock position.
	UpdateItem(ctx context.Context, item *inventory.Item) error

	// GetItem retrieves the stock position for a product at a location. The
	// row is locked for the surrounding transaction, serializing concurrent
	// movements for the same product and location.
	GetItem(ctx context.Context, sku string, location kernel.GLN) (*inventory.Item, error)

	// AddMovement appends a movement to the immutable history.
	AddMovement(ctx context.Context, movement inventory.StockMovement) error

	// GetMovements retrieves a product's movement history at a location in
	// occurrence order.
	GetMovements(ctx context.Context, sku string, location kernel.GLN) ([]inventory.StockMovement, error)
}
