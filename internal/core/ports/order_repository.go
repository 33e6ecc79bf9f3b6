// Package ports defines repository interfaces for the commerce domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order lifecycle
// aggregates. Orders are keyed both by their identity and by their PO number,
// which is unique per order.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPONumber retrieves the order correlated to a purchase order number.
	// This is the lookup used when a downstream document arrives. The row is
	// locked for the duration of the surrounding transaction so concurrent
	// submissions for the same PO number serialize.
	GetByPONumber(ctx context.Context, poNumber string) (*order.Order, error)

	// GetAllOpen retrieves every order not yet in a terminal state.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)
}
