package queries

import (
	"errors"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/guard"
)

var ErrGetItemsBelowReorderPointQueryIsNotConstructed = errors.New(
	"GetItemsBelowReorderPointQuery must be created via NewGetItemsBelowReorderPointQuery constructor",
)

// GetItemsBelowReorderPointQuery retrieves stock positions whose available
// quantity has fallen to or below their reorder point. Positions with a zero
// reorder point never alert.
//
// Example:
//
//	query := NewGetItemsBelowReorderPointQuery()
//	handler := NewGetItemsBelowReorderPointQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get low stock items: %w", err)
//	}
//
//	for _, item := range items {
//	    fmt.Printf("%s at %s: %d available, reorder %d\n",
//	        item.SKU, item.Location, item.Available, item.ReorderQuantity)
//	}
type GetItemsBelowReorderPointQuery struct {
	guard guard.ConstructorGuard
}

// NewGetItemsBelowReorderPointQuery creates a query to retrieve low stock positions.
func NewGetItemsBelowReorderPointQuery() GetItemsBelowReorderPointQuery {
	return GetItemsBelowReorderPointQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetItemsBelowReorderPointQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsBelowReorderPointQueryIsNotConstructed)
}

// GetItemsBelowReorderPointQueryResponse represents one low stock position.
type GetItemsBelowReorderPointQueryResponse struct {
	ID              kernel.UUID
	SKU             string
	Location        kernel.GLN
	OnHand          int
	Reserved        int
	Available       int
	ReorderPoint    int
	ReorderQuantity int
}
