package queries

import (
	"context"

	"cannacommerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemsBelowReorderPointQueryHandler retrieves low stock positions from the
// database. The available quantity is computed in SQL so the alert threshold
// is evaluated against the same numbers the domain uses.
type GetItemsBelowReorderPointQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsBelowReorderPointQueryHandler creates a handler for low stock queries.
func NewGetItemsBelowReorderPointQueryHandler(db *gorm.DB) GetItemsBelowReorderPointQueryHandler {
	return GetItemsBelowReorderPointQueryHandler{db: db}
}

// Handle executes the query to retrieve positions at or below their reorder point.
// Results are sorted by SKU and location for consistent output.
func (h GetItemsBelowReorderPointQueryHandler) Handle(
	ctx context.Context,
	query GetItemsBelowReorderPointQuery,
) ([]GetItemsBelowReorderPointQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetItemsBelowReorderPointQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			location,
			on_hand,
			reserved,
			reorder_point,
			reorder_quantity
		FROM inventory_items
		WHERE reorder_point > 0
		  AND on_hand - reserved <= reorder_point
		ORDER BY sku, location
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetItemsBelowReorderPointQueryResponse
		var id uuid.UUID
		var location string

		err = rows.Scan(
			&id,
			&resp.SKU,
			&location,
			&resp.OnHand,
			&resp.Reserved,
			&resp.ReorderPoint,
			&resp.ReorderQuantity,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID

		gln, glnErr := kernel.NewGLN(location)
		if glnErr != nil {
			return nil, glnErr
		}
		resp.Location = gln
		resp.Available = resp.OnHand - resp.Reserved

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
