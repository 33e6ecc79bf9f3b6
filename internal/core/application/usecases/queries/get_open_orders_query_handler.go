package queries

import (
	"context"
	"database/sql"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves orders pending fulfillment from the
// database. Terminal orders are filtered out to give active workload
// visibility without loading full aggregates.
//
// Example:
//
//	handler := NewGetOpenOrdersQueryHandler(db)
//	query := NewGetOpenOrdersQuery()
//
//	openOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
//
//	if len(openOrders) > 0 {
//	    fmt.Printf("%d orders in flight\n", len(openOrders))
//	}
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders.
// Results are sorted by purchase order number for consistent output.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			po_number,
			status,
			fulfillment,
			ordered_units,
			shipped_units,
			submitted_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY po_number
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenOrdersQueryResponse
		var id uuid.UUID
		var status, fulfillment int
		var submittedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.PONumber,
			&status,
			&fulfillment,
			&resp.OrderedUnits,
			&resp.ShippedUnits,
			&submittedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)
		resp.Fulfillment = order.FulfillmentStatus(fulfillment)
		if submittedAt.Valid {
			at := submittedAt.Time.UTC()
			resp.SubmittedAt = &at
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
