package queries

import (
	"errors"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"
	"cannacommerce/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves every order not yet in a terminal state.
// Returns orders between draft and shipped for fulfillment monitoring.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	handler := NewGetOpenOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s: %s, %d/%d units shipped\n",
//	        o.PONumber, o.Status, o.ShippedUnits, o.OrderedUnits)
//	}
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one open order's lifecycle snapshot.
type GetOpenOrdersQueryResponse struct {
	ID           kernel.UUID
	PONumber     string
	Status       order.Status
	Fulfillment  order.FulfillmentStatus
	OrderedUnits int
	ShippedUnits int
	SubmittedAt  *time.Time
}
