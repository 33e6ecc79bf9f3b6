// Package orderrepo provides data transfer objects and mapping functions for
// order lifecycle persistence. It implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The purchase order number carries a unique index because it is the
// correlation key every trading document resolves through.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PONumber     string    `gorm:"uniqueIndex;size:64"`
	BuyerGLN     string    `gorm:"size:13"`
	SellerGLN    string    `gorm:"size:13"`
	Status       int       `gorm:"index"`
	Fulfillment  int
	OrderedUnits int
	ShippedUnits int
	SubmittedAt  *time.Time
}

// TableName specifies the database table name for order lifecycle entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		PONumber:     aggregate.PONumber(),
		BuyerGLN:     aggregate.BuyerGLN().String(),
		SellerGLN:    aggregate.SellerGLN().String(),
		Status:       int(aggregate.Status()),
		Fulfillment:  int(aggregate.Fulfillment()),
		OrderedUnits: aggregate.OrderedUnits(),
		ShippedUnits: aggregate.ShippedUnits(),
		SubmittedAt:  aggregate.SubmittedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := kernel.NewGLN(dto.BuyerGLN)
	if err != nil {
		return nil, err
	}

	seller, err := kernel.NewGLN(dto.SellerGLN)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.PONumber, buyer, seller,
		order.Status(dto.Status), order.FulfillmentStatus(dto.Fulfillment),
		dto.OrderedUnits, dto.ShippedUnits, dto.SubmittedAt)
}
