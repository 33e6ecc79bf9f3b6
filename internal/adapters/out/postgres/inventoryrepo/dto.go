// Package inventoryrepo provides data transfer objects and mapping functions
// for stock position and movement persistence. Positions are keyed by the
// product and location pair; movements form an append-only history.
package inventoryrepo

import (
	"time"

	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for stock positions.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU             string    `gorm:"size:64;uniqueIndex:idx_sku_location"`
	Location        string    `gorm:"size:13;uniqueIndex:idx_sku_location"`
	OnHand          int
	Reserved        int
	ReorderPoint    int
	ReorderQuantity int
}

// TableName specifies the database table name for stock positions.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// MovementDTO represents the database structure for stock movements.
// Rows are inserted once and never updated; a mistake is compensated by a
// reversal row linked through ReversalOf.
type MovementDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU          string    `gorm:"size:64;index:idx_movement_sku"`
	MovementType int
	Quantity     int
	FromLocation *string `gorm:"size:13"`
	ToLocation   *string `gorm:"size:13"`
	BatchNumber  string  `gorm:"size:64;index"`
	OccurredAt   time.Time
	ReversalOf   *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for stock movements.
func (MovementDTO) TableName() string {
	return "stock_movements"
}

func itemFromDomain(item *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:              item.ID().Bytes(),
		SKU:             item.SKU(),
		Location:        item.Location().String(),
		OnHand:          item.OnHand(),
		Reserved:        item.Reserved(),
		ReorderPoint:    item.ReorderPoint(),
		ReorderQuantity: item.ReorderQuantity(),
	}
}

func itemToDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGLN(dto.Location)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(id, dto.SKU, location,
		dto.OnHand, dto.Reserved, dto.ReorderPoint, dto.ReorderQuantity)
}

func movementFromDomain(m inventory.StockMovement) MovementDTO {
	var from, to *string
	if gln := m.FromLocation(); gln != nil {
		raw := gln.String()
		from = &raw
	}
	if gln := m.ToLocation(); gln != nil {
		raw := gln.String()
		to = &raw
	}

	var reversalOf *uuid.UUID
	if id := m.ReversalOf(); id != nil {
		raw := id.Bytes()
		reversalOf = &raw
	}

	return MovementDTO{
		ID:           m.ID().Bytes(),
		SKU:          m.SKU(),
		MovementType: int(m.Type()),
		Quantity:     m.Quantity(),
		FromLocation: from,
		ToLocation:   to,
		BatchNumber:  m.BatchNumber(),
		OccurredAt:   m.OccurredAt(),
		ReversalOf:   reversalOf,
	}
}

func movementToDomain(dto MovementDTO) (inventory.StockMovement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return inventory.StockMovement{}, err
	}

	var from, to *kernel.GLN
	if dto.FromLocation != nil {
		gln, glnErr := kernel.NewGLN(*dto.FromLocation)
		if glnErr != nil {
			return inventory.StockMovement{}, glnErr
		}
		from = &gln
	}
	if dto.ToLocation != nil {
		gln, glnErr := kernel.NewGLN(*dto.ToLocation)
		if glnErr != nil {
			return inventory.StockMovement{}, glnErr
		}
		to = &gln
	}

	var reversalOf *kernel.UUID
	if dto.ReversalOf != nil {
		rid, ridErr := kernel.UUIDFromBytes((*dto.ReversalOf)[:])
		if ridErr != nil {
			return inventory.StockMovement{}, ridErr
		}
		reversalOf = &rid
	}

	return inventory.RestoreStockMovement(id, dto.SKU,
		inventory.MovementType(dto.MovementType), dto.Quantity,
		from, to, dto.BatchNumber, dto.OccurredAt, reversalOf)
}
