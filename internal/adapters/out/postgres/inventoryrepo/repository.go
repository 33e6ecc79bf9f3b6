package inventoryrepo

import (
	"context"
	"errors"
	"fmt"

	"cannacommerce/internal/core/domain/model/inventory"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddItem saves a new stock position.
func (r *GormInventoryRepository) AddItem(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// UpdateItem saves an existing stock position.
func (r *GormInventoryRepository) UpdateItem(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("OnHand", "Reserved", "ReorderPoint", "ReorderQuantity").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// GetItem retrieves the stock position of a product at a location. The row is
// locked for the remainder of the transaction so concurrent movements against
// the same position serialize on it.
func (r *GormInventoryRepository) GetItem(ctx context.Context, sku string, location kernel.GLN) (*inventory.Item, error) {
	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "sku = ? AND location = ?", sku, location.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item",
				fmt.Sprintf("%s@%s", sku, location))
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// AddMovement appends a movement to the history. Movements are never updated.
func (r *GormInventoryRepository) AddMovement(ctx context.Context, movement inventory.StockMovement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := movementFromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetMovements retrieves the movement history touching a product at a
// location, oldest first.
func (r *GormInventoryRepository) GetMovements(ctx context.Context, sku string, location kernel.GLN) ([]inventory.StockMovement, error) {
	var dtos []MovementDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at").
		Find(&dtos, "sku = ? AND (from_location = ? OR to_location = ?)",
			sku, location.String(), location.String()).Error
	if err != nil {
		return nil, err
	}

	movements := make([]inventory.StockMovement, 0, len(dtos))
	for _, dto := range dtos {
		movement, err := movementToDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	return movements, nil
}
