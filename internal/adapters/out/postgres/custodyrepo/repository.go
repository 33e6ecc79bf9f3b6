package custodyrepo

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/model/custody"
	"cannacommerce/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustodyRepository implements CustodyRepository using GORM.
type GormCustodyRepository struct {
	db *gorm.DB
}

// NewGormCustodyRepository creates a new GORM custody repository.
func NewGormCustodyRepository(db *gorm.DB) *GormCustodyRepository {
	return &GormCustodyRepository{db: db}
}

// AddChain opens the ledger for a batch at its origin holder.
func (r *GormCustodyRepository) AddChain(ctx context.Context, chain *custody.Chain) error {
	if err := chain.Validate(); err != nil {
		return err
	}

	dto := chainFromDomain(chain)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendEvent appends a sequenced event to a batch's ledger. The unique index
// on the batch and sequence pair rejects a duplicate append that slipped past
// the row lock.
func (r *GormCustodyRepository) AppendEvent(ctx context.Context, batchNumber string, event custody.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := eventFromDomain(batchNumber, event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetChain loads a batch's ledger and replays its events. The chain row is
// locked for the remainder of the transaction so concurrent appends to the
// same batch serialize on it.
func (r *GormCustodyRepository) GetChain(ctx context.Context, batchNumber string) (*custody.Chain, error) {
	var chainDTO ChainDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&chainDTO, "batch_number = ?", batchNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("custodyChain", batchNumber)
		}
		return nil, err
	}

	var eventDTOs []EventDTO
	err = r.db.WithContext(ctx).
		Order("seq").
		Find(&eventDTOs, "batch_number = ?", batchNumber).Error
	if err != nil {
		return nil, err
	}

	return chainToDomain(chainDTO, eventDTOs)
}
