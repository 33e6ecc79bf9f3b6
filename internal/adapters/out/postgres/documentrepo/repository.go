package documentrepo

import (
	"context"
	"errors"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddPurchaseOrder saves a new purchase order with its lines.
func (r *GormDocumentRepository) AddPurchaseOrder(ctx context.Context, po *document.PurchaseOrder) error {
	if err := po.Validate(); err != nil {
		return err
	}

	dto := purchaseOrderFromDomain(po)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(po.ID(), po)
	return nil
}

// AddAcknowledgment saves a new acknowledgment with its lines.
func (r *GormDocumentRepository) AddAcknowledgment(ctx context.Context, ack *document.Acknowledgment) error {
	if err := ack.Validate(); err != nil {
		return err
	}

	dto := acknowledgmentFromDomain(ack)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(ack.ID(), ack)
	return nil
}

// AddShipNotice saves a new ship notice with its lines.
func (r *GormDocumentRepository) AddShipNotice(ctx context.Context, asn *document.ShipNotice) error {
	if err := asn.Validate(); err != nil {
		return err
	}

	dto := shipNoticeFromDomain(asn)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(asn.ID(), asn)
	return nil
}

// AddInvoice saves a new invoice with its lines.
func (r *GormDocumentRepository) AddInvoice(ctx context.Context, inv *document.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	dto := invoiceFromDomain(inv)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(inv.ID(), inv)
	return nil
}

// GetSet loads the full document set for a purchase order. The purchase order
// row is locked for the remainder of the transaction so two documents for the
// same purchase order cannot link against a stale set. Returns
// errs.ErrObjectNotFound when no purchase order carries the number.
func (r *GormDocumentRepository) GetSet(ctx context.Context, poNumber string) (*document.Set, error) {
	var poDTO PurchaseOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines", lineOrder).
		First(&poDTO, "po_number = ?", poNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchaseOrder", poNumber)
		}
		return nil, err
	}

	po, err := purchaseOrderToDomain(poDTO)
	if err != nil {
		return nil, err
	}

	set, err := document.NewSet(po)
	if err != nil {
		return nil, err
	}

	var ackDTOs []AcknowledgmentDTO
	err = r.db.WithContext(ctx).Preload("Lines", lineOrder).
		Order("ack_date").Find(&ackDTOs, "po_number = ?", poNumber).Error
	if err != nil {
		return nil, err
	}
	for _, dto := range ackDTOs {
		ack, ackErr := acknowledgmentToDomain(dto)
		if ackErr != nil {
			return nil, ackErr
		}
		if err = set.AttachAcknowledgment(ack); err != nil {
			return nil, err
		}
	}

	var asnDTOs []ShipNoticeDTO
	err = r.db.WithContext(ctx).Preload("Lines", lineOrder).
		Order("ship_date").Find(&asnDTOs, "po_number = ?", poNumber).Error
	if err != nil {
		return nil, err
	}
	for _, dto := range asnDTOs {
		asn, asnErr := shipNoticeToDomain(dto)
		if asnErr != nil {
			return nil, asnErr
		}
		if err = set.AttachShipNotice(asn); err != nil {
			return nil, err
		}
	}

	var invDTOs []InvoiceDTO
	err = r.db.WithContext(ctx).Preload("Lines", lineOrder).
		Order("invoice_date").Find(&invDTOs, "po_number = ?", poNumber).Error
	if err != nil {
		return nil, err
	}
	for _, dto := range invDTOs {
		inv, invErr := invoiceToDomain(dto)
		if invErr != nil {
			return nil, invErr
		}
		if err = set.AttachInvoice(inv); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func lineOrder(db *gorm.DB) *gorm.DB {
	return db.Order("line_number")
}
