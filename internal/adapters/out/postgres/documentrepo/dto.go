// Package documentrepo provides data transfer objects and mapping functions
// for trading document persistence. All four document kinds share one line
// table keyed by the owning document's identity, because the line shape is
// identical across kinds and document identities are unique across tables.
package documentrepo

import (
	"time"

	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineDTO represents one document line item in the database.
type LineDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	DocumentID    uuid.UUID `gorm:"type:uuid;index"`
	LineNumber    int
	SKU           string `gorm:"size:64"`
	Description   string
	GTIN          *string `gorm:"size:14"`
	BatchNumber   string  `gorm:"size:64"`
	Unit          int
	Quantity      int
	UnitPrice     decimal.Decimal `gorm:"type:decimal(14,4)"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(14,4)"`
	Currency      string          `gorm:"size:3"`
	AllowOverShip bool
}

// TableName specifies the shared table for document line items.
func (LineDTO) TableName() string {
	return "document_lines"
}

// PurchaseOrderDTO represents the database structure for purchase orders.
type PurchaseOrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PONumber              string    `gorm:"uniqueIndex;size:64"`
	BuyerGLN              string    `gorm:"size:13"`
	SellerGLN             string    `gorm:"size:13"`
	ShipToGLN             *string   `gorm:"size:13"`
	Subtotal              decimal.Decimal `gorm:"type:decimal(14,4)"`
	TaxTotal              decimal.Decimal `gorm:"type:decimal(14,4)"`
	Total                 decimal.Decimal `gorm:"type:decimal(14,4)"`
	Currency              string          `gorm:"size:3"`
	OrderDate             time.Time
	RequestedDeliveryDate *time.Time
	Notes                 string
	Lines                 []LineDTO `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName specifies the database table name for purchase orders.
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// AcknowledgmentDTO represents the database structure for order acknowledgments.
type AcknowledgmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	AckNumber         string    `gorm:"size:64"`
	PONumber          string    `gorm:"index;size:64"`
	Status            int
	AckDate           time.Time
	EstimatedShipDate *time.Time
	Lines             []LineDTO `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName specifies the database table name for acknowledgments.
func (AcknowledgmentDTO) TableName() string {
	return "acknowledgments"
}

// ShipNoticeDTO represents the database structure for advance ship notices.
type ShipNoticeDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ASNNumber      string    `gorm:"size:64"`
	PONumber       string    `gorm:"index;size:64"`
	SSCC           *string   `gorm:"size:18"`
	ShipDate       time.Time
	Carrier        string
	TrackingNumber string
	Lines          []LineDTO `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName specifies the database table name for ship notices.
func (ShipNoticeDTO) TableName() string {
	return "ship_notices"
}

// InvoiceDTO represents the database structure for invoices.
type InvoiceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string    `gorm:"size:64"`
	PONumber      string    `gorm:"index;size:64"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(14,4)"`
	TaxTotal      decimal.Decimal `gorm:"type:decimal(14,4)"`
	Total         decimal.Decimal `gorm:"type:decimal(14,4)"`
	Currency      string          `gorm:"size:3"`
	InvoiceDate   time.Time
	PaymentTerms  string `gorm:"size:16"`
	DueDate       *time.Time
	Lines         []LineDTO `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func linesFromDomain(documentID uuid.UUID, lines []document.Line) []LineDTO {
	dtos := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		var gtin *string
		if g := line.GTIN(); g != nil {
			raw := g.String()
			gtin = &raw
		}

		dtos = append(dtos, LineDTO{
			DocumentID:    documentID,
			LineNumber:    line.LineNumber(),
			SKU:           line.SKU(),
			Description:   line.Description(),
			GTIN:          gtin,
			BatchNumber:   line.BatchNumber(),
			Unit:          int(line.Unit()),
			Quantity:      line.Quantity(),
			UnitPrice:     line.UnitPrice().Amount(),
			LineTotal:     line.LineTotal().Amount(),
			Currency:      line.UnitPrice().Currency(),
			AllowOverShip: line.OverShipAllowed(),
		})
	}
	return dtos
}

func linesToDomain(dtos []LineDTO) ([]document.Line, error) {
	lines := make([]document.Line, 0, len(dtos))
	for _, dto := range dtos {
		unitPrice, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
		if err != nil {
			return nil, err
		}

		lineTotal, err := kernel.NewMoney(dto.LineTotal, dto.Currency)
		if err != nil {
			return nil, err
		}

		line, err := document.NewLine(dto.LineNumber, dto.SKU, dto.Description,
			dto.Quantity, unitPrice, lineTotal)
		if err != nil {
			return nil, err
		}

		if dto.GTIN != nil {
			gtin, gtinErr := kernel.NewGTIN(*dto.GTIN)
			if gtinErr != nil {
				return nil, gtinErr
			}
			line, err = line.WithGTIN(gtin)
			if err != nil {
				return nil, err
			}
		}
		if dto.BatchNumber != "" {
			line = line.WithBatchNumber(dto.BatchNumber)
		}
		if dto.Unit != int(product.Each) {
			line, err = line.WithUnit(product.UnitOfMeasure(dto.Unit))
			if err != nil {
				return nil, err
			}
		}
		if dto.AllowOverShip {
			line = line.WithOverShipAllowed()
		}

		lines = append(lines, line)
	}
	return lines, nil
}

func purchaseOrderFromDomain(po *document.PurchaseOrder) PurchaseOrderDTO {
	var shipTo *string
	if gln := po.ShipToGLN(); gln != nil {
		raw := gln.String()
		shipTo = &raw
	}

	return PurchaseOrderDTO{
		ID:                    po.ID().Bytes(),
		PONumber:              po.PONumber(),
		BuyerGLN:              po.BuyerGLN().String(),
		SellerGLN:             po.SellerGLN().String(),
		ShipToGLN:             shipTo,
		Subtotal:              po.Subtotal().Amount(),
		TaxTotal:              po.TaxTotal().Amount(),
		Total:                 po.Total().Amount(),
		Currency:              po.Total().Currency(),
		OrderDate:             po.OrderDate(),
		RequestedDeliveryDate: po.RequestedDeliveryDate(),
		Notes:                 po.Notes(),
		Lines:                 linesFromDomain(po.ID().Bytes(), po.Lines()),
	}
}

func purchaseOrderToDomain(dto PurchaseOrderDTO) (*document.PurchaseOrder, error) {
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

	lines, err := linesToDomain(dto.Lines)
	if err != nil {
		return nil, err
	}

	subtotal, taxTotal, total, err := amountsToDomain(dto.Subtotal, dto.TaxTotal, dto.Total, dto.Currency)
	if err != nil {
		return nil, err
	}

	po, err := document.NewPurchaseOrder(id, dto.PONumber, buyer, seller, lines,
		subtotal, taxTotal, total, dto.OrderDate)
	if err != nil {
		return nil, err
	}

	if dto.ShipToGLN != nil {
		gln, glnErr := kernel.NewGLN(*dto.ShipToGLN)
		if glnErr != nil {
			return nil, glnErr
		}
		if err = po.SetShipToGLN(gln); err != nil {
			return nil, err
		}
	}
	if dto.RequestedDeliveryDate != nil {
		if err = po.SetRequestedDeliveryDate(*dto.RequestedDeliveryDate); err != nil {
			return nil, err
		}
	}
	if dto.Notes != "" {
		if err = po.SetNotes(dto.Notes); err != nil {
			return nil, err
		}
	}

	return po, nil
}

func acknowledgmentFromDomain(ack *document.Acknowledgment) AcknowledgmentDTO {
	return AcknowledgmentDTO{
		ID:                ack.ID().Bytes(),
		AckNumber:         ack.Number(),
		PONumber:          ack.PONumber(),
		Status:            int(ack.Status()),
		AckDate:           ack.AckDate(),
		EstimatedShipDate: ack.EstimatedShipDate(),
		Lines:             linesFromDomain(ack.ID().Bytes(), ack.Lines()),
	}
}

func acknowledgmentToDomain(dto AcknowledgmentDTO) (*document.Acknowledgment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines, err := linesToDomain(dto.Lines)
	if err != nil {
		return nil, err
	}

	ack, err := document.NewAcknowledgment(id, dto.AckNumber, dto.PONumber,
		document.AckStatus(dto.Status), lines, dto.AckDate)
	if err != nil {
		return nil, err
	}

	if dto.EstimatedShipDate != nil {
		if err = ack.SetEstimatedShipDate(*dto.EstimatedShipDate); err != nil {
			return nil, err
		}
	}

	return ack, nil
}

func shipNoticeFromDomain(asn *document.ShipNotice) ShipNoticeDTO {
	var sscc *string
	if s := asn.SSCC(); s != nil {
		raw := s.String()
		sscc = &raw
	}

	return ShipNoticeDTO{
		ID:             asn.ID().Bytes(),
		ASNNumber:      asn.Number(),
		PONumber:       asn.PONumber(),
		SSCC:           sscc,
		ShipDate:       asn.ShipDate(),
		Carrier:        asn.Carrier(),
		TrackingNumber: asn.TrackingNumber(),
		Lines:          linesFromDomain(asn.ID().Bytes(), asn.Lines()),
	}
}

func shipNoticeToDomain(dto ShipNoticeDTO) (*document.ShipNotice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines, err := linesToDomain(dto.Lines)
	if err != nil {
		return nil, err
	}

	asn, err := document.NewShipNotice(id, dto.ASNNumber, dto.PONumber, lines, dto.ShipDate)
	if err != nil {
		return nil, err
	}

	if dto.SSCC != nil {
		sscc, ssccErr := kernel.NewSSCC(*dto.SSCC)
		if ssccErr != nil {
			return nil, ssccErr
		}
		if err = asn.SetSSCC(sscc); err != nil {
			return nil, err
		}
	}
	if dto.Carrier != "" {
		if err = asn.SetCarrier(dto.Carrier, dto.TrackingNumber); err != nil {
			return nil, err
		}
	}

	return asn, nil
}

func invoiceFromDomain(inv *document.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            inv.ID().Bytes(),
		InvoiceNumber: inv.Number(),
		PONumber:      inv.PONumber(),
		Subtotal:      inv.Subtotal().Amount(),
		TaxTotal:      inv.TaxTotal().Amount(),
		Total:         inv.Total().Amount(),
		Currency:      inv.Total().Currency(),
		InvoiceDate:   inv.InvoiceDate(),
		PaymentTerms:  inv.PaymentTerms(),
		DueDate:       inv.DueDate(),
		Lines:         linesFromDomain(inv.ID().Bytes(), inv.Lines()),
	}
}

func invoiceToDomain(dto InvoiceDTO) (*document.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines, err := linesToDomain(dto.Lines)
	if err != nil {
		return nil, err
	}

	subtotal, taxTotal, total, err := amountsToDomain(dto.Subtotal, dto.TaxTotal, dto.Total, dto.Currency)
	if err != nil {
		return nil, err
	}

	inv, err := document.NewInvoice(id, dto.InvoiceNumber, dto.PONumber, lines,
		subtotal, taxTotal, total, dto.InvoiceDate)
	if err != nil {
		return nil, err
	}

	if dto.PaymentTerms != "" {
		if err = inv.SetPaymentTerms(dto.PaymentTerms); err != nil {
			return nil, err
		}
	}
	if dto.DueDate != nil {
		if err = inv.SetDueDate(*dto.DueDate); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

func amountsToDomain(subtotal, taxTotal, total decimal.Decimal, currency string) (kernel.Money, kernel.Money, kernel.Money, error) {
	sub, err := kernel.NewMoney(subtotal, currency)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Money{}, err
	}

	tax, err := kernel.NewMoney(taxTotal, currency)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Money{}, err
	}

	tot, err := kernel.NewMoney(total, currency)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Money{}, err
	}

	return sub, tax, tot, nil
}
