package document

import (
	"errors"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrShipNoticeIsNotConstructed is returned when validating a zero-value ShipNotice.
var ErrShipNoticeIsNotConstructed = errors.New(
	"ShipNotice must be created via NewShipNotice constructor")

// ShipNotice is the advance ship notice the seller sends when goods leave the
// dock. Its line quantities are the shipped quantities; several notices may
// ship against the same purchase order, and the consistency engine sums them
// per line when checking for over-shipment.
type ShipNotice struct {
	id        kernel.UUID
	asnNumber string
	poNumber  string
	sscc      *kernel.SSCC
	lines     []Line
	shipDate  time.Time

	carrier        string
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewShipNotice creates a ship notice correlated to a purchase order.
//
// Line totals on a ship notice still reconcile (quantity * unitPrice), so the
// shipped value of each line is trustworthy for downstream invoicing checks.
func NewShipNotice(
	id kernel.UUID,
	asnNumber, poNumber string,
	lines []Line,
	shipDate time.Time,
) (*ShipNotice, error) {
	asn := &ShipNotice{
		lines:    copyLines(lines),
		shipDate: shipDate,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		asn.setID(id),
		asn.setNumbers(asnNumber, poNumber),
		validateLines(asn.lines),
	); err != nil {
		return nil, err
	}

	if shipDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("shipDate")
	}

	return asn, nil
}

// Validate checks that the ShipNotice was created through NewShipNotice.
func (s *ShipNotice) Validate() error {
	return s.guard.Validate(ErrShipNoticeIsNotConstructed)
}

// Kind returns KindShipNotice.
func (s *ShipNotice) Kind() Kind {
	return KindShipNotice
}

// Number returns the ship notice's own reference.
func (s *ShipNotice) Number() string {
	return s.asnNumber
}

// PONumber returns the purchase order correlation key.
func (s *ShipNotice) PONumber() string {
	return s.poNumber
}

// ID returns the aggregate identity.
func (s *ShipNotice) ID() kernel.UUID {
	return s.id
}

// SSCC returns the serial shipping container code of the logistics unit, or nil
// when the shipment was not containerized.
func (s *ShipNotice) SSCC() *kernel.SSCC {
	return s.sscc
}

// Lines returns a copy of the shipped line items.
func (s *ShipNotice) Lines() []Line {
	return copyLines(s.lines)
}

// ShipDate returns when the goods left the seller's dock.
func (s *ShipNotice) ShipDate() time.Time {
	return s.shipDate
}

// Carrier returns the transporting carrier's name, empty if unrecorded.
func (s *ShipNotice) Carrier() string {
	return s.carrier
}

// TrackingNumber returns the carrier's tracking reference, empty if unrecorded.
func (s *ShipNotice) TrackingNumber() string {
	return s.trackingNumber
}

// SetSSCC attaches the validated container code of the logistics unit.
func (s *ShipNotice) SetSSCC(sscc kernel.SSCC) error {
	if err := errors.Join(s.Validate(), sscc.Validate()); err != nil {
		return err
	}
	s.sscc = &sscc
	return nil
}

// SetCarrier attaches the carrier name and optional tracking reference.
func (s *ShipNotice) SetCarrier(carrier, trackingNumber string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	s.carrier = carrier
	s.trackingNumber = trackingNumber
	return nil
}

func (s *ShipNotice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *ShipNotice) setNumbers(asnNumber, poNumber string) error {
	if asnNumber == "" {
		return errs.NewValueIsRequiredError("asnNumber")
	}
	if poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	s.asnNumber = asnNumber
	s.poNumber = poNumber
	return nil
}
