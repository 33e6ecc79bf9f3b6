package document

import (
	"errors"
	"fmt"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrAcknowledgmentIsNotConstructed is returned when validating a zero-value Acknowledgment.
var ErrAcknowledgmentIsNotConstructed = errors.New(
	"Acknowledgment must be created via NewAcknowledgment constructor")

// AckStatus is the seller's disposition of the acknowledged order.
type AckStatus int

const (
	// AckStatusUnknown represents an invalid or undefined disposition.
	AckStatusUnknown AckStatus = iota

	// AckAccepted confirms the order as placed.
	AckAccepted

	// AckAcceptedWithChanges confirms the order with amended lines, quantities,
	// or prices reflected in the acknowledgment's line items.
	AckAcceptedWithChanges

	// AckRejected declines the order.
	AckRejected
)

func getAckStatusStrings() map[AckStatus]string {
	return map[AckStatus]string{
		AckStatusUnknown:       "unknown",
		AckAccepted:            "accepted",
		AckAcceptedWithChanges: "accepted_with_changes",
		AckRejected:            "rejected",
	}
}

// AckStatusFromString maps a wire-format disposition name onto the enum.
func AckStatusFromString(s string) (AckStatus, error) {
	for status, str := range getAckStatusStrings() {
		if status != AckStatusUnknown && str == s {
			return status, nil
		}
	}
	return AckStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"ackStatus", fmt.Errorf("%q is not a known acknowledgment status", s))
}

// Validate checks if the AckStatus value is valid.
func (s AckStatus) Validate() error {
	if s == AckStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"ackStatus", fmt.Errorf("%d is not a valid acknowledgment status", s))
	}
	if _, ok := getAckStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"ackStatus", fmt.Errorf("%d is not a valid acknowledgment status", s))
	}
	return nil
}

// String returns the wire-format name of the disposition.
func (s AckStatus) String() string {
	if str, ok := getAckStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Acknowledgment is the seller's response to a purchase order. Its lines carry
// the quantities and prices the seller commits to, which may differ from the
// ordered values when the status is AckAcceptedWithChanges.
type Acknowledgment struct {
	id        kernel.UUID
	ackNumber string
	poNumber  string
	status    AckStatus
	lines     []Line
	ackDate   time.Time

	estimatedShipDate *time.Time

	guard guard.ConstructorGuard
}

// NewAcknowledgment creates a seller acknowledgment correlated to a purchase order.
func NewAcknowledgment(
	id kernel.UUID,
	ackNumber, poNumber string,
	status AckStatus,
	lines []Line,
	ackDate time.Time,
) (*Acknowledgment, error) {
	ack := &Acknowledgment{
		lines:   copyLines(lines),
		ackDate: ackDate,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ack.setID(id),
		ack.setNumbers(ackNumber, poNumber),
		ack.setStatus(status),
		validateLines(ack.lines),
	); err != nil {
		return nil, err
	}

	if ackDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("ackDate")
	}

	return ack, nil
}

// Validate checks that the Acknowledgment was created through NewAcknowledgment.
func (a *Acknowledgment) Validate() error {
	return a.guard.Validate(ErrAcknowledgmentIsNotConstructed)
}

// Kind returns KindAcknowledgment.
func (a *Acknowledgment) Kind() Kind {
	return KindAcknowledgment
}

// Number returns the acknowledgment's own reference.
func (a *Acknowledgment) Number() string {
	return a.ackNumber
}

// PONumber returns the purchase order correlation key.
func (a *Acknowledgment) PONumber() string {
	return a.poNumber
}

// ID returns the aggregate identity.
func (a *Acknowledgment) ID() kernel.UUID {
	return a.id
}

// Status returns the seller's disposition.
func (a *Acknowledgment) Status() AckStatus {
	return a.status
}

// Lines returns a copy of the committed line items.
func (a *Acknowledgment) Lines() []Line {
	return copyLines(a.lines)
}

// AckDate returns when the seller issued the acknowledgment.
func (a *Acknowledgment) AckDate() time.Time {
	return a.ackDate
}

// EstimatedShipDate returns the seller's shipping estimate, or nil.
func (a *Acknowledgment) EstimatedShipDate() *time.Time {
	return a.estimatedShipDate
}

// SetEstimatedShipDate attaches the seller's shipping estimate.
func (a *Acknowledgment) SetEstimatedShipDate(date time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if date.IsZero() {
		return errs.NewValueIsRequiredError("estimatedShipDate")
	}
	a.estimatedShipDate = &date
	return nil
}

func (a *Acknowledgment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Acknowledgment) setNumbers(ackNumber, poNumber string) error {
	if ackNumber == "" {
		return errs.NewValueIsRequiredError("ackNumber")
	}
	if poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	a.ackNumber = ackNumber
	a.poNumber = poNumber
	return nil
}

func (a *Acknowledgment) setStatus(status AckStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
