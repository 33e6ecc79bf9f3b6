package document

import (
	"errors"
	"time"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrInvoiceIsNotConstructed is returned when validating a zero-value Invoice.
var ErrInvoiceIsNotConstructed = errors.New(
	"Invoice must be created via NewInvoice constructor")

// DefaultPaymentTerms applies when an invoice carries no explicit terms.
const DefaultPaymentTerms = "NET30"

// Invoice is the seller's bill against a purchase order. Like the purchase
// order it carries document-level totals, and the same arithmetic invariants
// hold: subtotal equals the sum of line totals and total equals subtotal plus
// tax, to the currency's minor-unit precision.
type Invoice struct {
	id            kernel.UUID
	invoiceNumber string
	poNumber      string
	lines         []Line
	subtotal      kernel.Money
	taxTotal      kernel.Money
	total         kernel.Money
	invoiceDate   time.Time

	paymentTerms string
	dueDate      *time.Time

	guard guard.ConstructorGuard
}

// NewInvoice creates a reconciled invoice correlated to a purchase order.
func NewInvoice(
	id kernel.UUID,
	invoiceNumber, poNumber string,
	lines []Line,
	subtotal, taxTotal, total kernel.Money,
	invoiceDate time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		lines:        copyLines(lines),
		invoiceDate:  invoiceDate,
		paymentTerms: DefaultPaymentTerms,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setNumbers(invoiceNumber, poNumber),
		validateLines(inv.lines),
		inv.setAmounts(subtotal, taxTotal, total),
	); err != nil {
		return nil, err
	}

	if invoiceDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("invoiceDate")
	}

	if err := reconcileTotals(inv.invoiceNumber, inv.lines, inv.subtotal, inv.taxTotal, inv.total); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate checks that the Invoice was created through NewInvoice.
func (i *Invoice) Validate() error {
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

// Kind returns KindInvoice.
func (i *Invoice) Kind() Kind {
	return KindInvoice
}

// Number returns the invoice's own reference.
func (i *Invoice) Number() string {
	return i.invoiceNumber
}

// PONumber returns the purchase order correlation key.
func (i *Invoice) PONumber() string {
	return i.poNumber
}

// ID returns the aggregate identity.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// Lines returns a copy of the billed line items.
func (i *Invoice) Lines() []Line {
	return copyLines(i.lines)
}

// Subtotal returns the reconciled sum of line totals.
func (i *Invoice) Subtotal() kernel.Money {
	return i.subtotal
}

// TaxTotal returns the document-level tax amount.
func (i *Invoice) TaxTotal() kernel.Money {
	return i.taxTotal
}

// Total returns the reconciled grand total.
func (i *Invoice) Total() kernel.Money {
	return i.total
}

// InvoiceDate returns when the seller issued the bill.
func (i *Invoice) InvoiceDate() time.Time {
	return i.invoiceDate
}

// PaymentTerms returns the payment terms code, DefaultPaymentTerms if unset.
func (i *Invoice) PaymentTerms() string {
	return i.paymentTerms
}

// DueDate returns when payment falls due, or nil.
func (i *Invoice) DueDate() *time.Time {
	return i.dueDate
}

// SetPaymentTerms attaches explicit payment terms, e.g. "NET15" or "COD".
func (i *Invoice) SetPaymentTerms(terms string) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if terms == "" {
		return errs.NewValueIsRequiredError("paymentTerms")
	}
	i.paymentTerms = terms
	return nil
}

// SetDueDate attaches the payment due date. The date must not precede the
// invoice date.
func (i *Invoice) SetDueDate(date time.Time) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if date.Before(i.invoiceDate) {
		return errs.NewValueIsInvalidError("dueDate")
	}
	i.dueDate = &date
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setNumbers(invoiceNumber, poNumber string) error {
	if invoiceNumber == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}
	if poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	i.invoiceNumber = invoiceNumber
	i.poNumber = poNumber
	return nil
}

func (i *Invoice) setAmounts(subtotal, taxTotal, total kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), taxTotal.Validate(), total.Validate()); err != nil {
		return err
	}
	i.subtotal = subtotal
	i.taxTotal = taxTotal
	i.total = total
	return nil
}
