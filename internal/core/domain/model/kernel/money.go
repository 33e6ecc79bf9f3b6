package kernel

import (
	"errors"
	"fmt"

	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or MoneyFromString")

	// ErrCurrencyMismatch indicates an arithmetic operation over two Money values
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// minorUnits maps ISO 4217 currency codes to their minor-unit precision.
// Currencies absent from the table default to two decimal places.
var minorUnits = map[string]int32{
	"USD": 2,
	"CAD": 2,
	"EUR": 2,
	"GBP": 2,
	"JPY": 0,
}

// MinorUnits returns the number of decimal places in the minor unit of the given
// ISO 4217 currency code. Unknown currencies default to 2.
func MinorUnits(currency string) int32 {
	if units, ok := minorUnits[currency]; ok {
		return units
	}
	return 2
}

// Money is an exact-decimal monetary amount paired with an ISO 4217 currency code.
// All arithmetic is performed in fixed-point decimal; binary floating point is
// never involved, so sums and products carry no rounding drift.
//
// Money is an immutable value object. The zero value is invalid; use NewMoney or
// MoneyFromString to construct instances.
type Money struct {
	amount   decimal.Decimal
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an exact decimal amount and a currency code.
// The currency must be a three-letter uppercase ISO 4217 code. Negative amounts
// are permitted here; entities that forbid them (unit prices, totals) enforce
// that in their own setters.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a three-letter ISO 4217 code", currency))
	}
	for i := 0; i < len(currency); i++ {
		if currency[i] < 'A' || currency[i] > 'Z' {
			return Money{}, errs.NewValueIsInvalidErrorWithCause(
				"currency", fmt.Errorf("%q is not a three-letter ISO 4217 code", currency))
		}
	}

	return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "12.50" into a Money value.
// This is the constructor adapters use when mapping wire payloads.
func MoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// String renders the amount at the currency's minor-unit precision, e.g. "37.50 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(MinorUnits(m.currency)), m.currency)
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns the sum of two Money values. Both operands must be valid and
// denominated in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Sub returns the difference of two Money values in the same currency.
func (m Money) Sub(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// MulInt returns the amount multiplied by an integer quantity.
// The intermediate result is exact; no truncation occurs.
func (m Money) MulInt(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))), m.currency)
}

// IsEqual reports exact decimal equality of amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// WithinMinorUnit reports whether two amounts in the same currency agree to the
// currency's minor-unit precision: the absolute difference may be at most half
// of one minor unit, so a supplied value that rounds to the computed one is
// accepted. A difference of a full minor unit is a real discrepancy and
// returns false.
func (m Money) WithinMinorUnit(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}
	if m.currency != other.currency {
		return false, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	epsilon := decimal.New(5, -MinorUnits(m.currency)-1) // half of one minor unit
	diff := m.amount.Sub(other.amount).Abs()
	return diff.LessThanOrEqual(epsilon), nil
}
