package kernel

import (
	"errors"
	"fmt"
	"strings"

	"cannacommerce/internal/pkg/guard"
)

// GS1 identifier lengths in digits, including the trailing check digit.
const (
	GTINLength = 14
	GLNLength  = 13
	SSCCLength = 18
)

// Sentinel errors for GS1 identifier validation failures.
var (
	// ErrIdentifierLength indicates that a GS1 identifier has the wrong number of digits.
	ErrIdentifierLength = errors.New("identifier length is invalid")

	// ErrCheckDigitMismatch indicates that the trailing check digit does not match
	// the value computed by the GS1 mod-10 algorithm.
	ErrCheckDigitMismatch = errors.New("check digit mismatch")

	// ErrIdentifierNotNumeric indicates that a GS1 identifier contains non-digit characters.
	ErrIdentifierNotNumeric = errors.New("identifier must contain only digits")

	// ErrGTINIsNotConstructed is returned when validating a zero-value GTIN.
	ErrGTINIsNotConstructed = errors.New("GTIN must be created via NewGTIN or ParseGTIN")

	// ErrGLNIsNotConstructed is returned when validating a zero-value GLN.
	ErrGLNIsNotConstructed = errors.New("GLN must be created via NewGLN or ParseGLN")

	// ErrSSCCIsNotConstructed is returned when validating a zero-value SSCC.
	ErrSSCCIsNotConstructed = errors.New("SSCC must be created via NewSSCC or ParseSSCC")
)

// IdentifierLengthError reports a GS1 identifier whose digit count does not match
// the fixed length required for its kind.
type IdentifierLengthError struct {
	Kind     string
	Raw      string
	Expected int
}

func (e *IdentifierLengthError) Error() string {
	return fmt.Sprintf("%s: %s %q has %d digits, expected %d",
		ErrIdentifierLength, e.Kind, e.Raw, len(e.Raw), e.Expected)
}

func (e *IdentifierLengthError) Unwrap() error {
	return ErrIdentifierLength
}

// CheckDigitMismatchError reports a GS1 identifier whose trailing check digit
// disagrees with the mod-10 weighted computation over the preceding digits.
type CheckDigitMismatchError struct {
	Kind     string
	Raw      string
	Supplied byte
	Expected byte
}

func (e *CheckDigitMismatchError) Error() string {
	return fmt.Sprintf("%s: %s %q carries check digit %c, computed %c",
		ErrCheckDigitMismatch, e.Kind, e.Raw, e.Supplied, e.Expected)
}

func (e *CheckDigitMismatchError) Unwrap() error {
	return ErrCheckDigitMismatch
}

// GTIN is a Global Trade Item Number (GTIN-14): a 14-digit GS1 product identifier
// whose last digit is a mod-10 check digit. Shorter GTIN formats (GTIN-8/12/13)
// are accepted by ParseGTIN and normalized by zero-padding to 14 digits.
//
// GTIN is an immutable value object. The zero value is invalid; use NewGTIN or
// ParseGTIN to construct instances.
type GTIN struct {
	value string
	guard guard.ConstructorGuard
}

// NewGTIN validates a digits-only 14-character GTIN and returns the value object.
// The input must already be normalized: exactly 14 digits, no separators.
//
// Returns an IdentifierLengthError on a digit-count mismatch and a
// CheckDigitMismatchError when the trailing digit fails mod-10 verification.
// Validation is idempotent: re-validating the String() of a valid GTIN yields
// an identical value.
func NewGTIN(raw string) (GTIN, error) {
	normalized, err := validateGS1("GTIN", raw, GTINLength)
	if err != nil {
		return GTIN{}, err
	}

	return GTIN{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

// ParseGTIN accepts a GTIN that may carry human-readable separators (spaces,
// hyphens, application-identifier parentheses) or a shorter GTIN-8/12/13 form.
// Separators are stripped and short forms are left-padded with zeros before the
// same validation NewGTIN performs.
func ParseGTIN(raw string) (GTIN, error) {
	digits := stripSeparators(raw)
	switch len(digits) {
	case 8, 12, 13:
		digits = strings.Repeat("0", GTINLength-len(digits)) + digits
	}
	return NewGTIN(digits)
}

// String returns the normalized 14-digit representation.
func (g GTIN) String() string {
	return g.value
}

// IsEqual compares two GTINs by their normalized digits.
func (g GTIN) IsEqual(other GTIN) bool {
	return g.value == other.value
}

// Validate checks that the GTIN was created through a constructor.
func (g GTIN) Validate() error {
	return g.guard.Validate(ErrGTINIsNotConstructed)
}

// IndicatorDigit returns the leading packaging-level indicator digit of the GTIN-14.
// Zero indicates a base trade item; 1-8 indicate packaging hierarchy levels;
// 9 indicates a variable-measure item.
func (g GTIN) IndicatorDigit() byte {
	return g.value[0] - '0'
}

// GLN is a Global Location Number: a 13-digit GS1 identifier for a physical or
// legal location (license holder, warehouse, store). The last digit is a mod-10
// check digit.
//
// GLN is an immutable value object. The zero value is invalid; use NewGLN or
// ParseGLN to construct instances.
type GLN struct {
	value string
	guard guard.ConstructorGuard
}

// NewGLN validates a digits-only 13-character GLN and returns the value object.
// Returns an IdentifierLengthError or CheckDigitMismatchError on failure.
func NewGLN(raw string) (GLN, error) {
	normalized, err := validateGS1("GLN", raw, GLNLength)
	if err != nil {
		return GLN{}, err
	}

	return GLN{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

// ParseGLN accepts a GLN that may carry human-readable separators and validates
// the stripped digits.
func ParseGLN(raw string) (GLN, error) {
	return NewGLN(stripSeparators(raw))
}

// String returns the normalized 13-digit representation.
func (g GLN) String() string {
	return g.value
}

// IsEqual compares two GLNs by their normalized digits.
func (g GLN) IsEqual(other GLN) bool {
	return g.value == other.value
}

// Validate checks that the GLN was created through a constructor.
func (g GLN) Validate() error {
	return g.guard.Validate(ErrGLNIsNotConstructed)
}

// SSCC is a Serial Shipping Container Code: an 18-digit GS1 logistics-unit
// identifier. The first digit is an extension digit, followed by the GS1 company
// prefix and serial reference, with a trailing mod-10 check digit.
//
// SSCC is an immutable value object. The zero value is invalid; use NewSSCC or
// ParseSSCC to construct instances.
type SSCC struct {
	value string
	guard guard.ConstructorGuard
}

// NewSSCC validates a digits-only 18-character SSCC and returns the value object.
// Returns an IdentifierLengthError or CheckDigitMismatchError on failure.
func NewSSCC(raw string) (SSCC, error) {
	normalized, err := validateGS1("SSCC", raw, SSCCLength)
	if err != nil {
		return SSCC{}, err
	}

	return SSCC{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

// ParseSSCC accepts an SSCC that may carry human-readable separators, including
// the "(00)" application identifier prefix, and validates the stripped digits.
func ParseSSCC(raw string) (SSCC, error) {
	digits := stripSeparators(raw)
	// The (00) application identifier is part of the barcode, not the SSCC itself.
	if len(digits) == SSCCLength+2 && strings.HasPrefix(digits, "00") {
		digits = digits[2:]
	}
	return NewSSCC(digits)
}

// String returns the normalized 18-digit representation.
func (s SSCC) String() string {
	return s.value
}

// IsEqual compares two SSCCs by their normalized digits.
func (s SSCC) IsEqual(other SSCC) bool {
	return s.value == other.value
}

// Validate checks that the SSCC was created through a constructor.
func (s SSCC) Validate() error {
	return s.guard.Validate(ErrSSCCIsNotConstructed)
}

// ExtensionDigit returns the leading extension digit of the SSCC, assigned by
// the shipper to extend the serial capacity of the company prefix.
func (s SSCC) ExtensionDigit() byte {
	return s.value[0] - '0'
}

// ComputeCheckDigit returns the GS1 mod-10 check digit for the given digit string,
// which must not already include the check digit. Digits are weighted 3,1,3,1,...
// starting from the rightmost position.
//
// Returns an error if the input contains non-digit characters.
func ComputeCheckDigit(digits string) (byte, error) {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, ErrIdentifierNotNumeric
		}
		sum += int(c-'0') * weight
		weight = 4 - weight // alternate 3,1,3,1,...
	}

	return byte((10-sum%10)%10) + '0', nil
}

// validateGS1 performs the shared structural and check-digit validation for a
// fixed-length GS1 identifier kind. The returned string is the normalized value.
func validateGS1(kind, raw string, length int) (string, error) {
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", fmt.Errorf("%w: %s %q", ErrIdentifierNotNumeric, kind, raw)
		}
	}

	if len(raw) != length {
		return "", &IdentifierLengthError{Kind: kind, Raw: raw, Expected: length}
	}

	expected, err := ComputeCheckDigit(raw[:length-1])
	if err != nil {
		return "", err
	}

	if supplied := raw[length-1]; supplied != expected {
		return "", &CheckDigitMismatchError{Kind: kind, Raw: raw, Supplied: supplied, Expected: expected}
	}

	return raw, nil
}

// stripSeparators removes the separator characters GS1 allows in human-readable
// renderings of identifiers. Any other non-digit character is left in place so
// validation reports it.
func stripSeparators(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, raw)
}
