package product

import (
	"errors"
	"fmt"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a cannabis product listing. It is the aggregate root for
// catalog data: identity, GS1 identification, regulated attributes, and
// lifecycle status.
//
// Product follows these invariants:
//   - Must have a valid unique identifier, a SKU, and a name
//   - The GTIN, when present, passed GS1 validation
//   - THC/CBD percentages, when present, lie in [0, 100]
//   - Status transitions follow the Status transition table
type Product struct {
	id            kernel.UUID
	sku           string
	name          string
	gtin          *kernel.GTIN
	category      Category
	strainName    string
	thcPercentage *decimal.Decimal
	cbdPercentage *decimal.Decimal
	batchNumber   string
	unit          UnitOfMeasure
	status        Status

	isConstructed bool
}

// NewProduct creates a new Product in PendingApproval status.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - sku: Seller's stock keeping unit (must not be empty)
//   - name: Display name (must not be empty)
//   - category: Product form factor (must be a valid Category)
//
// Optional attributes (GTIN, potency, batch, strain) are attached with the
// Set* methods, which validate their inputs.
func NewProduct(id kernel.UUID, sku, name string, category Category) (*Product, error) {
	p := &Product{
		unit:          Each,
		status:        PendingApproval,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence with its stored status.
// Unlike NewProduct, it accepts any valid status and pre-validated attributes.
func RestoreProduct(
	id kernel.UUID,
	sku, name string,
	category Category,
	gtin *kernel.GTIN,
	strainName, batchNumber string,
	thcPercentage, cbdPercentage *decimal.Decimal,
	unit UnitOfMeasure,
	status Status,
) (*Product, error) {
	p, err := NewProduct(id, sku, name, category)
	if err != nil {
		return nil, err
	}

	if gtin != nil {
		if err = p.SetGTIN(*gtin); err != nil {
			return nil, err
		}
	}
	if thcPercentage != nil || cbdPercentage != nil {
		if err = p.SetPotency(thcPercentage, cbdPercentage); err != nil {
			return nil, err
		}
	}
	if err = errors.Join(unit.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	p.strainName = strainName
	p.batchNumber = batchNumber
	p.unit = unit
	p.status = status
	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the seller's stock keeping unit.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// GTIN returns the product's GS1 trade item number, or nil if unassigned.
func (p *Product) GTIN() *kernel.GTIN {
	return p.gtin
}

// Category returns the product's form factor.
func (p *Product) Category() Category {
	return p.category
}

// StrainName returns the cultivar name, empty for non-flower products.
func (p *Product) StrainName() string {
	return p.strainName
}

// THCPercentage returns the THC potency, or nil if not lab-tested.
func (p *Product) THCPercentage() *decimal.Decimal {
	return p.thcPercentage
}

// CBDPercentage returns the CBD potency, or nil if not lab-tested.
func (p *Product) CBDPercentage() *decimal.Decimal {
	return p.cbdPercentage
}

// BatchNumber returns the regulated production batch, empty if not batch-tracked.
func (p *Product) BatchNumber() string {
	return p.batchNumber
}

// Unit returns the unit of measure quantities of this product are counted in.
func (p *Product) Unit() UnitOfMeasure {
	return p.unit
}

// Status returns the current catalog lifecycle status.
func (p *Product) Status() Status {
	return p.status
}

// SetGTIN attaches a validated GS1 trade item number to the product.
func (p *Product) SetGTIN(gtin kernel.GTIN) error {
	if err := gtin.Validate(); err != nil {
		return err
	}
	p.gtin = &gtin
	return nil
}

// SetStrain records the cultivar name.
func (p *Product) SetStrain(strainName string) {
	p.strainName = strainName
}

// SetBatchNumber records the regulated production batch this listing belongs to.
func (p *Product) SetBatchNumber(batchNumber string) {
	p.batchNumber = batchNumber
}

// SetUnit changes the unit of measure.
func (p *Product) SetUnit(unit UnitOfMeasure) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.unit = unit
	return nil
}

// SetPotency records lab-tested THC and CBD percentages.
// Either value may be nil; present values must lie in [0, 100].
func (p *Product) SetPotency(thcPercentage, cbdPercentage *decimal.Decimal) error {
	hundred := decimal.NewFromInt(100)
	for name, v := range map[string]*decimal.Decimal{
		"thcPercentage": thcPercentage,
		"cbdPercentage": cbdPercentage,
	} {
		if v == nil {
			continue
		}
		if v.IsNegative() || v.GreaterThan(hundred) {
			return errs.NewValueIsOutOfRangeError(name, v.String(), "0", "100")
		}
	}

	p.thcPercentage = thcPercentage
	p.cbdPercentage = cbdPercentage
	return nil
}

// ChangeStatus moves the product to the target status if the transition table
// allows it. On failure the product's status is left unchanged.
func (p *Product) ChangeStatus(target Status) error {
	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("category is invalid: %w", err)
	}
	p.category = category
	return nil
}
