package inventory

import (
	"errors"
	"fmt"

	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/pkg/errs"
	"cannacommerce/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the stock position of one product at one location. On-hand and
// reserved counts are never negative, and the available quantity is always
// on-hand minus reserved. Every change goes through ApplyMovement or the
// reserve operations; a failed change leaves all three counts untouched.
type Item struct {
	id       kernel.UUID
	sku      string
	location kernel.GLN
	onHand   int
	reserved int

	reorderPoint    int
	reorderQuantity int

	guard guard.ConstructorGuard
}

// NewItem creates an empty stock position for a product at a location.
func NewItem(id kernel.UUID, sku string, location kernel.GLN) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setSKU(sku),
		item.setLocation(location),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a stock position from persisted state.
func RestoreItem(
	id kernel.UUID,
	sku string,
	location kernel.GLN,
	onHand, reserved, reorderPoint, reorderQuantity int,
) (*Item, error) {
	item, err := NewItem(id, sku, location)
	if err != nil {
		return nil, err
	}

	if onHand < 0 {
		return nil, errs.NewValueIsOutOfRangeError("onHand", onHand, 0, onHand)
	}
	if reserved < 0 || reserved > onHand {
		return nil, errs.NewValueIsOutOfRangeError("reserved", reserved, 0, onHand)
	}
	if reorderPoint < 0 || reorderQuantity < 0 {
		return nil, errs.NewValueIsInvalidError("reorder")
	}

	item.onHand = onHand
	item.reserved = reserved
	item.reorderPoint = reorderPoint
	item.reorderQuantity = reorderQuantity
	return item, nil
}

// Validate checks that the Item was created through a constructor.
func (i *Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the aggregate identity.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the product reference.
func (i *Item) SKU() string {
	return i.sku
}

// Location returns the stock location's GS1 location number.
func (i *Item) Location() kernel.GLN {
	return i.location
}

// OnHand returns the physical unit count at the location.
func (i *Item) OnHand() int {
	return i.onHand
}

// Reserved returns the units committed to orders but not yet shipped.
func (i *Item) Reserved() int {
	return i.reserved
}

// Available returns on-hand minus reserved, the quantity open to new commitments.
func (i *Item) Available() int {
	return i.onHand - i.reserved
}

// ReorderPoint returns the level at or below which a reorder alert fires.
func (i *Item) ReorderPoint() int {
	return i.reorderPoint
}

// ReorderQuantity returns the suggested replenishment quantity.
func (i *Item) ReorderQuantity() int {
	return i.reorderQuantity
}

// IsBelowReorderPoint reports whether available stock has fallen to or below
// the reorder point. A zero reorder point disables alerting for the item.
func (i *Item) IsBelowReorderPoint() bool {
	return i.reorderPoint > 0 && i.Available() <= i.reorderPoint
}

// SetReorderPolicy configures the reorder alert level and replenishment quantity.
func (i *Item) SetReorderPolicy(reorderPoint, reorderQuantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if reorderPoint < 0 {
		return errs.NewValueIsOutOfRangeError("reorderPoint", reorderPoint, 0, reorderPoint)
	}
	if reorderQuantity < 0 {
		return errs.NewValueIsOutOfRangeError("reorderQuantity", reorderQuantity, 0, reorderQuantity)
	}
	i.reorderPoint = reorderPoint
	i.reorderQuantity = reorderQuantity
	return nil
}

// ApplyMovement applies a movement touching this item's location. An inbound
// movement raises on-hand; an outbound one lowers it and is rejected with
// InsufficientStockError when it asks for more than the available quantity.
// A movement for another product or location is rejected outright. All counts
// change together or not at all.
func (i *Item) ApplyMovement(m StockMovement) error {
	if err := errors.Join(i.Validate(), m.Validate()); err != nil {
		return err
	}
	if m.sku != i.sku {
		return errs.NewValueIsInvalidErrorWithCause(
			"sku", fmt.Errorf("movement is for %s, item holds %s", m.sku, i.sku))
	}

	inbound := m.toLocation != nil && m.toLocation.IsEqual(i.location)
	outbound := m.fromLocation != nil && m.fromLocation.IsEqual(i.location)
	if !inbound && !outbound {
		return errs.NewValueIsInvalidErrorWithCause(
			"location", fmt.Errorf("movement does not touch location %s", i.location))
	}

	if outbound {
		if m.quantity > i.Available() {
			return &InsufficientStockError{
				SKU:       i.sku,
				Location:  i.location,
				Requested: m.quantity,
				Available: i.Available(),
			}
		}
		i.onHand -= m.quantity
		return nil
	}

	i.onHand += m.quantity
	return nil
}

// Reserve commits available units to an order.
func (i *Item) Reserve(quantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > i.Available() {
		return &InsufficientStockError{
			SKU:       i.sku,
			Location:  i.location,
			Requested: quantity,
			Available: i.Available(),
		}
	}
	i.reserved += quantity
	return nil
}

// Release returns previously reserved units to the available pool.
func (i *Item) Release(quantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if quantity <= 0 || quantity > i.reserved {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, i.reserved)
	}
	i.reserved -= quantity
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setLocation(location kernel.GLN) error {
	if err := location.Validate(); err != nil {
		return err
	}
	i.location = location
	return nil
}
