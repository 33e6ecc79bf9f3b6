package inventory

import (
	"errors"
	"fmt"

	"cannacommerce/internal/core/domain/model/kernel"
)

// ErrInsufficientStock indicates an outbound movement requesting more than the
// available quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports an outbound movement that would drive the
// available quantity below zero. The item is left unchanged.
type InsufficientStockError struct {
	SKU       string
	Location  kernel.GLN
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s at %s requested %d, available %d",
		ErrInsufficientStock, e.SKU, e.Location, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
