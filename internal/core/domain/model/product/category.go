package product

import (
	"fmt"

	"cannacommerce/internal/pkg/errs"
)

// Category classifies a cannabis product by form factor.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	Flower
	Preroll
	Vape
	Concentrate
	Edible
	Tincture
	Topical
	Capsule
	Accessory
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "unknown",
		Flower:          "flower",
		Preroll:         "preroll",
		Vape:            "vape",
		Concentrate:     "concentrate",
		Edible:          "edible",
		Tincture:        "tincture",
		Topical:         "topical",
		Capsule:         "capsule",
		Accessory:       "accessory",
	}
}

// CategoryFromString maps a wire-format category name onto the enum.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getCategoryStrings() {
		if category != CategoryUnknown && str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category", fmt.Errorf("%q is not a known product category", s))
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"category", fmt.Errorf("%d is not a valid category", c))
	}
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the wire-format name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}
