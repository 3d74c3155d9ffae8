package models

import (
	"fmt"
	"slices"
)

type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            int      `json:"price"`
	Image            string   `json:"image"`
	ImageURL         string   `json:"image_url,omitempty"`
	RoomTypes        []string `json:"room_types"`
	BreakfastOptions []string `json:"breakfast_options"`
	BreakfastPrices  []int    `json:"breakfast_prices"`
	Specs            string   `json:"specs,omitempty"`
}

func (p Product) HasRoomTypes() bool {
	return len(p.RoomTypes) > 0
}

func (p Product) HasBreakfastOptions() bool {
	return len(p.BreakfastOptions) > 0
}

// BreakfastPrice returns the listed price for a breakfast label, or 0 when the
// product does not offer it.
func (p Product) BreakfastPrice(option string) int {
	i := slices.Index(p.BreakfastOptions, option)
	if i < 0 || i >= len(p.BreakfastPrices) {
		return 0
	}
	return p.BreakfastPrices[i]
}

// ValidateVariant checks that the chosen labels exist on the product's variant
// axes. A product without an axis only accepts the empty label for it.
func (p Product) ValidateVariant(roomType, breakfastOption string) error {
	if p.HasRoomTypes() {
		if !slices.Contains(p.RoomTypes, roomType) {
			return NewValidationError("room_type", fmt.Sprintf("room type %q is not offered for product %s", roomType, p.ID))
		}
	} else if roomType != "" {
		return NewValidationError("room_type", fmt.Sprintf("product %s has no room types", p.ID))
	}

	if p.HasBreakfastOptions() {
		if !slices.Contains(p.BreakfastOptions, breakfastOption) {
			return NewValidationError("breakfast_option", fmt.Sprintf("breakfast option %q is not offered for product %s", breakfastOption, p.ID))
		}
	} else if breakfastOption != "" {
		return NewValidationError("breakfast_option", fmt.Sprintf("product %s has no breakfast options", p.ID))
	}
	return nil
}

// Catalog is the read-only product reference data for a single request.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// NewCatalog indexes products by ID. When IDs repeat, the first record wins.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	return slices.Clone(c.products)
}

func (c *Catalog) Lookup(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}
