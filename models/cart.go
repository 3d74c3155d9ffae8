package models

import (
	"fmt"
	"path"
	"strings"
)

// ItemKey is the variant triple that identifies a line item.
type ItemKey struct {
	ProductID       string `json:"product_id"`
	RoomType        string `json:"room_type"`
	BreakfastOption string `json:"breakfast_option"`
}

type LineItem struct {
	ProductID       string `json:"product_id"`
	RoomType        string `json:"room_type"`
	BreakfastOption string `json:"breakfast_option"`
	Quantity        int    `json:"quantity"`
}

func (li LineItem) Key() ItemKey {
	return ItemKey{ProductID: li.ProductID, RoomType: li.RoomType, BreakfastOption: li.BreakfastOption}
}

// MaxQuantity is the most a single line item may hold.
const MaxQuantity = 99

// Cart holds at most one LineItem per ItemKey, in insertion order.
type Cart struct {
	Items []LineItem `json:"items"`
}

type CartViewItem struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	RoomType        string `json:"room_type"`
	BreakfastOption string `json:"breakfast_option"`
	Quantity        int    `json:"quantity"`
	UnitPrice       int    `json:"unit_price"`
	Subtotal        int    `json:"subtotal"`
	Image           string `json:"image"`
	ImageURL        string `json:"image_url,omitempty"`
}

type CartView struct {
	Items     []CartViewItem `json:"items"`
	Total     int            `json:"total"`
	ItemCount int            `json:"item_count"`
}

func (c *Cart) indexOf(key ItemKey) int {
	for i, item := range c.Items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// Add merges quantity into the line item for key, appending a new one when the
// triple is not in the cart yet. It returns the resulting item count.
func (c *Cart) Add(key ItemKey, quantity int) (int, error) {
	if strings.TrimSpace(key.ProductID) == "" {
		return c.Count(), NewValidationError("product_id", "product ID is required")
	}
	if quantity <= 0 {
		return c.Count(), NewValidationError("quantity", "quantity must be a positive integer")
	}

	if quantity > MaxQuantity {
		return c.Count(), quantityTooLarge()
	}

	if i := c.indexOf(key); i >= 0 {
		if c.Items[i].Quantity > MaxQuantity-quantity {
			return c.Count(), quantityTooLarge()
		}
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, LineItem{
			ProductID:       key.ProductID,
			RoomType:        key.RoomType,
			BreakfastOption: key.BreakfastOption,
			Quantity:        quantity,
		})
	}
	return c.Count(), nil
}

// Update replaces the quantity of the matching line item. A quantity of zero
// or less removes it. Unknown keys are ignored.
func (c *Cart) Update(key ItemKey, quantity int) error {
	if quantity > MaxQuantity {
		return quantityTooLarge()
	}
	i := c.indexOf(key)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return nil
	}
	c.Items[i].Quantity = quantity
	return nil
}

// Prune drops line items whose product is no longer in catalog and returns how
// many were removed.
func (c *Cart) Prune(catalog *Catalog) int {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if _, ok := catalog.Lookup(item.ProductID); ok {
			kept = append(kept, item)
		}
	}
	removed := len(c.Items) - len(kept)
	if len(kept) == 0 {
		kept = nil
	}
	c.Items = kept
	return removed
}

func quantityTooLarge() *ValidationError {
	return NewValidationError("quantity", fmt.Sprintf("quantity per item may not exceed %d", MaxQuantity))
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a cart that shares no backing storage with c.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// View prices the cart against catalog. Items whose product is missing from
// the catalog are left out of Items and Total but still count in ItemCount.
func (c *Cart) View(catalog *Catalog) CartView {
	view := CartView{Items: []CartViewItem{}}
	for _, item := range c.Items {
		view.ItemCount += item.Quantity

		product, ok := catalog.Lookup(item.ProductID)
		if !ok {
			continue
		}
		vi := NewCartViewItem(product, item)
		view.Items = append(view.Items, vi)
		view.Total += vi.Subtotal
	}
	return view
}

func NewCartViewItem(product Product, item LineItem) CartViewItem {
	return CartViewItem{
		ProductID:       product.ID,
		Name:            product.Name,
		RoomType:        item.RoomType,
		BreakfastOption: item.BreakfastOption,
		Quantity:        item.Quantity,
		UnitPrice:       product.Price,
		Subtotal:        product.Price * item.Quantity,
		Image:           ResolveImage(product.Image, item.RoomType),
	}
}

// ResolveImage derives the displayed image name for a product variant:
// "{base}_{roomType}_1", or "{base}_1" when there is no room type.
func ResolveImage(image, roomType string) string {
	base := strings.TrimSuffix(image, path.Ext(image))
	if roomType != "" {
		return base + "_" + roomType + "_1"
	}
	return base + "_1"
}
