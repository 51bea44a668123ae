// Package cart holds the buyer's session cart. Carts live in memory only and
// disappear with the process.
package cart

import (
	"slices"

	"gaming-storefront/internal/model"
)

// Cart is an ordered list of lines, unique by product id. It is not safe for
// concurrent use; Registry serialises access.
type Cart struct {
	items []model.OrderItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem increments the line for product or appends a new line holding a
// copy of the product.
func (c *Cart) AddItem(product model.Product) {
	if i := c.index(product.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, model.OrderItem{Product: product, Quantity: 1})
}

// SetQuantity adjusts a line by delta and never goes below one. Unknown ids
// are ignored.
func (c *Cart) SetQuantity(productID string, delta int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.items[i].Quantity = max(1, c.items[i].Quantity+delta)
}

func (c *Cart) RemoveItem(productID string) {
	c.items = slices.DeleteFunc(c.items, func(item model.OrderItem) bool {
		return item.Product.ID == productID
	})
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() float64 {
	return model.TotalOf(c.items)
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Items() []model.OrderItem {
	return slices.Clone(c.items)
}

func (c *Cart) index(productID string) int {
	return slices.IndexFunc(c.items, func(item model.OrderItem) bool {
		return item.Product.ID == productID
	})
}
