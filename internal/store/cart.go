package store

import (
	"sync"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

// MemoryCart implements CartStore. Items hold product values, never pointers
// into the catalog.
type MemoryCart struct {
	mu    sync.RWMutex
	items []model.CartItem
}

// NewMemoryCart creates an empty cart.
func NewMemoryCart() *MemoryCart {
	return &MemoryCart{}
}

// Add inserts a snapshot of the product with quantity 1.
// When the product is already present the call is a no-op: repeated adds do
// not increment the quantity. Quantity changes go through SetQuantity.
func (c *MemoryCart) Add(product model.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(product.ID) >= 0 {
		return false
	}
	c.items = append(c.items, model.CartItem{Product: product, Quantity: 1})
	return true
}

// Remove deletes the item for the product ID.
func (c *MemoryCart) Remove(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeLocked(productID)
}

// SetQuantity sets the quantity of an existing item to exactly quantity.
// A quantity <= 0 removes the item. Stock is not consulted.
func (c *MemoryCart) SetQuantity(productID string, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return c.removeLocked(productID)
	}

	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if c.items[i].Quantity == quantity {
		return false
	}
	c.items[i].Quantity = quantity
	return true
}

// Clear empties the cart.
func (c *MemoryCart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

// Items returns a copy of the cart items in insertion order.
func (c *MemoryCart) Items() []model.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count returns the sum of all item quantities.
func (c *MemoryCart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of quantity times snapshotted price over all items.
func (c *MemoryCart) Subtotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var subtotal float64
	for _, item := range c.items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// Len returns the number of distinct items.
func (c *MemoryCart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *MemoryCart) removeLocked(productID string) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

func (c *MemoryCart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
