// Package store provides the in-memory product catalog and shopping cart.
//
// Both stores are trusting mutators: they never validate input and never fail.
// Operations against an unknown ID are silent no-ops. Input validation belongs
// to the form layer, which must run before any mutation is dispatched.
package store

import "github.com/vyrodovalexey/catalog-cart/internal/model"

// ProductStore owns the ordered product catalog.
type ProductStore interface {
	// Create assigns a fresh unique ID and appends the product.
	Create(input model.ProductInput) model.Product

	// Update replaces the product with the same ID in place.
	// It reports whether a product was replaced.
	Update(product model.Product) bool

	// Delete removes the product with the given ID.
	// It reports whether a product was removed.
	Delete(id string) bool

	// Get returns the product with the given ID.
	Get(id string) (model.Product, bool)

	// List returns the catalog in insertion order.
	List() []model.Product

	// Len returns the number of products in the catalog.
	Len() int

	// Reset empties the catalog.
	Reset()
}

// CartStore owns the cart items. Mutators report whether the cart changed.
type CartStore interface {
	// Add inserts a snapshot of the product with quantity 1.
	// Adding a product that is already in the cart leaves its quantity unchanged.
	Add(product model.Product) bool

	// Remove deletes the item for the product ID.
	Remove(productID string) bool

	// SetQuantity sets the item quantity, removing the item when quantity <= 0.
	SetQuantity(productID string, quantity int) bool

	// Clear empties the cart.
	Clear()

	// Items returns the cart items in insertion order.
	Items() []model.CartItem

	// Count returns the sum of item quantities.
	Count() int

	// Subtotal returns the sum of quantity times snapshotted price.
	Subtotal() float64

	// Len returns the number of distinct items.
	Len() int
}
