package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

// AddToCart adds a snapshot of product with quantity 1.
// A product that is already in the cart is left unchanged; adding it again
// does not increment the quantity.
func (s *Session) AddToCart(product model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Add(product) {
		s.logger.Debug("add to cart ignored, already present", zap.String("product_id", product.ID))
		return false
	}

	s.logger.Debug("added to cart", zap.String("product_id", product.ID))
	s.notifyLocked(model.EventCartChanged)
	return true
}

// RemoveFromCart removes the item for productID.
func (s *Session) RemoveFromCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Remove(productID) {
		return false
	}

	s.logger.Debug("removed from cart", zap.String("product_id", productID))
	s.notifyLocked(model.EventCartChanged)
	return true
}

// SetCartQuantity sets the item quantity. A quantity <= 0 removes the item.
func (s *Session) SetCartQuantity(productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(productID, quantity) {
		return false
	}

	s.logger.Debug("cart quantity set", zap.String("product_id", productID), zap.Int("quantity", quantity))
	s.notifyLocked(model.EventCartChanged)
	return true
}

// ClearCart empties the cart. Clearing an empty cart is a no-op.
func (s *Session) ClearCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		return false
	}
	s.cart.Clear()

	s.logger.Debug("cart cleared")
	s.notifyLocked(model.EventCartChanged)
	return true
}

// Checkout is an inert terminal action. It never changes state and always
// returns ErrCheckoutDisabled.
func (s *Session) Checkout() error {
	s.logger.Debug("checkout requested")
	return fmt.Errorf("checkout: %w", ErrCheckoutDisabled)
}

// ListCartItems returns the cart items in insertion order.
func (s *Session) ListCartItems() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Items()
}

// CartCount returns the sum of cart item quantities.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Count()
}

// CartSubtotal returns the cart subtotal at snapshotted prices.
func (s *Session) CartSubtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Subtotal()
}

// Cart returns items, count and subtotal read under one lock.
func (s *Session) Cart() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.Cart{
		Items:    s.cart.Items(),
		Count:    s.cart.Count(),
		Subtotal: s.cart.Subtotal(),
	}
}
