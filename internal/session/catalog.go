package session

import (
	"go.uber.org/zap"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

// CreateProduct appends a new product. The input must already be validated.
func (s *Session) CreateProduct(input model.ProductInput) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.catalog.Create(input)
	s.pager.Reconcile(s.matchCountLocked())

	s.logger.Debug("product created", zap.String("product_id", product.ID), zap.String("name", product.Name))
	s.notifyLocked(model.EventCatalogChanged)

	return product
}

// UpdateProduct replaces the product with the same ID. Unknown IDs are ignored.
// Items already in the cart keep the values they were added with.
func (s *Session) UpdateProduct(product model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.Update(product) {
		s.logger.Debug("update ignored, product not found", zap.String("product_id", product.ID))
		return false
	}
	// An edit can move a product out of the current search results.
	s.pager.Reconcile(s.matchCountLocked())

	s.logger.Debug("product updated", zap.String("product_id", product.ID))
	s.notifyLocked(model.EventCatalogChanged)
	return true
}

// DeleteProduct removes the product. Unknown IDs are ignored.
// The cart is not touched.
func (s *Session) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.Delete(id) {
		s.logger.Debug("delete ignored, product not found", zap.String("product_id", id))
		return false
	}
	s.pager.Reconcile(s.matchCountLocked())

	s.logger.Debug("product deleted", zap.String("product_id", id))
	s.notifyLocked(model.EventCatalogChanged)
	return true
}

// GetProduct returns the catalog product with the given ID.
func (s *Session) GetProduct(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalog.Get(id)
}

// ListProducts returns the catalog in insertion order.
func (s *Session) ListProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalog.List()
}
