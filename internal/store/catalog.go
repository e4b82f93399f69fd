package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

// IDFunc generates product IDs.
type IDFunc func() string

// MemoryCatalog implements ProductStore with an ordered in-memory slice.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []model.Product
	ids      map[string]struct{}
	newID    IDFunc
}

// CatalogOption configures a MemoryCatalog.
type CatalogOption func(*MemoryCatalog)

// WithIDFunc overrides the ID generator. Intended for tests.
func WithIDFunc(fn IDFunc) CatalogOption {
	return func(c *MemoryCatalog) {
		c.newID = fn
	}
}

// NewMemoryCatalog creates an empty catalog that issues UUIDv4 IDs.
func NewMemoryCatalog(opts ...CatalogOption) *MemoryCatalog {
	c := &MemoryCatalog{
		ids:   make(map[string]struct{}),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create assigns a fresh ID and appends the product.
// A generated ID that is already in use is discarded and drawn again.
func (c *MemoryCatalog) Create(input model.ProductInput) model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.newID()
	for !c.available(id) {
		id = c.newID()
	}

	product := input.WithID(id)
	c.products = append(c.products, product)
	c.ids[id] = struct{}{}

	return product
}

// Update replaces the product with the same ID, keeping its position.
func (c *MemoryCatalog) Update(product model.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(product.ID)
	if i < 0 {
		return false
	}
	c.products[i] = product
	return true
}

// Delete removes the product with the given ID.
func (c *MemoryCatalog) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	delete(c.ids, id)
	return true
}

// Get returns the product with the given ID.
func (c *MemoryCatalog) Get(id string) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return model.Product{}, false
	}
	return c.products[i], true
}

// List returns a copy of the catalog in insertion order.
func (c *MemoryCatalog) List() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]model.Product, len(c.products))
	copy(products, c.products)
	return products
}

// Len returns the number of products.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.products)
}

// Reset empties the catalog.
func (c *MemoryCatalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	c.ids = make(map[string]struct{})
}

func (c *MemoryCatalog) available(id string) bool {
	if id == "" {
		return false
	}
	_, taken := c.ids[id]
	return !taken
}

// indexOf must be called with the lock held.
func (c *MemoryCatalog) indexOf(id string) int {
	if _, ok := c.ids[id]; !ok {
		return -1
	}
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}
