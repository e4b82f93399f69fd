// Package handler provides the HTTP transport for the catalog-cart session.
package handler

import (
	"github.com/vyrodovalexey/catalog-cart/internal/model"
	"github.com/vyrodovalexey/catalog-cart/internal/view"
)

// Version is the application version.
const Version = "1.0.0"

// Session is the state container the handlers drive.
type Session interface {
	CreateProduct(input model.ProductInput) model.Product
	UpdateProduct(product model.Product) bool
	DeleteProduct(id string) bool
	GetProduct(id string) (model.Product, bool)
	ListProducts() []model.Product

	AddToCart(product model.Product) bool
	RemoveFromCart(productID string) bool
	SetCartQuantity(productID string, quantity int) bool
	ClearCart() bool
	Checkout() error
	Cart() model.Cart

	View() model.Page
	ComputeView(search string, page, pageSize int) model.Page
	PagerState() view.State
	SetSearch(search string)
	SetPage(page int)
	SetPageSize(size int) error
	NextPage()
	PrevPage()

	Reset()
	Version() uint64
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// MutationResponse reports whether a mutation changed state.
// Mutations against unknown IDs succeed with Changed set to false.
type MutationResponse struct {
	Changed bool `json:"changed"`
}

// CartResponse is returned by cart mutations.
type CartResponse struct {
	Changed bool       `json:"changed"`
	Cart    model.Cart `json:"cart"`
}

// AddToCartRequest is the body of POST /api/v1/cart/items.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

// SetQuantityRequest is the body of PUT /api/v1/cart/items/{id}.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Pager moves accepted by PagerRequest.
const (
	MoveNext = "next"
	MovePrev = "prev"
)

// PagerRequest is the body of PUT /api/v1/pager. Nil fields are left unchanged.
// Fields are applied in order: page size, search, page, move.
type PagerRequest struct {
	Search   *string `json:"search,omitempty"`
	Page     *int    `json:"page,omitempty"`
	PageSize *int    `json:"page_size,omitempty"`
	Move     string  `json:"move,omitempty"`
}

// PagerResponse carries the list parameters and the page they select.
type PagerResponse struct {
	State view.State `json:"state"`
	Page  model.Page `json:"page"`
}
