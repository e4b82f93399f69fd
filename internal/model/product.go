// Package model defines data structures used throughout the application.
package model

// Categories lists the category options offered to product forms.
// Stores and validators only require a non-empty category; membership is not enforced.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Food",
	"Books",
	"Home & Garden",
	"Sports",
	"Toys",
	"Other",
}

// Product represents a catalog entry.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	// Quantity is available stock, independent of any cart quantity.
	Quantity int `json:"quantity"`
}

// ProductInput holds the fields of a product that does not have an ID yet.
type ProductInput struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Category string  `json:"category" validate:"required"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

// WithID returns a Product built from the input and the given ID.
func (in ProductInput) WithID(id string) Product {
	return Product{
		ID:       id,
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		Quantity: in.Quantity,
	}
}

// CartItem is a cart line. Product is a value copy taken when the item was added,
// so later catalog edits do not reach it.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the quantity multiplied by the snapshotted price.
func (c CartItem) LineTotal() float64 {
	return float64(c.Quantity) * c.Product.Price
}

// Cart is the read model of the cart returned to collaborators.
type Cart struct {
	Items    []CartItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}

// Page is a filtered, paginated slice of the catalog.
type Page struct {
	Items       []Product `json:"items"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
	TotalItems  int       `json:"total_items"`
}
