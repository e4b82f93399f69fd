// Package view computes the filtered, paginated catalog views shown to users.
// All functions are pure and preserve catalog order.
package view

import (
	"strings"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

// Filter returns the products whose name or category contains search,
// compared case-insensitively. An empty search matches everything.
func Filter(products []model.Product, search string) []model.Product {
	needle := strings.ToLower(search)

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// TotalPages returns max(1, ceil(count/pageSize)).
func TotalPages(count, pageSize int) int {
	pageSize = normalizePageSize(pageSize)
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage clamps page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the clamped page of products and the clamped page number.
func Paginate(products []model.Product, page, pageSize int) ([]model.Product, int) {
	pageSize = normalizePageSize(pageSize)
	page = ClampPage(page, TotalPages(len(products), pageSize))

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(products))

	items := make([]model.Product, end-start)
	copy(items, products[start:end])
	return items, page
}

// Compute filters products by search and returns the requested page.
func Compute(products []model.Product, search string, page, pageSize int) model.Page {
	filtered := Filter(products, search)
	items, current := Paginate(filtered, page, pageSize)

	return model.Page{
		Items:       items,
		CurrentPage: current,
		TotalPages:  TotalPages(len(filtered), pageSize),
		TotalItems:  len(filtered),
	}
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return pageSize
}
