package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

func makeProducts(n int) []model.Product {
	products := make([]model.Product, n)
	for i := range products {
		products[i] = model.Product{
			ID:       fmt.Sprintf("id-%d", i),
			Name:     fmt.Sprintf("Product %d", i),
			Price:    1,
			Category: "Other",
			Quantity: 1,
		}
	}
	return products
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Wireless Mouse", Category: "Electronics"},
		{ID: "2", Name: "Cotton Shirt", Category: "Clothing"},
		{ID: "3", Name: "Mouse Pad", Category: "Other"},
		{ID: "4", Name: "Novel", Category: "Books"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty matches all", search: "", want: []string{"1", "2", "3", "4"}},
		{name: "lowercase name", search: "mouse", want: []string{"1", "3"}},
		{name: "uppercase prefix", search: "WIRE", want: []string{"1"}},
		{name: "category match", search: "books", want: []string{"4"}},
		{name: "substring inside word", search: "otto", want: []string{"2"}},
		{name: "no match", search: "kayak", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(products, tt.search)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Wireless Mouse", Category: "Electronics"},
		{ID: "2", Name: "Keyboard", Category: "Electronics"},
	}

	once := Filter(products, "mouse")
	twice := Filter(once, "mouse")

	assert.Equal(t, once, twice)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, pageSize, want int
	}{
		{count: 0, pageSize: 5, want: 1},
		{count: 5, pageSize: 5, want: 1},
		{count: 6, pageSize: 5, want: 2},
		{count: 12, pageSize: 5, want: 3},
		{count: 12, pageSize: 20, want: 1},
		{count: 3, pageSize: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.count, tt.pageSize), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-4, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(5, 3))
	assert.Equal(t, 1, ClampPage(5, 0))
}

func TestCompute_LastPage(t *testing.T) {
	// Arrange
	products := makeProducts(12)

	// Act
	page := Compute(products, "", 3, 5)

	// Assert
	assert.Equal(t, []string{"id-10", "id-11"}, ids(page.Items))
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 12, page.TotalItems)
}

func TestCompute_ClampsPastLastPage(t *testing.T) {
	page := Compute(makeProducts(12), "", 5, 5)

	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, []string{"id-10", "id-11"}, ids(page.Items))
}

func TestCompute_EmptyCatalog(t *testing.T) {
	page := Compute(nil, "anything", 4, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}

func TestCompute_FilterThenPaginate(t *testing.T) {
	// Arrange
	products := makeProducts(12)
	products[1].Name = "Wireless Mouse"
	products[7].Name = "Mouse Pad"
	products[11].Category = "mousetrap"

	// Act
	page := Compute(products, "MOUSE", 1, 2)

	// Assert
	assert.Equal(t, []string{"id-1", "id-7"}, ids(page.Items))
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 3, page.TotalItems)
}

func TestCompute_DoesNotAliasInput(t *testing.T) {
	products := makeProducts(3)

	page := Compute(products, "", 1, 5)
	require.Len(t, page.Items, 3)
	page.Items[0].Name = "changed"

	assert.Equal(t, "Product 0", products[0].Name)
}
