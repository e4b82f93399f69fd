package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
	"github.com/vyrodovalexey/catalog-cart/internal/view"
)

type recorder struct {
	events []model.ChangeEvent
}

func (r *recorder) Notify(event model.ChangeEvent) {
	r.events = append(r.events, event)
}

func (r *recorder) types() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func input(name string, price float64) model.ProductInput {
	return model.ProductInput{Name: name, Price: price, Category: "Electronics", Quantity: 10}
}

func seed(s *Session, n int) []model.Product {
	products := make([]model.Product, n)
	for i := range products {
		products[i] = s.CreateProduct(input(fmt.Sprintf("Product %d", i), float64(i+1)))
	}
	return products
}

func TestNew(t *testing.T) {
	s := New(WithLogger(zap.NewNop()))

	assert.Empty(t, s.ListProducts())
	assert.Empty(t, s.ListCartItems())
	assert.Equal(t, 0, s.CartCount())
	assert.Equal(t, 0.0, s.CartSubtotal())
	assert.Equal(t, view.State{Page: 1, PageSize: view.DefaultPageSize}, s.PagerState())
}

func TestNew_IsolatedInstances(t *testing.T) {
	a := New()
	b := New()

	a.CreateProduct(input("only in a", 1))

	assert.Len(t, a.ListProducts(), 1)
	assert.Empty(t, b.ListProducts())
}

func TestCreateProduct_DistinctIDs(t *testing.T) {
	s := New()
	products := seed(s, 100)

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestUpdateProduct_MissingIsNoOp(t *testing.T) {
	// Arrange
	s := New()
	seed(s, 3)
	before := s.ListProducts()

	// Act
	ok := s.UpdateProduct(model.Product{ID: "missing", Name: "x", Price: 1, Category: "y", Quantity: 1})

	// Assert
	assert.False(t, ok)
	assert.Equal(t, before, s.ListProducts())
}

func TestDeleteProduct_Idempotent(t *testing.T) {
	s := New()
	products := seed(s, 2)

	assert.True(t, s.DeleteProduct(products[0].ID))
	assert.False(t, s.DeleteProduct(products[0].ID))
	assert.Equal(t, []model.Product{products[1]}, s.ListProducts())
}

func TestAddToCart_TwiceKeepsQuantityOne(t *testing.T) {
	s := New()
	p := seed(s, 1)[0]

	s.AddToCart(p)
	s.AddToCart(p)

	items := s.ListCartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestSetCartQuantity_NonPositiveRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		t.Run(fmt.Sprint(qty), func(t *testing.T) {
			s := New()
			p := seed(s, 1)[0]
			s.AddToCart(p)

			s.SetCartQuantity(p.ID, qty)

			assert.Empty(t, s.ListCartItems())
		})
	}
}

func TestCartSubtotal_UsesSnapshotPrice(t *testing.T) {
	// Arrange
	s := New()
	p := s.CreateProduct(input("Headphones", 50))
	s.AddToCart(p)
	s.SetCartQuantity(p.ID, 2)

	// Act
	p.Price = 80
	require.True(t, s.UpdateProduct(p))

	// Assert
	assert.Equal(t, 100.0, s.CartSubtotal())
	live, ok := s.GetProduct(p.ID)
	require.True(t, ok)
	assert.Equal(t, 80.0, live.Price)
}

func TestDeleteProduct_DoesNotCascadeToCart(t *testing.T) {
	s := New()
	p := seed(s, 1)[0]
	s.AddToCart(p)

	s.DeleteProduct(p.ID)

	assert.Len(t, s.ListCartItems(), 1)
	assert.Equal(t, 1, s.CartCount())
}

func TestScenario_SetQuantityOnSecondProduct(t *testing.T) {
	// Arrange
	s := New()
	products := []model.Product{
		s.CreateProduct(input("Keyboard", 30)),
		s.CreateProduct(input("Wireless Mouse", 12.5)),
		s.CreateProduct(input("Monitor", 199)),
	}
	second := products[1]

	// Act
	s.AddToCart(second)
	s.SetCartQuantity(second.ID, 4)

	// Assert
	assert.Equal(t, 4, s.CartCount())
	assert.Equal(t, 4*second.Price, s.CartSubtotal())
	assert.Equal(t, model.Cart{
		Items:    []model.CartItem{{Product: second, Quantity: 4}},
		Count:    4,
		Subtotal: 50,
	}, s.Cart())
}

func TestClearCart(t *testing.T) {
	s := New()
	for _, p := range seed(s, 3) {
		s.AddToCart(p)
	}

	assert.True(t, s.ClearCart())

	assert.Empty(t, s.ListCartItems())
	assert.Equal(t, 0, s.CartCount())
}

func TestClearCart_EmptyIsNoOp(t *testing.T) {
	// Arrange
	rec := &recorder{}
	s := New(WithNotifier(rec))
	seed(s, 2)
	beforeVersion := s.Version()
	beforeEvents := len(rec.events)

	// Act
	changed := s.ClearCart()

	// Assert
	assert.False(t, changed)
	assert.Equal(t, beforeVersion, s.Version())
	assert.Len(t, rec.events, beforeEvents)
}

func TestCheckout_IsInert(t *testing.T) {
	// Arrange
	rec := &recorder{}
	s := New(WithNotifier(rec))
	p := seed(s, 1)[0]
	s.AddToCart(p)
	beforeCart := s.Cart()
	beforeVersion := s.Version()
	beforeEvents := len(rec.events)

	// Act
	err := s.Checkout()

	// Assert
	assert.True(t, errors.Is(err, ErrCheckoutDisabled))
	assert.Equal(t, beforeCart, s.Cart())
	assert.Equal(t, beforeVersion, s.Version())
	assert.Len(t, rec.events, beforeEvents)
}

func TestView_PaginationAndClamp(t *testing.T) {
	s := New(WithPageSize(5))
	seed(s, 12)

	s.SetPage(3)
	page := s.View()
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 2)

	s.SetPage(5)
	assert.Equal(t, 3, s.PagerState().Page)
}

func TestSetPageSize_ReclampsCurrentPage(t *testing.T) {
	// Arrange
	s := New(WithPageSize(5))
	seed(s, 12)
	s.SetPage(3)

	// Act
	err := s.SetPageSize(20)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, s.PagerState().Page)
	assert.Equal(t, 1, s.View().TotalPages)
}

func TestSetPageSize_Invalid(t *testing.T) {
	s := New()

	err := s.SetPageSize(3)

	assert.True(t, errors.Is(err, view.ErrInvalidPageSize))
	assert.Equal(t, view.DefaultPageSize, s.PagerState().PageSize)
}

func TestDeleteProduct_ReclampsPage(t *testing.T) {
	// Arrange
	s := New(WithPageSize(5))
	products := seed(s, 11)
	s.SetPage(3)
	require.Equal(t, 3, s.PagerState().Page)

	// Act
	s.DeleteProduct(products[10].ID)

	// Assert
	assert.Equal(t, 2, s.PagerState().Page)
}

func TestSetSearch_ResetsPageAndFilters(t *testing.T) {
	s := New(WithPageSize(5))
	seed(s, 12)
	s.CreateProduct(input("Wireless Mouse", 9))
	s.SetPage(3)

	s.SetSearch("MOUSE")

	page := s.View()
	assert.Equal(t, 1, s.PagerState().Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Wireless Mouse", page.Items[0].Name)
}

func TestNextPrevPage_UseFilteredPages(t *testing.T) {
	s := New(WithPageSize(5))
	seed(s, 12)
	s.SetSearch("Product 1")

	s.NextPage()
	s.NextPage()

	// "Product 1", "Product 10", "Product 11" fit on one page
	assert.Equal(t, 1, s.PagerState().Page)

	s.SetSearch("")
	s.NextPage()
	s.NextPage()
	s.NextPage()
	assert.Equal(t, 3, s.PagerState().Page)

	s.PrevPage()
	assert.Equal(t, 2, s.PagerState().Page)
}

func TestComputeView_DoesNotTouchPager(t *testing.T) {
	s := New()
	seed(s, 12)

	page := s.ComputeView("", 3, 5)

	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 1, s.PagerState().Page)
}

func TestReset(t *testing.T) {
	// Arrange
	rec := &recorder{}
	s := New(WithNotifier(rec), WithPageSize(10))
	p := seed(s, 3)[0]
	s.AddToCart(p)
	s.SetSearch("x")

	// Act
	s.Reset()

	// Assert
	assert.Empty(t, s.ListProducts())
	assert.Empty(t, s.ListCartItems())
	assert.Equal(t, view.State{Page: 1, PageSize: 10}, s.PagerState())
	assert.Equal(t, model.EventSessionReset, rec.events[len(rec.events)-1].Type)
}

func TestNotifier_OnlyOnChange(t *testing.T) {
	// Arrange
	rec := &recorder{}
	s := New(WithNotifier(rec))

	// Act
	p := s.CreateProduct(input("a", 1))
	s.UpdateProduct(model.Product{ID: "missing"})
	s.DeleteProduct("missing")
	s.AddToCart(p)
	s.AddToCart(p)
	s.RemoveFromCart("missing")
	s.SetCartQuantity("missing", 2)
	s.SetCartQuantity(p.ID, 3)
	s.ClearCart()

	// Assert
	assert.Equal(t, []string{
		model.EventCatalogChanged,
		model.EventCartChanged,
		model.EventCartChanged,
		model.EventCartChanged,
	}, rec.types())
	for i, ev := range rec.events {
		assert.Equal(t, uint64(i+1), ev.Version)
	}
	assert.Equal(t, 1, rec.events[0].Products)
	assert.Equal(t, 3, rec.events[2].CartCount)
}

func TestNotifierFunc(t *testing.T) {
	var got model.ChangeEvent
	s := New(WithNotifier(NotifierFunc(func(ev model.ChangeEvent) { got = ev })))

	s.CreateProduct(input("a", 1))

	assert.Equal(t, model.EventCatalogChanged, got.Type)
	assert.Equal(t, uint64(1), s.Version())
}

func TestNotifiers_FanOut(t *testing.T) {
	first := &recorder{}
	second := &recorder{}
	s := New(WithNotifier(Notifiers{first, nil, second}))

	s.CreateProduct(input("a", 1))

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
}

func TestPager_StoredPageMatchesRenderedPageWhileSearching(t *testing.T) {
	// Arrange
	s := New(WithPageSize(5))
	seed(s, 12)
	mouse := s.CreateProduct(input("Wireless Mouse", 12.5))
	s.SetSearch("mouse")

	// Act
	s.SetPage(3)

	// Assert
	page := s.View()
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, page.CurrentPage, s.PagerState().Page)
	assert.Equal(t, []model.Product{mouse}, page.Items)

	s.PrevPage()
	assert.Equal(t, 1, s.PagerState().Page)
}

func TestPager_SetPageSizeClampsToSearchResults(t *testing.T) {
	s := New(WithPageSize(5))
	seed(s, 30)
	s.SetSearch("Product 1")

	require.NoError(t, s.SetPageSize(5))
	s.SetPage(4)

	// "Product 1" and "Product 10".."Product 19" match: 11 products, 3 pages.
	assert.Equal(t, 3, s.PagerState().Page)
	assert.Equal(t, s.View().CurrentPage, s.PagerState().Page)
}

func TestPager_UpdateOutOfSearchReclamps(t *testing.T) {
	// Arrange
	s := New(WithPageSize(5))
	products := seed(s, 6)
	s.SetSearch("Product")
	s.SetPage(2)
	require.Equal(t, 2, s.PagerState().Page)

	// Act
	renamed := products[5]
	renamed.Name = "Keyboard"
	s.UpdateProduct(renamed)

	// Assert
	assert.Equal(t, 1, s.PagerState().Page)
	assert.Equal(t, s.View().CurrentPage, s.PagerState().Page)
}
