package view

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

// DefaultPageSize is the page size a new Pager starts with.
const DefaultPageSize = 5

// PageSizeOptions are the page sizes a Pager accepts.
var PageSizeOptions = []int{5, 10, 20, 30, 40, 50}

// ErrInvalidPageSize is returned when a page size is not one of PageSizeOptions.
var ErrInvalidPageSize = errors.New("page size must be one of: 5, 10, 20, 30, 40, 50")

// Pager holds the transient list parameters of one session: search text,
// page size and current page.
//
// The current page is kept within the page count of the products matching the
// search text, so the stored page is always the page View renders. Callers pass
// that match count and must call Reconcile whenever it may have changed.
// Pager is not safe for concurrent use.
type Pager struct {
	search   string
	page     int
	pageSize int
}

// State is a snapshot of the pager parameters.
type State struct {
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// NewPager creates a Pager on page 1. An unsupported pageSize falls back to DefaultPageSize.
func NewPager(pageSize int) *Pager {
	if !ValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	return &Pager{page: 1, pageSize: pageSize}
}

// ValidPageSize reports whether size is one of PageSizeOptions.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizeOptions, size)
}

// State returns the current parameters.
func (p *Pager) State() State {
	return State{Search: p.search, Page: p.page, PageSize: p.pageSize}
}

// Reconcile re-clamps the current page against matchCount matching products.
func (p *Pager) Reconcile(matchCount int) {
	p.page = ClampPage(p.page, TotalPages(matchCount, p.pageSize))
}

// MatchCount returns how many products match the current search text.
func (p *Pager) MatchCount(products []model.Product) int {
	return len(Filter(products, p.search))
}

// SetPageSize changes the page size, returns to the first page and reconciles.
func (p *Pager) SetPageSize(size, matchCount int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("set page size %d: %w", size, ErrInvalidPageSize)
	}
	p.pageSize = size
	p.page = 1
	p.Reconcile(matchCount)
	return nil
}

// SetSearch changes the search text and returns to the first page.
func (p *Pager) SetSearch(search string) {
	p.search = search
	p.page = 1
}

// SetPage moves to page, clamped into the page range of matchCount products.
func (p *Pager) SetPage(page, matchCount int) {
	p.page = ClampPage(page, TotalPages(matchCount, p.pageSize))
}

// Next advances one page, stopping at the last page of matchCount products.
func (p *Pager) Next(matchCount int) {
	p.page = ClampPage(p.page+1, TotalPages(matchCount, p.pageSize))
}

// Prev goes back one page, stopping at 1.
func (p *Pager) Prev() {
	p.page = max(1, p.page-1)
}

// View computes the page of products for the current parameters.
func (p *Pager) View(products []model.Product) model.Page {
	return Compute(products, p.search, p.page, p.pageSize)
}
