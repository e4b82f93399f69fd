package session

import (
	"github.com/vyrodovalexey/catalog-cart/internal/model"
	"github.com/vyrodovalexey/catalog-cart/internal/view"
)

// View returns the catalog page for the session's current list parameters.
func (s *Session) View() model.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pager.View(s.catalog.List())
}

// ComputeView returns a catalog page for arbitrary parameters without
// touching the session's list parameters.
func (s *Session) ComputeView(search string, page, pageSize int) model.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	return view.Compute(s.catalog.List(), search, page, pageSize)
}

// PagerState returns the current list parameters.
func (s *Session) PagerState() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pager.State()
}

// SetSearch changes the search text and returns to the first page.
func (s *Session) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pager.SetSearch(search)
}

// SetPage moves to page, clamped to the page range of the filtered catalog.
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pager.SetPage(page, s.matchCountLocked())
}

// SetPageSize changes the page size and returns to the first page.
func (s *Session) SetPageSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pager.SetPageSize(size, s.matchCountLocked())
}

// NextPage advances one page within the filtered result.
func (s *Session) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pager.Next(s.matchCountLocked())
}

// PrevPage goes back one page.
func (s *Session) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pager.Prev()
}

// matchCountLocked counts the catalog products matching the current search.
func (s *Session) matchCountLocked() int {
	return s.pager.MatchCount(s.catalog.List())
}
