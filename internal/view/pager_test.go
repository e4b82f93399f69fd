package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPager(t *testing.T) {
	assert.Equal(t, State{Page: 1, PageSize: 10}, NewPager(10).State())
	assert.Equal(t, State{Page: 1, PageSize: DefaultPageSize}, NewPager(7).State())
}

func TestPager_SetPageSize_ReclampsPage(t *testing.T) {
	// Arrange
	p := NewPager(5)
	p.SetPage(3, 12)
	require.Equal(t, 3, p.State().Page)

	// Act
	err := p.SetPageSize(20, 12)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, p.State().Page)
	assert.Equal(t, 20, p.State().PageSize)
}

func TestPager_SetPageSize_Invalid(t *testing.T) {
	p := NewPager(5)
	p.SetPage(2, 12)

	err := p.SetPageSize(7, 12)

	assert.True(t, errors.Is(err, ErrInvalidPageSize))
	assert.Equal(t, State{Page: 2, PageSize: 5}, p.State())
}

func TestPager_Reconcile(t *testing.T) {
	tests := []struct {
		name         string
		start      int
		matchCount int
		want       int
	}{
		{name: "still valid", start: 2, matchCount: 10, want: 2},
		{name: "matches shrank", start: 3, matchCount: 6, want: 2},
		{name: "nothing matches", start: 3, matchCount: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			p := NewPager(5)
			p.SetPage(tt.start, 15)

			// Act
			p.Reconcile(tt.matchCount)

			// Assert
			assert.Equal(t, tt.want, p.State().Page)
		})
	}
}

func TestPager_Reconcile_DoesNotAdvance(t *testing.T) {
	p := NewPager(5)
	p.SetPage(2, 15)

	p.Reconcile(50)

	assert.Equal(t, 2, p.State().Page)
}

func TestPager_SetSearch_ResetsPage(t *testing.T) {
	p := NewPager(5)
	p.SetPage(3, 15)

	p.SetSearch("mouse")

	assert.Equal(t, State{Search: "mouse", Page: 1, PageSize: 5}, p.State())
}

func TestPager_NextPrev(t *testing.T) {
	p := NewPager(5)

	p.Prev()
	assert.Equal(t, 1, p.State().Page)

	p.Next(10)
	assert.Equal(t, 2, p.State().Page)

	p.Next(10)
	assert.Equal(t, 2, p.State().Page)

	p.Prev()
	assert.Equal(t, 1, p.State().Page)
}

func TestPager_View(t *testing.T) {
	products := makeProducts(12)
	p := NewPager(5)
	p.SetPage(3, len(products))

	page := p.View(products)

	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, []string{"id-10", "id-11"}, ids(page.Items))
}

func TestPager_MatchCount(t *testing.T) {
	products := makeProducts(12)
	products[4].Name = "Wireless Mouse"
	p := NewPager(5)

	assert.Equal(t, 12, p.MatchCount(products))

	p.SetSearch("MOUSE")
	assert.Equal(t, 1, p.MatchCount(products))
}

func TestValidPageSize(t *testing.T) {
	for _, size := range PageSizeOptions {
		assert.True(t, ValidPageSize(size), "size %d", size)
	}
	assert.False(t, ValidPageSize(0))
	assert.False(t, ValidPageSize(15))
}
