package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		pageNumber int
		pageSize   int
		wantPage   int
		wantLast   int
		wantOffset int
	}{
		{name: "empty total pins to one page", total: 0, pageNumber: 1, pageSize: 5, wantPage: 1, wantLast: 1, wantOffset: 0},
		{name: "empty total clamps any page", total: 0, pageNumber: 42, pageSize: 5, wantPage: 1, wantLast: 1, wantOffset: 0},
		{name: "exact multiple", total: 10, pageNumber: 2, pageSize: 5, wantPage: 2, wantLast: 2, wantOffset: 5},
		{name: "partial last page", total: 11, pageNumber: 3, pageSize: 5, wantPage: 3, wantLast: 3, wantOffset: 10},
		{name: "past the end clamps to last", total: 11, pageNumber: 10, pageSize: 5, wantPage: 3, wantLast: 3, wantOffset: 10},
		{name: "below one clamps to first", total: 11, pageNumber: 0, pageSize: 5, wantPage: 1, wantLast: 3, wantOffset: 0},
		{name: "single row", total: 1, pageNumber: 1, pageSize: 5, wantPage: 1, wantLast: 1, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, lastPage, offset := pageBounds(tt.total, tt.pageNumber, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLast, lastPage)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestPagePrevNext(t *testing.T) {
	p := Page{PageNumber: 1, LastPage: 1}
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())

	p = Page{PageNumber: 2, LastPage: 3}
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p = Page{PageNumber: 3, LastPage: 3}
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}
