package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageParams
		wantPage  int
		wantLimit int
	}{
		{"zero values", PageParams{}, 1, DefaultPageSize},
		{"negative page", PageParams{Page: -3, Limit: 20}, 1, 20},
		{"limit above cap", PageParams{Page: 2, Limit: 500}, 2, MaxPageSize},
		{"already valid", PageParams{Page: 4, Limit: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	last := NewPagination(3, 10, 25)
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPrevPage)
}

func TestNewPagination_PageBeyondData(t *testing.T) {
	p := NewPagination(5, 10, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 25, p.TotalItems)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestNewPagination_Empty(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}
