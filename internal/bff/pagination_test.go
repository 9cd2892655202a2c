package bff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name           string
		params         PageParams
		expectedPage   int
		expectedOffset int
		expectedLimit  int
	}{
		{"defaults", PageParams{}, 1, 0, 20},
		{"explicit page", PageParams{Page: 3, PageSize: 10}, 3, 20, 10},
		{"page size clamped to maximum", PageParams{Page: 1, PageSize: 500}, 1, 0, 100},
		{"zero page treated as first", PageParams{Page: 0, PageSize: 10}, 1, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, offset, limit := tt.params.Normalize(20, 100)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		page          int
		pageSize      int
		expectedPages int
	}{
		{"exact division", 40, 1, 20, 2},
		{"partial last page", 41, 1, 20, 3},
		{"empty result", 0, 1, 20, 0},
		{"single page", 5, 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.expectedPages, meta.TotalPages)
		})
	}
}
