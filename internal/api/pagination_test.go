package api_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quotable/leadintel/internal/api"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  api.PaginationParams
	}{
		{"defaults", "", api.PaginationParams{Page: 1, Limit: 50, Offset: 0}},
		{"second page", "?page=2&limit=20", api.PaginationParams{Page: 2, Limit: 20, Offset: 20}},
		{"limit capped", "?limit=5000", api.PaginationParams{Page: 1, Limit: 200, Offset: 0}},
		{"garbage", "?page=abc&limit=-3", api.PaginationParams{Page: 1, Limit: 50, Offset: 0}},
		{"huge page", "?page=9223372036854775807&limit=50", api.PaginationParams{Page: 100000, Limit: 50, Offset: 99999 * 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/leads"+tt.query, nil)
			got := api.ParsePagination(r, 50, 200)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Offset, 0)
		})
	}
}
