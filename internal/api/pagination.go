package api

import (
	"net/http"
	"strconv"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
	// maxPage keeps (page-1)*limit far from integer overflow.
	maxPage = 100000
)

// PaginationParams holds parsed pagination values from query params.
type PaginationParams struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// ParsePagination extracts page and limit with defaults. maxLimit caps
// the limit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) PaginationParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// ListResponse wraps a page of results.
type ListResponse struct {
	Data       interface{}      `json:"data"`
	Count      int              `json:"count"`
	Pagination PaginationParams `json:"pagination"`
}
