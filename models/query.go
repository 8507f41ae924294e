package models

import (
	"fmt"
	"net/http"
	"strconv"

	"gorm.io/gorm"
)

// ListParams carries the common pagination/search query parameters of the
// list endpoints.
type ListParams struct {
	Page     int
	PageSize int
	Keyword  string
}

// ParseListParams reads ?page=&pageSize=&q= with sane defaults.
func ParseListParams(r *http.Request) (ListParams, error) {
	p := ListParams{Page: 1, PageSize: 50, Keyword: r.URL.Query().Get("q")}

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid page %q", v)
		}
		p.Page = n
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			return p, fmt.Errorf("invalid pageSize %q", v)
		}
		p.PageSize = n
	}
	return p, nil
}

// Paginate applies offset/limit for gorm's Scopes.
func (p ListParams) Paginate(db *gorm.DB) *gorm.DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

// ListResponse is the envelope every list endpoint returns.
type ListResponse struct {
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}
