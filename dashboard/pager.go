package dashboard

import (
	"errors"
	"strconv"
)

// Page size bounds for dashboard listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ErrInvalidPage is returned for malformed pagination parameters
var ErrInvalidPage = errors.New("페이지 정보가 올바르지 않습니다.")

// ParsePage reads page and size query values. Empty values take the defaults.
func ParsePage(pageStr, sizeStr string) (page, size int, err error) {
	page, size = 1, DefaultPageSize
	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return 0, 0, ErrInvalidPage
		}
	}
	if sizeStr != "" {
		size, err = strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > MaxPageSize {
			return 0, 0, ErrInvalidPage
		}
	}
	return page, size, nil
}

// Pager describes the pagination controls under a table
type Pager struct {
	Page       int  `json:"page"`
	Size       int  `json:"size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// NewPager computes page counts from a backend page header
func NewPager(page, size, total int) Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}
	pages := (total + size - 1) / size
	return Pager{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
}
