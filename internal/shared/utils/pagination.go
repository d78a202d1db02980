package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecobarangay/wasteops/internal/shared/constants"
)

// Pagination holds parsed page-based parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the first item on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Window holds parsed limit/offset parameters used by the notification feed.
type Window struct {
	Limit  int
	Offset int
}

// ValidatePagination normalizes page parameters.
// Page defaults to DefaultPage if less than 1.
// PageSize defaults to DefaultPageSize if less than 1, and is capped at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParsePagination parses page and page_size from the query string.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage, 1),
		parseQueryInt(c, "page_size", constants.DefaultPageSize, 1),
	)
}

// ValidateWindow normalizes limit/offset parameters.
func ValidateWindow(limit, offset int) Window {
	if limit < 1 {
		limit = constants.DefaultFeedLimit
	}
	if limit > constants.MaxFeedLimit {
		limit = constants.MaxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Window{Limit: limit, Offset: offset}
}

// ParseWindow parses limit and offset from the query string.
func ParseWindow(c *gin.Context) Window {
	return ValidateWindow(
		parseQueryInt(c, "limit", constants.DefaultFeedLimit, 1),
		parseQueryInt(c, "offset", 0, 0),
	)
}

// parseQueryInt returns the integer value of key, or defaultVal when it is
// absent, malformed or below min.
func parseQueryInt(c *gin.Context, key string, defaultVal, min int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= min {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
