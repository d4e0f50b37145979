package shared

import (
	"math"
	"strconv"
	"strings"
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// RawPagination is unvalidated paging input as it arrives from a request
type RawPagination struct {
	Page  string
	Limit string
}

// PaginationParams is a safe page/limit pair with its derived offset
type PaginationParams struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ValidateAndParse turns raw page/limit strings into safe pagination params.
// It never fails: missing or non-numeric values fall back to defaults and
// out-of-range values are clamped.
func ValidateAndParse(raw RawPagination) PaginationParams {
	return NewPaginationParams(parseLenientInt(raw.Page), parseLenientInt(raw.Limit))
}

// MaxPage is the largest page whose offset still fits in an int at limit
func MaxPage(limit int) int {
	if limit < 1 {
		limit = 1
	}
	return math.MaxInt / limit
}

// NewPaginationParams clamps numeric page/limit values.
// A zero limit means "not given" and takes DefaultLimit, while a negative
// limit clamps to 1. Pages past MaxPage clamp to it.
func NewPaginationParams(page, limit int) PaginationParams {
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	if maxPage := MaxPage(limit); page > maxPage {
		page = maxPage
	}
	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func parseLenientInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// PaginationMeta describes a page within a filtered result set
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// PaginationResult is one page of items plus its metadata
type PaginationResult[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPaginationResult shapes a page of data. It does not re-validate page or
// limit; callers pass params produced by ValidateAndParse.
func NewPaginationResult[T any](data []T, total int64, page, limit int) PaginationResult[T] {
	if data == nil {
		data = make([]T, 0)
	}
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = int(total) / limit
		if int(total)%limit > 0 {
			totalPages++
		}
	}
	return PaginationResult[T]{
		Data: data,
		Pagination: PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1 && totalPages > 0,
		},
	}
}

// MapPaginationResult converts the items of a page while keeping its metadata
func MapPaginationResult[T, U any](r PaginationResult[T], fn func(T) U) PaginationResult[U] {
	out := make([]U, len(r.Data))
	for i, item := range r.Data {
		out[i] = fn(item)
	}
	return PaginationResult[U]{Data: out, Pagination: r.Pagination}
}
