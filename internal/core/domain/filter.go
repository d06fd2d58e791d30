package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
)

// Paging defaults.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// TransactionFilter narrows a transaction listing. Nil fields impose no constraint.
type TransactionFilter struct {
	Name   *string
	From   *time.Time
	To     *time.Time
	Status *TransactionStatus
}

// HasName reports whether a non-blank name filter is set.
func (f TransactionFilter) HasName() bool {
	return f.Name != nil && strings.TrimSpace(*f.Name) != ""
}

// HasDateRange reports whether both bounds are set. A single bound is ignored.
func (f TransactionFilter) HasDateRange() bool {
	return f.From != nil && f.To != nil
}

// Matches evaluates the filter in memory with the same semantics the stores use.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.HasName() && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(strings.TrimSpace(*f.Name))) {
		return false
	}
	if f.HasDateRange() && (t.Date.Before(*f.From) || t.Date.After(*f.To)) {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	return true
}

// SortField is a column a transaction listing may be ordered by.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByName   SortField = "name"
	SortByValue  SortField = "value"
	SortByStatus SortField = "status"
)

// SortableTransactionFields is the whitelist of transaction sort fields.
var SortableTransactionFields = map[string]SortField{
	"date":   SortByDate,
	"name":   SortByName,
	"value":  SortByValue,
	"status": SortByStatus,
}

// SortDirection is ASC or DESC.
type SortDirection string

const (
	Asc  SortDirection = "ASC"
	Desc SortDirection = "DESC"
)

// SortOrder is one ordering term.
type SortOrder struct {
	Field     SortField
	Direction SortDirection
}

// DefaultTransactionSort is applied when no usable sort term was requested.
var DefaultTransactionSort = []SortOrder{{Field: SortByDate, Direction: Desc}}

// PageRequest selects a zero-based page of a listing.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset is the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Validate rejects pages whose offset does not fit in an int.
func (p PageRequest) Validate() error {
	if p.Page < 0 || p.Size < 0 {
		return apperrors.NewValidationError("page and size must not be negative")
	}
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		return apperrors.NewValidationError(fmt.Sprintf("page %d is out of range", p.Page))
	}
	return nil
}

// Page is one page of a listing along with totals.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a page; content is never nil so it encodes as [].
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// MapPage converts the content of a page, keeping its totals.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
