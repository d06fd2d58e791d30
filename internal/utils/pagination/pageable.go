package pagination

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
)

const dateOnly = "2006-01-02"

// NewPageRequest builds a page request, applying the default size and capping it at maxSize.
func NewPageRequest(page, size, maxSize int, sort []domain.SortOrder) domain.PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = domain.MaxPageSize
	}
	if size > maxSize {
		size = maxSize
	}
	return domain.PageRequest{Page: page, Size: size, Sort: sort}
}

// ParseSort parses sort parameters of the form "field" or "field,dir" or
// "field1,field2,dir". Fields outside allowed are dropped; a missing or unknown
// direction means ASC.
func ParseSort(values []string, allowed map[string]domain.SortField) []domain.SortOrder {
	var orders []domain.SortOrder
	seen := map[domain.SortField]bool{}

	for _, raw := range values {
		parts := strings.Split(raw, ",")
		direction := domain.Asc
		if n := len(parts); n > 1 {
			switch strings.ToUpper(strings.TrimSpace(parts[n-1])) {
			case "DESC":
				direction = domain.Desc
				parts = parts[:n-1]
			case "ASC":
				parts = parts[:n-1]
			}
		}
		for _, p := range parts {
			field, ok := allowed[strings.ToLower(strings.TrimSpace(p))]
			if !ok || seen[field] {
				continue
			}
			seen[field] = true
			orders = append(orders, domain.SortOrder{Field: field, Direction: direction})
		}
	}
	return orders
}

// ParseDateBound parses a date filter bound. A plain date (YYYY-MM-DD) is the
// start of that day in UTC, or the last instant of it when endOfDay is set.
func ParseDateBound(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	day, err := time.Parse(dateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", raw)
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &day, nil
}
