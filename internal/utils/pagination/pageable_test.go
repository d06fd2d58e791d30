package pagination

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		maxSize  int
		wantPage int
		wantSize int
	}{
		{name: "defaults", page: 0, size: 0, maxSize: 100, wantPage: 0, wantSize: 10},
		{name: "explicit", page: 2, size: 25, maxSize: 100, wantPage: 2, wantSize: 25},
		{name: "capped", page: 0, size: 500, maxSize: 100, wantPage: 0, wantSize: 100},
		{name: "negative page", page: -3, size: 5, maxSize: 100, wantPage: 0, wantSize: 5},
		{name: "unset max uses domain max", page: 0, size: 1000, maxSize: 0, wantPage: 0, wantSize: domain.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageRequest(tt.page, tt.size, tt.maxSize, nil)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.Size)
		})
	}
}

func TestParseSort(t *testing.T) {
	allowed := domain.SortableTransactionFields

	tests := []struct {
		name   string
		values []string
		want   []domain.SortOrder
	}{
		{name: "none", values: nil, want: nil},
		{name: "field only is ascending", values: []string{"name"}, want: []domain.SortOrder{{Field: domain.SortByName, Direction: domain.Asc}}},
		{name: "field and direction", values: []string{"date,desc"}, want: []domain.SortOrder{{Field: domain.SortByDate, Direction: domain.Desc}}},
		{name: "case-insensitive", values: []string{"Value,DESC"}, want: []domain.SortOrder{{Field: domain.SortByValue, Direction: domain.Desc}}},
		{
			name:   "several fields share direction",
			values: []string{"status,name,desc"},
			want: []domain.SortOrder{
				{Field: domain.SortByStatus, Direction: domain.Desc},
				{Field: domain.SortByName, Direction: domain.Desc},
			},
		},
		{name: "unknown field dropped", values: []string{"password,desc"}, want: nil},
		{
			name:   "repeated params keep order",
			values: []string{"status,asc", "id,desc", "date,desc"},
			want: []domain.SortOrder{
				{Field: domain.SortByStatus, Direction: domain.Asc},
				{Field: domain.SortByDate, Direction: domain.Desc},
			},
		},
		{name: "duplicates ignored", values: []string{"date,desc", "date,asc"}, want: []domain.SortOrder{{Field: domain.SortByDate, Direction: domain.Desc}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSort(tt.values, allowed))
		})
	}
}

func TestParseDateBound(t *testing.T) {
	got, err := ParseDateBound("", false)
	assert.NoError(t, err)
	assert.Nil(t, got)

	from, err := ParseDateBound("2024-03-05", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *from)

	to, err := ParseDateBound("2024-03-05", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 23, 59, 59, 999999999, time.UTC), *to)

	withZone, err := ParseDateBound("2024-03-05T10:00:00+02:00", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), *withZone)

	_, err = ParseDateBound("05/03/2024", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}
