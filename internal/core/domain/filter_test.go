package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionFilter_Matches(t *testing.T) {
	d := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	alice := domain.Transaction{Name: "Alice Rent", Date: d, Status: domain.TransactionPending}

	name := "alice"
	other := "bob"
	blank := "  "
	from := d.Add(-time.Hour)
	to := d.Add(time.Hour)
	early := d.Add(-48 * time.Hour)
	pending := domain.TransactionPending
	paid := domain.TransactionPaid

	tests := []struct {
		name   string
		filter domain.TransactionFilter
		want   bool
	}{
		{name: "empty filter", filter: domain.TransactionFilter{}, want: true},
		{name: "name case-insensitive", filter: domain.TransactionFilter{Name: &name}, want: true},
		{name: "name mismatch", filter: domain.TransactionFilter{Name: &other}, want: false},
		{name: "blank name ignored", filter: domain.TransactionFilter{Name: &blank}, want: true},
		{name: "inside range", filter: domain.TransactionFilter{From: &from, To: &to}, want: true},
		{name: "bounds inclusive", filter: domain.TransactionFilter{From: &d, To: &d}, want: true},
		{name: "outside range", filter: domain.TransactionFilter{From: &early, To: &from}, want: false},
		{name: "single bound ignored", filter: domain.TransactionFilter{From: &to}, want: true},
		{name: "status match", filter: domain.TransactionFilter{Status: &pending}, want: true},
		{name: "status mismatch", filter: domain.TransactionFilter{Status: &paid}, want: false},
		{name: "conjunction", filter: domain.TransactionFilter{Name: &name, Status: &paid}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(alice))
		})
	}
}

func TestNewPage(t *testing.T) {
	req := domain.PageRequest{Page: 1, Size: 10}

	p := domain.NewPage[int](nil, req, 21)
	assert.NotNil(t, p.Content)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(21), p.TotalElements)
	assert.Equal(t, 10, req.Offset())

	empty := domain.NewPage([]int{}, domain.PageRequest{Size: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)

	mapped := domain.MapPage(domain.NewPage([]int{1, 2}, req, 12), func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c"}, mapped.Content)
	assert.Equal(t, 2, mapped.TotalPages)
}

func TestPageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.PageRequest
		wantErr bool
	}{
		{name: "first page", req: domain.PageRequest{Page: 0, Size: 10}},
		{name: "largest page that fits", req: domain.PageRequest{Page: math.MaxInt / 10, Size: 10}},
		{name: "offset overflows", req: domain.PageRequest{Page: math.MaxInt, Size: 10}, wantErr: true},
		{name: "one past the limit", req: domain.PageRequest{Page: math.MaxInt/10 + 1, Size: 10}, wantErr: true},
		{name: "negative page", req: domain.PageRequest{Page: -1, Size: 10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, tt.req.Offset(), 0)
		})
	}
}
