package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pendingPayment(id int64, value string) domain.Payment {
	return domain.Payment{ID: id, Value: dec(value), Status: domain.PaymentPending}
}

func pendingTxn(id int64, date time.Time, value string) domain.Transaction {
	return domain.Transaction{ID: id, Name: "t", Date: date, Value: dec(value), Status: domain.TransactionPending}
}

func TestSettleTransaction(t *testing.T) {
	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		value        string
		pending      []domain.Payment
		wantValue    string
		wantStatus   domain.TransactionStatus
		wantPayments []domain.Payment
	}{
		{
			name:       "zero value is paid immediately",
			value:      "0",
			pending:    []domain.Payment{pendingPayment(1, "10")},
			wantValue:  "0",
			wantStatus: domain.TransactionPaid,
		},
		{
			name:       "no pending payments leaves transaction pending",
			value:      "40",
			wantValue:  "40",
			wantStatus: domain.TransactionPending,
		},
		{
			name:       "single payment covers transaction with surplus",
			value:      "40",
			pending:    []domain.Payment{pendingPayment(1, "100")},
			wantValue:  "0",
			wantStatus: domain.TransactionPaid,
			wantPayments: []domain.Payment{
				{ID: 1, Value: dec("60"), Status: domain.PaymentPending},
			},
		},
		{
			name:       "smaller transaction leaves payment remainder pending",
			value:      "20",
			pending:    []domain.Payment{pendingPayment(1, "30")},
			wantValue:  "0",
			wantStatus: domain.TransactionPaid,
			wantPayments: []domain.Payment{
				{ID: 1, Value: dec("10"), Status: domain.PaymentPending},
			},
		},
		{
			name:       "exact match completes the payment",
			value:      "40",
			pending:    []domain.Payment{pendingPayment(1, "40")},
			wantValue:  "0",
			wantStatus: domain.TransactionPaid,
			wantPayments: []domain.Payment{
				{ID: 1, Value: decimal.Zero, Status: domain.PaymentCompleted},
			},
		},
		{
			name:       "payments consumed oldest first until exhausted",
			value:      "100",
			pending:    []domain.Payment{pendingPayment(3, "50"), pendingPayment(1, "30"), pendingPayment(2, "10")},
			wantValue:  "10",
			wantStatus: domain.TransactionPending,
			wantPayments: []domain.Payment{
				{ID: 1, Value: decimal.Zero, Status: domain.PaymentCompleted},
				{ID: 2, Value: decimal.Zero, Status: domain.PaymentCompleted},
				{ID: 3, Value: decimal.Zero, Status: domain.PaymentCompleted},
			},
		},
		{
			name:       "later payments untouched once paid",
			value:      "35",
			pending:    []domain.Payment{pendingPayment(1, "30"), pendingPayment(2, "10"), pendingPayment(3, "50")},
			wantValue:  "0",
			wantStatus: domain.TransactionPaid,
			wantPayments: []domain.Payment{
				{ID: 1, Value: decimal.Zero, Status: domain.PaymentCompleted},
				{ID: 2, Value: dec("5"), Status: domain.PaymentPending},
			},
		},
		{
			name:       "fractional amounts stay exact",
			value:      "0.3",
			pending:    []domain.Payment{pendingPayment(1, "0.1"), pendingPayment(2, "0.2")},
			wantValue:  "0",
			wantStatus: domain.TransactionPaid,
			wantPayments: []domain.Payment{
				{ID: 1, Value: decimal.Zero, Status: domain.PaymentCompleted},
				{ID: 2, Value: decimal.Zero, Status: domain.PaymentCompleted},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{Name: "rent", Date: day, Value: dec(tt.value), Status: domain.TransactionPending}

			got := domain.SettleTransaction(txn, tt.pending)

			assert.True(t, dec(tt.wantValue).Equal(got.Transaction.Value), "value %s", got.Transaction.Value)
			assert.Equal(t, tt.wantStatus, got.Transaction.Status)
			require.Len(t, got.Payments, len(tt.wantPayments))
			for i, want := range tt.wantPayments {
				assert.Equal(t, want.ID, got.Payments[i].ID)
				assert.Equal(t, want.Status, got.Payments[i].Status)
				assert.True(t, want.Value.Equal(got.Payments[i].Value), "payment %d value %s", want.ID, got.Payments[i].Value)
				assert.NoError(t, got.Payments[i].Validate())
			}
			assert.NoError(t, got.Transaction.Validate())
		})
	}
}

func TestSettleTransaction_ConservesMoney(t *testing.T) {
	pending := []domain.Payment{pendingPayment(1, "12.5"), pendingPayment(2, "7.25"), pendingPayment(3, "100")}
	txn := domain.Transaction{Value: dec("30"), Status: domain.TransactionPending, Date: time.Now()}

	before := txn.Value
	for _, p := range pending {
		before = before.Sub(p.Value)
	}

	got := domain.SettleTransaction(txn, pending)

	byID := map[int64]domain.Payment{}
	for _, p := range pending {
		byID[p.ID] = p
	}
	for _, p := range got.Payments {
		byID[p.ID] = p
	}
	after := got.Transaction.Value
	for _, p := range byID {
		after = after.Sub(p.Value)
	}
	assert.True(t, before.Equal(after), "before %s after %s", before, after)
}

func TestSettleTransaction_DoesNotMutateInput(t *testing.T) {
	pending := []domain.Payment{pendingPayment(2, "5"), pendingPayment(1, "5")}

	domain.SettleTransaction(domain.Transaction{Value: dec("7"), Date: time.Now()}, pending)

	assert.Equal(t, int64(2), pending[0].ID)
	assert.True(t, dec("5").Equal(pending[0].Value))
	assert.Equal(t, domain.PaymentPending, pending[1].Status)
}

func TestSettleTransaction_NormalizesDateToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2024, 1, 15, 2, 0, 0, 0, loc)

	got := domain.SettleTransaction(domain.Transaction{Value: dec("1"), Date: local}, nil)

	assert.Equal(t, time.UTC, got.Transaction.Date.Location())
	assert.True(t, local.Equal(got.Transaction.Date))
	assert.Equal(t, 14, got.Transaction.Date.Day())
}

func TestAllocatePayment(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	d3 := d1.AddDate(0, 0, 2)

	tests := []struct {
		name          string
		value         string
		pending       []domain.Transaction
		wantSettled   []int64
		wantResidual  string
		wantResStatus domain.PaymentStatus
		noResidual    bool
	}{
		{
			name:          "no pending transactions stores full value",
			value:         "100",
			wantResidual:  "100",
			wantResStatus: domain.PaymentPending,
		},
		{
			name:          "zero payment without debt is completed",
			value:         "0",
			wantResidual:  "0",
			wantResStatus: domain.PaymentCompleted,
		},
		{
			name:        "exact cover leaves nothing",
			value:       "125",
			pending:     []domain.Transaction{pendingTxn(1, d1, "50"), pendingTxn(2, d2, "75")},
			wantSettled: []int64{1, 2},
			noResidual:  true,
		},
		{
			name:          "stops at first transaction it cannot cover",
			value:         "130",
			pending:       []domain.Transaction{pendingTxn(3, d3, "100"), pendingTxn(1, d1, "50"), pendingTxn(2, d2, "75")},
			wantSettled:   []int64{1, 2},
			wantResidual:  "5",
			wantResStatus: domain.PaymentPending,
		},
		{
			name:          "smaller later transaction is not skipped to",
			value:         "20",
			pending:       []domain.Transaction{pendingTxn(1, d1, "50"), pendingTxn(2, d2, "10")},
			wantResidual:  "20",
			wantResStatus: domain.PaymentPending,
		},
		{
			name:          "leftover after every transaction paid is kept",
			value:         "200",
			pending:       []domain.Transaction{pendingTxn(1, d1, "50"), pendingTxn(2, d2, "75")},
			wantSettled:   []int64{1, 2},
			wantResidual:  "75",
			wantResStatus: domain.PaymentPending,
		},
		{
			name:        "same date ordered by id",
			value:       "10",
			pending:     []domain.Transaction{pendingTxn(9, d1, "10"), pendingTxn(4, d1, "10")},
			wantSettled: []int64{4},
			noResidual:  true,
		},
		{
			name:        "zero value pending transaction is settled",
			value:       "5",
			pending:     []domain.Transaction{pendingTxn(1, d1, "0"), pendingTxn(2, d2, "5")},
			wantSettled: []int64{1, 2},
			noResidual:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.AllocatePayment(dec(tt.value), tt.pending)

			settledIDs := make([]int64, 0, len(got.Settled))
			for _, s := range got.Settled {
				settledIDs = append(settledIDs, s.ID)
				assert.Equal(t, domain.TransactionPaid, s.Status)
				assert.True(t, s.Value.IsZero())
			}
			if tt.wantSettled == nil {
				assert.Empty(t, settledIDs)
			} else {
				assert.Equal(t, tt.wantSettled, settledIDs)
			}

			if tt.noResidual {
				assert.Nil(t, got.Residual)
				return
			}
			require.NotNil(t, got.Residual)
			assert.True(t, dec(tt.wantResidual).Equal(got.Residual.Value), "residual %s", got.Residual.Value)
			assert.Equal(t, tt.wantResStatus, got.Residual.Status)
			assert.NoError(t, got.Residual.Validate())
		})
	}
}

func TestAllocatePayment_ConservesMoney(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pending := []domain.Transaction{pendingTxn(1, d, "19.99"), pendingTxn(2, d.Add(time.Hour), "0.01"), pendingTxn(3, d.Add(2*time.Hour), "80")}
	value := dec("21")

	got := domain.AllocatePayment(value, pending)

	spent := decimal.Zero
	for _, s := range got.Settled {
		for _, p := range pending {
			if p.ID == s.ID {
				spent = spent.Add(p.Value)
			}
		}
	}
	residual := decimal.Zero
	if got.Residual != nil {
		residual = got.Residual.Value
	}
	assert.True(t, value.Equal(spent.Add(residual)), "spent %s residual %s", spent, residual)
}
