package dto

import (
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayRequest carries incoming funds to allocate.
type PayRequest struct {
	PaymentValue *decimal.Decimal `json:"paymentValue" binding:"required,decimalgte0" swaggertype:"number" example:"130.00"`
}

// ListPaymentsParams holds the query parameters of a payment listing.
type ListPaymentsParams struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=0" binding:"min=0"`
	Size   int    `form:"size,default=10" binding:"min=0"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID            int64                `json:"id"`
	Value         decimal.Decimal      `json:"value" swaggertype:"number"`
	Status        domain.PaymentStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Value:         p.Value,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt.UTC(),
		LastUpdatedAt: p.LastUpdatedAt.UTC(),
	}
}
