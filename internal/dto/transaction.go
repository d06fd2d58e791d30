package dto

import (
	"time"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// Monetary values travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateTransactionRequest defines the data needed to record a new obligation.
type CreateTransactionRequest struct {
	Name   string           `json:"name" binding:"required,max=255"`
	Date   time.Time        `json:"date" binding:"required" example:"2024-01-15T10:00:00Z"`
	Value  *decimal.Decimal `json:"value" binding:"required,decimalgte0" swaggertype:"number" example:"50.00"`
	Status string           `json:"status" example:"PENDING"` // defaults to PENDING
}

// UpdateTransactionRequest replaces the editable fields of a transaction.
type UpdateTransactionRequest struct {
	Name   string           `json:"name" binding:"required,max=255"`
	Date   time.Time        `json:"date" binding:"required" example:"2024-01-15T10:00:00Z"`
	Value  *decimal.Decimal `json:"value" binding:"required,decimalgte0" swaggertype:"number" example:"50.00"`
	Status string           `json:"status" binding:"required" example:"REJECTED"`
}

// ListTransactionsParams holds the query parameters of a transaction listing.
type ListTransactionsParams struct {
	Name   string   `form:"name"`
	From   string   `form:"from"`
	To     string   `form:"to"`
	Status string   `form:"status"`
	Page   int      `form:"page,default=0" binding:"min=0"`
	Size   int      `form:"size,default=10" binding:"min=0"`
	Sort   []string `form:"sort"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID            int64                    `json:"id"`
	Name          string                   `json:"name"`
	Date          time.Time                `json:"date"`
	Value         decimal.Decimal          `json:"value" swaggertype:"number"`
	Status        domain.TransactionStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Name:          t.Name,
		Date:          t.Date.UTC(),
		Value:         t.Value,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt.UTC(),
		LastUpdatedAt: t.LastUpdatedAt.UTC(),
	}
}
