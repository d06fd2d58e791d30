package services

import (
	"context"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	"github.com/SscSPs/ledger_reconciler/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction by id.
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions returns one filtered, sorted page of transactions.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) (*domain.Page[domain.Transaction], error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction records an obligation and settles it against pending payments.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction overwrites a transaction that is not yet PAID.
	UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction that is not yet PAID.
	DeleteTransaction(ctx context.Context, id int64) error
}

// PaymentSvc defines operations on incoming funds
type PaymentSvc interface {
	// MakePayment applies funds to pending transactions, oldest first.
	MakePayment(ctx context.Context, value decimal.Decimal) (*domain.AllocationResult, error)

	// ListPayments returns one page of payments, optionally filtered by status.
	ListPayments(ctx context.Context, status *domain.PaymentStatus, page domain.PageRequest) (*domain.Page[domain.Payment], error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	PaymentSvc
}
