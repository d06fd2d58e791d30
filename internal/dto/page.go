package dto

import "github.com/SscSPs/ledger_reconciler/internal/core/domain"

// TransactionPageResponse is a page of transactions.
type TransactionPageResponse = domain.Page[TransactionResponse]

// PaymentPageResponse is a page of payments.
type PaymentPageResponse = domain.Page[PaymentResponse]

// ToTransactionPageResponse converts a page of domain transactions.
func ToTransactionPageResponse(p domain.Page[domain.Transaction]) TransactionPageResponse {
	return domain.MapPage(p, ToTransactionResponse)
}

// ToPaymentPageResponse converts a page of domain payments.
func ToPaymentPageResponse(p domain.Page[domain.Payment]) PaymentPageResponse {
	return domain.MapPage(p, ToPaymentResponse)
}
