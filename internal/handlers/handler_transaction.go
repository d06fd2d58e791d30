package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_reconciler/internal/core/ports/services"
	"github.com/SscSPs/ledger_reconciler/internal/dto"
	"github.com/SscSPs/ledger_reconciler/internal/middleware"
	"github.com/SscSPs/ledger_reconciler/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// transactionHandler handles HTTP requests related to transactions and payments into them.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	maxPageSize   int
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade, maxPageSize int) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
		maxPageSize:   maxPageSize,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, maxPageSize int) {
	registerValidations()
	h := newTransactionHandler(ledgerService, maxPageSize)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.POST("/pay", h.pay)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a new obligation. A PENDING transaction is immediately settled against pending payments, oldest first.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.ledgerService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*created))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("transaction_id", id)), err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns one page of transactions. The date range applies only when both from and to are given.
// @Tags transactions
// @Produce  json
// @Param   name query string false "Case-insensitive substring of the name"
// @Param   from query string false "Lower date bound (YYYY-MM-DD or RFC 3339)"
// @Param   to query string false "Upper date bound, inclusive (YYYY-MM-DD or RFC 3339)"
// @Param   status query string false "PENDING, PAID or REJECTED"
// @Param   page query int false "Zero-based page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Param   sort query []string false "Sort terms such as date,desc (fields: date, name, value, status)" collectionFormat(multi)
// @Success 200 {object} dto.TransactionPageResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := toTransactionFilter(params)
	if err != nil {
		respondError(c, logger, err, "Invalid query parameters")
		return
	}
	page := pagination.NewPageRequest(params.Page, params.Size, h.maxPageSize,
		pagination.ParseSort(params.Sort, domain.SortableTransactionFields))

	result, err := h.ledgerService.ListTransactions(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionPageResponse(*result))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Overwrites name, date, value and status. PAID transactions cannot be changed; allocation is not re-run.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "New transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already paid"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("transaction_id", id))

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.ledgerService.UpdateTransaction(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*updated))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction that is not PAID.
// @Tags transactions
// @Param   id path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already paid"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, logger.With(slog.Int64("transaction_id", id)), err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// pay godoc
// @Summary Make a payment
// @Description Applies the amount to pending transactions in date order. Unspent funds are kept as a pending payment.
// @Tags transactions
// @Accept  json
// @Param   payment body dto.PayRequest true "Payment amount"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to apply payment"
// @Router /transactions/pay [post]
func (h *transactionHandler) pay(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Pay", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	value := decimal.Zero
	if req.PaymentValue != nil {
		value = *req.PaymentValue
	}
	if _, err := h.ledgerService.MakePayment(c.Request.Context(), value); err != nil {
		respondError(c, logger, err, "Failed to apply payment")
		return
	}

	c.Status(http.StatusOK)
}

func toTransactionFilter(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter
	if name := strings.TrimSpace(params.Name); name != "" {
		filter.Name = &name
	}
	if strings.TrimSpace(params.Status) != "" {
		status, err := domain.ParseTransactionStatus(params.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	from, err := pagination.ParseDateBound(params.From, false)
	if err != nil {
		return filter, apperrors.NewValidationError(err.Error())
	}
	to, err := pagination.ParseDateBound(params.To, true)
	if err != nil {
		return filter, apperrors.NewValidationError(err.Error())
	}
	filter.From, filter.To = from, to
	return filter, nil
}
