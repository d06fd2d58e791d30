package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_reconciler/internal/core/ports/services"
	"github.com/SscSPs/ledger_reconciler/internal/dto"
	"github.com/SscSPs/ledger_reconciler/internal/middleware"
	"github.com/SscSPs/ledger_reconciler/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// paymentHandler exposes the payment residuals for inspection.
type paymentHandler struct {
	paymentService portssvc.PaymentSvc
	maxPageSize    int
}

// RegisterPaymentRoutes registers routes related to payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvc, maxPageSize int) {
	h := &paymentHandler{paymentService: paymentService, maxPageSize: maxPageSize}

	payments := rg.Group("/payments")
	payments.GET("", h.listPayments)
}

// listPayments godoc
// @Summary List payments
// @Description Returns one page of payments, oldest first.
// @Tags payments
// @Produce  json
// @Param   status query string false "PENDING or COMPLETED"
// @Param   page query int false "Zero-based page number" default(0)
// @Param   size query int false "Page size" default(10)
// @Success 200 {object} dto.PaymentPageResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.PaymentStatus
	if strings.TrimSpace(params.Status) != "" {
		parsed, err := domain.ParsePaymentStatus(params.Status)
		if err != nil {
			respondError(c, logger, err, "Invalid query parameters")
			return
		}
		status = &parsed
	}

	page := pagination.NewPageRequest(params.Page, params.Size, h.maxPageSize, nil)
	result, err := h.paymentService.ListPayments(c.Request.Context(), status, page)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentPageResponse(*result))
}
