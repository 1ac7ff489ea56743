package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/internal/dto"
	"github.com/stitchworks/trim_inventory_app/internal/middleware"
)

// transactionHandler handles HTTP requests against the transaction log.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ls)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
	}
}

// listTransactions godoc
// @Summary List recent transactions
// @Description Returns the most recent ledger rows, newest first, capped at 50.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	txns, err := h.ledgerService.ListTransactions(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Material not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txns))
}

// createTransaction godoc
// @Summary Record a stock transaction (issue or entry)
// @Description ISSUE deducts stock from an existing material; ENTRY adds stock like POST /materials. The balance change and the ledger row commit atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Material missing for ISSUE"
// @Failure 409 {object} dto.ErrorResponse "Insufficient quantity"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Material not found")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
