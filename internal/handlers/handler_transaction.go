package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epicquest/travel-backend/internal/core/domain"
	portssvc "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
)

type transactionHandler struct {
	ledgerService portssvc.LedgerService
}

func newTransactionHandler(ls portssvc.LedgerService) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService, allowAdjustments bool) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		// The adjustment route only exists on back-office deployments.
		if allowAdjustments {
			transactions.POST("", h.createTransaction)
		}
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
	}
}

// createTransaction godoc
// @Summary Record a manual ledger adjustment
// @Description Applies a signed balance change to the account matching the email; available only on deployments with manual adjustments enabled
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   adjustment body dto.CreateTransactionRequest true "Signed amount in major units"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No account for email"
// @Failure 409 {object} map[string]string "Debit would overdraw the balance"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for adjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.RecordAdjustment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": txn})
}

// listTransactions godoc
// @Summary List the caller's ledger entries
// @Tags transactions
// @Produce  json
// @Param   page query int false "Page number"
// @Param   pageSize query int false "Page size"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, ok := middleware.GetOwnerFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		logger.Warn("Failed to bind paging query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paging parameters"})
		return
	}
	limit, offset := page.Normalize()

	txns, total, err := h.ledgerService.ListTransactions(c.Request.Context(), owner, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.PageResponse[domain.Transaction]{
		Items:    txns,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}})
}

// getTransaction godoc
// @Summary Get one ledger entry
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction reference"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string "Not the entry owner"
// @Failure 404 {object} map[string]string "Unknown transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	owner, ok := middleware.GetOwnerFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !txn.Owner.Equals(owner) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": txn})
}
