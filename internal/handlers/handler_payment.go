package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
)

type paymentHandler struct {
	ledgerService portssvc.LedgerService
}

func newPaymentHandler(ls portssvc.LedgerService) *paymentHandler {
	return &paymentHandler{ledgerService: ls}
}

func registerPaymentRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := newPaymentHandler(ledgerService)
	rg.POST("/payments/webhook", h.settleWebhook)
}

// settleWebhook godoc
// @Summary Payment gateway settlement callback
// @Description Credits the matching account on a successful authorization; other event classes are acknowledged and ignored
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   settlement body dto.PaymentWebhookRequest true "Gateway settlement"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /payments/webhook [post]
func (h *paymentHandler) settleWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for settlement webhook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.SettleWebhook(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if txn == nil {
		c.JSON(http.StatusOK, gin.H{"data": "accepted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": txn})
}
