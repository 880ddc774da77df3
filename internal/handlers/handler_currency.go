package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
)

type currencyHandler struct {
	currencyService portssvc.CurrencyService
}

func newCurrencyHandler(cs portssvc.CurrencyService) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

func registerCurrencyRoutes(public, protected *gin.RouterGroup, currencyService portssvc.CurrencyService) {
	h := newCurrencyHandler(currencyService)

	public.GET("/currencies", h.listCurrencies)
	public.GET("/currencies/:code", h.getCurrency)
	protected.POST("/currencies", h.upsertCurrency)
}

// upsertCurrency godoc
// @Summary Create or replace a conversion rate
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.UpsertCurrencyRequest true "Currency code and rate"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) upsertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for currency upsert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	currency, err := h.currencyService.UpsertCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": currency})
}

// listCurrencies godoc
// @Summary List conversion rates
// @Tags currencies
// @Produce  json
// @Success 200 {object} map[string]any
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": currencies})
}

// getCurrency godoc
// @Summary Get one conversion rate
// @Tags currencies
// @Produce  json
// @Param   code path string true "Three letter currency code"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "Unknown currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currency, err := h.currencyService.GetCurrency(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": currency})
}
