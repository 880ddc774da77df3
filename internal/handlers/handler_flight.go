package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
)

// flightHandler handles the offer pipeline endpoints.
type flightHandler struct {
	flightService portssvc.FlightService
}

func newFlightHandler(fs portssvc.FlightService) *flightHandler {
	return &flightHandler{flightService: fs}
}

func registerFlightRoutes(public, protected *gin.RouterGroup, flightService portssvc.FlightService, searchLimiter gin.HandlerFunc) {
	h := newFlightHandler(flightService)

	flights := public.Group("/flights")
	{
		if searchLimiter != nil {
			flights.POST("/search", searchLimiter, h.searchFlights)
		} else {
			flights.POST("/search", h.searchFlights)
		}
		flights.POST("/price", h.priceFlight)
	}

	protected.POST("/flights/book", h.bookFlight)
}

// searchFlights godoc
// @Summary Search flight offers
// @Description Shops the GDS and returns normalized offers; provider outages yield an empty list
// @Tags flights
// @Accept  json
// @Produce  json
// @Param   query body dto.FlightSearchRequest true "Search parameters"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /flights/search [post]
func (h *flightHandler) searchFlights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for flight search", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	offers, err := h.flightService.Search(c.Request.Context(), req.ToQuery())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": offers})
}

// priceFlight godoc
// @Summary Confirm an offer's fare
// @Description Re-prices a previously returned offer; a provider refusal yields an empty result
// @Tags flights
// @Accept  json
// @Produce  json
// @Param   offer body dto.FlightPriceRequest true "Offer payload from search"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /flights/price [post]
func (h *flightHandler) priceFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FlightPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for flight pricing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	priced, err := h.flightService.Price(c.Request.Context(), req.AirFareData)
	if err != nil {
		// a failed confirmation reads as "offer no longer available"
		logger.Warn("Fare confirmation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, gin.H{"data": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": priced})
}

// bookFlight godoc
// @Summary Book a priced offer
// @Description Creates the order at the GDS and persists the booking under the authenticated account
// @Tags flights
// @Accept  json
// @Produce  json
// @Param   booking body dto.BookFlightRequest true "Offer and travellers"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Provider refused or insufficient balance"
// @Failure 502 {object} map[string]string "Order state unknown or unreconciled"
// @Security BearerAuth
// @Router /flights/book [post]
func (h *flightHandler) bookFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, ok := middleware.GetOwnerFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.BookFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for booking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.flightService.Book(c.Request.Context(), owner, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": record})
}
