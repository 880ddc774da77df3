package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/middleware"
)

type hotelHandler struct {
	hotelService portssvc.HotelService
}

func newHotelHandler(hs portssvc.HotelService) *hotelHandler {
	return &hotelHandler{hotelService: hs}
}

func registerHotelRoutes(rg *gin.RouterGroup, hotelService portssvc.HotelService) {
	h := newHotelHandler(hotelService)

	hotels := rg.Group("/hotels")
	{
		hotels.POST("/search", h.searchHotels)
		hotels.GET("/details", h.hotelDetails)
		hotels.GET("/destinations", h.listDestinations)
	}
}

// searchHotels godoc
// @Summary Search hotel availability
// @Description Returns the best available hotels for the stay with display quotes and content details
// @Tags hotels
// @Accept  json
// @Produce  json
// @Param   query body dto.HotelSearchRequest true "Stay, occupancies and destination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /hotels/search [post]
func (h *hotelHandler) searchHotels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for hotel search", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	hotels, err := h.hotelService.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": hotels})
}

// hotelDetails godoc
// @Summary Get one hotel's content sheet
// @Tags hotels
// @Produce  json
// @Param   hotelCode query string true "Provider hotel code"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Missing hotel code"
// @Router /hotels/details [get]
func (h *hotelHandler) hotelDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HotelDetailsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind hotel details query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing hotel code"})
		return
	}

	details, err := h.hotelService.Details(c.Request.Context(), req.HotelCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": details})
}

// listDestinations godoc
// @Summary List bookable hotel destinations
// @Tags hotels
// @Produce  json
// @Success 200 {object} map[string]any
// @Router /hotels/destinations [get]
func (h *hotelHandler) listDestinations(c *gin.Context) {
	destinations, err := h.hotelService.Destinations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": destinations})
}
