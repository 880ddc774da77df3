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

type bookingHandler struct {
	bookingService portssvc.BookingService
	flightService  portssvc.FlightService
}

func newBookingHandler(bs portssvc.BookingService, fs portssvc.FlightService) *bookingHandler {
	return &bookingHandler{bookingService: bs, flightService: fs}
}

func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingService, flightService portssvc.FlightService) {
	h := newBookingHandler(bookingService, flightService)

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.listBookings)
		bookings.GET("/:bookingID", h.getBooking)
		bookings.POST("/:bookingID/cancel", h.cancelBooking)
	}
}

// listBookings godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce  json
// @Param   page query int false "Page number"
// @Param   pageSize query int false "Page size"
// @Param   status query string false "Filter to one lifecycle status" Enums(Booked, Cancelled)
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, ok := middleware.GetOwnerFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind listing query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing parameters"})
		return
	}
	limit, offset := query.Normalize()

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), owner, query.Status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.PageResponse[domain.BookingRecord]{
		Items:    bookings,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}})
}

// getBooking godoc
// @Summary Get one booking
// @Tags bookings
// @Produce  json
// @Param   bookingID path string true "Booking reference"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string "Not the booking owner"
// @Failure 404 {object} map[string]string "Unknown booking"
// @Security BearerAuth
// @Router /bookings/{bookingID} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	owner, ok := middleware.GetOwnerFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !booking.Owner.Equals(owner) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// cancelBooking godoc
// @Summary Cancel a booking
// @Description Voids the order at the GDS, then flips the record; only one of two concurrent cancels wins
// @Tags bookings
// @Produce  json
// @Param   bookingID path string true "Booking reference"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "Unknown booking or missing provider mapping"
// @Failure 409 {object} map[string]string "Not in cancellable state"
// @Failure 502 {object} map[string]string "Cancellation outcome unknown"
// @Security BearerAuth
// @Router /bookings/{bookingID}/cancel [post]
func (h *bookingHandler) cancelBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, ok := middleware.GetOwnerFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookingID := c.Param("bookingID")
	booking, err := h.bookingService.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !booking.Owner.Equals(owner) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}

	cancelled, err := h.flightService.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Booking cancelled via API", slog.String("bookingID", bookingID))
	c.JSON(http.StatusOK, gin.H{"data": cancelled})
}
