package handlers

import (
	"net/http"

	"rentalite/models"
	"rentalite/services/booking"
	"rentalite/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// CreateBooking handles POST /booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	created, err := h.BookingSvc.CreateBooking(req)
	if err != nil {
		h.Logger.Warn("CreateBooking: request rejected", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListBookings handles GET /booking.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.ListBookings()
	if err != nil {
		h.Logger.Error("ListBookings: failed to fetch bookings", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking handles PUT /booking/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	cancelled, err := h.BookingSvc.CancelBooking(id)
	if err != nil {
		h.Logger.Warn("CancelBooking: request rejected", zap.String("bookingID", id), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancelled)
}
