package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	CreateBooking gin.HandlerFunc
	ListBookings  gin.HandlerFunc
	CancelBooking gin.HandlerFunc

	// Property endpoints
	ListProperties  gin.HandlerFunc
	GetPropertyByID gin.HandlerFunc
}
