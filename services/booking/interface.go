package booking

import (
	bookingRepo "rentalite/database/repository/booking"
	propertyRepo "rentalite/database/repository/property"
	"rentalite/models"
)

// BookingService defines the interface for the booking engine.
type BookingService interface {
	CreateBooking(req models.BookingRequest) (*models.Booking, error)
	CancelBooking(id string) (*models.Booking, error)
	ListBookings() ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings   bookingRepo.BookingRepository
	Properties propertyRepo.PropertyRepository
}
