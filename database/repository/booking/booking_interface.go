package bookingRepo

import "rentalite/models"

// BookingRepository defines persistence operations for bookings.
// FindByID returns (nil, nil) when no booking carries the given id.
// Save assigns a fresh id on first save and replaces the stored document
// on subsequent saves, so cancellation persists through the same call.
type BookingRepository interface {
	FindAll() ([]models.Booking, error)
	FindByID(id string) (*models.Booking, error)
	Save(booking *models.Booking) error
}
