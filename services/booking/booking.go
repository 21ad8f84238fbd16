package booking

import (
	"fmt"
	"time"

	"rentalite/models"
	"rentalite/services/faults"
	"rentalite/utils"

	"go.uber.org/zap"
)

// CreateBooking validates a candidate booking, computes its price and
// persists it. Validation order: date sanity, weekday rule, property lookup,
// overlap against every active booking.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return nil, faults.NewValidation(fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", req.StartDate))
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		return nil, faults.NewValidation(fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", req.EndDate))
	}

	// Same-day and inverted ranges never bill a day, so they are rejected
	// outright rather than priced at zero.
	if !end.After(start) {
		return nil, faults.NewValidation("end date must be after start date")
	}

	if start.Weekday() == time.Sunday {
		return nil, faults.NewValidation("cannot book on Sunday")
	}

	property, err := s.Properties.FindByID(req.Property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up property: %w", err)
	}
	if property == nil {
		return nil, faults.NewNotFound("property", fmt.Sprintf("property with id %s not found", req.Property.ID))
	}

	occupied, err := s.datesOccupied(start, end)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, faults.NewValidation("dates already occupied")
	}

	days := numberOfDays(start, end)
	newBooking := &models.Booking{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		TotalPrice:   totalPrice(property.DailyPrice, days),
		IsCancelled:  false,
		CustomerName: req.CustomerName,
		Property:     *property,
	}

	if err := s.Bookings.Save(newBooking); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", newBooking.ID),
		zap.String("propertyID", property.ID),
		zap.Int("days", days),
		zap.Float64("totalPrice", newBooking.TotalPrice))
	return newBooking, nil
}

// datesOccupied reports whether the candidate range overlaps any active
// booking. Boundaries are inclusive: a booking ending on day X blocks
// another starting on day X.
func (s *DefaultBookingService) datesOccupied(start, end time.Time) (bool, error) {
	existing, err := s.Bookings.FindAll()
	if err != nil {
		return false, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	for _, b := range existing {
		if b.IsCancelled {
			continue
		}
		bStart, err := time.Parse(models.DateLayout, b.StartDate)
		if err != nil {
			return false, fmt.Errorf("stored booking %s has malformed start date: %w", b.ID, err)
		}
		bEnd, err := time.Parse(models.DateLayout, b.EndDate)
		if err != nil {
			return false, fmt.Errorf("stored booking %s has malformed end date: %w", b.ID, err)
		}
		if !start.After(bEnd) && !bStart.After(end) {
			return true, nil
		}
	}
	return false, nil
}

// CancelBooking marks a booking as cancelled and persists it. Cancelling an
// already-cancelled booking is a no-op that returns the booking unchanged.
func (s *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.Bookings.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if booking == nil {
		return nil, faults.NewNotFound("booking", fmt.Sprintf("booking with id %s not found", id))
	}

	if booking.IsCancelled {
		return booking, nil
	}

	booking.IsCancelled = true
	if err := s.Bookings.Save(booking); err != nil {
		return nil, fmt.Errorf("failed to save cancelled booking: %w", err)
	}

	logger.Info("booking cancelled", zap.String("bookingID", booking.ID))
	return booking, nil
}

// ListBookings returns all bookings in store order.
func (s *DefaultBookingService) ListBookings() ([]models.Booking, error) {
	return s.Bookings.FindAll()
}
