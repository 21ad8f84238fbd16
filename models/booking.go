package models

// DateLayout is the calendar-date format used for booking dates.
// Bookings carry dates without a time component.
const DateLayout = "2006-01-02"

// Booking represents a reservation of a property for a date range.
type Booking struct {
	ID           string   `bson:"id" json:"id"`                     // Unique booking identifier (UUID), assigned by the store
	StartDate    string   `bson:"startDate" json:"startDate"`       // First day of the stay, "YYYY-MM-DD"
	EndDate      string   `bson:"endDate" json:"endDate"`           // Last day of the stay, "YYYY-MM-DD"
	TotalPrice   float64  `bson:"totalPrice" json:"totalPrice"`     // Computed at creation, never recomputed
	IsCancelled  bool     `bson:"isCancelled" json:"isCancelled"`   // One-way flag; cancelled bookings stay in the store
	CustomerName string   `bson:"customerName" json:"customerName"` // Free-text, not validated
	Property     Property `bson:"property" json:"property"`         // Snapshot of the booked property
}
