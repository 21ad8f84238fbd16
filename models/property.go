package models

// Property represents a rentable unit with a per-day rate.
type Property struct {
	ID         string  `bson:"id" json:"id"`                 // Unique property identifier (UUID), assigned by the store
	Name       string  `bson:"name" json:"name"`             // Display name
	DailyPrice float64 `bson:"dailyPrice" json:"dailyPrice"` // Non-negative per-day rental rate
}
