package models

// PropertyRef identifies a property by id in an inbound payload.
type PropertyRef struct {
	ID string `json:"id" binding:"required"`
}

// BookingRequest is the payload accepted by POST /booking.
type BookingRequest struct {
	StartDate    string      `json:"startDate" binding:"required"`
	EndDate      string      `json:"endDate" binding:"required"`
	CustomerName string      `json:"customerName"`
	Property     PropertyRef `json:"property" binding:"required"`
}
