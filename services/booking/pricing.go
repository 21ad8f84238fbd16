package booking

import "time"

const (
	// Stays longer than discountThresholdDays get the long-stay rate.
	discountThresholdDays = 7
	longStayRate          = 0.9
)

// numberOfDays returns the calendar-day difference between start and end,
// exclusive of the start day.
func numberOfDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// totalPrice computes dailyPrice for the given number of days, applying the
// long-stay discount when the stay exceeds the threshold.
func totalPrice(dailyPrice float64, days int) float64 {
	total := dailyPrice * float64(days)
	if days > discountThresholdDays {
		total *= longStayRate
	}
	return total
}
