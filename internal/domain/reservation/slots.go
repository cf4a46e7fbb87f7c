package reservation

import (
	"fmt"
	"time"
)

// ===============================
// Booking window / time slots
// ===============================

const (
	// BookingWindowDays is how far ahead a table can be reserved.
	BookingWindowDays = 90

	openingHour = 11
	closingHour = 22 // last slot starts before closing
	slotMinutes = 30
)

// ValidDateRange returns the inclusive [min, max] bookable dates,
// truncated to midnight in today's location.
func ValidDateRange(today time.Time) (time.Time, time.Time) {
	min := time.Date(
		today.Year(), today.Month(), today.Day(),
		0, 0, 0, 0,
		today.Location(),
	)
	max := min.AddDate(0, 0, BookingWindowDays)
	return min, max
}

// TimeOptions returns every bookable half-hour mark, ascending,
// from opening up to and excluding closing. Recomputed on each call.
func TimeOptions() []string {
	var options []string
	for hour := openingHour; hour < closingHour; hour++ {
		for _, minute := range []int{0, 30} {
			options = append(options, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return options
}

// IsBookableDate reports whether dateStr parses as "2006-01-02" and
// falls inside the booking window relative to today.
func IsBookableDate(dateStr string, today time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", dateStr, today.Location())
	if err != nil {
		return false
	}

	min, max := ValidDateRange(today)
	return !d.Before(min) && !d.After(max)
}

// IsBookableTime reports whether timeStr is one of the offered slots.
func IsBookableTime(timeStr string) bool {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return false
	}
	if t.Minute()%slotMinutes != 0 {
		return false
	}
	return t.Hour() >= openingHour && t.Hour() < closingHour
}
