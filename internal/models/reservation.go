package models

import "time"

// Reservation is the single persisted entity. Records are write-once:
// after creation the only allowed operation is removal.
type Reservation struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Date   string `json:"date"` // "2006-01-02"
	Time   string `json:"time"` // "15:04", 30-minute marks
	Guests int    `json:"guests"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// StartsAt combines Date and Time into one instant in loc.
func (r Reservation) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, loc)
}
