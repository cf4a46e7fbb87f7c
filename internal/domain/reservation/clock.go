package reservation

import (
	"time"

	"github.com/miyabidining/table-reservation-api/internal/timezone"
)

// Clock supplies the current instant. Past/upcoming classification and
// the booking window are both functions of it.
type Clock interface {
	Now() time.Time
}

type tzClock struct {
	tz string
}

func (c tzClock) Now() time.Time {
	return timezone.NowIn(c.tz)
}

// NewClock returns a wall clock fixed to the restaurant timezone.
func NewClock(tz string) Clock {
	return tzClock{tz: tz}
}
