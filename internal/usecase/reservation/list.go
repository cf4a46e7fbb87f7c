package reservation

import (
	"context"
	"sort"

	domain "github.com/miyabidining/table-reservation-api/internal/domain/reservation"
	"github.com/miyabidining/table-reservation-api/internal/dto"
)

type ListReservations struct {
	store domain.Store
	clock domain.Clock
}

func NewListReservations(
	store domain.Store,
	clock domain.Clock,
) *ListReservations {
	return &ListReservations{
		store: store,
		clock: clock,
	}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	userID string,
) ([]dto.ReservationListDTO, error) {

	if userID == "" {
		return nil, validationError("user id is required")
	}

	all, err := uc.store.All(ctx)
	if err != nil {
		if !domain.IsCorrupt(err) {
			return nil, err
		}
		// Unreadable store reads as empty, never as a crash.
		all = nil
	}

	now := uc.clock.Now()
	loc := now.Location()

	out := make([]dto.ReservationListDTO, 0)
	for _, r := range all {
		if r.UserID != userID {
			continue
		}

		isPast := false
		if at, err := r.StartsAt(loc); err == nil {
			isPast = at.Before(now)
		}

		out = append(out, dto.ReservationListDTO{
			ID:        r.ID,
			Date:      r.Date,
			Time:      r.Time,
			Guests:    r.Guests,
			Name:      r.Name,
			Phone:     r.Phone,
			Notes:     r.Notes,
			CreatedAt: r.CreatedAt,
			IsPast:    isPast,
		})
	}

	// Most recent or future-most first. Stable so same-slot records
	// keep their store order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})

	return out, nil
}
