package reservation

import (
	"context"

	"github.com/miyabidining/table-reservation-api/internal/audit"
	domain "github.com/miyabidining/table-reservation-api/internal/domain/reservation"
)

type CancelReservation struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewCancelReservation(
	store domain.Store,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		store: store,
		audit: audit,
	}
}

// Execute removes the reservation permanently. Past reservations may
// still be cancelled; hiding the action for them is a UI concern.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	userID string,
	bookingID string,
) error {

	all, err := uc.store.All(ctx)
	if err != nil {
		if !domain.IsCorrupt(err) {
			return err
		}
		all = nil
	}

	found := false
	for _, r := range all {
		if r.ID == bookingID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}

	if err := uc.store.RemoveByID(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: bookingID,
	})

	return nil
}
