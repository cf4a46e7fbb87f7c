package reservation

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/miyabidining/table-reservation-api/internal/audit"
	domain "github.com/miyabidining/table-reservation-api/internal/domain/reservation"
	"github.com/miyabidining/table-reservation-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Date   string
	Time   string
	Guests int

	Name  string
	Phone string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	store domain.Store
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewCreateReservation(
	store domain.Store,
	audit *audit.Dispatcher,
	clock domain.Clock,
) *CreateReservation {
	return &CreateReservation{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	userID string,
	in CreateInput,
) (*models.Reservation, error) {

	if userID == "" {
		return nil, validationError("user id is required")
	}

	now := uc.clock.Now()

	// The date picker already constrains the form, but a stale or
	// manipulated submit must not reach the store.
	if !domain.IsBookableDate(in.Date, now) {
		return nil, validationError("date outside booking window")
	}
	if !domain.IsBookableTime(in.Time) {
		return nil, validationError("time is not a bookable slot")
	}
	if in.Guests < 1 {
		return nil, validationError("guests must be at least 1")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationError("name is required")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, validationError("phone is required")
	}

	r := models.Reservation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      in.Date,
		Time:      in.Time,
		Guests:    in.Guests,
		Name:      name,
		Phone:     phone,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
	}

	if err := uc.store.Append(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: r.ID,
	})

	return &r, nil
}
