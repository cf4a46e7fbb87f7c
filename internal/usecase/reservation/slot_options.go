package reservation

import (
	"context"

	domain "github.com/miyabidining/table-reservation-api/internal/domain/reservation"
	"github.com/miyabidining/table-reservation-api/internal/dto"
)

type GetSlotOptions struct {
	clock domain.Clock
}

func NewGetSlotOptions(clock domain.Clock) *GetSlotOptions {
	return &GetSlotOptions{clock: clock}
}

// Execute returns what the booking form may offer: the bookable date
// window and every half-hour option.
func (uc *GetSlotOptions) Execute(ctx context.Context) (dto.SlotOptionsDTO, error) {
	if err := ctx.Err(); err != nil {
		return dto.SlotOptionsDTO{}, err
	}

	min, max := domain.ValidDateRange(uc.clock.Now())

	return dto.SlotOptionsDTO{
		MinDate: min.Format("2006-01-02"),
		MaxDate: max.Format("2006-01-02"),
		Times:   domain.TimeOptions(),
	}, nil
}
