package reservation

import (
	"context"

	"github.com/miyabidining/table-reservation-api/internal/models"
)

// Store owns the durable reservation collection, keyed by id.
// Records are write-once: there is no update operation.
type Store interface {
	// All returns every stored record in insertion order.
	// A payload that cannot be parsed yields *CorruptStoreError.
	All(ctx context.Context) ([]models.Reservation, error)

	// Append adds one record, rewriting the collection atomically.
	Append(ctx context.Context, r models.Reservation) error

	// RemoveByID removes at most one record. Absent ids are a no-op.
	RemoveByID(ctx context.Context, id string) error
}
