package reservation

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a reservation id does not exist.
var ErrNotFound = errors.New("reservation not found")

// CorruptStoreError marks a persisted payload that cannot be parsed as
// the expected shape. Callers recover by treating the store as empty.
type CorruptStoreError struct {
	Cause error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("reservation store corrupt: %v", e.Cause)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Cause
}

func IsCorrupt(err error) bool {
	var ce *CorruptStoreError
	return errors.As(err, &ce)
}
