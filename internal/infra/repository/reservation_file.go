package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/miyabidining/table-reservation-api/internal/domain/reservation"
	"github.com/miyabidining/table-reservation-api/internal/models"
)

// ReservationFileStore persists the reservation collection as one JSON
// array on the local device. Every write rewrites the whole collection
// through a temp file plus rename, so a later read never observes a
// partial payload.
type ReservationFileStore struct {
	path string
	mu   sync.Mutex
}

func NewReservationFileStore(path string) *ReservationFileStore {
	return &ReservationFileStore{path: path}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (s *ReservationFileStore) All(ctx context.Context) ([]models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// load reads the collection without taking the lock.
func (s *ReservationFileStore) load() ([]models.Reservation, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Reservation{}, nil
		}
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Reservation{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var out []models.Reservation
	if err := dec.Decode(&out); err != nil {
		return nil, &domain.CorruptStoreError{Cause: err}
	}
	if out == nil {
		out = []models.Reservation{}
	}

	return out, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (s *ReservationFileStore) Append(ctx context.Context, r models.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		if !domain.IsCorrupt(err) {
			return err
		}
		// Unreadable payload is recovered locally: start over empty.
		all = []models.Reservation{}
	}

	return s.rewrite(append(all, r))
}

func (s *ReservationFileStore) RemoveByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		if !domain.IsCorrupt(err) {
			return err
		}
		all = []models.Reservation{}
	}

	kept := all[:0]
	for _, r := range all {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	if len(kept) == len(all) {
		// Absent id is a no-op, not an error.
		return nil
	}

	return s.rewrite(kept)
}

// rewrite replaces the collection atomically.
func (s *ReservationFileStore) rewrite(all []models.Reservation) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".reservations-*.json")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}
