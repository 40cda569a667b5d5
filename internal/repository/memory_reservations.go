package repository

import (
	"context"
	"sync"

	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
)

// MemoryReservationRepository is the reservation ledger: an ordered
// append/remove log. Iteration order is insertion order, which keeps
// reconciliation replays deterministic.
type MemoryReservationRepository struct {
	mu           sync.RWMutex
	reservations []domain.Reservation
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{}
}

func (r *MemoryReservationRepository) Add(ctx context.Context, reservation domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations = append(r.reservations, reservation)

	return nil
}

func (r *MemoryReservationRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reservations {
		if r.reservations[i].ID == id {
			reservation := r.reservations[i]
			return &reservation, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (r *MemoryReservationRepository) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservations := make([]domain.Reservation, len(r.reservations))
	copy(reservations, r.reservations)

	return reservations, nil
}

func (r *MemoryReservationRepository) GetByShowingId(ctx context.Context, showingID uuid.UUID) ([]domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservations := make([]domain.Reservation, 0)
	for _, reservation := range r.reservations {
		if reservation.ShowingID == showingID {
			reservations = append(reservations, reservation)
		}
	}

	return reservations, nil
}

func (r *MemoryReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reservations {
		if r.reservations[i].ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return nil
		}
	}

	return domain.ErrRecordNotFound
}

func (r *MemoryReservationRepository) DeleteByShowingId(ctx context.Context, showingID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.reservations[:0]
	removed := 0
	for _, reservation := range r.reservations {
		if reservation.ShowingID == showingID {
			removed++
			continue
		}
		kept = append(kept, reservation)
	}
	r.reservations = kept

	return removed, nil
}
