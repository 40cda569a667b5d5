package repository

import (
	"context"
	"sync"

	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
)

// MemoryShowingRepository owns the canonical showing instances. Lookups
// return the stored pointer, so inventory mutations always hit the single
// authoritative copy and copies cannot silently alias apart.
type MemoryShowingRepository struct {
	mu       sync.RWMutex
	showings map[uuid.UUID]*domain.Showing
	order    []uuid.UUID
}

func NewMemoryShowingRepository() *MemoryShowingRepository {
	return &MemoryShowingRepository{
		showings: make(map[uuid.UUID]*domain.Showing),
	}
}

func (r *MemoryShowingRepository) Add(ctx context.Context, showing *domain.Showing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.showings[showing.ID]; !ok {
		r.order = append(r.order, showing.ID)
	}
	r.showings[showing.ID] = showing

	return nil
}

func (r *MemoryShowingRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	showing, ok := r.showings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return showing, nil
}

func (r *MemoryShowingRepository) GetAll(ctx context.Context) ([]*domain.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	showings := make([]*domain.Showing, 0, len(r.order))
	for _, id := range r.order {
		showings = append(showings, r.showings[id])
	}

	return showings, nil
}

func (r *MemoryShowingRepository) GetByRoomId(ctx context.Context, roomID uuid.UUID) ([]*domain.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	showings := make([]*domain.Showing, 0)
	for _, id := range r.order {
		if s := r.showings[id]; s.RoomID == roomID {
			showings = append(showings, s)
		}
	}

	return showings, nil
}

func (r *MemoryShowingRepository) GetByFilmId(ctx context.Context, filmID uuid.UUID) ([]*domain.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	showings := make([]*domain.Showing, 0)
	for _, id := range r.order {
		if s := r.showings[id]; s.FilmID == filmID {
			showings = append(showings, s)
		}
	}

	return showings, nil
}

func (r *MemoryShowingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.showings[id]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.showings, id)
	r.order = removeID(r.order, id)

	return nil
}
