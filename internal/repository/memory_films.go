package repository

import (
	"context"
	"sync"

	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
)

// MemoryFilmRepository is an in-memory film catalog. The engine is a
// single-process model with no durable storage; the mutex only keeps the
// map safe for incidental concurrent reads.
type MemoryFilmRepository struct {
	mu    sync.RWMutex
	films map[uuid.UUID]domain.Film
	order []uuid.UUID
}

func NewMemoryFilmRepository() *MemoryFilmRepository {
	return &MemoryFilmRepository{
		films: make(map[uuid.UUID]domain.Film),
	}
}

func (r *MemoryFilmRepository) Add(ctx context.Context, film domain.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.films[film.ID]; !ok {
		r.order = append(r.order, film.ID)
	}
	r.films[film.ID] = film

	return nil
}

func (r *MemoryFilmRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	film, ok := r.films[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &film, nil
}

func (r *MemoryFilmRepository) GetAll(ctx context.Context) ([]domain.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	films := make([]domain.Film, 0, len(r.order))
	for _, id := range r.order {
		films = append(films, r.films[id])
	}

	return films, nil
}

func (r *MemoryFilmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.films[id]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.films, id)
	r.order = removeID(r.order, id)

	return nil
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
