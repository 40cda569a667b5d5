package repository

import (
	"context"
	"sync"

	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
)

type MemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]domain.Room
	order []uuid.UUID
}

func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{
		rooms: make(map[uuid.UUID]domain.Room),
	}
}

func (r *MemoryRoomRepository) Add(ctx context.Context, room domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[room.ID]; !ok {
		r.order = append(r.order, room.ID)
	}
	r.rooms[room.ID] = room

	return nil
}

func (r *MemoryRoomRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &room, nil
}

func (r *MemoryRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(r.order))
	for _, id := range r.order {
		rooms = append(rooms, r.rooms[id])
	}

	return rooms, nil
}

func (r *MemoryRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.rooms, id)
	r.order = removeID(r.order, id)

	return nil
}
