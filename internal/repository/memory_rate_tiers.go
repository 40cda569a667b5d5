package repository

import (
	"context"
	"sync"

	"github.com/cinetix/booking/internal/domain"
)

type MemoryRateTierRepository struct {
	mu    sync.RWMutex
	tiers map[string]domain.RateTier
	order []string
}

func NewMemoryRateTierRepository() *MemoryRateTierRepository {
	return &MemoryRateTierRepository{
		tiers: make(map[string]domain.RateTier),
	}
}

func (r *MemoryRateTierRepository) Add(ctx context.Context, tier domain.RateTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tiers[tier.Label]; !ok {
		r.order = append(r.order, tier.Label)
	}
	r.tiers[tier.Label] = tier

	return nil
}

func (r *MemoryRateTierRepository) GetByLabel(ctx context.Context, label string) (*domain.RateTier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tier, ok := r.tiers[label]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &tier, nil
}

func (r *MemoryRateTierRepository) GetAll(ctx context.Context) ([]domain.RateTier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tiers := make([]domain.RateTier, 0, len(r.order))
	for _, label := range r.order {
		tiers = append(tiers, r.tiers[label])
	}

	return tiers, nil
}

func (r *MemoryRateTierRepository) Delete(ctx context.Context, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tiers[label]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.tiers, label)
	for i, v := range r.order {
		if v == label {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
