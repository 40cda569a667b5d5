package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation is a confirmed booking. The ledger of reservations is the
// sole source of truth for who holds which seats; a showing's seat
// inventory is a derived cache that must stay reconstructible from the
// ledger alone. Reservations are immutable after creation except for
// cancellation.
type Reservation struct {
	ID         uuid.UUID
	ShowingID  uuid.UUID
	Customer   string
	Tier       RateTier
	Selection  SeatSelection
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

type ReservationRepository interface {
	Add(ctx context.Context, reservation Reservation) error
	GetById(ctx context.Context, id uuid.UUID) (*Reservation, error)
	// GetAll returns reservations in insertion order; the ledger is ordered.
	GetAll(ctx context.Context) ([]Reservation, error)
	GetByShowingId(ctx context.Context, showingID uuid.UUID) ([]Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByShowingId(ctx context.Context, showingID uuid.UUID) (int, error)
}
