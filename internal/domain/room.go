package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomCategory string

const (
	RoomStandard RoomCategory = "Standard"
	RoomIMAX     RoomCategory = "IMAX"
	RoomDolby    RoomCategory = "Dolby Cinema"
	Room3D       RoomCategory = "3D"
)

var premiumSurcharge = decimal.NewFromFloat(2.50)

// Surcharge returns the fixed per-seat fare supplement for the category.
// Premium projection rooms carry a flat supplement over the base fare.
func (c RoomCategory) Surcharge() decimal.Decimal {
	switch c {
	case RoomIMAX, RoomDolby, Room3D:
		return premiumSurcharge
	default:
		return decimal.Zero
	}
}

// Room is treated as immutable once a showing references it: the conflict
// checker and every seat inventory rely on its capacity staying fixed.
type Room struct {
	ID       uuid.UUID
	Number   int
	Name     string
	Capacity int
	Category RoomCategory
}

func NewRoom(number int, name string, capacity int, category RoomCategory) (Room, error) {
	if strings.TrimSpace(name) == "" {
		return Room{}, fmt.Errorf("%w: room name must not be empty", ErrInvalidArgument)
	}
	if capacity <= 0 {
		return Room{}, fmt.Errorf("%w: room capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}

	return Room{
		ID:       uuid.New(),
		Number:   number,
		Name:     name,
		Capacity: capacity,
		Category: category,
	}, nil
}

type RoomRepository interface {
	Add(ctx context.Context, room Room) error
	GetById(ctx context.Context, id uuid.UUID) (*Room, error)
	GetAll(ctx context.Context) ([]Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
