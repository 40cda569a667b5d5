package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Showing is a film projected in a room at a given time. It references film
// and room by identifier rather than by pointer: every lookup goes through
// a repository, so two copies of a showing can never silently diverge from
// the canonical instance.
//
// End and Capacity are snapshots taken at creation time. Both film runtime
// and room capacity are immutable once a showing references them, which
// keeps the showing's interval and inventory self-contained.
type Showing struct {
	ID        uuid.UUID
	FilmID    uuid.UUID
	RoomID    uuid.UUID
	Start     time.Time
	End       time.Time
	Inventory SeatInventory
}

func NewShowing(film Film, room Room, start time.Time) Showing {
	return Showing{
		ID:        uuid.New(),
		FilmID:    film.ID,
		RoomID:    room.ID,
		Start:     start,
		End:       start.Add(film.Duration()),
		Inventory: NewSeatInventory(room.Capacity),
	}
}

func (s *Showing) AvailableSeats() int {
	return s.Inventory.Available()
}

func (s *Showing) IsFull() bool {
	return s.Inventory.IsFull()
}

// Book commits a seat selection against the showing's inventory.
func (s *Showing) Book(sel SeatSelection) error {
	return s.Inventory.Book(sel)
}

// Release reverses a previously committed selection.
func (s *Showing) Release(sel SeatSelection) error {
	return s.Inventory.Release(sel)
}

// Overlaps reports whether two showings occupy the same room at
// intersecting times. Intervals are half-open, so a showing ending exactly
// when another starts is not an overlap.
func (s *Showing) Overlaps(other *Showing) bool {
	if s.RoomID != other.RoomID {
		return false
	}

	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// FindConflict returns the first of the existing showings that overlaps the
// candidate in the same room, or nil if the candidate's slot is free. The
// check is advisory at creation time only; it is not re-run when showings
// are edited afterwards.
func FindConflict(candidate *Showing, existing []*Showing) *Showing {
	for _, s := range existing {
		if s.ID == candidate.ID {
			continue
		}
		if candidate.Overlaps(s) {
			return s
		}
	}

	return nil
}

type ShowingRepository interface {
	Add(ctx context.Context, showing *Showing) error
	GetById(ctx context.Context, id uuid.UUID) (*Showing, error)
	GetAll(ctx context.Context) ([]*Showing, error)
	GetByRoomId(ctx context.Context, roomID uuid.UUID) ([]*Showing, error)
	GetByFilmId(ctx context.Context, filmID uuid.UUID) ([]*Showing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
