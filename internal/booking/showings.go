package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
)

type CreateShowingRequest struct {
	FilmID uuid.UUID `validate:"required"`
	RoomID uuid.UUID `validate:"required"`
	Start  time.Time `validate:"required,future"`
}

// CreateShowing schedules a film in a room. The slot is checked against
// every existing showing in the same room; overlapping intervals are
// rejected with ErrScheduleConflict.
func (s *Service) CreateShowing(ctx context.Context, req CreateShowingRequest) (*domain.Showing, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	film, err := s.filmRepo.GetById(ctx, req.FilmID)
	if err != nil {
		return nil, fmt.Errorf("film %s: %w", req.FilmID, err)
	}

	room, err := s.roomRepo.GetById(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", req.RoomID, err)
	}

	candidate := domain.NewShowing(*film, *room, req.Start)

	sameRoom, err := s.showingRepo.GetByRoomId(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	if conflict := domain.FindConflict(&candidate, sameRoom); conflict != nil {
		return nil, fmt.Errorf("%w: room %q is occupied from %s to %s",
			domain.ErrScheduleConflict, room.Name,
			conflict.Start.Format("15:04"), conflict.End.Format("15:04"))
	}

	if err := s.showingRepo.Add(ctx, &candidate); err != nil {
		return nil, err
	}

	s.logger.Info("showing created",
		"showing_id", candidate.ID,
		"film", film.Title,
		"room", room.Name,
		"start", candidate.Start,
		"end", candidate.End)

	return &candidate, nil
}

func (s *Service) Showings(ctx context.Context) ([]*domain.Showing, error) {
	return s.showingRepo.GetAll(ctx)
}

func (s *Service) ShowingsByFilm(ctx context.Context, filmID uuid.UUID) ([]*domain.Showing, error) {
	return s.showingRepo.GetByFilmId(ctx, filmID)
}

// ShowingsByDate returns the showings starting on the same calendar day as
// the given time.
func (s *Service) ShowingsByDate(ctx context.Context, day time.Time) ([]*domain.Showing, error) {
	all, err := s.showingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	y, m, d := day.Date()
	matches := make([]*domain.Showing, 0)
	for _, showing := range all {
		sy, sm, sd := showing.Start.Date()
		if sy == y && sm == m && sd == d {
			matches = append(matches, showing)
		}
	}

	return matches, nil
}

// AvailableShowings returns the showings that still have seats left.
func (s *Service) AvailableShowings(ctx context.Context) ([]*domain.Showing, error) {
	all, err := s.showingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*domain.Showing, 0)
	for _, showing := range all {
		if !showing.IsFull() {
			available = append(available, showing)
		}
	}

	return available, nil
}

// DeleteShowing removes a showing and drops its reservations from the
// ledger.
func (s *Service) DeleteShowing(ctx context.Context, id uuid.UUID) error {
	if _, err := s.showingRepo.GetById(ctx, id); err != nil {
		return fmt.Errorf("showing %s: %w", id, err)
	}

	return s.dropShowing(ctx, id)
}

func (s *Service) dropShowing(ctx context.Context, id uuid.UUID) error {
	removed, err := s.reservationRepo.DeleteByShowingId(ctx, id)
	if err != nil {
		return err
	}

	if err := s.showingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("showing deleted", "showing_id", id, "reservations_removed", removed)

	return nil
}
