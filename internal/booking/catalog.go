package booking

import (
	"context"
	"fmt"

	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddFilmRequest struct {
	Title    string `validate:"required,max=200"`
	Runtime  int    `validate:"required,gt=0"`
	Genre    domain.Genre
	Rating   float64 `validate:"gte=0,lte=10"`
	Synopsis string  `validate:"max=2000"`
}

func (s *Service) AddFilm(ctx context.Context, req AddFilmRequest) (domain.Film, error) {
	if err := s.checkRequest(req); err != nil {
		return domain.Film{}, err
	}

	film, err := domain.NewFilm(req.Title, req.Runtime, req.Genre)
	if err != nil {
		return domain.Film{}, err
	}
	film.Rating = req.Rating
	film.Synopsis = req.Synopsis

	if err := s.filmRepo.Add(ctx, film); err != nil {
		return domain.Film{}, err
	}

	s.logger.Info("film added", "film_id", film.ID, "title", film.Title, "runtime_min", film.Runtime)

	return film, nil
}

func (s *Service) Films(ctx context.Context) ([]domain.Film, error) {
	return s.filmRepo.GetAll(ctx)
}

// SearchFilms returns the films whose title contains the term,
// case-insensitively.
func (s *Service) SearchFilms(ctx context.Context, term string) ([]domain.Film, error) {
	films, err := s.filmRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Film, 0)
	for _, film := range films {
		if film.MatchesTitle(term) {
			matches = append(matches, film)
		}
	}

	return matches, nil
}

// RemoveFilm deletes a film together with its showings and their
// reservations.
func (s *Service) RemoveFilm(ctx context.Context, id uuid.UUID) error {
	if _, err := s.filmRepo.GetById(ctx, id); err != nil {
		return fmt.Errorf("film %s: %w", id, err)
	}

	showings, err := s.showingRepo.GetByFilmId(ctx, id)
	if err != nil {
		return err
	}

	for _, showing := range showings {
		if err := s.dropShowing(ctx, showing.ID); err != nil {
			return err
		}
	}

	if err := s.filmRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("film removed", "film_id", id, "showings_removed", len(showings))

	return nil
}

type AddRoomRequest struct {
	Number   int                 `validate:"required,gt=0"`
	Name     string              `validate:"required,max=100"`
	Capacity int                 `validate:"required,gt=0"`
	Category domain.RoomCategory `validate:"required,oneof='Standard' 'IMAX' 'Dolby Cinema' '3D'"`
}

func (s *Service) AddRoom(ctx context.Context, req AddRoomRequest) (domain.Room, error) {
	if err := s.checkRequest(req); err != nil {
		return domain.Room{}, err
	}

	room, err := domain.NewRoom(req.Number, req.Name, req.Capacity, req.Category)
	if err != nil {
		return domain.Room{}, err
	}

	if err := s.roomRepo.Add(ctx, room); err != nil {
		return domain.Room{}, err
	}

	s.logger.Info("room added", "room_id", room.ID, "name", room.Name, "capacity", room.Capacity, "category", room.Category)

	return room, nil
}

func (s *Service) Rooms(ctx context.Context) ([]domain.Room, error) {
	return s.roomRepo.GetAll(ctx)
}

// RemoveRoom deletes a room together with its showings and their
// reservations.
func (s *Service) RemoveRoom(ctx context.Context, id uuid.UUID) error {
	if _, err := s.roomRepo.GetById(ctx, id); err != nil {
		return fmt.Errorf("room %s: %w", id, err)
	}

	showings, err := s.showingRepo.GetByRoomId(ctx, id)
	if err != nil {
		return err
	}

	for _, showing := range showings {
		if err := s.dropShowing(ctx, showing.ID); err != nil {
			return err
		}
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("room removed", "room_id", id, "showings_removed", len(showings))

	return nil
}

type AddRateTierRequest struct {
	Label       string          `validate:"required,max=50"`
	Coefficient decimal.Decimal `validate:"rate_coeff"`
}

func (s *Service) AddRateTier(ctx context.Context, req AddRateTierRequest) (domain.RateTier, error) {
	if err := s.checkRequest(req); err != nil {
		return domain.RateTier{}, err
	}

	tier, err := domain.NewRateTier(req.Label, req.Coefficient)
	if err != nil {
		return domain.RateTier{}, err
	}

	if err := s.tierRepo.Add(ctx, tier); err != nil {
		return domain.RateTier{}, err
	}

	s.logger.Info("rate tier added", "label", tier.Label, "coefficient", tier.Coefficient)

	return tier, nil
}

func (s *Service) RateTiers(ctx context.Context) ([]domain.RateTier, error) {
	return s.tierRepo.GetAll(ctx)
}

func (s *Service) RemoveRateTier(ctx context.Context, label string) error {
	if err := s.tierRepo.Delete(ctx, label); err != nil {
		return fmt.Errorf("rate tier %q: %w", label, err)
	}

	s.logger.Info("rate tier removed", "label", label)

	return nil
}
