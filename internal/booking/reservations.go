package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ShowingID uuid.UUID `validate:"required"`
	Customer  string    `validate:"required,max=100"`
	TierLabel string    `validate:"required"`
	SeatCount int       `validate:"required,gt=0"`
	// SeatNumbers is optional: empty means an anonymous count-only booking.
	// When present, its length must equal SeatCount.
	SeatNumbers []int `validate:"omitempty,unique,dive,gt=0"`
}

// CreateReservation validates and commits a booking: the showing's seat
// inventory is updated first, then the reservation is appended to the
// ledger with its price captured at booking time. On any failure no state
// is left behind.
func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (domain.Reservation, error) {
	if err := s.checkRequest(req); err != nil {
		return domain.Reservation{}, err
	}

	if len(req.SeatNumbers) > 0 && len(req.SeatNumbers) != req.SeatCount {
		return domain.Reservation{}, fmt.Errorf("%w: %d seat numbers given for a count of %d",
			domain.ErrInvalidArgument, len(req.SeatNumbers), req.SeatCount)
	}

	showing, err := s.showingRepo.GetById(ctx, req.ShowingID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("showing %s: %w", req.ShowingID, err)
	}

	room, err := s.roomRepo.GetById(ctx, showing.RoomID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("room %s: %w", showing.RoomID, err)
	}

	tier, err := s.tierRepo.GetByLabel(ctx, req.TierLabel)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("rate tier %q: %w", req.TierLabel, err)
	}

	selection, err := newSelection(req)
	if err != nil {
		return domain.Reservation{}, err
	}

	if err := showing.Book(selection); err != nil {
		return domain.Reservation{}, err
	}

	surcharge := room.Category.Surcharge()
	reservation := domain.Reservation{
		ID:         uuid.New(),
		ShowingID:  showing.ID,
		Customer:   req.Customer,
		Tier:       *tier,
		Selection:  selection,
		UnitPrice:  domain.UnitPrice(s.baseFare, surcharge, tier.Coefficient),
		TotalPrice: domain.TicketPrice(s.baseFare, surcharge, tier.Coefficient, selection.Count()),
		CreatedAt:  time.Now(),
	}

	if err := s.reservationRepo.Add(ctx, reservation); err != nil {
		// Undo the inventory mutation so the failed booking leaves no trace.
		if releaseErr := showing.Release(selection); releaseErr != nil {
			return domain.Reservation{}, errors.Join(err, releaseErr)
		}
		return domain.Reservation{}, err
	}

	s.logger.Info("reservation created",
		"reservation_id", reservation.ID,
		"showing_id", showing.ID,
		"customer", reservation.Customer,
		"selection", selection.String(),
		"tier", tier.Label,
		"total", reservation.TotalPrice)

	return reservation, nil
}

func newSelection(req CreateReservationRequest) (domain.SeatSelection, error) {
	if len(req.SeatNumbers) > 0 {
		return domain.SelectSeats(req.SeatNumbers...)
	}

	return domain.SelectCount(req.SeatCount)
}

// CancelReservation releases the reservation's seats and removes it from
// the ledger. It reports whether the reservation existed.
func (s *Service) CancelReservation(ctx context.Context, id uuid.UUID) (bool, error) {
	reservation, err := s.reservationRepo.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	showing, err := s.showingRepo.GetById(ctx, reservation.ShowingID)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		// The showing was already removed; only the ledger entry is left.
	case err != nil:
		return false, err
	default:
		if err := showing.Release(reservation.Selection); err != nil {
			return false, err
		}
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return false, err
	}

	s.logger.Info("reservation cancelled",
		"reservation_id", id,
		"showing_id", reservation.ShowingID,
		"selection", reservation.Selection.String())

	return true, nil
}

func (s *Service) Reservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservationRepo.GetAll(ctx)
}

func (s *Service) ReservationsByShowing(ctx context.Context, showingID uuid.UUID) ([]domain.Reservation, error) {
	return s.reservationRepo.GetByShowingId(ctx, showingID)
}
