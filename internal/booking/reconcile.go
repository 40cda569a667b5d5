package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinetix/booking/internal/domain"
)

// Reconcile rebuilds every showing's seat inventory from the reservation
// ledger. Each inventory is cleared, then every reservation carrying
// explicit seat numbers is replayed against its showing. Count-only
// reservations leave no addressable seat record and are not replayed; the
// occupied set afterwards reflects exactly the explicit bookings on the
// ledger. Running it twice in a row yields the same state.
//
// This is the recovery path for a showing whose cached inventory is
// suspected stale, e.g. after bulk edits of the showing catalog.
func (s *Service) Reconcile(ctx context.Context) error {
	showings, err := s.showingRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, showing := range showings {
		showing.Inventory.Reset()
	}

	ledger, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	replayed := 0
	for _, reservation := range ledger {
		if !reservation.Selection.Explicit() {
			continue
		}

		showing, err := s.showingRepo.GetById(ctx, reservation.ShowingID)
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Warn("reservation references a missing showing",
				"reservation_id", reservation.ID,
				"showing_id", reservation.ShowingID)
			continue
		}
		if err != nil {
			return err
		}

		if err := showing.Inventory.BookSeats(reservation.Selection.Seats()); err != nil {
			return fmt.Errorf("replaying reservation %s: %w", reservation.ID, err)
		}
		replayed++
	}

	s.logger.Info("inventories reconciled", "showings", len(showings), "reservations_replayed", replayed)

	return nil
}
