package booking

import (
	"context"

	"github.com/shopspring/decimal"
)

// RoomOccupancy aggregates reserved seats across all showings of one room.
type RoomOccupancy struct {
	Capacity int
	Reserved int
}

// Stats are simple folds over the reservation ledger and the showing list.
// Their correctness rests on the ledger being the source of truth.
type Stats struct {
	Showings      int
	Reservations  int
	SeatsSold     int
	TotalRevenue  decimal.Decimal
	SeatsByFilm   map[string]int
	RevenueByFilm map[string]decimal.Decimal
	RoomOccupancy map[string]RoomOccupancy
	SeatsByTier   map[string]int
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{
		TotalRevenue:  decimal.Zero,
		SeatsByFilm:   make(map[string]int),
		RevenueByFilm: make(map[string]decimal.Decimal),
		RoomOccupancy: make(map[string]RoomOccupancy),
		SeatsByTier:   make(map[string]int),
	}

	showings, err := s.showingRepo.GetAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats.Showings = len(showings)

	for _, showing := range showings {
		room, err := s.roomRepo.GetById(ctx, showing.RoomID)
		if err != nil {
			return Stats{}, err
		}

		occupancy := stats.RoomOccupancy[room.Name]
		occupancy.Capacity = room.Capacity
		occupancy.Reserved += showing.Inventory.Reserved()
		stats.RoomOccupancy[room.Name] = occupancy
	}

	ledger, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats.Reservations = len(ledger)

	for _, reservation := range ledger {
		seats := reservation.Selection.Count()
		stats.SeatsSold += seats
		stats.TotalRevenue = stats.TotalRevenue.Add(reservation.TotalPrice)
		stats.SeatsByTier[reservation.Tier.Label] += seats

		showing, err := s.showingRepo.GetById(ctx, reservation.ShowingID)
		if err != nil {
			continue
		}
		film, err := s.filmRepo.GetById(ctx, showing.FilmID)
		if err != nil {
			continue
		}

		stats.SeatsByFilm[film.Title] += seats
		revenue, ok := stats.RevenueByFilm[film.Title]
		if !ok {
			revenue = decimal.Zero
		}
		stats.RevenueByFilm[film.Title] = revenue.Add(reservation.TotalPrice)
	}

	return stats, nil
}
