package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/cinetix/booking/internal/booking"
	"github.com/cinetix/booking/internal/domain"
	"github.com/cinetix/booking/internal/repository"
	"github.com/shopspring/decimal"
)

// The cinema binary is a development harness: it seeds a demo catalog,
// walks the booking engine through its operations, and logs what happens.
func main() {
	baseFare := flag.Float64("base-fare", 10.00, "base ticket fare")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	svc := booking.NewService(
		logger,
		repository.NewMemoryFilmRepository(),
		repository.NewMemoryRoomRepository(),
		repository.NewMemoryRateTierRepository(),
		repository.NewMemoryShowingRepository(),
		repository.NewMemoryReservationRepository(),
		booking.WithBaseFare(decimal.NewFromFloat(*baseFare)),
	)

	if err := run(context.Background(), logger, svc); err != nil {
		logger.Error("demo run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, svc *booking.Service) error {
	films, rooms, err := seedCatalog(ctx, svc)
	if err != nil {
		return err
	}

	showings, err := seedShowings(ctx, svc, films, rooms)
	if err != nil {
		return err
	}

	// A showing overlapping the first slot in the same room must be refused.
	_, err = svc.CreateShowing(ctx, booking.CreateShowingRequest{
		FilmID: films[1].ID,
		RoomID: rooms[0].ID,
		Start:  showings[0].Start.Add(30 * time.Minute),
	})
	if !errors.Is(err, domain.ErrScheduleConflict) {
		return errors.New("expected a schedule conflict")
	}
	logger.Info("overlapping showing refused", "reason", err)

	first, err := svc.CreateReservation(ctx, booking.CreateReservationRequest{
		ShowingID:   showings[0].ID,
		Customer:    "Alice Martin",
		TierLabel:   "Full price",
		SeatCount:   3,
		SeatNumbers: []int{1, 2, 3},
	})
	if err != nil {
		return err
	}

	// Seat 3 is taken; the whole batch must be rejected.
	_, err = svc.CreateReservation(ctx, booking.CreateReservationRequest{
		ShowingID:   showings[0].ID,
		Customer:    "Bruno Keller",
		TierLabel:   "Student",
		SeatCount:   2,
		SeatNumbers: []int{3, 4},
	})
	if !errors.Is(err, domain.ErrSeatAlreadyOccupied) {
		return errors.New("expected an occupied-seat rejection")
	}
	logger.Info("double booking refused", "reason", err)

	if _, err := svc.CreateReservation(ctx, booking.CreateReservationRequest{
		ShowingID: showings[1].ID,
		Customer:  "Bruno Keller",
		TierLabel: "Student",
		SeatCount: 2,
	}); err != nil {
		return err
	}

	found, err := svc.CancelReservation(ctx, first.ID)
	if err != nil {
		return err
	}
	if !found {
		return errors.New("reservation to cancel not found")
	}

	if err := svc.Reconcile(ctx); err != nil {
		return err
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		return err
	}
	logger.Info("demo finished",
		"showings", stats.Showings,
		"reservations", stats.Reservations,
		"seats_sold", stats.SeatsSold,
		"revenue", stats.TotalRevenue)

	return nil
}

func seedCatalog(ctx context.Context, svc *booking.Service) ([]domain.Film, []domain.Room, error) {
	filmReqs := []booking.AddFilmRequest{
		{Title: "Inception", Runtime: 148, Genre: domain.GenreSciFi, Rating: 8.8},
		{Title: "The Lion King", Runtime: 88, Genre: domain.GenreAnimation, Rating: 8.5},
		{Title: "Interstellar", Runtime: 169, Genre: domain.GenreSciFi, Rating: 8.6},
		{Title: "Parasite", Runtime: 132, Genre: domain.GenreDrama, Rating: 8.5},
	}

	films := make([]domain.Film, 0, len(filmReqs))
	for _, req := range filmReqs {
		film, err := svc.AddFilm(ctx, req)
		if err != nil {
			return nil, nil, err
		}
		films = append(films, film)
	}

	roomReqs := []booking.AddRoomRequest{
		{Number: 1, Name: "The Odyssey", Capacity: 100, Category: domain.RoomStandard},
		{Number: 2, Name: "Grand Large", Capacity: 50, Category: domain.RoomIMAX},
		{Number: 3, Name: "Dolby Vision", Capacity: 80, Category: domain.RoomDolby},
	}

	rooms := make([]domain.Room, 0, len(roomReqs))
	for _, req := range roomReqs {
		room, err := svc.AddRoom(ctx, req)
		if err != nil {
			return nil, nil, err
		}
		rooms = append(rooms, room)
	}

	tierReqs := []booking.AddRateTierRequest{
		{Label: "Full price", Coefficient: decimal.NewFromFloat(1.0)},
		{Label: "Student", Coefficient: decimal.NewFromFloat(0.8)},
		{Label: "Senior", Coefficient: decimal.NewFromFloat(0.9)},
		{Label: "Child", Coefficient: decimal.NewFromFloat(0.6)},
	}

	for _, req := range tierReqs {
		if _, err := svc.AddRateTier(ctx, req); err != nil {
			return nil, nil, err
		}
	}

	return films, rooms, nil
}

func seedShowings(ctx context.Context, svc *booking.Service, films []domain.Film, rooms []domain.Room) ([]*domain.Showing, error) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	slots := []int{10, 14, 17, 20}

	showings := make([]*domain.Showing, 0, len(films))
	for i, film := range films {
		start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), slots[i%len(slots)], 0, 0, 0, time.Local)
		showing, err := svc.CreateShowing(ctx, booking.CreateShowingRequest{
			FilmID: film.ID,
			RoomID: rooms[i%len(rooms)].ID,
			Start:  start,
		})
		if err != nil {
			return nil, err
		}
		showings = append(showings, showing)
	}

	return showings, nil
}
