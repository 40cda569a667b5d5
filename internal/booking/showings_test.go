package booking

import (
	"github.com/cinetix/booking/internal/domain"
	"github.com/google/uuid"
)

func (s *ServiceTestSuite) TestCreateShowingConflict() {
	s.createShowing(s.room, tomorrowAt(10)) // runtime 120, occupies 10:00-12:00

	_, err := s.svc.CreateShowing(s.ctx, CreateShowingRequest{
		FilmID: s.film.ID,
		RoomID: s.room.ID,
		Start:  tomorrowAt(11),
	})

	s.Require().ErrorIs(err, domain.ErrScheduleConflict)

	showings, listErr := s.svc.Showings(s.ctx)
	s.Require().NoError(listErr)
	s.Len(showings, 1, "a conflicting showing must not be created")
}

func (s *ServiceTestSuite) TestCreateShowingTouchingBoundaryIsAllowed() {
	s.createShowing(s.room, tomorrowAt(10))

	showing, err := s.svc.CreateShowing(s.ctx, CreateShowingRequest{
		FilmID: s.film.ID,
		RoomID: s.room.ID,
		Start:  tomorrowAt(12),
	})

	s.Require().NoError(err)
	s.NotNil(showing)
}

func (s *ServiceTestSuite) TestCreateShowingSameSlotDifferentRoom() {
	s.createShowing(s.room, tomorrowAt(10))

	_, err := s.svc.CreateShowing(s.ctx, CreateShowingRequest{
		FilmID: s.film.ID,
		RoomID: s.premium.ID,
		Start:  tomorrowAt(10),
	})

	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestCreateShowingValidation() {
	tests := []struct {
		name string
		req  CreateShowingRequest
	}{
		{
			name: "should fail without a film",
			req:  CreateShowingRequest{RoomID: s.room.ID, Start: tomorrowAt(10)},
		},
		{
			name: "should fail without a room",
			req:  CreateShowingRequest{FilmID: s.film.ID, Start: tomorrowAt(10)},
		},
		{
			name: "should fail for a start in the past",
			req:  CreateShowingRequest{FilmID: s.film.ID, RoomID: s.room.ID, Start: tomorrowAt(10).AddDate(0, 0, -2)},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.CreateShowing(s.ctx, tt.req)

			s.Require().ErrorIs(err, domain.ErrInvalidArgument)
		})
	}
}

func (s *ServiceTestSuite) TestCreateShowingUnknownReferences() {
	_, err := s.svc.CreateShowing(s.ctx, CreateShowingRequest{
		FilmID: uuid.New(),
		RoomID: s.room.ID,
		Start:  tomorrowAt(10),
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	_, err = s.svc.CreateShowing(s.ctx, CreateShowingRequest{
		FilmID: s.film.ID,
		RoomID: uuid.New(),
		Start:  tomorrowAt(10),
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ServiceTestSuite) TestShowingQueries() {
	morning := s.createShowing(s.room, tomorrowAt(10))
	evening := s.createShowing(s.premium, tomorrowAt(20))
	nextWeek := s.createShowing(s.room, tomorrowAt(10).AddDate(0, 0, 6))

	byFilm, err := s.svc.ShowingsByFilm(s.ctx, s.film.ID)
	s.Require().NoError(err)
	s.Len(byFilm, 3)

	byDate, err := s.svc.ShowingsByDate(s.ctx, tomorrowAt(0))
	s.Require().NoError(err)
	s.Len(byDate, 2)

	// Fill the premium room completely.
	_, err = s.svc.CreateReservation(s.ctx, CreateReservationRequest{
		ShowingID: evening.ID,
		Customer:  "Alice Martin",
		TierLabel: "Full price",
		SeatCount: 5,
	})
	s.Require().NoError(err)

	available, err := s.svc.AvailableShowings(s.ctx)
	s.Require().NoError(err)
	s.Len(available, 2)
	s.Contains(available, morning)
	s.Contains(available, nextWeek)
}

func (s *ServiceTestSuite) TestDeleteShowingDropsItsReservations() {
	showing := s.createShowing(s.room, tomorrowAt(10))
	other := s.createShowing(s.premium, tomorrowAt(10))

	_, err := s.svc.CreateReservation(s.ctx, CreateReservationRequest{
		ShowingID:   showing.ID,
		Customer:    "Alice Martin",
		TierLabel:   "Full price",
		SeatCount:   2,
		SeatNumbers: []int{1, 2},
	})
	s.Require().NoError(err)

	kept, err := s.svc.CreateReservation(s.ctx, CreateReservationRequest{
		ShowingID: other.ID,
		Customer:  "Bruno Keller",
		TierLabel: "Student",
		SeatCount: 1,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteShowing(s.ctx, showing.ID))

	ledger, err := s.svc.Reservations(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(ledger, 1)
	s.Equal(kept.ID, ledger[0].ID)

	s.Require().ErrorIs(s.svc.DeleteShowing(s.ctx, showing.ID), domain.ErrRecordNotFound)
}

func (s *ServiceTestSuite) TestRemoveFilmCascades() {
	s.createShowing(s.room, tomorrowAt(10))
	s.createShowing(s.premium, tomorrowAt(14))

	s.Require().NoError(s.svc.RemoveFilm(s.ctx, s.film.ID))

	showings, err := s.svc.Showings(s.ctx)
	s.Require().NoError(err)
	s.Empty(showings)

	films, err := s.svc.Films(s.ctx)
	s.Require().NoError(err)
	s.Empty(films)
}

func (s *ServiceTestSuite) TestSearchFilms() {
	_, err := s.svc.AddFilm(s.ctx, AddFilmRequest{Title: "Interstellar", Runtime: 169, Genre: domain.GenreSciFi})
	s.Require().NoError(err)

	matches, err := s.svc.SearchFilms(s.ctx, "incep")
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal("Inception", matches[0].Title)

	matches, err = s.svc.SearchFilms(s.ctx, "IN")
	s.Require().NoError(err)
	s.Len(matches, 2)
}
