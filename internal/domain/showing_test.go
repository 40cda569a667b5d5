package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFilm(t *testing.T, title string, runtime int) Film {
	t.Helper()

	film, err := NewFilm(title, runtime, GenreSciFi)
	require.NoError(t, err)

	return film
}

func mustRoom(t *testing.T, name string, capacity int) Room {
	t.Helper()

	room, err := NewRoom(1, name, capacity, RoomStandard)
	require.NoError(t, err)

	return room
}

func TestNewShowingSnapshotsIntervalAndCapacity(t *testing.T) {
	film := mustFilm(t, "Inception", 148)
	room := mustRoom(t, "The Odyssey", 100)
	start := time.Date(2026, time.September, 12, 10, 0, 0, 0, time.UTC)

	showing := NewShowing(film, room, start)

	assert.Equal(t, film.ID, showing.FilmID)
	assert.Equal(t, room.ID, showing.RoomID)
	assert.Equal(t, start.Add(148*time.Minute), showing.End)
	assert.Equal(t, 100, showing.AvailableSeats())
	assert.False(t, showing.IsFull())
}

func TestFindConflict(t *testing.T) {
	film := mustFilm(t, "Inception", 120)
	room := mustRoom(t, "The Odyssey", 5)
	otherRoom := mustRoom(t, "Grand Large", 5)
	day := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)

	at := func(hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }

	existing := NewShowing(film, room, at(10)) // occupies 10:00-12:00

	tests := []struct {
		name         string
		room         Room
		start        time.Time
		wantConflict bool
	}{
		{
			name:         "should conflict when the candidate starts mid-showing",
			room:         room,
			start:        at(11),
			wantConflict: true,
		},
		{
			name:         "should conflict when the candidate envelops the showing",
			room:         room,
			start:        at(9),
			wantConflict: true,
		},
		{
			name:  "should not conflict when intervals only touch",
			room:  room,
			start: at(12),
		},
		{
			name:  "should not conflict when the candidate ends at the start",
			room:  room,
			start: at(8),
		},
		{
			name:  "should not conflict in a different room",
			room:  otherRoom,
			start: at(11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := NewShowing(film, tt.room, tt.start)

			conflict := FindConflict(&candidate, []*Showing{&existing})

			if tt.wantConflict {
				require.NotNil(t, conflict)
				assert.Equal(t, existing.ID, conflict.ID)
			} else {
				assert.Nil(t, conflict)
			}
		})
	}
}

func TestFindConflictIsSymmetric(t *testing.T) {
	film := mustFilm(t, "Inception", 95)
	room := mustRoom(t, "The Odyssey", 5)
	base := time.Date(2026, time.September, 12, 10, 0, 0, 0, time.UTC)

	offsets := []time.Duration{0, 30 * time.Minute, 95 * time.Minute, 2 * time.Hour}
	for _, offset := range offsets {
		a := NewShowing(film, room, base)
		b := NewShowing(film, room, base.Add(offset))

		ab := FindConflict(&a, []*Showing{&b}) != nil
		ba := FindConflict(&b, []*Showing{&a}) != nil

		assert.Equal(t, ab, ba, "offset %s", offset)
	}
}

func TestFindConflictSkipsSelf(t *testing.T) {
	film := mustFilm(t, "Inception", 120)
	room := mustRoom(t, "The Odyssey", 5)

	showing := NewShowing(film, room, time.Date(2026, time.September, 12, 10, 0, 0, 0, time.UTC))

	assert.Nil(t, FindConflict(&showing, []*Showing{&showing}))
}
