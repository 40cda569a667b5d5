package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreSciFi     Genre = "Science Fiction"
	GenreHorror    Genre = "Horror"
	GenreAnimation Genre = "Animation"
)

// Film is catalog data owned by the caller; the booking engine only reads it.
// Runtime determines a showing's temporal extent, so it must be positive.
type Film struct {
	ID       uuid.UUID
	Title    string
	Runtime  int
	Genre    Genre
	Rating   float64
	Synopsis string
}

func NewFilm(title string, runtime int, genre Genre) (Film, error) {
	if strings.TrimSpace(title) == "" {
		return Film{}, fmt.Errorf("%w: film title must not be empty", ErrInvalidArgument)
	}
	if runtime <= 0 {
		return Film{}, fmt.Errorf("%w: film runtime must be positive, got %d", ErrInvalidArgument, runtime)
	}

	return Film{
		ID:      uuid.New(),
		Title:   title,
		Runtime: runtime,
		Genre:   genre,
	}, nil
}

// Duration returns the film's runtime as a time.Duration.
func (f Film) Duration() time.Duration {
	return time.Duration(f.Runtime) * time.Minute
}

func (f Film) MatchesTitle(term string) bool {
	return strings.Contains(strings.ToLower(f.Title), strings.ToLower(term))
}

type FilmRepository interface {
	Add(ctx context.Context, film Film) error
	GetById(ctx context.Context, id uuid.UUID) (*Film, error)
	GetAll(ctx context.Context) ([]Film, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
