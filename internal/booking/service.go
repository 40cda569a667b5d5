package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cinetix/booking/internal/domain"
	appvalidator "github.com/cinetix/booking/internal/validator"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DefaultBaseFare is the full-price ticket fare before the room surcharge
// and rate tier coefficient are applied.
var DefaultBaseFare = decimal.NewFromFloat(10.00)

// Service is the booking engine: it owns the reservation ledger and the
// showing schedule, and mediates every mutation of a showing's seat
// inventory. The service assumes a single logical writer; simultaneous
// bookings against the same showing must be serialized by the caller.
type Service struct {
	logger    *slog.Logger
	validator *validator.Validate
	baseFare  decimal.Decimal

	filmRepo        domain.FilmRepository
	roomRepo        domain.RoomRepository
	tierRepo        domain.RateTierRepository
	showingRepo     domain.ShowingRepository
	reservationRepo domain.ReservationRepository
}

type Option func(*Service)

// WithBaseFare overrides the default base fare used by the pricing
// calculator.
func WithBaseFare(fare decimal.Decimal) Option {
	return func(s *Service) {
		if fare.IsPositive() {
			s.baseFare = fare
		}
	}
}

func NewService(
	logger *slog.Logger,
	filmRepo domain.FilmRepository,
	roomRepo domain.RoomRepository,
	tierRepo domain.RateTierRepository,
	showingRepo domain.ShowingRepository,
	reservationRepo domain.ReservationRepository,
	opts ...Option,
) *Service {
	svc := &Service{
		logger:          logger,
		validator:       appvalidator.NewValidator(),
		baseFare:        DefaultBaseFare,
		filmRepo:        filmRepo,
		roomRepo:        roomRepo,
		tierRepo:        tierRepo,
		showingRepo:     showingRepo,
		reservationRepo: reservationRepo,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// BaseFare returns the fare the pricing calculator starts from.
func (s *Service) BaseFare() decimal.Decimal {
	return s.baseFare
}

func (s *Service) checkRequest(req any) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		issues := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			issues = append(issues, fmt.Sprintf("%s %s", fieldErr.Field(), appvalidator.ValidationMessage(fieldErr)))
		}

		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, strings.Join(issues, "; "))
	}

	return err
}
