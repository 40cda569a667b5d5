package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RateTier is a named multiplicative coefficient applied to the base fare,
// e.g. student or senior pricing. Coefficients are conventionally between
// 0.1 and 2.0 but only positivity is enforced.
type RateTier struct {
	Label       string
	Coefficient decimal.Decimal
}

func NewRateTier(label string, coefficient decimal.Decimal) (RateTier, error) {
	if strings.TrimSpace(label) == "" {
		return RateTier{}, fmt.Errorf("%w: rate tier label must not be empty", ErrInvalidArgument)
	}
	if !coefficient.IsPositive() {
		return RateTier{}, fmt.Errorf("%w: rate tier coefficient must be positive, got %s", ErrInvalidArgument, coefficient)
	}

	return RateTier{Label: label, Coefficient: coefficient}, nil
}

type RateTierRepository interface {
	Add(ctx context.Context, tier RateTier) error
	GetByLabel(ctx context.Context, label string) (*RateTier, error)
	GetAll(ctx context.Context) ([]RateTier, error)
	Delete(ctx context.Context, label string) error
}
