package domain

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

type BookingMode int

const (
	// ByCount reserves a number of anonymous seats without tracking which ones.
	ByCount BookingMode = iota
	// BySeats reserves an explicit set of seat numbers.
	BySeats
)

// SeatSelection is the two-case value a reservation carries: either a bare
// seat count or an explicit set of seat numbers. Keeping the mode explicit
// forces every booking and release path to handle both cases instead of
// guessing from a possibly-empty seat list.
type SeatSelection struct {
	mode  BookingMode
	count int
	seats mapset.Set[int]
}

// SelectCount builds a count-only selection of n anonymous seats.
func SelectCount(n int) (SeatSelection, error) {
	if n <= 0 {
		return SeatSelection{}, fmt.Errorf("%w: seat count must be positive, got %d", ErrInvalidArgument, n)
	}

	return SeatSelection{mode: ByCount, count: n}, nil
}

// SelectSeats builds an explicit selection from the given seat numbers.
// Duplicate numbers are rejected rather than collapsed.
func SelectSeats(numbers ...int) (SeatSelection, error) {
	if len(numbers) == 0 {
		return SeatSelection{}, fmt.Errorf("%w: at least one seat number is required", ErrInvalidArgument)
	}

	seats := mapset.NewSet[int]()
	for _, n := range numbers {
		if !seats.Add(n) {
			return SeatSelection{}, fmt.Errorf("%w: duplicate seat number %d", ErrInvalidArgument, n)
		}
	}

	return SeatSelection{mode: BySeats, count: seats.Cardinality(), seats: seats}, nil
}

func (s SeatSelection) Mode() BookingMode {
	return s.mode
}

func (s SeatSelection) Explicit() bool {
	return s.mode == BySeats
}

func (s SeatSelection) Count() int {
	return s.count
}

// Seats returns a copy of the selected seat numbers, or nil for a
// count-only selection.
func (s SeatSelection) Seats() mapset.Set[int] {
	if s.seats == nil {
		return nil
	}

	return s.seats.Clone()
}

// SeatNumbers returns the selected seat numbers in ascending order, or nil
// for a count-only selection.
func (s SeatSelection) SeatNumbers() []int {
	if s.seats == nil {
		return nil
	}

	return mapset.Sorted(s.seats)
}

func (s SeatSelection) String() string {
	if s.Explicit() {
		return fmt.Sprintf("seats %v", s.SeatNumbers())
	}

	return fmt.Sprintf("%d seat(s)", s.count)
}
