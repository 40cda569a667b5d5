package domain

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// SeatInventory tracks the occupied seats of a single showing. It keeps a
// set of occupied seat numbers alongside a reserved-count scalar because
// count-only bookings reserve capacity without naming seats; once a booking
// names explicit seats the count is resynchronized to the set size so a
// later ledger rebuild stays correct after mixed-mode bookings.
type SeatInventory struct {
	capacity int
	occupied mapset.Set[int]
	reserved int
}

func NewSeatInventory(capacity int) SeatInventory {
	return SeatInventory{
		capacity: capacity,
		occupied: mapset.NewSet[int](),
	}
}

func (inv *SeatInventory) Capacity() int {
	return inv.capacity
}

func (inv *SeatInventory) Reserved() int {
	return inv.reserved
}

func (inv *SeatInventory) Available() int {
	return inv.capacity - inv.reserved
}

func (inv *SeatInventory) IsFull() bool {
	return inv.Available() <= 0
}

func (inv *SeatInventory) IsOccupied(seat int) bool {
	return inv.occupied.Contains(seat)
}

// OccupiedSeats returns a copy of the occupied seat numbers in ascending order.
func (inv *SeatInventory) OccupiedSeats() []int {
	return mapset.Sorted(inv.occupied)
}

// BookCount reserves n anonymous seats. The occupied set is left untouched:
// callers using this mode accept that specific seats are not tracked.
func (inv *SeatInventory) BookCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: seat count must be positive, got %d", ErrInvalidArgument, n)
	}
	if n > inv.Available() {
		return fmt.Errorf("%w: requested %d, only %d left", ErrCapacityExceeded, n, inv.Available())
	}

	inv.reserved += n

	return nil
}

// BookSeats reserves the given explicit seat numbers. The whole batch is
// validated before any mutation, so a partially valid batch never partially
// commits.
func (inv *SeatInventory) BookSeats(seats mapset.Set[int]) error {
	if seats == nil || seats.Cardinality() == 0 {
		return fmt.Errorf("%w: at least one seat number is required", ErrInvalidArgument)
	}

	for _, seat := range seats.ToSlice() {
		if seat < 1 || seat > inv.capacity {
			return fmt.Errorf("%w: seat %d not in [1, %d]", ErrInvalidSeat, seat, inv.capacity)
		}
		if inv.occupied.Contains(seat) {
			return fmt.Errorf("%w: seat %d", ErrSeatAlreadyOccupied, seat)
		}
	}

	if seats.Cardinality() > inv.Available() {
		return fmt.Errorf("%w: requested %d, only %d left", ErrCapacityExceeded, seats.Cardinality(), inv.Available())
	}

	inv.occupied = inv.occupied.Union(seats)
	inv.reserved = inv.occupied.Cardinality()

	return nil
}

// Book commits a seat selection against the inventory.
func (inv *SeatInventory) Book(sel SeatSelection) error {
	switch sel.Mode() {
	case BySeats:
		return inv.BookSeats(sel.Seats())
	default:
		return inv.BookCount(sel.Count())
	}
}

// Release reverses a previously committed selection. A count release larger
// than the reserved count means the inventory no longer matches the ledger;
// that is reported as ErrInventoryDrift instead of being clamped to zero,
// since a silent floor would mask the corruption it is the symptom of.
func (inv *SeatInventory) Release(sel SeatSelection) error {
	switch sel.Mode() {
	case BySeats:
		inv.occupied = inv.occupied.Difference(sel.Seats())
		inv.reserved = inv.occupied.Cardinality()
	default:
		if sel.Count() > inv.reserved {
			return fmt.Errorf("%w: releasing %d with only %d reserved", ErrInventoryDrift, sel.Count(), inv.reserved)
		}
		inv.reserved -= sel.Count()
	}

	return nil
}

// Reset clears the inventory back to fully available. Reconciliation uses
// it before replaying the ledger.
func (inv *SeatInventory) Reset() {
	inv.occupied = mapset.NewSet[int]()
	inv.reserved = 0
}
