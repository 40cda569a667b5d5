package domain

import "github.com/shopspring/decimal"

// UnitPrice derives the per-seat price from the base fare, the room's
// category surcharge, and the rate tier coefficient.
func UnitPrice(baseFare, surcharge, coefficient decimal.Decimal) decimal.Decimal {
	return baseFare.Add(surcharge).Mul(coefficient).Round(2)
}

// TicketPrice derives the total price for a number of seats, rounded to two
// decimal places. The surcharge is a fixed amount tied to the room
// category, not a per-seat-type extra.
func TicketPrice(baseFare, surcharge, coefficient decimal.Decimal, seats int) decimal.Decimal {
	total := baseFare.Add(surcharge).Mul(coefficient).Mul(decimal.NewFromInt(int64(seats)))

	return total.Round(2)
}
