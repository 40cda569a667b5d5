package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrCapacityExceeded    = errors.New("not enough seats available")
	ErrInvalidSeat         = errors.New("seat number is out of range")
	ErrSeatAlreadyOccupied = errors.New("seat(s) are already occupied")
	ErrScheduleConflict    = errors.New("showing overlaps another showing in the same room")
	ErrInventoryDrift      = errors.New("seat inventory is out of sync with the reservation ledger")
)
