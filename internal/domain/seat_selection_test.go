package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCount(t *testing.T) {
	sel, err := SelectCount(4)

	require.NoError(t, err)
	assert.Equal(t, ByCount, sel.Mode())
	assert.False(t, sel.Explicit())
	assert.Equal(t, 4, sel.Count())
	assert.Nil(t, sel.Seats())
	assert.Nil(t, sel.SeatNumbers())
}

func TestSelectCountRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := SelectCount(n)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestSelectSeats(t *testing.T) {
	sel, err := SelectSeats(7, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, BySeats, sel.Mode())
	assert.True(t, sel.Explicit())
	assert.Equal(t, 3, sel.Count())
	assert.Equal(t, []int{2, 5, 7}, sel.SeatNumbers())
}

func TestSelectSeatsRejectsDuplicates(t *testing.T) {
	_, err := SelectSeats(1, 2, 2)

	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSelectSeatsRejectsEmpty(t *testing.T) {
	_, err := SelectSeats()

	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSeatsReturnsACopy(t *testing.T) {
	sel, err := SelectSeats(1, 2)
	require.NoError(t, err)

	seats := sel.Seats()
	seats.Add(99)

	assert.Equal(t, []int{1, 2}, sel.SeatNumbers())
}
