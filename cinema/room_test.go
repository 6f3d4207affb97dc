package cinema

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-room-manager/model"
)

func TestNewRoom_RejectsNonPositiveDimensions(t *testing.T) {
	cases := []struct {
		rows  int
		seats int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
		{3, -7},
	}
	for _, tc := range cases {
		room, err := NewRoom(tc.rows, tc.seats)
		require.Error(t, err, "rows=%d seats=%d", tc.rows, tc.seats)
		assert.Nil(t, room)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr))
	}
}

func TestNewRoom_RejectsOversizedRooms(t *testing.T) {
	cases := []struct {
		rows  int
		seats int
	}{
		{1 << 32, 1 << 32},
		{3037000500, 3037000500},
		{math.MaxInt, 2},
		{MaxSeats + 1, 1},
		{1001, 1000},
	}
	for _, tc := range cases {
		room, err := NewRoom(tc.rows, tc.seats)
		require.Error(t, err, "rows=%d seats=%d", tc.rows, tc.seats)
		assert.Nil(t, room)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		assert.Contains(t, err.Error(), "more than")
	}

	room, err := NewRoom(1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxSeats, room.TotalSeats())

	price, err := room.Sell(1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, CheapPrice, price)
}

func TestNewRoom_TotalIncomeClosedForm(t *testing.T) {
	for rows := 1; rows <= 15; rows++ {
		for seats := 1; seats <= 15; seats++ {
			room, err := NewRoom(rows, seats)
			require.NoError(t, err)
			require.Equal(t, rows*seats, room.TotalSeats())

			var want int
			if rows*seats <= SmallRoomCapacity {
				want = NormalPrice * seats
			} else {
				front := rows / 2
				back := rows - (rows - rows/2) + 1
				want = (front*NormalPrice + back*CheapPrice) * seats
			}
			assert.Equal(t, want, room.TotalIncome(), "rows=%d seats=%d", rows, seats)
		}
	}
}

func TestRoom_SingleSeatScenario(t *testing.T) {
	room, err := NewRoom(1, 1)
	require.NoError(t, err)
	require.True(t, room.IsSmall())

	price, err := room.Sell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, price)

	stats := room.Statistics()
	assert.Equal(t, 1, stats.PurchasedTickets)
	assert.Equal(t, 100.0, stats.Percentage)
	assert.Equal(t, "100.00%", stats.PercentageText())
	assert.Equal(t, 10, stats.CurrentIncome)
	assert.Equal(t, 10, stats.TotalIncome)
}

func TestRoom_LargeRoomZones(t *testing.T) {
	room, err := NewRoom(10, 10)
	require.NoError(t, err)
	require.False(t, room.IsSmall())

	assert.Equal(t, NormalPrice, room.PriceForRow(1))
	assert.Equal(t, NormalPrice, room.PriceForRow(3))
	assert.Equal(t, NormalPrice, room.PriceForRow(5))
	assert.Equal(t, CheapPrice, room.PriceForRow(6))
	assert.Equal(t, CheapPrice, room.PriceForRow(8))
	assert.Equal(t, CheapPrice, room.PriceForRow(10))

	// Rows 1..5 and 5..10 both include row 5.
	assert.Equal(t, (5*NormalPrice+6*CheapPrice)*10, room.TotalIncome())
}

func TestRoom_OddRowsDoNotOverlap(t *testing.T) {
	room, err := NewRoom(9, 9)
	require.NoError(t, err)

	assert.Equal(t, NormalPrice, room.PriceForRow(4))
	assert.Equal(t, CheapPrice, room.PriceForRow(5))
	assert.Equal(t, (4*NormalPrice+5*CheapPrice)*9, room.TotalIncome())
}

func TestRoom_SmallRoomUsesFlatPrice(t *testing.T) {
	room, err := NewRoom(6, 10)
	require.NoError(t, err)
	require.True(t, room.IsSmall())

	for row := 1; row <= 6; row++ {
		assert.Equal(t, NormalPrice, room.PriceForRow(row))
	}
	assert.Equal(t, NormalPrice*10, room.TotalIncome())
}

func TestRoom_SellOutOfRangeLeavesStateUntouched(t *testing.T) {
	room, err := NewRoom(4, 5)
	require.NoError(t, err)

	for _, coords := range [][2]int{{0, 1}, {1, 0}, {5, 1}, {1, 6}, {-3, 2}, {2, 99}} {
		price, err := room.Sell(coords[0], coords[1])
		require.Error(t, err)
		assert.Zero(t, price)
		assert.True(t, IsOutOfRange(err), "got %v", err)
		assert.False(t, IsAlreadySold(err))
	}

	stats := room.Statistics()
	assert.Zero(t, stats.PurchasedTickets)
	assert.Zero(t, stats.CurrentIncome)
}

func TestRoom_SellTwice(t *testing.T) {
	room, err := NewRoom(3, 3)
	require.NoError(t, err)

	_, err = room.Sell(2, 2)
	require.NoError(t, err)

	_, err = room.Sell(2, 2)
	require.Error(t, err)
	assert.True(t, IsAlreadySold(err))

	var seatErr *SeatError
	require.True(t, errors.As(err, &seatErr))
	assert.Equal(t, 2, seatErr.Row)
	assert.Equal(t, 2, seatErr.Seat)

	stats := room.Statistics()
	assert.Equal(t, 1, stats.PurchasedTickets)
	assert.Equal(t, NormalPrice, stats.CurrentIncome)

	seat, err := room.SeatAt(2, 2)
	require.NoError(t, err)
	assert.Equal(t, model.SeatTaken, seat)
}

func TestRoom_IncomeTracksSales(t *testing.T) {
	room, err := NewRoom(9, 8)
	require.NoError(t, err)

	sales := [][2]int{{1, 1}, {4, 8}, {5, 1}, {9, 8}, {7, 3}}
	want := 0
	for _, s := range sales {
		price, err := room.Sell(s[0], s[1])
		require.NoError(t, err)
		assert.Equal(t, room.PriceForRow(s[0]), price)
		want += price
	}

	stats := room.Statistics()
	assert.Equal(t, len(sales), stats.PurchasedTickets)
	assert.Equal(t, want, stats.CurrentIncome)
	assert.Equal(t, 6.94, stats.Percentage)
	assert.Equal(t, "6.94%", stats.PercentageText())
}

func TestRoom_Chart(t *testing.T) {
	room, err := NewRoom(3, 4)
	require.NoError(t, err)
	_, err = room.Sell(2, 3)
	require.NoError(t, err)

	lines := slices.Collect(room.Chart())
	require.Len(t, lines, 4)
	assert.Equal(t, []string{
		"  1 2 3 4",
		"1 S S S S",
		"2 S S B S",
		"3 S S S S",
	}, lines)
}

func TestRoom_ChartLineCount(t *testing.T) {
	room, err := NewRoom(12, 3)
	require.NoError(t, err)

	lines := slices.Collect(room.Chart())
	require.Len(t, lines, 13)
	for i, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, strconv.Itoa(i+1)+" "), "line %q", line)
	}
}

func TestRoom_ChartStopsEarly(t *testing.T) {
	room, err := NewRoom(5, 5)
	require.NoError(t, err)

	var got []string
	for line := range room.Chart() {
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}
