// Package cinema holds the booking state of a single screening room: the
// seat grid, the pricing zones and the sales counters.
package cinema

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"cinema-room-manager/model"
)

// Room is the booking state of one room. It is not safe for concurrent use.
type Room struct {
	rows        int
	seatsPerRow int
	seats       []model.Seat
	pricing     pricing

	totalIncome      int
	currentIncome    int
	purchasedTickets int
}

// NewRoom builds an empty room. It returns a *ConfigError when either
// dimension is not positive or the room holds more than MaxSeats seats;
// callers decide whether to ask again.
func NewRoom(rows int, seatsPerRow int) (*Room, error) {
	if rows <= 0 {
		return nil, &ConfigError{Field: "rows", Value: strconv.Itoa(rows)}
	}
	if seatsPerRow <= 0 {
		return nil, &ConfigError{Field: "seats per row", Value: strconv.Itoa(seatsPerRow)}
	}
	if seatsPerRow > MaxSeats/rows {
		return nil, &ConfigError{
			Field:  "room",
			Value:  fmt.Sprintf("%dx%d", rows, seatsPerRow),
			Reason: fmt.Sprintf("more than %d seats", MaxSeats),
		}
	}

	p := newPricing(rows, seatsPerRow)
	return &Room{
		rows:        rows,
		seatsPerRow: seatsPerRow,
		seats:       make([]model.Seat, rows*seatsPerRow),
		pricing:     p,
		totalIncome: p.totalIncome(),
	}, nil
}

func (r *Room) Rows() int        { return r.rows }
func (r *Room) SeatsPerRow() int { return r.seatsPerRow }
func (r *Room) TotalSeats() int  { return r.rows * r.seatsPerRow }
func (r *Room) TotalIncome() int { return r.totalIncome }

// IsSmall reports whether the whole room is sold at the normal price.
func (r *Room) IsSmall() bool {
	return r.pricing.small
}

// PriceForRow returns the ticket price of a row already known to be in range.
func (r *Room) PriceForRow(row int) int {
	return r.pricing.priceForRow(row)
}

// SeatAt returns the state of a seat using 1-based coordinates.
func (r *Room) SeatAt(row int, seat int) (model.Seat, error) {
	idx, err := r.index(row, seat)
	if err != nil {
		return model.SeatEmpty, err
	}
	return r.seats[idx], nil
}

// Sell marks the seat as taken and returns the price charged. Nothing is
// changed when the seat is out of range or already sold.
func (r *Room) Sell(row int, seat int) (int, error) {
	idx, err := r.index(row, seat)
	if err != nil {
		return 0, err
	}
	if r.seats[idx] == model.SeatTaken {
		return 0, &SeatError{Row: row, Seat: seat, Err: ErrAlreadySold}
	}

	price := r.pricing.priceForRow(row)
	r.seats[idx] = model.SeatTaken
	r.purchasedTickets++
	r.currentIncome += price
	return price, nil
}

func (r *Room) Statistics() model.Statistics {
	percentage := float64(r.purchasedTickets) / float64(r.TotalSeats()) * 100
	return model.Statistics{
		PurchasedTickets: r.purchasedTickets,
		TotalSeats:       r.TotalSeats(),
		Percentage:       math.Round(percentage*100) / 100,
		CurrentIncome:    r.currentIncome,
		TotalIncome:      r.totalIncome,
	}
}

// Chart yields the seating chart one line at a time: a header with the seat
// numbers, then one line per row with S for empty and B for taken seats.
func (r *Room) Chart() iter.Seq[string] {
	return func(yield func(string) bool) {
		var b strings.Builder
		b.WriteString(" ")
		for seat := 1; seat <= r.seatsPerRow; seat++ {
			b.WriteString(" ")
			b.WriteString(strconv.Itoa(seat))
		}
		if !yield(b.String()) {
			return
		}

		for row := 1; row <= r.rows; row++ {
			b.Reset()
			b.WriteString(strconv.Itoa(row))
			for _, seat := range r.seats[(row-1)*r.seatsPerRow : row*r.seatsPerRow] {
				b.WriteString(" ")
				b.WriteString(seat.Marker())
			}
			if !yield(b.String()) {
				return
			}
		}
	}
}

func (r *Room) index(row int, seat int) (int, error) {
	if row < 1 || row > r.rows || seat < 1 || seat > r.seatsPerRow {
		return 0, &SeatError{Row: row, Seat: seat, Err: ErrOutOfRange}
	}
	return (row-1)*r.seatsPerRow + (seat - 1), nil
}
