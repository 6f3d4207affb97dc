package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"cinema-room-manager/cinema"
)

const (
	MessageWrongInput  = "Wrong input!"
	MessageAlreadySold = "That ticket has already been purchased!"
)

// ParseDimensions builds a room from raw user input. Non-numeric text is
// reported as a *cinema.ConfigError, just like non-positive numbers.
func ParseDimensions(rowsText string, seatsText string) (*cinema.Room, error) {
	rows, err := strconv.Atoi(strings.TrimSpace(rowsText))
	if err != nil {
		return nil, &cinema.ConfigError{Field: "rows", Value: rowsText, Err: err}
	}
	seats, err := strconv.Atoi(strings.TrimSpace(seatsText))
	if err != nil {
		return nil, &cinema.ConfigError{Field: "seats per row", Value: seatsText, Err: err}
	}
	return cinema.NewRoom(rows, seats)
}

// BoxOffice sells tickets for a room from text coordinates.
type BoxOffice struct {
	room   *cinema.Room
	logger *logrus.Entry
}

// NewBoxOffice wraps room. If logger is nil, the standard logrus logger is used.
func NewBoxOffice(room *cinema.Room, logger *logrus.Entry) *BoxOffice {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &BoxOffice{
		room:   room,
		logger: logger.WithField("component", "box_office"),
	}
}

func (b *BoxOffice) Room() *cinema.Room {
	return b.room
}

// SellText parses both coordinates and sells the seat. Input that is not a
// number is rejected as out of range.
func (b *BoxOffice) SellText(rowText string, seatText string) (int, error) {
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		b.logger.WithField("input", rowText).Info("rejected non-numeric row")
		return 0, fmt.Errorf("row %q: %w", rowText, cinema.ErrOutOfRange)
	}
	seat, err := strconv.Atoi(strings.TrimSpace(seatText))
	if err != nil {
		b.logger.WithField("input", seatText).Info("rejected non-numeric seat")
		return 0, fmt.Errorf("seat %q: %w", seatText, cinema.ErrOutOfRange)
	}
	return b.Sell(row, seat)
}

// Sell sells the seat at 1-based coordinates and logs the outcome.
func (b *BoxOffice) Sell(row int, seat int) (int, error) {
	fields := logrus.Fields{"row": row, "seat": seat}

	price, err := b.room.Sell(row, seat)
	if err != nil {
		b.logger.WithFields(fields).WithError(err).Info("sale rejected")
		return 0, err
	}

	stats := b.room.Statistics()
	fields["price"] = price
	fields["purchased"] = stats.PurchasedTickets
	fields["income"] = stats.CurrentIncome
	b.logger.WithFields(fields).Debug("ticket sold")
	return price, nil
}

// Message maps a sale error to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case cinema.IsAlreadySold(err):
		return MessageAlreadySold
	case cinema.IsOutOfRange(err), errors.Is(err, cinema.ErrInvalidDimensions):
		return MessageWrongInput
	default:
		return err.Error()
	}
}
