// Package console drives a room through the numbered text menu.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"cinema-room-manager/cinema"
	"cinema-room-manager/service"
)

const menu = `
1. Show the seats
2. Buy a ticket
3. Statistics
0. Exit`

const (
	promptRows      = "Enter the number of rows:"
	promptSeats     = "Enter the number of seats in each row:"
	promptRow       = "\nEnter a row number:"
	promptSeatInRow = "Enter a seat number in that row:"
)

type Session struct {
	reader   LineReader
	out      io.Writer
	renderer Renderer
	logger   *logrus.Entry
}

func NewSession(reader LineReader, out io.Writer, renderer Renderer, logger *logrus.Entry) *Session {
	if renderer == nil {
		renderer = PlainRenderer{}
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Session{
		reader:   reader,
		out:      out,
		renderer: renderer,
		logger:   logger.WithField("component", "console"),
	}
}

// Setup asks for the room dimensions until they describe a valid room.
func (s *Session) Setup() (*cinema.Room, error) {
	for {
		rows, err := s.reader.ReadLine(promptRows)
		if err != nil {
			return nil, err
		}
		seats, err := s.reader.ReadLine(promptSeats)
		if err != nil {
			return nil, err
		}

		room, err := service.ParseDimensions(rows, seats)
		if err == nil {
			s.logger.WithFields(logrus.Fields{
				"rows":         room.Rows(),
				"seats":        room.SeatsPerRow(),
				"total_income": room.TotalIncome(),
			}).Debug("room ready")
			return room, nil
		}
		if !errors.Is(err, cinema.ErrInvalidDimensions) {
			return nil, err
		}
		s.logger.WithError(err).Info("invalid room dimensions, asking again")
	}
}

// Run serves the menu until the user picks 0 or the input ends.
func (s *Session) Run(room *cinema.Room) error {
	office := service.NewBoxOffice(room, s.logger)
	for {
		if _, err := fmt.Fprintln(s.out, menu); err != nil {
			return err
		}
		choice, err := s.reader.ReadLine("")
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if _, err := fmt.Fprintf(s.out, "\n%s\n", s.renderer.Chart(room)); err != nil {
				return err
			}
		case "2":
			if err := s.buy(office); err != nil {
				return ignoreEOF(err)
			}
		case "3":
			if _, err := fmt.Fprintf(s.out, "\n%s\n", s.renderer.Statistics(room.Statistics())); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			s.logger.WithField("choice", choice).Debug("unknown menu choice")
		}
	}
}

// buy keeps asking for a seat until one is sold.
func (s *Session) buy(office *service.BoxOffice) error {
	for {
		row, err := s.reader.ReadLine(promptRow)
		if err != nil {
			return err
		}
		seat, err := s.reader.ReadLine(promptSeatInRow)
		if err != nil {
			return err
		}

		price, err := office.SellText(row, seat)
		if err != nil {
			if _, err := fmt.Fprintf(s.out, "\n%s\n", service.Message(err)); err != nil {
				return err
			}
			continue
		}
		_, err = fmt.Fprintf(s.out, "\nTicket price: $%d\n", price)
		return err
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
