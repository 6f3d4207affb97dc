package model

type Seat int

const (
	SeatEmpty Seat = iota
	SeatTaken
)

// Marker is the single-letter chart symbol for the seat.
func (s Seat) Marker() string {
	if s == SeatTaken {
		return "B"
	}
	return "S"
}

func (s Seat) String() string {
	switch s {
	case SeatEmpty:
		return "empty"
	case SeatTaken:
		return "taken"
	default:
		return "unknown"
	}
}
