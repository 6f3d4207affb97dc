package cinema

const (
	SmallRoomCapacity = 60
	NormalPrice       = 10
	CheapPrice        = 8

	// MaxSeats bounds the size of a room.
	MaxSeats = 1_000_000
)

// rowRange is an inclusive, 1-based span of rows. first > last means empty.
type rowRange struct {
	first int
	last  int
}

func (r rowRange) contains(row int) bool {
	return row >= r.first && row <= r.last
}

func (r rowRange) count() int {
	if r.last < r.first {
		return 0
	}
	return r.last - r.first + 1
}

// pricing holds the zone split fixed at construction. For an even row count
// the middle row belongs to both ranges: it is sold at the normal price and
// counted in both zones of the total income.
type pricing struct {
	small       bool
	front       rowRange
	back        rowRange
	seatsPerRow int
}

func newPricing(rows int, seatsPerRow int) pricing {
	return pricing{
		small:       rows*seatsPerRow <= SmallRoomCapacity,
		front:       rowRange{first: 1, last: rows / 2},
		back:        rowRange{first: rows - rows/2, last: rows},
		seatsPerRow: seatsPerRow,
	}
}

func (p pricing) priceForRow(row int) int {
	if p.small || p.front.contains(row) {
		return NormalPrice
	}
	return CheapPrice
}

func (p pricing) totalIncome() int {
	if p.small {
		return NormalPrice * p.seatsPerRow
	}
	return (p.front.count()*NormalPrice + p.back.count()*CheapPrice) * p.seatsPerRow
}
