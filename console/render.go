package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"cinema-room-manager/cinema"
	"cinema-room-manager/model"
)

const (
	StylePlain = "plain"
	StyleTable = "table"
)

type Renderer interface {
	Chart(room *cinema.Room) string
	Statistics(stats model.Statistics) string
}

// NewRenderer returns the renderer for style, falling back to plain text.
func NewRenderer(style string) Renderer {
	if strings.EqualFold(strings.TrimSpace(style), StyleTable) {
		return TableRenderer{}
	}
	return PlainRenderer{}
}

// PlainRenderer prints the classic line-oriented output.
type PlainRenderer struct{}

func (PlainRenderer) Chart(room *cinema.Room) string {
	lines := []string{"Cinema:"}
	for line := range room.Chart() {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (PlainRenderer) Statistics(stats model.Statistics) string {
	return strings.Join([]string{
		fmt.Sprintf("Number of purchased tickets: %d", stats.PurchasedTickets),
		fmt.Sprintf("Percentage: %s", stats.PercentageText()),
		fmt.Sprintf("Current income: $%d", stats.CurrentIncome),
		fmt.Sprintf("Total income: $%d", stats.TotalIncome),
	}, "\n")
}

// TableRenderer draws boxed tables, adding the row price to the chart.
type TableRenderer struct{}

func (TableRenderer) Chart(room *cinema.Room) string {
	t := table.NewWriter()
	t.SetTitle("Cinema")
	t.SetStyle(table.StyleLight)

	header := table.Row{"Row"}
	for seat := 1; seat <= room.SeatsPerRow(); seat++ {
		header = append(header, seat)
	}
	header = append(header, "Price")
	t.AppendHeader(header)

	for row := 1; row <= room.Rows(); row++ {
		items := table.Row{row}
		for seat := 1; seat <= room.SeatsPerRow(); seat++ {
			state, _ := room.SeatAt(row, seat)
			items = append(items, state.Marker())
		}
		items = append(items, fmt.Sprintf("$%d", room.PriceForRow(row)))
		t.AppendRow(items)
	}
	return t.Render()
}

func (TableRenderer) Statistics(stats model.Statistics) string {
	t := table.NewWriter()
	t.SetTitle("Statistics")
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Number of purchased tickets", stats.PurchasedTickets},
		{"Percentage", stats.PercentageText()},
		{"Current income", fmt.Sprintf("$%d", stats.CurrentIncome)},
		{"Total income", fmt.Sprintf("$%d", stats.TotalIncome)},
	})
	return t.Render()
}
