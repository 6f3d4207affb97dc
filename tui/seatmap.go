package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinema-room-manager/cinema"
	"cinema-room-manager/model"
)

var (
	seatStyleEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleFront  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	seatStyleTaken  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleCursor = lipgloss.NewStyle().Reverse(true)
)

func (m appModel) seatMapView() string {
	if m.room == nil {
		return "No room."
	}

	rows := m.room.Rows()
	cols := m.room.SeatsPerRow()
	rowWidth := len(strconv.Itoa(rows))
	cellWidth := 1
	if m.showSeatNumbers {
		cellWidth = len(strconv.Itoa(cols))
	}
	gridWidth := cols*(cellWidth+1) - 1

	var b strings.Builder
	b.WriteString(screenBar(gridWidth, rowWidth+1) + "\n")

	if m.showSeatNumbers {
		b.WriteString(strings.Repeat(" ", rowWidth+1))
		for seat := 1; seat <= cols; seat++ {
			b.WriteString(hint(alignCell(strconv.Itoa(seat), cellWidth)))
			if seat < cols {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	for row := 1; row <= rows; row++ {
		front := !m.room.IsSmall() && m.room.PriceForRow(row) == cinema.NormalPrice
		b.WriteString(fmt.Sprintf("%*d ", rowWidth, row))
		for seat := 1; seat <= cols; seat++ {
			state, _ := m.room.SeatAt(row, seat)
			cell := alignCell(state.Marker(), cellWidth)
			switch {
			case state == model.SeatTaken:
				cell = seatStyleTaken.Render(cell)
			case front:
				cell = seatStyleFront.Render(cell)
			default:
				cell = seatStyleEmpty.Render(cell)
			}
			if row == m.cursorRow && seat == m.cursorSeat {
				cell = seatStyleCursor.Render(cell)
			}
			b.WriteString(cell)
			if seat < cols {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" $%d\n", m.room.PriceForRow(row)))
	}

	b.WriteString("\n")
	legend := "Legend: S available • B sold"
	if !m.room.IsSmall() {
		legend += " • front rows in yellow"
	}
	b.WriteString(hint(legend))
	b.WriteString("\n")

	if m.status != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
		if m.statusErr {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	if m.showStats {
		b.WriteString(m.statisticsPanel())
	}
	return b.String()
}

func (m appModel) statisticsPanel() string {
	stats := m.room.Statistics()
	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render("Statistics"),
		"",
		fmt.Sprintf("Number of purchased tickets: %d", stats.PurchasedTickets),
		fmt.Sprintf("Percentage: %s", stats.PercentageText()),
		fmt.Sprintf("Current income: $%d", stats.CurrentIncome),
		fmt.Sprintf("Total income: $%d", stats.TotalIncome),
	}, "\n")

	return lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		MarginTop(1).
		Render(content)
}

// alignCell right-aligns a marker or seat number in a column of width
// runes, matching the right-aligned row labels.
func alignCell(text string, width int) string {
	return fmt.Sprintf("%*s", width, text)
}

const screenLabel = "SCREEN"

// screenBar draws the screen above the grid, at least as wide as the seats.
func screenBar(gridWidth int, indent int) string {
	inner := max(gridWidth-2, len(screenLabel)+2)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(inner).
		Align(lipgloss.Center).
		MarginLeft(indent).
		Render(screenLabel)
}
