package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"cinema-room-manager/cinema"
	"cinema-room-manager/service"
)

type appState int

const (
	stateSetup appState = iota
	stateSeatMap
)

const (
	inputRows = iota
	inputSeats
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Buy     key.Binding
	Stats   key.Binding
	Numbers key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Buy:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "buy")),
		Stats:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "statistics")),
		Numbers: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle numbers")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "new room")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) seatMapHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Buy, k.Stats, k.Numbers, k.Back, k.Quit}
}

type appModel struct {
	logger *logrus.Entry

	state appState
	err   error

	width  int
	height int

	inputs []textinput.Model
	focus  int

	room   *cinema.Room
	office *service.BoxOffice

	cursorRow  int
	cursorSeat int

	showSeatNumbers bool
	showStats       bool

	status    string
	statusErr bool

	keys keyMap
	help help.Model
}

// New builds the program model. A nil room starts on the dimensions form.
func New(room *cinema.Room, logger *logrus.Entry) tea.Model {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	m := appModel{
		logger:          logger.WithField("component", "tui"),
		state:           stateSetup,
		showSeatNumbers: true,
		keys:            defaultKeyMap(),
		help:            help.New(),
	}

	m.inputs = []textinput.Model{
		newInput("Rows", "number of rows"),
		newInput("Seats", "seats in each row"),
	}
	m.inputs[inputRows].Focus()

	if room != nil {
		m.openRoom(room)
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.state == stateSetup {
		return textinput.Blink
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next
		// fallthrough to input update
	}

	if m.state != stateSetup {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSetup:
		return header + "\n\n" + m.setupView()
	case stateSeatMap:
		return header + "\n\n" + m.seatMapView()
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Cinema Room Manager")
	sub := []string{}
	if m.room != nil && m.state == stateSeatMap {
		sub = append(sub, fmt.Sprintf("Room: %d x %d", m.room.Rows(), m.room.SeatsPerRow()))
		if m.room.IsSmall() {
			sub = append(sub, fmt.Sprintf("Flat price: $%d", cinema.NormalPrice))
		} else {
			sub = append(sub, fmt.Sprintf("Front: $%d • Back: $%d", cinema.NormalPrice, cinema.CheapPrice))
		}
		sub = append(sub, fmt.Sprintf("Seat: row %d, seat %d", m.cursorRow, m.cursorSeat))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • tab next field • enter confirm"
	if m.state == stateSeatMap {
		hints = m.help.ShortHelpView(m.keys.seatMapHelp())
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) setupView() string {
	var b strings.Builder
	b.WriteString("Enter the room dimensions:\n\n")
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}
	if m.state == stateSetup {
		return m.handleSetupKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Buy):
		m.buySelected()
	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
	case key.Matches(msg, m.keys.Numbers):
		m.showSeatNumbers = !m.showSeatNumbers
	case key.Matches(msg, m.keys.Back):
		m.closeRoom()
		return m, textinput.Blink, true
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m appModel) handleSetupKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		return m, m.focusInput((m.focus + 1) % len(m.inputs)), true
	case "enter":
		if m.focus == inputRows {
			return m, m.focusInput(inputSeats), true
		}
		room, err := service.ParseDimensions(m.inputs[inputRows].Value(), m.inputs[inputSeats].Value())
		if err != nil {
			m.logger.WithError(err).Info("invalid room dimensions")
			m.err = err
			return m, m.focusInput(inputRows), true
		}
		m.openRoom(room)
		return m, nil, true
	}
	return m, nil, false
}

func (m *appModel) focusInput(index int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = index
	return m.inputs[m.focus].Focus()
}

func (m *appModel) openRoom(room *cinema.Room) {
	m.room = room
	m.office = service.NewBoxOffice(room, m.logger)
	m.state = stateSeatMap
	m.err = nil
	m.cursorRow = 1
	m.cursorSeat = 1
	m.status = ""
	m.statusErr = false
	m.showStats = false
}

func (m *appModel) closeRoom() {
	m.room = nil
	m.office = nil
	m.state = stateSetup
	m.status = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.inputs[m.focus].Blur()
	m.focus = inputRows
	m.inputs[m.focus].Focus()
}

func (m *appModel) moveCursor(dRow int, dSeat int) {
	m.cursorRow = clamp(m.cursorRow+dRow, 1, m.room.Rows())
	m.cursorSeat = clamp(m.cursorSeat+dSeat, 1, m.room.SeatsPerRow())
}

func (m *appModel) buySelected() {
	price, err := m.office.Sell(m.cursorRow, m.cursorSeat)
	if err != nil {
		m.status = service.Message(err)
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("Ticket price: $%d", price)
	m.statusErr = false
}

func newInput(prompt string, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = fmt.Sprintf("%-6s> ", prompt)
	ti.Placeholder = placeholder
	ti.CharLimit = 3
	ti.Width = 20
	return ti
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
