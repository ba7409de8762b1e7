package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgoltzsche/echo-vui/internal/model"
)

const (
	Title                = "Voice Assistant"
	InitialStatus        = "Initializing..."
	InitialValue         = "..."
	TranscriptHeader     = "Log initialized..."
	DefaultMaxTranscript = 500
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFAA")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Bold(true)
	busyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	idleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF9F"))
	logStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF9F")).MarginTop(1)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// EventMsg delivers an assistant event to the program.
type EventMsg model.Event

// StoppedMsg tells the program that the assistant stopped.
type StoppedMsg struct{}

// Model renders the assistant's status, the last query and response
// as well as a scrolling transcript of all events.
type Model struct {
	MaxTranscript int
	status        string
	busy          bool
	query         string
	response      string
	transcript    []string
	width         int
	height        int
	stopped       bool
}

func NewModel() Model {
	return Model{
		MaxTranscript: DefaultMaxTranscript,
		status:        InitialStatus,
		query:         InitialValue,
		response:      InitialValue,
		transcript:    []string{TranscriptHeader},
	}
}

func (m Model) Status() string {
	return m.status
}

func (m Model) Busy() bool {
	return m.busy
}

func (m Model) Query() string {
	return m.query
}

func (m Model) Response() string {
	return m.response
}

func (m Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

func (m Model) Stopped() bool {
	return m.stopped
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m.apply(model.Event(msg)), nil
	case StoppedMsg:
		m.stopped = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.stopped = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) apply(evt model.Event) Model {
	switch evt.Kind {
	case model.StatusChanged:
		m.status = evt.Text
		m.busy = evt.Busy
	case model.QueryHeard:
		m.query = evt.Text
	case model.ResponseSpoken:
		m.response = evt.Text
	}

	m.transcript = append(m.transcript, evt.String())

	if m.MaxTranscript > 0 && len(m.transcript) > m.MaxTranscript {
		m.transcript = append([]string(nil), m.transcript[len(m.transcript)-m.MaxTranscript:]...)
	}

	return m
}

func (m Model) View() string {
	statusStyle := idleStyle
	if m.busy {
		statusStyle = busyStyle
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(m.field("Status:", statusStyle.Render(m.status)))
	b.WriteString(m.field("You Said:", m.query))
	b.WriteString(m.field("Response:", m.response))
	b.WriteString(logStyle.Render(strings.Join(m.visibleTranscript(), "\n")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) field(label, value string) string {
	if m.width > 0 {
		value = lipgloss.NewStyle().Width(m.width).Render(value)
	}

	return labelStyle.Render(label) + "\n" + value + "\n\n"
}

// visibleTranscript returns the tail of the transcript that fits the window.
func (m Model) visibleTranscript() []string {
	if m.height <= 0 {
		return m.transcript
	}

	// Lines taken by the title, the three fields and the help line.
	lines := m.height - 14
	if lines < 1 {
		lines = 1
	}

	if len(m.transcript) <= lines {
		return m.transcript
	}

	return m.transcript[len(m.transcript)-lines:]
}
