package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Binding is one hotkey-to-sound binding shown in the table.
type Binding struct {
	Name  string
	Combo string
	File  string
}

// Stopper can cut all currently playing sounds.
type Stopper interface {
	StopAll()
}

// Messages sent through the Bubble Tea update loop.

// FiredMsg reports that the named binding's hotkey fired.
type FiredMsg struct {
	Name string
}

// StoppedMsg reports that playback was stopped via the stop hotkey.
type StoppedMsg struct{}

type copyResultMsg struct {
	err error
}

type statusTimeoutMsg struct{}

// DebugEntry is a structured debug log entry.
type DebugEntry struct {
	Time     string // e.g. "11:27:53"
	Category string // e.g. "hotkey", "sound"
	Message  string // the log message
}

// DebugLogMsg carries a structured debug log entry into the TUI.
type DebugLogMsg struct {
	Entry DebugEntry
}

// event is one fired hotkey shown in the recent-activity list.
type event struct {
	time time.Time
	name string
}

const (
	maxDebugLines = 50
	maxEvents     = 8
)

// Model is the Bubble Tea model for the klang TUI.
type Model struct {
	Bindings     []Binding
	StopCombo    string
	Stopper      Stopper
	DebugMode    bool
	DebugEntries []DebugEntry

	themeName string
	counts    map[string]int
	events    []event
	status    string
}

// NewModel creates a new TUI model.
func NewModel(bindings []Binding, stopCombo, themeName string, stopper Stopper, debug bool) Model {
	applyTheme(LoadTheme(themeName))
	return Model{
		Bindings:  bindings,
		StopCombo: stopCombo,
		Stopper:   stopper,
		DebugMode: debug,
		themeName: strings.ToLower(themeName),
		counts:    make(map[string]int),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and transitions state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.Stopper != nil {
				m.Stopper.StopAll()
			}
			m.status = "playback stopped"
			return m, scheduleStatusTimeout()
		case "c":
			return m, m.copyBindingsCmd()
		case "t":
			next := NextTheme(m.themeName)
			m.themeName = strings.ToLower(next.Name)
			applyTheme(next)
			m.status = "theme: " + next.Name
			return m, scheduleStatusTimeout()
		}

	case FiredMsg:
		m.counts[msg.Name]++
		m.events = append(m.events, event{time: time.Now(), name: msg.Name})
		if len(m.events) > maxEvents {
			m.events = m.events[len(m.events)-maxEvents:]
		}
		return m, nil

	case StoppedMsg:
		m.status = "playback stopped"
		return m, scheduleStatusTimeout()

	case copyResultMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "bindings copied to clipboard"
		}
		return m, scheduleStatusTimeout()

	case statusTimeoutMsg:
		m.status = ""

	case DebugLogMsg:
		m.DebugEntries = append(m.DebugEntries, msg.Entry)
		if len(m.DebugEntries) > maxDebugLines {
			m.DebugEntries = m.DebugEntries[len(m.DebugEntries)-maxDebugLines:]
		}
	}

	return m, nil
}

func (m Model) copyBindingsCmd() tea.Cmd {
	text := m.bindingsText()
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.WriteAll(text)}
	}
}

// bindingsText renders the binding table as plain text for the clipboard.
func (m Model) bindingsText() string {
	var b strings.Builder
	for _, binding := range m.Bindings {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", binding.Combo, binding.Name, binding.File)
	}
	if m.StopCombo != "" {
		fmt.Fprintf(&b, "%s\tstop all\n", m.StopCombo)
	}
	return b.String()
}

func scheduleStatusTimeout() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusTimeoutMsg{}
	})
}
