package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

type mockStopper struct {
	calls int
}

func (m *mockStopper) StopAll() {
	m.calls++
}

func newTestModel() (Model, *mockStopper) {
	stopper := &mockStopper{}
	bindings := []Binding{
		{Name: "airhorn", Combo: "CTRL-ALT-A", File: "airhorn.wav"},
		{Name: "drums", Combo: "CTRL-ALT-D", File: "drums.mp3"},
	}
	return NewModel(bindings, "CTRL-ALT-S", "synthwave", stopper, false), stopper
}

func TestInitialState(t *testing.T) {
	m, _ := newTestModel()
	if len(m.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(m.Bindings))
	}
	if len(m.events) != 0 {
		t.Error("expected no events initially")
	}
}

func TestFiredMsgCountsAndAppendsEvent(t *testing.T) {
	m, _ := newTestModel()
	updated, _ := m.Update(FiredMsg{Name: "airhorn"})
	updated, _ = updated.(Model).Update(FiredMsg{Name: "airhorn"})
	updated, _ = updated.(Model).Update(FiredMsg{Name: "drums"})
	model := updated.(Model)

	if model.counts["airhorn"] != 2 {
		t.Errorf("airhorn count = %d, want 2", model.counts["airhorn"])
	}
	if model.counts["drums"] != 1 {
		t.Errorf("drums count = %d, want 1", model.counts["drums"])
	}
	if len(model.events) != 3 {
		t.Errorf("event count = %d, want 3", len(model.events))
	}
}

func TestEventListIsBounded(t *testing.T) {
	m, _ := newTestModel()
	var updated tea.Model = m
	for i := 0; i < maxEvents+5; i++ {
		updated, _ = updated.(Model).Update(FiredMsg{Name: "airhorn"})
	}
	model := updated.(Model)
	if len(model.events) != maxEvents {
		t.Errorf("event count = %d, want %d", len(model.events), maxEvents)
	}
}

func TestStopKeyCallsStopper(t *testing.T) {
	m, stopper := newTestModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model := updated.(Model)

	if stopper.calls != 1 {
		t.Errorf("StopAll called %d times, want 1", stopper.calls)
	}
	if model.status == "" {
		t.Error("expected a status message after stopping")
	}
	if cmd == nil {
		t.Error("expected status timeout command")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel()
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %s", key.String())
		}
	}
}

func TestThemeCycling(t *testing.T) {
	m, _ := newTestModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	model := updated.(Model)
	if model.themeName != "everforest" {
		t.Errorf("theme after cycle = %s, want everforest", model.themeName)
	}
}

func TestStatusTimeoutClearsStatus(t *testing.T) {
	m, _ := newTestModel()
	m.status = "something"
	updated, _ := m.Update(statusTimeoutMsg{})
	if got := updated.(Model).status; got != "" {
		t.Errorf("status = %q, want empty", got)
	}
}

func TestBindingsText(t *testing.T) {
	m, _ := newTestModel()
	text := m.bindingsText()
	for _, want := range []string{"CTRL-ALT-A", "airhorn", "CTRL-ALT-S", "stop all"} {
		if !strings.Contains(text, want) {
			t.Errorf("bindings text missing %q:\n%s", want, text)
		}
	}
}

func TestViewContainsTitle(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()
	if !strings.Contains(view, "KLANG") {
		t.Error("expected view to contain 'KLANG'")
	}
}

func TestViewShowsBindings(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()
	for _, want := range []string{"CTRL-ALT-A", "airhorn", "drums"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestViewShowsRecentEvents(t *testing.T) {
	m, _ := newTestModel()
	updated, _ := m.Update(FiredMsg{Name: "drums"})
	view := updated.(Model).View()
	if !strings.Contains(view, "drums") {
		t.Error("expected view to contain fired event name")
	}
}

func TestDebugEntriesAreBounded(t *testing.T) {
	m, _ := newTestModel()
	var updated tea.Model = m
	for i := 0; i < maxDebugLines+10; i++ {
		updated, _ = updated.(Model).Update(DebugLogMsg{Entry: DebugEntry{Message: "x"}})
	}
	model := updated.(Model)
	if len(model.DebugEntries) != maxDebugLines {
		t.Errorf("debug entries = %d, want %d", len(model.DebugEntries), maxDebugLines)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantTime     string
		wantCategory string
	}{
		{"hotkey line", "[DEBUG] 11:27:53.123456 hotkey: registered CTRL-ALT-A", "11:27:53.123456", "hotkey"},
		{"sound line", "[DEBUG] 11:27:54.000001 sound: playing airhorn.wav", "11:27:54.000001", "sound"},
		{"no timestamp", "plain message", "", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := parseLine(tt.line)
			if entry.Time != tt.wantTime {
				t.Errorf("time = %q, want %q", entry.Time, tt.wantTime)
			}
			if entry.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", entry.Category, tt.wantCategory)
			}
		})
	}
}

func TestTruncationKeepsRunesWhole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii untouched", "ping", 10, "ping"},
		{"long ascii gets ellipsis", "a-very-long-sound-name", 10, "a-very-..."},
		{"exact fit untouched", "1234567890", 10, "1234567890"},
		{"multibyte untouched", "glöckchen", 10, "glöckchen"},
		{"multibyte cut on rune boundary", "glöckchen-läutet-zweimal", 10, "glöckch..."},
		{"wide runes cut whole", "効果音コレクション", 7, "効果音コ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8 %q", tt.in, tt.max, got)
			}
		})
	}
}

func TestClipKeepsRunesWhole(t *testing.T) {
	if got := clip("glöckchen", 5); got != "glöck" {
		t.Errorf("clip = %q, want %q", got, "glöck")
	}
	if got := clip("short", 15); got != "short" {
		t.Errorf("clip = %q, want %q", got, "short")
	}
	if !utf8.ValidString(clip("効果音", 2)) {
		t.Error("clip produced invalid UTF-8")
	}
}

func TestViewRendersMultibyteBindingName(t *testing.T) {
	m := NewModel([]Binding{
		{Name: "glöckchen-läutet-zweimal-und-noch-länger", Combo: "CTRL-ALT-1", File: "a.wav"},
	}, "CTRL-ALT-S", "synthwave", &mockStopper{}, false)

	view := m.View()
	if !utf8.ValidString(view) {
		t.Fatal("view contains invalid UTF-8")
	}
	if strings.ContainsRune(view, utf8.RuneError) {
		t.Error("view contains a replacement character")
	}
}
