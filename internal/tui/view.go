package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles. Populated by applyTheme before the first render.
var (
	titleStyle    lipgloss.Style
	borderStyle   lipgloss.Style
	labelStyle    lipgloss.Style
	comboStyle    lipgloss.Style
	nameStyle     lipgloss.Style
	countStyle    lipgloss.Style
	eventStyle    lipgloss.Style
	statusStyle   lipgloss.Style
	quitStyle     lipgloss.Style
	bodyStyle     lipgloss.Style
	headerStyle   lipgloss.Style
	ruleStyle     lipgloss.Style
	debugSepStyle lipgloss.Style
	debugCatStyle lipgloss.Style
	debugStyle    lipgloss.Style
)

// panelWidth is the total outer width of the main panel.
// borderStyle has: border (1+1) = 2, padding (2+2) = 4, total chrome = 6.
// Width() in lipgloss sets width including padding but excluding border.
const panelWidth = 80
const panelWidthForStyle = panelWidth - 2 // passed to borderStyle.Width()
const panelContentWidth = panelWidth - 6  // actual usable text area

// Binding table column widths. Row content must fit within panelContentWidth.
const (
	colComboWidth = 28
	colCountWidth = 7
	colNameWidth  = panelContentWidth - colComboWidth - colCountWidth
)

// View renders the TUI.
func (m Model) View() string {
	var b strings.Builder

	// Title, centered with color bars extending to panel edges
	titleText := "  KLANG  "
	barTotal := panelContentWidth - len(titleText)
	barLeft := barTotal / 2
	barRight := barTotal - barLeft
	title := strings.Repeat("▓", barLeft) + titleText + strings.Repeat("▓", barRight)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(m.renderBindings())
	b.WriteString("\n\n")
	b.WriteString(m.renderEvents())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(quitStyle.Render("q quit · s stop all · c copy bindings · t theme"))

	if m.DebugMode || len(m.DebugEntries) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.renderDebugPanel())
	}

	return borderStyle.Width(panelWidthForStyle).Render(b.String())
}

func (m Model) renderBindings() string {
	rule := ruleStyle.Render(strings.Repeat("─", panelContentWidth))

	var b strings.Builder
	b.WriteString(
		headerStyle.Width(colComboWidth).Render("HOTKEY") +
			headerStyle.Width(colNameWidth).Render("SOUND") +
			headerStyle.Width(colCountWidth).Render("PLAYED"))
	b.WriteString("\n")
	b.WriteString(rule)

	for _, binding := range m.Bindings {
		name := truncate(binding.Name, colNameWidth-1)
		count := ""
		if n := m.counts[binding.Name]; n > 0 {
			count = countStyle.Render(strconv.Itoa(n))
		}
		b.WriteString("\n")
		b.WriteString(
			comboStyle.Width(colComboWidth).Render(binding.Combo) +
				nameStyle.Width(colNameWidth).Render(name) +
				count)
	}
	if m.StopCombo != "" {
		b.WriteString("\n")
		b.WriteString(
			comboStyle.Width(colComboWidth).Render(m.StopCombo) +
				quitStyle.Render("stop all playback"))
	}
	return b.String()
}

func (m Model) renderEvents() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Recent:"))
	if len(m.events) == 0 {
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render("(nothing played yet)"))
		return b.String()
	}
	for i := len(m.events) - 1; i >= 0; i-- {
		ev := m.events[i]
		b.WriteString("\n")
		b.WriteString(eventStyle.Render(ev.time.Format("15:04:05") + "  " + ev.name))
	}
	return b.String()
}

const debugPanelMaxLines = 5

// Debug table column widths. Row content must fit within panelContentWidth.
const (
	colTimeWidth     = 15
	colCategoryWidth = 10
	colSepWidth      = 3 // " │ "
	colDebugMsgWidth = panelContentWidth - colTimeWidth - colCategoryWidth - colSepWidth*2
)

func (m Model) renderDebugPanel() string {
	sep := debugSepStyle.Render(" │ ")
	rule := ruleStyle.Render(strings.Repeat("─", panelContentWidth))

	var db strings.Builder

	db.WriteString(headerStyle.Render("Debug"))
	db.WriteString("\n")
	db.WriteString(rule)
	db.WriteString("\n")

	db.WriteString(
		headerStyle.Width(colTimeWidth).Render("TIME") +
			sep +
			headerStyle.Width(colCategoryWidth).Render("TYPE") +
			sep +
			headerStyle.Width(colDebugMsgWidth).Render("MESSAGE"))
	db.WriteString("\n")
	db.WriteString(rule)

	entries := m.DebugEntries
	if len(entries) > debugPanelMaxLines {
		entries = entries[len(entries)-debugPanelMaxLines:]
	}
	for _, entry := range entries {
		timeStr := clip(entry.Time, colTimeWidth)
		cat := clip(entry.Category, colCategoryWidth)
		msg := truncate(entry.Message, colDebugMsgWidth)

		db.WriteString("\n")
		db.WriteString(
			debugStyle.Width(colTimeWidth).Render(timeStr) +
				sep +
				debugCatStyle.Width(colCategoryWidth).Render(cat) +
				sep +
				debugStyle.Width(colDebugMsgWidth).Render(msg))
	}

	return db.String()
}

// clip cuts s to at most max runes. Slicing runes rather than bytes keeps
// multi-byte characters intact.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// truncate clips s to at most max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
