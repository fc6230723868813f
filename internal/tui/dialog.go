// Package tui is a terminal rendition of the grid-split dialog. It forwards
// key presses to the session as split-count, even-mode and edit events and
// renders both axes side by side.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridsplit/internal/format"
	"gridsplit/internal/partition"
	"gridsplit/internal/session"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(30)
	focusStyle   = paneStyle.BorderForeground(lipgloss.Color("63"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model of the dialog.
type Model struct {
	session *session.Session
	focus   partition.Direction
	cursor  [2]int
	help    help.Model
	status  string
	limit   int

	confirmed bool
	done      bool

	copyText func(string) error
}

// New returns a dialog editing s. Split counts are offered up to maxSplits;
// values outside [1, partition.MaxSplits] mean partition.MaxSplits.
func New(s *session.Session, maxSplits int) Model {
	if maxSplits < 1 || maxSplits > partition.MaxSplits {
		maxSplits = partition.MaxSplits
	}
	return Model{
		session:  s,
		help:     help.New(),
		limit:    maxSplits,
		copyText: clipboard.WriteAll,
	}
}

// Confirmed reports whether the dialog was closed with OK.
func (m Model) Confirmed() bool { return m.confirmed }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if ws, ok := msg.(tea.WindowSizeMsg); ok {
			m.help.Width = ws.Width
		}
		return m, nil
	}

	axis := m.session.Model.Axis(m.focus)
	m.status = ""

	switch {
	case key.Matches(km, keys.Confirm):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(km, keys.Cancel):
		m.done = true
		return m, tea.Quit
	case key.Matches(km, keys.NextAxis):
		m.focus = 1 - m.focus
	case key.Matches(km, keys.More):
		if axis.SplitCount() < m.limit {
			m.session.SetSplitCount(m.focus, axis.SplitCount()+1)
		}
	case key.Matches(km, keys.Fewer):
		if axis.SplitCount() > 1 {
			m.session.SetSplitCount(m.focus, axis.SplitCount()-1)
		}
	case key.Matches(km, keys.Even):
		m.session.ToggleEvenMode(m.focus, !axis.Even())
	case key.Matches(km, keys.Up):
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}
	case key.Matches(km, keys.Down):
		if m.cursor[m.focus] < axis.Len()-1 {
			m.cursor[m.focus]++
		}
	case key.Matches(km, keys.Inc):
		m.nudge(1)
	case key.Matches(km, keys.Dec):
		m.nudge(-1)
	case key.Matches(km, keys.IncBig):
		m.nudge(10)
	case key.Matches(km, keys.DecBig):
		m.nudge(-10)
	case key.Matches(km, keys.Copy):
		if err := m.copyText(m.cropsText()); err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.status = "Cuts copied to clipboard"
		}
	}

	// Shrinking the axis can leave the cursor past the end
	if last := m.session.Model.Axis(m.focus).Len() - 1; m.cursor[m.focus] > last {
		m.cursor[m.focus] = last
	}
	return m, nil
}

// nudge edits the selected entry of the focused axis by delta percent.
func (m Model) nudge(delta int) {
	pos := m.cursor[m.focus]
	entries := m.session.Model.Axis(m.focus).Entries()
	if pos >= len(entries) {
		return
	}
	value := min(max(entries[pos].Percent+delta, 0), 100)
	m.session.EditEntry(m.focus, pos, value)
}

func (m Model) cropsText() string {
	v, h := m.session.Model.Confirm(true)
	return fmt.Sprintf("vertical: %s\nhorizontal: %s", format.FormatCrops(v), format.FormatCrops(h))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	panes := make([]string, 0, len(partition.Directions))
	for _, d := range partition.Directions {
		panes = append(panes, m.viewAxis(d))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Grid splitting"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) viewAxis(d partition.Direction) string {
	a := m.session.Model.Axis(d)

	check := "[ ]"
	if a.Even() {
		check = "[x]"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(format.AxisTitle(d)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %d\n", format.SplitsLabel(d), a.SplitCount()))
	b.WriteString(fmt.Sprintf("%s %s\n\n", check, format.EvenLabel(d)))
	b.WriteString(mutedStyle.Render(format.FormatAxisHeader(d)))
	b.WriteString("\n")

	for i, e := range a.Entries() {
		line := format.FormatEntry(e)
		if d == m.focus && i == m.cursor[d] {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if sum := a.Sum(); sum != 100 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("Sum: %d%%", sum)))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(format.FormatCrops(a.Crops())))

	style := paneStyle
	if d == m.focus {
		style = focusStyle
	}
	return style.Render(b.String())
}

// Run shows the dialog until the user confirms or cancels. The session is
// left as edited; the caller confirms it.
func Run(s *session.Session, maxSplits int) (bool, error) {
	final, err := tea.NewProgram(New(s, maxSplits)).Run()
	if err != nil {
		return false, err
	}
	return final.(Model).Confirmed(), nil
}
