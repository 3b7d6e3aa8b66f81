// Package tui is the terminal gamma preview, for builds or hosts
// without a display. Ramps are drawn as truecolor background cells.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/gammagen/internal/gamma"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// rampCells is how many terminal cells one 256-entry table is sampled
// into. 64 keeps rows inside an 80-column terminal with the label.
const rampCells = 64

type previewModel struct {
	set    *gamma.Set
	active int
	invert bool
}

// Run renders the terminal preview on the given start preset and
// blocks until the user quits.
func Run(set *gamma.Set, start int) error {
	m := previewModel{set: set, active: start}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "g", "down", "j":
			m.active = m.set.Next(m.active)
			return m, nil
		case "up", "k":
			m.active = (m.active + m.set.Len() - 1) % m.set.Len()
			return m, nil
		case "i":
			m.invert = !m.invert
			return m, nil
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var out strings.Builder
	out.WriteString(titleStyle.Render(fmt.Sprintf("[ GAM %s ]", m.set.Labels[m.active])))
	if m.invert {
		out.WriteString(titleStyle.Render("  [INV]"))
	}
	out.WriteString("\n\n")

	for row, label := range m.set.Labels {
		cursor := "  "
		rendered := dimStyle.Render(label)
		if row == m.active {
			cursor = "> "
			rendered = activeStyle.Render(label)
		}
		out.WriteString(cursor + rendered + "  " + m.ramp(row) + "\n")
	}

	out.WriteString("\n" + dimStyle.Render("g/↓ cycle, ↑ back, i invert, q quit") + "\n")
	return out.String()
}

// ramp samples one table into rampCells background-coloured spaces.
func (m previewModel) ramp(row int) string {
	table := &m.set.Tables[row]
	var b strings.Builder
	for c := 0; c < rampCells; c++ {
		v := table[c*256/rampCells]
		if m.invert {
			v = ^v
		}
		shade := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v))
		b.WriteString(lipgloss.NewStyle().Background(shade).Render(" "))
	}
	return b.String()
}
