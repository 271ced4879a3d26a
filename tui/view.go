package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/aulesit/licservctl/manager"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	runningStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	stoppedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	processOnlyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	unknownStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	menuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	frameStyle  = lipgloss.NewStyle().Margin(1, 2)
)

func statusStyle(s manager.ServiceStatus) lipgloss.Style {
	switch s {
	case manager.StatusRunning:
		return runningStyle
	case manager.StatusStopped:
		return stoppedStyle
	case manager.StatusProcessOnly:
		return processOnlyStyle
	default:
		return unknownStyle
	}
}

func statusLine(label string, s manager.ServiceStatus) string {
	return statusStyle(s).Render(fmt.Sprintf("%s %s: %s", s.Glyph(), label, s))
}

func (m Model) View() string {
	switch m.screen {
	case screenLog:
		return m.logView()
	case screenInfo:
		return m.infoView()
	default:
		return m.statusView()
	}
}

func (m Model) statusView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("License Service Manager v%s", m.version)))
	b.WriteString("\n\n")

	if !m.polled {
		b.WriteString(unknownStyle.Render("querying services..."))
		b.WriteString("\n")
	} else {
		b.WriteString(statusLine("Autodesk", m.snap.Autodesk))
		b.WriteString("\n")
		b.WriteString(statusLine("Zoo", m.snap.Zoo))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	menu := [][2]string{
		{"1", "start Autodesk"},
		{"2", "stop Autodesk"},
		{"3", "restart Autodesk"},
		{"4", "start Zoo"},
		{"5", "stop Zoo"},
		{"6", "restart Zoo"},
	}
	for _, it := range menu {
		b.WriteString(menuStyle.Render(fmt.Sprintf(" [%s] %s", it[0], it[1])))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return frameStyle.Render(b.String())
}

func (m Model) logView() string {
	header := titleStyle.Render("Autodesk log — " + m.cfg.Autodesk.LogFile)
	body := m.vp.View()
	footer := m.help.View(backOnlyKeys{m.keys})
	return frameStyle.Render(header + "\n" + body + "\n" + footer)
}

func (m Model) infoView() string {
	header := titleStyle.Render("Info")
	body := m.vp.View()
	footer := m.help.View(backOnlyKeys{m.keys})
	return frameStyle.Render(header + "\n" + body + "\n" + footer)
}

// backOnlyKeys narrows the help footer on sub-screens.
type backOnlyKeys struct{ k keyMap }

func (b backOnlyKeys) ShortHelp() []key.Binding {
	return []key.Binding{b.k.Back, b.k.Quit}
}

func (b backOnlyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{b.k.Back, b.k.Quit}}
}
