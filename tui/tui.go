// Package tui is the interactive front end: two status cells, the six
// service actions, the streaming log view and the info sheet.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aulesit/licservctl/manager"
	"github.com/aulesit/licservctl/manager/config"
	"github.com/aulesit/licservctl/manager/system"
)

// Backend is what the TUI needs from the Manager; an interface so the update
// loop is testable with a fake.
type Backend interface {
	Poll(ctx context.Context) manager.Snapshot
	StartService(ctx context.Context, service string) string
	StopService(ctx context.Context, service string, cleanupProcs bool) string
	RestartService(ctx context.Context, service string, cleanupProcs bool) string
	InfoText() string
	FollowLog(ctx context.Context) (<-chan string, error)
	LaunchZooAdmin() error
	Elevated() bool
}

type screen int

const (
	screenStatus screen = iota
	screenLog
	screenInfo
)

// deferred refresh delay after an action, matching the original UI feel
const actionRefreshDelay = 300 * time.Millisecond

const maxLogLines = 2000

type (
	tickMsg     struct{}
	refreshMsg  struct{}
	snapshotMsg manager.Snapshot
	// log pump messages carry their channel so a message from an already
	// closed follow session cannot disturb the current one
	logLineMsg struct {
		lines <-chan string
		text  string
	}
	logClosedMsg struct {
		lines <-chan string
	}
	actionDoneMsg struct {
		label string
		blob  string
	}
)

type Model struct {
	backend Backend
	cfg     *config.Config
	version string

	screen screen
	snap   manager.Snapshot
	polled bool
	notice string

	width  int
	height int

	vp       viewport.Model
	logLines []string
	logCh    <-chan string
	// logCancel kills the follow process; the pump drains to logClosedMsg
	// afterwards, which is the join point.
	logCancel context.CancelFunc

	keys keyMap
	help help.Model
}

func New(backend Backend, cfg *config.Config, version string) Model {
	m := Model{
		backend: backend,
		cfg:     cfg,
		version: version,
		keys:    newKeyMap(),
		help:    help.New(),
		// resized on the first WindowSizeMsg
		vp: viewport.New(80, 20),
	}
	if !backend.Elevated() {
		m.notice = "not running as administrator, service actions will fail"
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.tickCmd())
}

func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(m.backend.Poll(context.Background()))
	}
}

// self-rescheduling poll timer
func (m Model) tickCmd() tea.Cmd {
	interval := time.Duration(m.cfg.UI.RefreshMS) * time.Millisecond
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m Model) actionCmd(label string, run func(context.Context) string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{label: label, blob: run(context.Background())}
	}
}

func waitForLine(lines <-chan string) tea.Cmd {
	return func() tea.Msg {
		line, open := <-lines
		if !open {
			return logClosedMsg{lines: lines}
		}
		return logLineMsg{lines: lines, text: line}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.vp.Width = msg.Width - 2
		m.vp.Height = msg.Height - 4
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.pollCmd(), m.tickCmd())

	case refreshMsg:
		return m, m.pollCmd()

	case snapshotMsg:
		m.snap = manager.Snapshot(msg)
		m.polled = true
		return m, nil

	case actionDoneMsg:
		m.notice = msg.label + ": " + firstLine(msg.blob)
		return m, tea.Tick(actionRefreshDelay, func(time.Time) tea.Msg { return refreshMsg{} })

	case logLineMsg:
		if msg.lines != m.logCh {
			// stale pump from a closed session
			return m, nil
		}
		if m.screen == screenLog {
			m.logLines = append(m.logLines, msg.text)
			if len(m.logLines) > maxLogLines {
				m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
			}
			m.vp.SetContent(strings.Join(m.logLines, "\n"))
			m.vp.GotoBottom()
		}
		return m, waitForLine(m.logCh)

	case logClosedMsg:
		if msg.lines == m.logCh {
			m.logCh = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.closeLog()
		return m, tea.Quit
	}

	switch m.screen {
	case screenLog, screenInfo:
		if key.Matches(msg, m.keys.Back) {
			if m.screen == screenLog {
				m.closeLog()
			}
			m.screen = screenStatus
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	adsk := m.cfg.Autodesk.ServiceName
	zoo := m.cfg.Zoo.ServiceName

	switch {
	case key.Matches(msg, m.keys.StartAutodesk):
		return m, m.actionCmd("start "+adsk, func(ctx context.Context) string {
			return m.backend.StartService(ctx, adsk)
		})
	case key.Matches(msg, m.keys.StopAutodesk):
		return m, m.actionCmd("stop "+adsk, func(ctx context.Context) string {
			return m.backend.StopService(ctx, adsk, true)
		})
	case key.Matches(msg, m.keys.RestartAutodesk):
		return m, m.actionCmd("restart "+adsk, func(ctx context.Context) string {
			return m.backend.RestartService(ctx, adsk, true)
		})
	case key.Matches(msg, m.keys.StartZoo):
		return m, m.actionCmd("start "+zoo, func(ctx context.Context) string {
			return m.backend.StartService(ctx, zoo)
		})
	case key.Matches(msg, m.keys.StopZoo):
		return m, m.actionCmd("stop "+zoo, func(ctx context.Context) string {
			return m.backend.StopService(ctx, zoo, false)
		})
	case key.Matches(msg, m.keys.RestartZoo):
		return m, m.actionCmd("restart "+zoo, func(ctx context.Context) string {
			return m.backend.RestartService(ctx, zoo, false)
		})

	case key.Matches(msg, m.keys.Log):
		return m.openLog()

	case key.Matches(msg, m.keys.ZooAdmin):
		if err := m.backend.LaunchZooAdmin(); err != nil {
			m.notice = err.Error()
		} else {
			m.notice = "launched Zoo Admin"
		}
		return m, nil

	case key.Matches(msg, m.keys.Info):
		m.screen = screenInfo
		m.vp.SetContent(m.backend.InfoText())
		m.vp.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m Model) openLog() (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	lines, err := m.backend.FollowLog(ctx)
	if err != nil {
		cancel()
		m.notice = err.Error()
		return m, nil
	}

	m.logCancel = cancel
	m.logCh = lines
	m.logLines = nil
	m.screen = screenLog
	m.vp.SetContent("")
	return m, waitForLine(lines)
}

func (m *Model) closeLog() {
	if m.logCancel != nil {
		m.logCancel()
		m.logCancel = nil
	}
	m.logCh = nil
	m.logLines = nil
}

func firstLine(s string) string {
	s = system.StripAll(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "done"
	}
	return s
}

// Run starts the interactive program and blocks until quit.
func Run(mgr *manager.Manager, version string) error {
	p := tea.NewProgram(New(mgr, mgr.Cfg, version), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
