package manager

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aulesit/licservctl/manager/config"
	"github.com/aulesit/licservctl/manager/services"
	"github.com/aulesit/licservctl/manager/system"
)

// Manager is the application context shared by the TUI and the CLI mode. It
// owns the configuration, the logger and the handles to the OS tooling; the
// tool hooks are swappable so the dispatch logic is testable without a
// service manager present.
type Manager struct {
	Cfg     *config.Config
	Logger  *logrus.Logger
	Version string

	control    func(ctx context.Context, verb, service string) string
	activeList func(names []string) []string
	kill       func(names []string) system.KillResult
	elevated   func() bool
	openFollow func(path string) error
	follow     func(ctx context.Context, path string) <-chan string
	launch     func(exe string) error
	fileExists func(path string) bool
	svcExists  func(name string) bool

	out io.Writer
}

func New(cfg *config.Config, logger *logrus.Logger, version string) *Manager {
	return &Manager{
		Cfg:        cfg,
		Logger:     logger,
		Version:    version,
		control:    system.ControlOutput,
		activeList: system.ActiveProcesses,
		kill:       system.KillProcesses,
		elevated:   system.IsElevated,
		openFollow: system.OpenConsoleFollow,
		follow:     system.Follow,
		launch:     system.LaunchDetached,
		fileExists: fileExists,
		svcExists:  services.ServiceExists,
		out:        os.Stdout,
	}
}

// StartService issues the start verb and returns the raw tool blob.
func (m *Manager) StartService(ctx context.Context, service string) string {
	m.Logger.Debugln("start", service)
	return m.control(ctx, "start", service)
}

// StopService issues the stop verb. When cleanupProcs is true the configured
// licensing daemons are force-killed afterwards regardless of what the stop
// command reported; the service wrapper is known to orphan them.
func (m *Manager) StopService(ctx context.Context, service string, cleanupProcs bool) string {
	m.Logger.Debugln("stop", service)
	out := m.control(ctx, "stop", service)
	if cleanupProcs {
		res := m.kill(m.Cfg.Autodesk.ProcessNames)
		switch res.Outcome {
		case system.KillDone:
			m.Logger.Infoln("killed orphaned license daemons")
		case system.KillError:
			m.Logger.Errorln("killing license daemons:", res.ErrorMsg)
		}
	}
	return out
}

// RestartService is stop followed by start, sequential, with no state
// verification in between; callers re-poll afterwards.
func (m *Manager) RestartService(ctx context.Context, service string, cleanupProcs bool) string {
	m.StopService(ctx, service, cleanupProcs)
	return m.StartService(ctx, service)
}

// Snapshot is one poll of both managed services.
type Snapshot struct {
	Autodesk      ServiceStatus
	Zoo           ServiceStatus
	AutodeskQuery string
	ZooQuery      string
}

// Poll queries both services and the licensing daemon processes and
// classifies the result.
func (m *Manager) Poll(ctx context.Context) Snapshot {
	aQuery := m.control(ctx, "query", m.Cfg.Autodesk.ServiceName)
	zQuery := m.control(ctx, "query", m.Cfg.Zoo.ServiceName)
	procAlive := len(m.activeList(m.Cfg.Autodesk.ProcessNames)) > 0

	return Snapshot{
		Autodesk:      Classify(aQuery, procAlive, true),
		Zoo:           Classify(zQuery, procAlive, false),
		AutodeskQuery: aQuery,
		ZooQuery:      zQuery,
	}
}

// Elevated reports whether the process has administrator rights.
func (m *Manager) Elevated() bool {
	return m.elevated()
}

// MissingServices returns the configured service names the SCM does not
// know about, so a renamed or uninstalled service shows up as a config
// problem instead of a permanently Unknown cell.
func (m *Manager) MissingServices() []string {
	var missing []string
	for _, name := range []string{m.Cfg.Autodesk.ServiceName, m.Cfg.Zoo.ServiceName} {
		if !m.svcExists(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// FollowLog starts streaming the Autodesk log. The returned channel closes
// once the follow process exits; cancelling ctx stops it.
func (m *Manager) FollowLog(ctx context.Context) (<-chan string, error) {
	path := m.Cfg.Autodesk.LogFile
	if !m.fileExists(path) {
		return nil, &MissingFileError{Path: path}
	}
	return m.follow(ctx, path), nil
}

// LaunchZooAdmin starts the vendor admin tool detached. Missing executable
// is reported, not fatal.
func (m *Manager) LaunchZooAdmin() error {
	exe := m.Cfg.Zoo.AdminExe
	if !m.fileExists(exe) {
		return &MissingFileError{Path: exe}
	}
	return m.launch(exe)
}

// MissingFileError marks a configured path that no longer exists.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return "file not found: " + e.Path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
