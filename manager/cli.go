package manager

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotElevated is returned when CLI actions are requested without admin
// rights and the config does not allow that.
var ErrNotElevated = errors.New("administrator rights required for CLI actions")

// CLIFlags mirrors the action flags. Each flag is independent; several may
// be set in one invocation.
type CLIFlags struct {
	StartZoo        bool
	StopZoo         bool
	RestartZoo      bool
	StartAutodesk   bool
	StopAutodesk    bool
	RestartAutodesk bool
	Status          bool
	Info            bool
}

// Any reports whether at least one action flag is set; none means GUI mode.
func (f CLIFlags) Any() bool {
	return f.StartZoo || f.StopZoo || f.RestartZoo ||
		f.StartAutodesk || f.StopAutodesk || f.RestartAutodesk ||
		f.Status || f.Info
}

// RunCLI executes the set flags in fixed declaration order: zoo
// start/stop/restart, autodesk start/stop/restart, status, info. The order
// is part of the observable contract and does not follow argv order.
func (m *Manager) RunCLI(ctx context.Context, f CLIFlags) error {
	if !m.elevated() && !m.Cfg.CLI.AllowNonAdminCLI {
		fmt.Fprintln(m.out, "[error] administrator rights are required for CLI actions")
		return ErrNotElevated
	}

	zoo := m.Cfg.Zoo.ServiceName
	adsk := m.Cfg.Autodesk.ServiceName

	if f.StartZoo {
		fmt.Fprintln(m.out, m.StartService(ctx, zoo))
	}
	if f.StopZoo {
		fmt.Fprintln(m.out, m.StopService(ctx, zoo, false))
	}
	if f.RestartZoo {
		fmt.Fprintln(m.out, m.RestartService(ctx, zoo, false))
	}

	if f.StartAutodesk {
		fmt.Fprintln(m.out, m.StartService(ctx, adsk))
	}
	if f.StopAutodesk {
		fmt.Fprintln(m.out, m.StopService(ctx, adsk, true))
	}
	if f.RestartAutodesk {
		fmt.Fprintln(m.out, m.RestartService(ctx, adsk, true))
	}

	if f.Status {
		m.printStatus(ctx)
	}
	if f.Info {
		fmt.Fprint(m.out, m.InfoText())
	}
	return nil
}

// printStatus prints both raw query blobs and, as side effects, opens a
// follow console on the Autodesk log and launches Zoo Admin when those paths
// exist. Missing targets get an advisory line instead.
func (m *Manager) printStatus(ctx context.Context) {
	fmt.Fprintln(m.out, "== Service status ==")
	fmt.Fprintln(m.out, "-> Autodesk:")
	fmt.Fprintln(m.out, m.control(ctx, "query", m.Cfg.Autodesk.ServiceName))
	fmt.Fprintln(m.out, "-> Zoo:")
	fmt.Fprintln(m.out, m.control(ctx, "query", m.Cfg.Zoo.ServiceName))

	for _, name := range m.MissingServices() {
		fmt.Fprintf(m.out, "[warn] service not installed: %s (check config.ini)\n", name)
	}

	logPath := m.Cfg.Autodesk.LogFile
	if m.fileExists(logPath) {
		if err := m.openFollow(logPath); err != nil {
			m.Logger.Errorln("opening follow console:", err)
			fmt.Fprintf(m.out, "[warn] could not open log console: %v\n", err)
		}
	} else {
		fmt.Fprintf(m.out, "[warn] Autodesk log not found: %s\n", logPath)
	}

	if err := m.LaunchZooAdmin(); err != nil {
		fmt.Fprintln(m.out, "ZooAdmin not found")
	}
}
