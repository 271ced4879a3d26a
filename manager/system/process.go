package system

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// KillOutcome is the tri-state result of a forced-termination pass.
type KillOutcome int

const (
	// KillNone means no configured process was running.
	KillNone KillOutcome = iota
	// KillDone means at least one process was terminated.
	KillDone
	// KillError means termination of a running process failed.
	KillError
)

type KillResult struct {
	Outcome  KillOutcome
	ErrorMsg string
}

// ActiveProcesses returns the subset of names with a live process, matched
// case-insensitively as a substring of the running process name. Order
// follows the input list.
func ActiveProcesses(names []string) []string {
	running := runningProcessNames()
	active := make([]string, 0, len(names))
	for _, name := range names {
		needle := strings.ToLower(name)
		for _, have := range running {
			if strings.Contains(have, needle) {
				active = append(active, name)
				break
			}
		}
	}
	return active
}

// KillProcesses force-terminates every running process matching the given
// names. The stop action runs this unconditionally for the licensing daemons
// to clean up orphans the service manager leaves behind.
func KillProcesses(names []string) KillResult {
	procs, err := process.Processes()
	if err != nil {
		return KillResult{Outcome: KillError, ErrorMsg: err.Error()}
	}

	killed := false
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue
		}
		if !nameMatches(pname, names) {
			continue
		}
		if err := KillProc(p.Pid); err != nil {
			return KillResult{Outcome: KillError, ErrorMsg: err.Error()}
		}
		killed = true
	}

	if !killed {
		return KillResult{Outcome: KillNone}
	}
	return KillResult{Outcome: KillDone}
}

// KillProc kills a process and its children
func KillProc(pid int32) error {
	p, err := process.NewProcess(pid)
	if err != nil {
		return err
	}

	children, err := p.Children()
	if err == nil {
		for _, child := range children {
			if err := child.Kill(); err != nil {
				continue
			}
		}
	}

	if err := p.Kill(); err != nil {
		return err
	}
	return nil
}

func runningProcessNames() []string {
	procs, err := process.Processes()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		names = append(names, strings.ToLower(name))
	}
	return names
}

func nameMatches(procName string, targets []string) bool {
	have := strings.ToLower(procName)
	for _, t := range targets {
		if strings.Contains(have, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
