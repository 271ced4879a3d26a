package manager

import "strings"

// ServiceStatus is the four-way display state of a managed service. It is
// derived on every poll from the sc query blob and the process list, never
// stored.
type ServiceStatus int

const (
	StatusUnknown ServiceStatus = iota
	StatusRunning
	StatusStopped
	// StatusProcessOnly means the service is not reported running but one of
	// its daemon processes is alive anyway. Only the licensing service gets
	// this state; the Zoo service has no detached daemons.
	StatusProcessOnly
)

func (s ServiceStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	case StatusProcessOnly:
		return "process without service"
	default:
		return "unknown"
	}
}

// Glyph returns the one-character status marker used by both front ends.
func (s ServiceStatus) Glyph() string {
	switch s {
	case StatusRunning:
		return "⬤"
	case StatusStopped:
		return "○"
	case StatusProcessOnly:
		return "◐"
	default:
		return "?"
	}
}

// Classify maps an sc query blob plus the process-alive signal to a display
// state. First match wins; the precedence is the compatibility contract with
// the sc text output and must not be reordered. processFallback enables the
// ProcessOnly branch (licensing service only).
func Classify(queryText string, processAlive, processFallback bool) ServiceStatus {
	switch {
	case strings.Contains(queryText, "RUNNING"):
		return StatusRunning
	case processFallback && processAlive:
		return StatusProcessOnly
	case strings.Contains(queryText, "STOPPED"):
		return StatusStopped
	default:
		return StatusUnknown
	}
}
