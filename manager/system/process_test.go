package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestActiveProcessesFindsSelf(t *testing.T) {
	self := filepath.Base(os.Args[0])

	active := ActiveProcesses([]string{self})
	if len(active) != 1 || active[0] != self {
		t.Errorf("expected to find own process %q, got %v", self, active)
	}
}

func TestActiveProcessesNoMatch(t *testing.T) {
	active := ActiveProcesses([]string{"definitely-not-a-process-9f8e7d.exe"})
	if len(active) != 0 {
		t.Errorf("expected no matches, got %v", active)
	}
}

func TestActiveProcessesEmptyInput(t *testing.T) {
	if active := ActiveProcesses(nil); len(active) != 0 {
		t.Errorf("expected empty result, got %v", active)
	}
}

func TestKillProcessesNoneRunning(t *testing.T) {
	res := KillProcesses([]string{"definitely-not-a-process-9f8e7d.exe"})
	if res.Outcome != KillNone {
		t.Errorf("outcome = %v, want KillNone (%s)", res.Outcome, res.ErrorMsg)
	}
}

func TestNameMatches(t *testing.T) {
	tests := []struct {
		proc    string
		targets []string
		want    bool
	}{
		{"lmgrd.exe", []string{"lmgrd.exe", "adskflex.exe"}, true},
		{"LMGRD.EXE", []string{"lmgrd.exe"}, true},
		{"adskflex.exe", []string{"lmgrd.exe"}, false},
		{"lmgrd.exe", nil, false},
	}
	for _, tt := range tests {
		if got := nameMatches(tt.proc, tt.targets); got != tt.want {
			t.Errorf("nameMatches(%q, %v) = %v, want %v", tt.proc, tt.targets, got, tt.want)
		}
	}
}
