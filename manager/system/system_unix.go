//go:build !windows
// +build !windows

package system

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Non-windows builds exist for development and tests. The control tool
// contract is unchanged: a missing sc binary surfaces as error text in the
// returned blob.
func controlCommand(ctx context.Context, verb, service string) *exec.Cmd {
	return exec.CommandContext(ctx, "sc", verb, service)
}

func followExe() string {
	return "tail"
}

func followArgs(path string) []string {
	return []string{"-f", path}
}

// OpenConsoleFollow has no console to open outside windows.
func OpenConsoleFollow(path string) error {
	return errors.New("follow console not supported on this platform")
}

// LaunchDetached starts an executable detached from this process.
func LaunchDetached(exe string) error {
	cmd := exec.Command(exe)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}
