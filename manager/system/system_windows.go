package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func controlCommand(ctx context.Context, verb, service string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "sc", verb, service)
	cmd.SysProcAttr = &windows.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
	return cmd
}

func followExe() string {
	return getPowershellExe()
}

func followArgs(path string) []string {
	return []string{
		"-NonInteractive", "-NoProfile", "-Command",
		fmt.Sprintf("Get-Content -Path '%s' -Wait", path),
	}
}

// OpenConsoleFollow pops a fresh console that follows the given log file and
// stays open. Fire and forget; used by the CLI status action.
func OpenConsoleFollow(path string) error {
	cmd := exec.Command(getPowershellExe(), "-NoExit",
		fmt.Sprintf("Get-Content '%s' -Wait", path))
	cmd.SysProcAttr = &windows.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// LaunchDetached starts an executable in its own process group so it
// outlives this program.
func LaunchDetached(exe string) error {
	cmd := exec.Command(exe)
	cmd.SysProcAttr = &windows.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// IsElevated reports whether the process runs with administrator rights.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

func getPowershellExe() string {
	powershell, err := exec.LookPath("powershell.exe")
	if err != nil || powershell == "" {
		return filepath.Join(os.Getenv("WINDIR"), `System32\WindowsPowerShell\v1.0\powershell.exe`)
	}
	return powershell
}
