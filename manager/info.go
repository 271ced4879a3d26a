package manager

import (
	"fmt"
	"strings"

	ps "github.com/elastic/go-sysinfo"

	"github.com/aulesit/licservctl/manager/services"
)

// InfoText builds the plain-text info sheet shared by the info view and
// --info.
func (m *Manager) InfoText() string {
	a := m.Cfg.Autodesk
	z := m.Cfg.Zoo

	var b strings.Builder
	fmt.Fprintf(&b, "LICENSE SERVICE MANAGER v%s\n", m.Version)
	b.WriteString("──────────────────────────────────────\n")
	b.WriteString("Controls the Autodesk (FlexLM) and Rhino Zoo license services.\n\n")

	b.WriteString("MANAGED SERVICES:\n")
	fmt.Fprintf(&b, " - %s (NSSM wrapper around lmgrd.exe)\n", a.ServiceName)
	fmt.Fprintf(&b, " - %s (official Rhino Zoo 8 service)\n\n", z.ServiceName)

	b.WriteString("STATUS CHECKS:\n")
	b.WriteString(" - Service state read from 'sc query' output\n")
	b.WriteString(" - License daemons cross-checked against the process list\n")
	b.WriteString(" - Autodesk stopped with lmgrd.exe still alive -> warning state\n\n")

	for _, name := range []string{a.ServiceName, z.ServiceName} {
		detail := services.GetServiceDetail(name)
		fmt.Fprintf(&b, "SERVICE %s:\n", name)
		fmt.Fprintf(&b, "   status: %s   start type: %s\n", detail.Status, detail.StartType)
		if detail.BinPath != "" {
			fmt.Fprintf(&b, "   binary: %s\n", detail.BinPath)
		}
		if detail.PID != 0 {
			fmt.Fprintf(&b, "   pid: %d\n", detail.PID)
		}
	}
	b.WriteString("\n")

	b.WriteString("PATHS (from config.ini):\n")
	fmt.Fprintf(&b, " - lmgrd_path: %s\n", a.LmgrdPath)
	fmt.Fprintf(&b, " - license_file: %s\n", a.LicenseFile)
	fmt.Fprintf(&b, " - log_file: %s\n", a.LogFile)
	if a.LaunchArgs != "" {
		fmt.Fprintf(&b, " - launch_args: %s\n", a.LaunchArgs)
	}
	fmt.Fprintf(&b, " - Zoo Admin: %s\n\n", z.AdminExe)

	if host, err := ps.Host(); err == nil {
		info := host.Info()
		b.WriteString("HOST:\n")
		fmt.Fprintf(&b, " - %s (%s %s)\n", info.Hostname, info.OS.Name, info.OS.Version)
		fmt.Fprintf(&b, " - up since %s\n\n", info.BootTime.Format("2006-01-02 15:04"))
	}

	b.WriteString("CLI USAGE:\n")
	b.WriteString("     licservctl --start-zoo\n")
	b.WriteString("     licservctl --restart-autodesk\n")
	b.WriteString("     licservctl --status\n\n")

	b.WriteString("PERMISSIONS:\n")
	b.WriteString(" - Run as administrator to control services\n\n")

	b.WriteString("STATUS LEGEND:\n")
	fmt.Fprintf(&b, " - %s  service running\n", StatusRunning.Glyph())
	fmt.Fprintf(&b, " - %s  service stopped\n", StatusStopped.Glyph())
	fmt.Fprintf(&b, " - %s  process alive, service not\n", StatusProcessOnly.Glyph())
	fmt.Fprintf(&b, " - %s  unknown state\n", StatusUnknown.Glyph())

	if m.Cfg.UI.ShowTeJodes {
		b.WriteString("\nSi no et funciona te jodes XD\n                                     - Quim\n")
	}
	return b.String()
}
