package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultINI is written verbatim when no settings file exists. The
// %(key)s references in launch_args resolve against same-section keys at
// load time, matching the interpolation the original settings file relied
// on. The value is informative only; the service wrapper owns the actual
// lmgrd invocation.
const DefaultINI = `[Autodesk]
service_name = AutodeskLicenseServer
process_names = lmgrd.exe, adskflex.exe
working_dir = C:\Autodesk
lmgrd_path = C:\Autodesk\lmgrd.exe
license_file = C:\Autodesk\SERVER1-AULES00155d06fb06-2024.lic
log_file = C:\Autodesk\logs\AutodeskLicenseLog.log
launch_args = -z -c %(license_file)s -l %(log_file)s

[Zoo]
service_name = McNeelZoo8
admin_exe = C:\Program Files (x86)\Zoo 8\ZooAdmin.Wpf.exe

[UI]
refresh_ms = 5000
window_size = 400x350
show_te_jodes = 1

[CLI]
allow_non_admin_cli = 1
`

type Autodesk struct {
	ServiceName  string
	ProcessNames []string
	WorkingDir   string
	LmgrdPath    string
	LicenseFile  string
	LogFile      string
	LaunchArgs   string
}

type Zoo struct {
	ServiceName string
	AdminExe    string
}

type UI struct {
	RefreshMS    int
	WindowWidth  int
	WindowHeight int
	ShowTeJodes  bool
}

type CLI struct {
	AllowNonAdminCLI bool
}

// Config is immutable after Load and passed explicitly to every component.
type Config struct {
	Path     string
	Autodesk Autodesk
	Zoo      Zoo
	UI       UI
	CLI      CLI
}

// DefaultPath returns config.ini next to the running executable.
func DefaultPath() string {
	self, err := os.Executable()
	if err != nil {
		return "config.ini"
	}
	return filepath.Join(filepath.Dir(self), "config.ini")
}

// Load reads the INI settings file at path, creating it from DefaultINI
// first when it does not exist. If the file cannot be created the built-in
// defaults are used as-is. Missing individual keys fall back to their
// built-in defaults. An empty path means DefaultPath().
func Load(path string, logger *logrus.Logger) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	setDefaults(v)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if werr := os.WriteFile(path, []byte(DefaultINI), 0644); werr != nil {
			// nothing to read; run on the built-in defaults
			logger.Errorf("could not create default config at %s: %v, using built-in defaults", path, werr)
			return fromViper(v, path), nil
		}
		logger.Warnf("config.ini not found, created default at %s", path)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return fromViper(v, path), nil
}

func fromViper(v *viper.Viper, path string) *Config {
	w, h := parseWindowSize(v.GetString("ui.window_size"))

	return &Config{
		Path: path,
		Autodesk: Autodesk{
			ServiceName:  v.GetString("autodesk.service_name"),
			ProcessNames: SplitProcessList(v.GetString("autodesk.process_names")),
			WorkingDir:   v.GetString("autodesk.working_dir"),
			LmgrdPath:    v.GetString("autodesk.lmgrd_path"),
			LicenseFile:  v.GetString("autodesk.license_file"),
			LogFile:      v.GetString("autodesk.log_file"),
			LaunchArgs:   v.GetString("autodesk.launch_args"),
		},
		Zoo: Zoo{
			ServiceName: v.GetString("zoo.service_name"),
			AdminExe:    v.GetString("zoo.admin_exe"),
		},
		UI: UI{
			RefreshMS:    v.GetInt("ui.refresh_ms"),
			WindowWidth:  w,
			WindowHeight: h,
			ShowTeJodes:  v.GetBool("ui.show_te_jodes"),
		},
		CLI: CLI{
			AllowNonAdminCLI: v.GetBool("cli.allow_non_admin_cli"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("autodesk.service_name", "AutodeskLicenseServer")
	v.SetDefault("autodesk.process_names", "lmgrd.exe, adskflex.exe")
	v.SetDefault("autodesk.working_dir", `C:\Autodesk`)
	v.SetDefault("autodesk.lmgrd_path", `C:\Autodesk\lmgrd.exe`)
	v.SetDefault("autodesk.license_file", `C:\Autodesk\SERVER1.lic`)
	v.SetDefault("autodesk.log_file", `C:\Autodesk\logs\AutodeskLicenseLog.log`)
	v.SetDefault("autodesk.launch_args", "")
	v.SetDefault("zoo.service_name", "McNeelZoo8")
	v.SetDefault("zoo.admin_exe", `C:\Program Files (x86)\Zoo 8\ZooAdmin.Wpf.exe`)
	v.SetDefault("ui.refresh_ms", 5000)
	v.SetDefault("ui.window_size", "400x350")
	v.SetDefault("ui.show_te_jodes", true)
	v.SetDefault("cli.allow_non_admin_cli", true)
}

// SplitProcessList turns "lmgrd.exe, adskflex.exe" into its trimmed parts,
// dropping empties.
func SplitProcessList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseWindowSize(s string) (int, int) {
	const defW, defH = 400, 350
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return defW, defH
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || w <= 0 {
		return defW, defH
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || h <= 0 {
		return defW, defH
	}
	return w, h
}
