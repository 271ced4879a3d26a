package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	cfg, err := Load(path, testLogger())
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default file not created: %v", err)
	}
	if string(written) != DefaultINI {
		t.Errorf("default file differs from DefaultINI\ngot:\n%s", written)
	}

	if cfg.Autodesk.ServiceName != "AutodeskLicenseServer" {
		t.Errorf("service_name = %q", cfg.Autodesk.ServiceName)
	}
	if want := []string{"lmgrd.exe", "adskflex.exe"}; !reflect.DeepEqual(cfg.Autodesk.ProcessNames, want) {
		t.Errorf("process_names = %v, want %v", cfg.Autodesk.ProcessNames, want)
	}
	if cfg.Zoo.ServiceName != "McNeelZoo8" {
		t.Errorf("zoo service_name = %q", cfg.Zoo.ServiceName)
	}
	if cfg.UI.RefreshMS != 5000 {
		t.Errorf("refresh_ms = %d", cfg.UI.RefreshMS)
	}
	if cfg.UI.WindowWidth != 400 || cfg.UI.WindowHeight != 350 {
		t.Errorf("window size = %dx%d", cfg.UI.WindowWidth, cfg.UI.WindowHeight)
	}
	if !cfg.UI.ShowTeJodes {
		t.Error("show_te_jodes should default to true")
	}
	if !cfg.CLI.AllowNonAdminCLI {
		t.Error("allow_non_admin_cli should default to true")
	}

	// %(key)s references resolve against the section at load time
	want := `-z -c C:\Autodesk\SERVER1-AULES00155d06fb06-2024.lic -l C:\Autodesk\logs\AutodeskLicenseLog.log`
	if cfg.Autodesk.LaunchArgs != want {
		t.Errorf("launch_args = %q, want %q", cfg.Autodesk.LaunchArgs, want)
	}
}

func TestLoadMissingKeysFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	partial := "[Autodesk]\nservice_name = FlexNet\n\n[UI]\nrefresh_ms = 1500\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, testLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Autodesk.ServiceName != "FlexNet" {
		t.Errorf("service_name = %q, want FlexNet", cfg.Autodesk.ServiceName)
	}
	if cfg.UI.RefreshMS != 1500 {
		t.Errorf("refresh_ms = %d, want 1500", cfg.UI.RefreshMS)
	}
	// everything absent falls back per key
	if want := []string{"lmgrd.exe", "adskflex.exe"}; !reflect.DeepEqual(cfg.Autodesk.ProcessNames, want) {
		t.Errorf("process_names fallback = %v", cfg.Autodesk.ProcessNames)
	}
	if cfg.Zoo.AdminExe == "" {
		t.Error("zoo admin_exe fallback empty")
	}
}

func TestLoadUncreatableFileUsesBuiltinDefaults(t *testing.T) {
	// parent directory does not exist, so the default file cannot be written
	path := filepath.Join(t.TempDir(), "missing", "config.ini")

	cfg, err := Load(path, testLogger())
	if err != nil {
		t.Fatalf("Load should degrade to defaults, got error: %v", err)
	}
	if _, serr := os.Stat(path); !os.IsNotExist(serr) {
		t.Errorf("no file should exist at %s", path)
	}

	if cfg.Autodesk.ServiceName != "AutodeskLicenseServer" {
		t.Errorf("service_name = %q", cfg.Autodesk.ServiceName)
	}
	if cfg.Zoo.ServiceName != "McNeelZoo8" {
		t.Errorf("zoo service_name = %q", cfg.Zoo.ServiceName)
	}
	if cfg.UI.RefreshMS != 5000 {
		t.Errorf("refresh_ms = %d", cfg.UI.RefreshMS)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestSplitProcessList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"lmgrd.exe, adskflex.exe", []string{"lmgrd.exe", "adskflex.exe"}},
		{"lmgrd.exe", []string{"lmgrd.exe"}},
		{" a.exe ,, b.exe ,", []string{"a.exe", "b.exe"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		if got := SplitProcessList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitProcessList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWindowSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
	}{
		{"400x350", 400, 350},
		{"800X600", 800, 600},
		{"garbage", 400, 350},
		{"0x100", 400, 350},
		{"", 400, 350},
	}
	for _, tt := range tests {
		w, h := parseWindowSize(tt.in)
		if w != tt.w || h != tt.h {
			t.Errorf("parseWindowSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
		}
	}
}
