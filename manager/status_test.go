package manager

import "testing"

func TestClassify(t *testing.T) {
	const (
		runningBlob = "SERVICE_NAME: AutodeskLicenseServer\n        STATE              : 4  RUNNING"
		stoppedBlob = "SERVICE_NAME: AutodeskLicenseServer\n        STATE              : 1  STOPPED"
		garbledBlob = "[SC] OpenService FAILED 1060:\nThe specified service does not exist.\n"
	)

	tests := []struct {
		name            string
		query           string
		processAlive    bool
		processFallback bool
		want            ServiceStatus
	}{
		{"running wins over process", runningBlob, true, true, StatusRunning},
		{"running without process", runningBlob, false, true, StatusRunning},
		{"process only beats stopped", stoppedBlob, true, true, StatusProcessOnly},
		{"stopped without process", stoppedBlob, false, true, StatusStopped},
		{"garbled with process", garbledBlob, true, true, StatusProcessOnly},
		{"garbled without process", garbledBlob, false, true, StatusUnknown},
		{"zoo running", runningBlob, true, false, StatusRunning},
		{"zoo stopped ignores process", stoppedBlob, true, false, StatusStopped},
		{"zoo garbled ignores process", garbledBlob, true, false, StatusUnknown},
		{"empty blob", "", false, true, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.query, tt.processAlive, tt.processFallback)
			if got != tt.want {
				t.Errorf("Classify(%q, %v, %v) = %v, want %v",
					tt.query, tt.processAlive, tt.processFallback, got, tt.want)
			}
		})
	}
}

func TestStatusGlyphs(t *testing.T) {
	tests := []struct {
		status ServiceStatus
		glyph  string
	}{
		{StatusRunning, "⬤"},
		{StatusStopped, "○"},
		{StatusProcessOnly, "◐"},
		{StatusUnknown, "?"},
	}
	for _, tt := range tests {
		if got := tt.status.Glyph(); got != tt.glyph {
			t.Errorf("%v.Glyph() = %q, want %q", tt.status, got, tt.glyph)
		}
	}
}
