//go:build !windows
// +build !windows

package system

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFollowStreamsAndStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "license.log")
	if err := os.WriteFile(path, []byte("first line\nsecond line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	lines := Follow(ctx, path)

	var got []string
	deadline := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case line, open := <-lines:
			if !open {
				t.Fatalf("channel closed early, got %v", got)
			}
			got = append(got, line)
		case <-deadline:
			t.Fatalf("timed out waiting for lines, got %v", got)
		}
	}

	if got[0] != "first line" || got[1] != "second line" {
		t.Errorf("unexpected lines %v", got)
	}

	cancel()

	// cancellation must terminate the follow process and close the channel
	closeDeadline := time.After(5 * time.Second)
	for {
		select {
		case _, open := <-lines:
			if !open {
				return
			}
		case <-closeDeadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestFollowMissingFileCloses(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lines := Follow(ctx, filepath.Join(t.TempDir(), "absent.log"))
	for {
		select {
		case _, open := <-lines:
			if !open {
				return
			}
		case <-time.After(6 * time.Second):
			t.Fatal("channel never closed for a missing file")
		}
	}
}
