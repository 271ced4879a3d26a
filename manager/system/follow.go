package system

import (
	"context"

	gocmd "github.com/go-cmd/cmd"
)

// Follow streams appended lines of a file, Get-Content -Wait style, by
// running the platform follow command with output streaming enabled. The
// returned channel carries one line per receive and is closed once the
// follow process has exited and its output is drained. Cancelling the
// context kills the follow process; the channel close is the join point for
// callers.
func Follow(ctx context.Context, path string) <-chan string {
	cmdOptions := gocmd.Options{
		Buffered:  false,
		Streaming: true,
	}
	follow := gocmd.NewCmdOptions(cmdOptions, followExe(), followArgs(path)...)

	lines := make(chan string, 64)
	done := follow.Start()

	go func() {
		select {
		case <-ctx.Done():
			follow.Stop()
		case <-done:
		}
	}()

	go func() {
		defer close(lines)
		// Done when both channels have been closed
		// https://dave.cheney.net/2013/04/30/curious-channels
		for follow.Stdout != nil || follow.Stderr != nil {
			select {
			case line, open := <-follow.Stdout:
				if !open {
					follow.Stdout = nil
					continue
				}
				deliver(ctx, lines, line)

			case line, open := <-follow.Stderr:
				if !open {
					follow.Stderr = nil
					continue
				}
				deliver(ctx, lines, line)
			}
		}
	}()

	return lines
}

// deliver never blocks past cancellation; once the context is gone the
// remaining output is dropped while the pump drains to channel close.
func deliver(ctx context.Context, lines chan<- string, line string) {
	select {
	case lines <- CleanString(line):
	case <-ctx.Done():
	}
}
