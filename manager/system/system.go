// Package system wraps the OS tools this program drives: the Windows service
// control tool (sc), process listing and forced termination, and the
// follow-mode log tail. Non-windows builds keep the same contracts so the
// pure logic on top stays testable anywhere.
package system

import (
	"bytes"
	"context"
	"strings"
)

// ControlOutput runs the service control tool with the given verb against a
// service and returns its combined stdout+stderr as one text blob. The blob
// is the wire contract of the tool: callers classify state by searching it
// for RUNNING/STOPPED. A failed invocation (tool missing, access denied with
// no output) degrades to the error text, never to an error return.
func ControlOutput(ctx context.Context, verb, service string) string {
	cmd := controlCommand(ctx, verb, service)

	var outb, errb bytes.Buffer
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	err := cmd.Run()
	out := outb.String() + errb.String()
	if err != nil && strings.TrimSpace(out) == "" {
		return err.Error()
	}
	return CleanString(out)
}

// CleanString removes invalid utf-8 byte sequences
func CleanString(s string) string {
	r := strings.NewReplacer("\x00", "")
	s = r.Replace(s)
	return strings.ToValidUTF8(s, "")
}

// StripAll strips all whitespace and newline chars
func StripAll(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\n")
	s = strings.Trim(s, "\r")
	return s
}
