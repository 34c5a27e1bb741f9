//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does
// not write to fd 2 directly.
package stderr

import "os"

// Capture is a no-op handle on Windows.
type Capture struct {
	lines chan string
}

// Start returns a no-op capture.
func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines returns a channel that never delivers.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Restore is a no-op.
func (c *Capture) Restore() {}
