//go:build !windows

// Package stderr redirects file descriptor 2 away from the terminal
// while the TUI runs. ALSA and the AAC decoder write warnings straight
// to fd 2, which would otherwise tear through the alternate screen.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Capture holds the redirected stderr state.
type Capture struct {
	origFd    int
	pipeRead  *os.File
	pipeWrite *os.File
	lines     chan string
}

// Start redirects fd 2 into a pipe and returns the capture handle.
// Call Restore before the process exits so panics stay visible.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	origFd, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origFd)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		origFd:    origFd,
		pipeRead:  r,
		pipeWrite: w,
		lines:     make(chan string, 100),
	}

	go func() {
		scanner := bufio.NewScanner(c.pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case c.lines <- line:
			default:
				// Drop rather than block the writer
			}
		}
	}()

	return c, nil
}

// Lines returns the channel of captured stderr lines.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to the pre-capture stderr, for errors that must
// reach the terminal even while the redirect is active.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.origFd, []byte(msg))
}

// Restore puts fd 2 back and tears down the pipe.
func (c *Capture) Restore() {
	_ = syscall.Dup2(c.origFd, int(os.Stderr.Fd()))
	_ = syscall.Close(c.origFd)
	c.pipeWrite.Close()
	c.pipeRead.Close()
	close(c.lines)
}
