// Package audio owns the single active output stream and exposes the
// narrow command surface the control state machine drives.
package audio

import (
	"errors"
	"sync"
	"time"
)

// Error taxonomy surfaced to the control layer. Callers classify with
// errors.Is; messages carry the offending path.
var (
	ErrUnreadable        = errors.New("file cannot be opened")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrDeviceUnavailable = errors.New("no audio output device")

	// ErrNotActive is returned by Pause/Resume when the handle does not
	// refer to the currently active session.
	ErrNotActive = errors.New("session is not active")
)

// Channel is the capability interface over one hardware output
// stream. At most one session is active at a time; LoadAndPlay
// implicitly stops any previous session.
type Channel interface {
	// LoadAndPlay opens and decodes path, starts playback immediately
	// and returns a handle for this playback session.
	LoadAndPlay(path string) (*Session, error)
	// Pause pauses the active session. ErrNotActive if s is not it.
	Pause(s *Session) error
	// Resume resumes the active session. ErrNotActive if s is not it.
	Resume(s *Session) error
	// Stop releases the session's resources. Idempotent.
	Stop(s *Session)
	// SetVolume applies level (0..100, clamped) to the active session,
	// or buffers it for the next one when none is active.
	SetVolume(level int)
	// Finished reports, without blocking, whether the session exhausted
	// its source naturally (not via Stop).
	Finished(s *Session) bool
	// Position returns the playback position of the active session.
	Position(s *Session) time.Duration
}

// Session is an opaque handle to one decode+output pipeline instance.
type Session struct {
	path string

	mu       sync.Mutex
	finished bool // stream exhausted its source
	stopped  bool // explicit Stop
	done     chan struct{}
}

func newSession(path string) *Session {
	return &Session{
		path: path,
		done: make(chan struct{}),
	}
}

// Path returns the file this session plays.
func (s *Session) Path() string { return s.path }

// Done is closed when the session ends, naturally or via Stop.
func (s *Session) Done() <-chan struct{} { return s.done }

// markFinished records natural completion. No-op after Stop.
func (s *Session) markFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.finished {
		return
	}
	s.finished = true
	close(s.done)
}

// markStopped records an explicit stop. Idempotent.
func (s *Session) markStopped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if !s.finished {
		close(s.done)
	}
}

func (s *Session) finishedNaturally() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished && !s.stopped
}
