package audio

import (
	"strconv"
	"time"
)

// Mock is a test double for Channel. It records the call sequence so
// tests can assert ordering invariants (e.g. that a previous session
// is stopped before a new one starts).
type Mock struct {
	active   *Session
	paused   bool
	level    int
	position time.Duration

	playErr error

	// Calls records each operation in order: "load:<path>", "pause",
	// "resume", "stop", "volume:<n>".
	Calls []string
}

// NewMock creates a mock channel for testing.
func NewMock() *Mock {
	return &Mock{level: DefaultVolume}
}

// Verify Mock implements Channel at compile time.
var _ Channel = (*Mock)(nil)

func (m *Mock) LoadAndPlay(path string) (*Session, error) {
	if m.active != nil {
		m.Stop(m.active)
	}
	m.Calls = append(m.Calls, "load:"+path)
	if m.playErr != nil {
		return nil, m.playErr
	}
	m.active = newSession(path)
	m.paused = false
	return m.active, nil
}

func (m *Mock) Pause(s *Session) error {
	if s == nil || s != m.active {
		return ErrNotActive
	}
	m.Calls = append(m.Calls, "pause")
	m.paused = true
	return nil
}

func (m *Mock) Resume(s *Session) error {
	if s == nil || s != m.active {
		return ErrNotActive
	}
	m.Calls = append(m.Calls, "resume")
	m.paused = false
	return nil
}

func (m *Mock) Stop(s *Session) {
	if s == nil {
		return
	}
	m.Calls = append(m.Calls, "stop")
	s.markStopped()
	if s == m.active {
		m.active = nil
		m.paused = false
	}
}

func (m *Mock) SetVolume(level int) {
	m.level = clampLevel(level)
	m.Calls = append(m.Calls, "volume:"+strconv.Itoa(m.level))
}

func (m *Mock) Finished(s *Session) bool {
	if s == nil {
		return false
	}
	return s.finishedNaturally()
}

func (m *Mock) Position(s *Session) time.Duration {
	if s == nil || s != m.active {
		return 0
	}
	return m.position
}

// Test helpers

// SetPlayError makes subsequent LoadAndPlay calls fail with err.
func (m *Mock) SetPlayError(err error) { m.playErr = err }

// SetPosition sets the position reported for the active session.
func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// Active returns the currently active session, if any.
func (m *Mock) Active() *Session { return m.active }

// IsPaused reports whether the active session is paused.
func (m *Mock) IsPaused() bool { return m.paused }

// Level returns the last applied volume level.
func (m *Mock) Level() int { return m.level }

// SimulateFinished marks the session as naturally complete, as the
// speaker callback would.
func (m *Mock) SimulateFinished(s *Session) {
	s.markFinished()
	if s == m.active {
		m.active = nil
	}
}
