package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultVolume is the level an Engine starts with until the first
// SetVolume call.
const DefaultVolume = 70

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Engine implements Channel on top of the beep speaker. All methods
// are safe for concurrent use; the finish callback runs on the
// speaker goroutine.
type Engine struct {
	mu       sync.Mutex
	active   *Session
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    int // buffered 0..100, reapplied to each new session
}

// Verify Engine implements Channel at compile time.
var _ Channel = (*Engine)(nil)

// NewEngine creates an engine with the default volume buffered. The
// speaker itself is initialized lazily on the first LoadAndPlay so
// that a missing output device surfaces as a playback error, not a
// startup failure.
func NewEngine() *Engine {
	return &Engine{level: DefaultVolume}
}

// LoadAndPlay opens path, stops any previous session and starts a new
// one. The buffered volume level is applied before the first sample.
func (e *Engine) LoadAndPlay(path string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
		}
		speakerInitialized = true
	}

	e.file = f
	e.streamer = streamer
	e.format = format

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	e.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	e.volume = &effects.Volume{
		Streamer: e.ctrl,
		Base:     2,
		Volume:   levelToVolume(e.level),
		Silent:   e.level == 0,
	}

	session := newSession(path)
	e.active = session

	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		session.markFinished()
	})))

	return session, nil
}

// Pause pauses the active session.
func (e *Engine) Pause(s *Session) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == nil || s != e.active || e.ctrl == nil {
		return ErrNotActive
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// Resume resumes the active session.
func (e *Engine) Resume(s *Session) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == nil || s != e.active || e.ctrl == nil {
		return ErrNotActive
	}
	speaker.Lock()
	e.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Stop releases the session's resources. Safe to call on an already
// stopped or finished session.
func (e *Engine) Stop(s *Session) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	s.markStopped()
	if s == e.active {
		e.stopLocked()
	}
}

// stopLocked tears down the current pipeline. Caller holds e.mu.
func (e *Engine) stopLocked() {
	if e.active == nil {
		return
	}

	speaker.Clear()

	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}

	e.active.markStopped()
	e.active = nil
	e.ctrl = nil
	e.volume = nil
}

// SetVolume stores level and applies it to the active session, if any.
func (e *Engine) SetVolume(level int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.level = clampLevel(level)

	if e.volume != nil {
		speaker.Lock()
		e.volume.Volume = levelToVolume(e.level)
		e.volume.Silent = e.level == 0
		speaker.Unlock()
	}
}

// Finished reports whether the session's source ran out on its own.
func (e *Engine) Finished(s *Session) bool {
	if s == nil {
		return false
	}
	return s.finishedNaturally()
}

// Position returns the playback position of the active session, or
// zero for any other handle.
func (e *Engine) Position(s *Session) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == nil || s != e.active || e.streamer == nil {
		return 0
	}
	// Read without the speaker lock - may be slightly stale but avoids
	// deadlocks against the render tick.
	return e.format.SampleRate.D(e.streamer.Position())
}
