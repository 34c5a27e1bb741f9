package control

import (
	"fmt"
	"time"

	"github.com/lsorel/murmur/internal/audio"
	"github.com/lsorel/murmur/internal/errmsg"
)

// Machine translates commands into state transitions and audio
// channel calls. It owns the active session handle; the handle never
// appears in PlayerState. Dispatch is synchronous and total: every
// command from every state yields a defined next state.
type Machine struct {
	out         audio.Channel
	session     *audio.Session
	autoAdvance bool
	now         func() time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithAutoAdvance controls whether a naturally finished track starts
// the next catalog entry. Default true; at the end of the catalog
// playback always stops.
func WithAutoAdvance(enabled bool) Option {
	return func(m *Machine) { m.autoAdvance = enabled }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// New creates a state machine driving the given output channel.
func New(out audio.Channel, opts ...Option) *Machine {
	m := &Machine{
		out:         out,
		autoAdvance: true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dispatch applies cmd to st and returns the next state. Side effects
// are confined to the audio channel.
func (m *Machine) Dispatch(st PlayerState, cmd Command) PlayerState {
	switch cmd := cmd.(type) {
	case MoveSelection:
		return m.moveSelection(st, cmd.Delta)
	case PlaySelected:
		return m.playSelected(st)
	case PlayAdjacent:
		return m.playAdjacent(st, cmd.Delta)
	case TogglePause:
		return m.togglePause(st)
	case Stop:
		return m.stop(st)
	case VolumeDelta:
		return m.setVolume(st, st.Volume+cmd.Delta)
	case SetVolume:
		return m.setVolume(st, cmd.Level)
	case RefreshCatalog:
		return m.refreshCatalog(st, cmd)
	case TrackFinished:
		return m.trackFinished(st)
	default:
		return st
	}
}

// SessionFinished reports whether the active session exhausted its
// source naturally. Non-blocking; polled once per UI tick.
func (m *Machine) SessionFinished() bool {
	return m.session != nil && m.out.Finished(m.session)
}

// Position returns the playback position of the active session.
func (m *Machine) Position() time.Duration {
	if m.session == nil {
		return 0
	}
	return m.out.Position(m.session)
}

func (m *Machine) moveSelection(st PlayerState, delta int) PlayerState {
	if len(st.Catalog) == 0 {
		st.Selected = -1
		st.Status = "No music files found - press 'r' to refresh"
		return st
	}

	st.Selected = clampIndex(st.Selected+delta, len(st.Catalog))
	st.Status = fmt.Sprintf("%d/%d  %s", st.Selected+1, len(st.Catalog), st.Catalog[st.Selected].Name)
	return st
}

func (m *Machine) playSelected(st PlayerState) PlayerState {
	entry := st.SelectedEntry()
	if entry == nil {
		st.Status = "No music files available to play"
		return st
	}
	return m.startPlayback(st, st.Selected)
}

func (m *Machine) playAdjacent(st PlayerState, delta int) PlayerState {
	if len(st.Catalog) == 0 {
		st.Status = "No music files available to play"
		return st
	}

	base := st.Selected
	if st.Playback.Kind.IsActive() {
		base = st.Playback.TrackIndex
	}
	return m.startPlayback(st, clampIndex(base+delta, len(st.Catalog)))
}

// startPlayback stops any active session and starts index. On failure
// playback stays stopped and the error lands in the status line.
func (m *Machine) startPlayback(st PlayerState, index int) PlayerState {
	entry := st.Catalog[index]
	st.Selected = index

	m.stopSession()

	session, err := m.out.LoadAndPlay(entry.Path)
	if err != nil {
		st.Playback = stoppedPlayback()
		st.Status = errmsg.FormatWith(errmsg.OpPlay, entry.Name, err)
		return st
	}

	m.session = session
	st.Playback = Playback{
		Kind:       PlaybackPlaying,
		TrackIndex: index,
		StartedAt:  m.now(),
	}
	st.Status = "♪ Playing: " + entry.Name
	return st
}

func (m *Machine) togglePause(st PlayerState) PlayerState {
	switch st.Playback.Kind {
	case PlaybackPlaying:
		if err := m.out.Pause(m.session); err != nil {
			st.Status = errmsg.Format(errmsg.OpPause, err)
			return st
		}
		st.Playback = Playback{
			Kind:       PlaybackPaused,
			TrackIndex: st.Playback.TrackIndex,
			Position:   m.out.Position(m.session),
		}
		st.Status = "Paused"

	case PlaybackPaused:
		if err := m.out.Resume(m.session); err != nil {
			st.Status = errmsg.Format(errmsg.OpResume, err)
			return st
		}
		st.Playback = Playback{
			Kind:       PlaybackPlaying,
			TrackIndex: st.Playback.TrackIndex,
			StartedAt:  m.now(),
			Position:   st.Playback.Position,
		}
		if entry := st.PlayingEntry(); entry != nil {
			st.Status = "♪ Playing: " + entry.Name
		}

	case PlaybackStopped:
		// Nothing to toggle when stopped
		st.Status = "Nothing is playing"
	}

	return st
}

func (m *Machine) stop(st PlayerState) PlayerState {
	m.stopSession()
	st.Playback = stoppedPlayback()
	st.Status = "Stopped"
	return st
}

func (m *Machine) setVolume(st PlayerState, level int) PlayerState {
	st.Volume = clampVolume(level)
	m.out.SetVolume(st.Volume)
	st.Status = fmt.Sprintf("Volume: %d%%", st.Volume)
	return st
}

func (m *Machine) refreshCatalog(st PlayerState, cmd RefreshCatalog) PlayerState {
	if cmd.Err != nil {
		m.stopSession()
		st.Catalog = nil
		st.Selected = -1
		st.Playback = stoppedPlayback()
		st.Status = errmsg.Format(errmsg.OpRefresh, cmd.Err)
		return st
	}

	playingPath := ""
	if entry := st.PlayingEntry(); entry != nil {
		playingPath = entry.Path
	}

	st.Catalog = cmd.Entries

	// Entry identity is positional, so a selection outside the new
	// bounds resets to the top.
	if st.Selected < 0 || st.Selected >= len(st.Catalog) {
		if len(st.Catalog) == 0 {
			st.Selected = -1
		} else {
			st.Selected = 0
		}
	}

	// Playback survives a refresh only while the same file sits at the
	// same index; a removal or reorder stops the session rather than
	// leave the state pointing at a different file.
	if st.Playback.Kind.IsActive() {
		idx := st.Playback.TrackIndex
		if idx < 0 || idx >= len(st.Catalog) || st.Catalog[idx].Path != playingPath {
			m.stopSession()
			st.Playback = stoppedPlayback()
		}
	}

	if len(st.Catalog) == 0 {
		st.Status = "No music files found in directory"
	} else {
		st.Status = fmt.Sprintf("Refreshed - found %d music files", len(st.Catalog))
	}
	return st
}

func (m *Machine) trackFinished(st PlayerState) PlayerState {
	if st.Playback.Kind != PlaybackPlaying {
		return st
	}

	finishedIndex := st.Playback.TrackIndex
	m.stopSession()
	st.Playback = stoppedPlayback()

	if !m.autoAdvance {
		st.Status = "Track finished"
		return st
	}

	next := finishedIndex + 1
	if next >= len(st.Catalog) {
		st.Status = "End of catalog"
		return st
	}
	return m.startPlayback(st, next)
}

// stopSession releases the active session, if any. The channel's Stop
// is idempotent, so a session that already finished is safe to pass.
func (m *Machine) stopSession() {
	if m.session == nil {
		return
	}
	m.out.Stop(m.session)
	m.session = nil
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
