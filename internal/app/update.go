// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lsorel/murmur/internal/control"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.State.Playback.Kind == control.PlaybackPlaying && m.Machine.SessionFinished() {
			m, cmd := m.apply(control.TrackFinished{})
			return m, tea.Batch(cmd, TickCmd())
		}
		if m.State.Playback.Kind == control.PlaybackPlaying {
			// Refresh the published position so D-Bus readers see it
			// move; Machine.Position is only safe on this goroutine.
			m.State.Playback.Position = m.Machine.Position()
			m.Store.Publish(m.State)
		}
		return m, TickCmd()

	case ScanResultMsg:
		m.Scanning = false
		return m.apply(control.RefreshCatalog{Entries: msg.Entries, Err: msg.Err})

	case TrackInfoMsg:
		// A newer track may already be playing by the time the read
		// completes; drop stale results.
		if entry := m.State.PlayingEntry(); entry != nil && entry.Path == msg.Path {
			m.NowPlaying = msg.Info
			return m, NotifyCmd(m.Notifier, msg.Info)
		}
		return m, nil

	case AudioLogMsg:
		// Backend warnings (ALSA underruns, decoder complaints) land in
		// the status line instead of tearing the alternate screen.
		m.State.Status = "Audio: " + string(msg)
		return m, WatchAudioLogCmd(m.AudioLog)

	case ExternalCommandMsg:
		return m.apply(msg.Cmd)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m, _ = m.apply(control.Stop{})
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		return m.apply(control.MoveSelection{Delta: -1})

	case key.Matches(msg, m.Keys.Down):
		return m.apply(control.MoveSelection{Delta: 1})

	case key.Matches(msg, m.Keys.Play):
		return m.apply(control.PlaySelected{})

	case key.Matches(msg, m.Keys.Pause):
		return m.apply(control.TogglePause{})

	case key.Matches(msg, m.Keys.Stop):
		return m.apply(control.Stop{})

	case key.Matches(msg, m.Keys.Next):
		return m.apply(control.PlayAdjacent{Delta: 1})

	case key.Matches(msg, m.Keys.Previous):
		return m.apply(control.PlayAdjacent{Delta: -1})

	case key.Matches(msg, m.Keys.VolumeUp):
		return m.apply(control.VolumeDelta{Delta: m.VolumeStep})

	case key.Matches(msg, m.Keys.VolumeDown):
		return m.apply(control.VolumeDelta{Delta: -m.VolumeStep})

	case key.Matches(msg, m.Keys.Refresh):
		if m.Scanning {
			return m, nil
		}
		m.Scanning = true
		m.State.Status = "Scanning..."
		return m, ScanCmd(m.Root)
	}

	return m, nil
}

// apply routes a command through the machine, publishes the new state
// for external readers and schedules a metadata read when the playing
// track changed.
func (m Model) apply(cmd control.Command) (Model, tea.Cmd) {
	m.State = m.Machine.Dispatch(m.State, cmd)
	m.Store.Publish(m.State)

	entry := m.State.PlayingEntry()
	if entry == nil {
		m.NowPlaying = nil
		return m, nil
	}
	if m.NowPlaying != nil && m.NowPlaying.Path == entry.Path {
		return m, nil
	}
	return m, TrackInfoCmd(entry.Path)
}
