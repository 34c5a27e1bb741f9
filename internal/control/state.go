// Package control implements the player control state machine: the
// single owner of catalog selection, playback state, volume and the
// status line, reconciled against the audio output channel.
package control

import (
	"time"

	"github.com/lsorel/murmur/internal/catalog"
)

// PlaybackKind discriminates the playback variant.
//
// The state machine has three states:
//
//	Stopped → Playing   (PlaySelected, PlayAdjacent)
//	Playing → Paused    (TogglePause)
//	Paused  → Playing   (TogglePause)
//	Playing → Stopped   (Stop, TrackFinished, RefreshCatalog invalidation)
//	Paused  → Stopped   (Stop, RefreshCatalog invalidation)
//
// Every command from every state produces a defined next state; the
// remaining combinations are no-ops that only touch the status line.
type PlaybackKind int

const (
	PlaybackStopped PlaybackKind = iota
	PlaybackPlaying
	PlaybackPaused
)

// String returns the state name for display.
func (k PlaybackKind) String() string {
	switch k {
	case PlaybackStopped:
		return "Stopped"
	case PlaybackPlaying:
		return "Playing"
	case PlaybackPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (k PlaybackKind) IsActive() bool {
	return k == PlaybackPlaying || k == PlaybackPaused
}

// Playback is the tagged playback variant. TrackIndex is valid when
// Kind is Playing or Paused; StartedAt when Playing; Position is the
// last observed position, captured on pause and refreshed once per UI
// tick while playing.
type Playback struct {
	Kind       PlaybackKind
	TrackIndex int
	StartedAt  time.Time
	Position   time.Duration
}

func stoppedPlayback() Playback {
	return Playback{Kind: PlaybackStopped, TrackIndex: -1}
}

// PlayerState is the aggregate the UI renders. It is created once at
// startup and mutated only through Machine.Dispatch; the render layer
// receives it as a read-only snapshot.
type PlayerState struct {
	Catalog  []catalog.Entry
	Selected int // index into Catalog, -1 when the catalog is empty
	Playback Playback
	Volume   int // 0..100
	Status   string
}

// NewPlayerState returns the startup state: empty catalog, stopped,
// the given initial volume.
func NewPlayerState(volume int) PlayerState {
	return PlayerState{
		Selected: -1,
		Playback: stoppedPlayback(),
		Volume:   clampVolume(volume),
		Status:   "Ready",
	}
}

// SelectedEntry returns the selected catalog entry, or nil.
func (s PlayerState) SelectedEntry() *catalog.Entry {
	if s.Selected < 0 || s.Selected >= len(s.Catalog) {
		return nil
	}
	return &s.Catalog[s.Selected]
}

// PlayingEntry returns the entry referenced by active playback, or nil.
func (s PlayerState) PlayingEntry() *catalog.Entry {
	if !s.Playback.Kind.IsActive() {
		return nil
	}
	if s.Playback.TrackIndex < 0 || s.Playback.TrackIndex >= len(s.Catalog) {
		return nil
	}
	return &s.Catalog[s.Playback.TrackIndex]
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
