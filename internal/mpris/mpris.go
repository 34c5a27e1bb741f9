//go:build linux

// Package mpris exposes the player on the session bus so desktop
// media controls (playerctl, volume keys) can drive it. Commands are
// injected into the update loop through the send callback; state is
// read from published snapshots, never from the loop's internals.
package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/lsorel/murmur/internal/catalog"
	"github.com/lsorel/murmur/internal/control"
)

// Adapter connects the player to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts an MPRIS adapter. send must deliver commands
// to the update loop; store provides read-only state snapshots.
func New(store *control.Store, send func(control.Command)) (*Adapter, error) {
	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{store: store, send: send}

	a := &Adapter{
		server: server.NewServer("murmur", rootAdapter, playerAdapter),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Murmur", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{
		"audio/mpeg", "audio/wav", "audio/flac",
		"audio/ogg", "audio/mp4", "audio/aac",
	}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	store *control.Store
	send  func(control.Command)
}

func (p *playerAdapter) Next() error {
	p.send(control.PlayAdjacent{Delta: 1})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.send(control.PlayAdjacent{Delta: -1})
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.store.Snapshot().Playback.Kind == control.PlaybackPlaying {
		p.send(control.TogglePause{})
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.send(control.TogglePause{})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.send(control.Stop{})
	return nil
}

func (p *playerAdapter) Play() error {
	switch p.store.Snapshot().Playback.Kind {
	case control.PlaybackStopped:
		p.send(control.PlaySelected{})
	case control.PlaybackPaused:
		p.send(control.TogglePause{})
	case control.PlaybackPlaying:
		// Already playing
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.store.Snapshot().Playback.Kind {
	case control.PlaybackPlaying:
		return types.PlaybackStatusPlaying, nil
	case control.PlaybackPaused:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.store.Snapshot()
	entry := st.PlayingEntry()
	if entry == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(entry.Path)),
		Title:   entry.Name,
	}

	if info, err := catalog.ReadTrackInfo(entry.Path); err == nil {
		meta.Title = info.Title
		if info.Artist != "" {
			meta.Artist = []string{info.Artist}
		}
		meta.Album = info.Album
		meta.TrackNumber = info.Track
	}

	if artPath := catalog.FindArtwork(entry.Path); artPath != "" {
		meta.ArtUrl = "file://" + artPath
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.store.Snapshot().Volume) / 100.0, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.send(control.SetVolume{Level: int(v * 100)})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.store.Snapshot().Playback.Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	st := p.store.Snapshot()
	if !st.Playback.Kind.IsActive() {
		return len(st.Catalog) > 0, nil
	}
	return st.Playback.TrackIndex < len(st.Catalog)-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	st := p.store.Snapshot()
	if !st.Playback.Kind.IsActive() {
		return len(st.Catalog) > 0, nil
	}
	return st.Playback.TrackIndex > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.store.Snapshot().Catalog) > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
