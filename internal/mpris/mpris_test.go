//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/lsorel/murmur/internal/catalog"
	"github.com/lsorel/murmur/internal/control"
)

func newTestAdapter(st control.PlayerState) (*playerAdapter, *[]control.Command) {
	var sent []control.Command
	p := &playerAdapter{
		store: control.NewStore(st),
		send:  func(cmd control.Command) { sent = append(sent, cmd) },
	}
	return p, &sent
}

func playingState() control.PlayerState {
	st := control.NewPlayerState(70)
	st.Catalog = []catalog.Entry{
		{Path: "/music/a.mp3", Name: "a.mp3", Format: catalog.FormatMP3},
		{Path: "/music/b.mp3", Name: "b.mp3", Format: catalog.FormatMP3},
	}
	st.Selected = 0
	st.Playback = control.Playback{Kind: control.PlaybackPlaying, TrackIndex: 0}
	return st
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		kind control.PlaybackKind
		want types.PlaybackStatus
	}{
		{control.PlaybackStopped, types.PlaybackStatusStopped},
		{control.PlaybackPlaying, types.PlaybackStatusPlaying},
		{control.PlaybackPaused, types.PlaybackStatusPaused},
	}

	for _, tt := range tests {
		st := playingState()
		st.Playback.Kind = tt.kind
		p, _ := newTestAdapter(st)

		got, err := p.PlaybackStatus()
		if err != nil {
			t.Fatalf("PlaybackStatus() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("PlaybackStatus() with %v = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestPlayRoutesByState(t *testing.T) {
	st := playingState()
	st.Playback = control.Playback{Kind: control.PlaybackStopped, TrackIndex: -1}
	p, sent := newTestAdapter(st)

	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	if len(*sent) != 1 {
		t.Fatalf("sent %d commands, want 1", len(*sent))
	}
	if _, ok := (*sent)[0].(control.PlaySelected); !ok {
		t.Errorf("Play() from stopped sent %T, want PlaySelected", (*sent)[0])
	}

	st.Playback = control.Playback{Kind: control.PlaybackPaused, TrackIndex: 0}
	p, sent = newTestAdapter(st)
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	if _, ok := (*sent)[0].(control.TogglePause); !ok {
		t.Errorf("Play() from paused sent %T, want TogglePause", (*sent)[0])
	}

	st.Playback = control.Playback{Kind: control.PlaybackPlaying, TrackIndex: 0}
	p, sent = newTestAdapter(st)
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	if len(*sent) != 0 {
		t.Errorf("Play() while playing sent %d commands, want 0", len(*sent))
	}
}

func TestPauseOnlyWhilePlaying(t *testing.T) {
	st := playingState()
	st.Playback = control.Playback{Kind: control.PlaybackStopped, TrackIndex: -1}
	p, sent := newTestAdapter(st)

	if err := p.Pause(); err != nil {
		t.Fatal(err)
	}
	if len(*sent) != 0 {
		t.Errorf("Pause() while stopped sent %d commands, want 0", len(*sent))
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	p, sent := newTestAdapter(playingState())

	v, err := p.Volume()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0.7 {
		t.Errorf("Volume() = %v, want 0.7", v)
	}

	if err := p.SetVolume(0.25); err != nil {
		t.Fatal(err)
	}
	cmd, ok := (*sent)[0].(control.SetVolume)
	if !ok {
		t.Fatalf("SetVolume sent %T, want control.SetVolume", (*sent)[0])
	}
	if cmd.Level != 25 {
		t.Errorf("SetVolume level = %d, want 25", cmd.Level)
	}
}

func TestPositionReadsPublishedSnapshot(t *testing.T) {
	st := playingState()
	st.Playback.Position = 3 * time.Second
	p, _ := newTestAdapter(st)

	pos, err := p.Position()
	if err != nil {
		t.Fatal(err)
	}
	if want := (3 * time.Second).Microseconds(); pos != want {
		t.Errorf("Position() = %d, want %d", pos, want)
	}
}

func TestCanGoNextPrevious(t *testing.T) {
	p, _ := newTestAdapter(playingState())

	next, _ := p.CanGoNext()
	prev, _ := p.CanGoPrevious()
	if !next {
		t.Error("CanGoNext() = false at track 0 of 2, want true")
	}
	if prev {
		t.Error("CanGoPrevious() = true at track 0, want false")
	}
}
