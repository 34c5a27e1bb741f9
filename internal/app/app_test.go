// internal/app/app_test.go
package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsorel/murmur/internal/audio"
	"github.com/lsorel/murmur/internal/catalog"
	"github.com/lsorel/murmur/internal/config"
	"github.com/lsorel/murmur/internal/control"
)

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{Path: "/music/a.mp3", Name: "a.mp3", Format: catalog.FormatMP3},
		{Path: "/music/b.flac", Name: "b.flac", Format: catalog.FormatFLAC},
		{Path: "/music/c.ogg", Name: "c.ogg", Format: catalog.FormatOGG},
	}
}

func newTestModel(t *testing.T) (Model, *audio.Mock) {
	t.Helper()
	out := audio.NewMock()
	machine := control.New(out)
	cfg := &config.Config{Volume: 70, VolumeStep: 5}
	store := control.NewStore(control.NewPlayerState(cfg.Volume))
	m := New(machine, store, cfg, "/music", testEntries())
	m.Width = 100
	m.Height = 30
	return m, out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up", "down", "enter":
		types := map[string]tea.KeyType{
			"up":    tea.KeyUp,
			"down":  tea.KeyDown,
			"enter": tea.KeyEnter,
		}
		return tea.KeyMsg{Type: types[s]}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model, cmd
}

func TestNewSeedsCatalog(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, 0, m.State.Selected)
	assert.Equal(t, control.PlaybackStopped, m.State.Playback.Kind)
	assert.Equal(t, "Ready - 3 music files", m.State.Status)
	assert.Equal(t, 70, m.State.Volume)
}

func TestKeyNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyMsg("j"))
	assert.Equal(t, 1, m.State.Selected)

	m, _ = update(t, m, keyMsg("down"))
	assert.Equal(t, 2, m.State.Selected)

	m, _ = update(t, m, keyMsg("k"))
	assert.Equal(t, 1, m.State.Selected)

	m, _ = update(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.State.Selected)
}

func TestKeyPlayPauseStop(t *testing.T) {
	m, out := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	assert.Equal(t, control.PlaybackPlaying, m.State.Playback.Kind)
	assert.Equal(t, []string{"load:/music/a.mp3"}, out.Calls)

	m, _ = update(t, m, keyMsg("p"))
	assert.Equal(t, control.PlaybackPaused, m.State.Playback.Kind)

	m, _ = update(t, m, keyMsg("p"))
	assert.Equal(t, control.PlaybackPlaying, m.State.Playback.Kind)

	m, _ = update(t, m, keyMsg("s"))
	assert.Equal(t, control.PlaybackStopped, m.State.Playback.Kind)
	assert.Nil(t, out.Active())
}

func TestKeyVolume(t *testing.T) {
	m, out := newTestModel(t)

	m, _ = update(t, m, keyMsg("+"))
	assert.Equal(t, 75, m.State.Volume)

	m, _ = update(t, m, keyMsg("-"))
	m, _ = update(t, m, keyMsg("-"))
	assert.Equal(t, 65, m.State.Volume)
	assert.Equal(t, 65, out.Level())
}

func TestKeyNextPrevious(t *testing.T) {
	m, out := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, keyMsg("n"))
	assert.Equal(t, 1, m.State.Playback.TrackIndex)

	m, _ = update(t, m, keyMsg("N"))
	assert.Equal(t, 0, m.State.Playback.TrackIndex)
	assert.Contains(t, out.Calls, "load:/music/b.flac")
}

func TestKeyQuitStopsPlayback(t *testing.T) {
	m, out := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	m, cmd := update(t, m, keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, control.PlaybackStopped, m.State.Playback.Kind)
	assert.Nil(t, out.Active())
}

func TestRefreshRunsScanOnce(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, keyMsg("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.Scanning)
	assert.Equal(t, "Scanning...", m.State.Status)

	// A second press while the scan is in flight is ignored.
	_, cmd = update(t, m, keyMsg("r"))
	assert.Nil(t, cmd)
}

func TestScanResultRefreshesCatalog(t *testing.T) {
	m, _ := newTestModel(t)
	m.Scanning = true

	m, _ = update(t, m, ScanResultMsg{Entries: testEntries()[:2]})
	assert.False(t, m.Scanning)
	assert.Len(t, m.State.Catalog, 2)
	assert.Equal(t, "Refreshed - found 2 music files", m.State.Status)
}

func TestTickDispatchesTrackFinished(t *testing.T) {
	m, out := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	session := out.Active()
	require.NotNil(t, session)
	out.SimulateFinished(session)

	m, cmd := update(t, m, TickMsg{})
	require.NotNil(t, cmd)

	// Auto-advance starts the next entry.
	assert.Equal(t, control.PlaybackPlaying, m.State.Playback.Kind)
	assert.Equal(t, 1, m.State.Playback.TrackIndex)
}

func TestTickWhileStoppedReschedulesOnly(t *testing.T) {
	m, out := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, control.PlaybackStopped, m.State.Playback.Kind)
	assert.Empty(t, out.Calls)
}

func TestTickPublishesLivePosition(t *testing.T) {
	m, out := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	out.SetPosition(3 * time.Second)

	m, _ = update(t, m, TickMsg{})

	assert.Equal(t, 3*time.Second, m.State.Playback.Position)
	assert.Equal(t, 3*time.Second, m.Store.Snapshot().Playback.Position)
}

func TestAudioLogSurfacesInStatus(t *testing.T) {
	m, _ := newTestModel(t)
	lines := make(chan string, 1)
	m.AudioLog = lines

	m, cmd := update(t, m, AudioLogMsg("underrun occurred"))

	assert.Equal(t, "Audio: underrun occurred", m.State.Status)
	// The watcher re-arms so later lines keep arriving.
	require.NotNil(t, cmd)
	lines <- "next line"
	assert.Equal(t, AudioLogMsg("next line"), cmd())
}

func TestStaleTrackInfoDropped(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, TrackInfoMsg{
		Path: "/music/b.flac",
		Info: &catalog.TrackInfo{Path: "/music/b.flac", Title: "Other"},
	})
	assert.Nil(t, m.NowPlaying)

	m, _ = update(t, m, TrackInfoMsg{
		Path: "/music/a.mp3",
		Info: &catalog.TrackInfo{Path: "/music/a.mp3", Title: "Current"},
	})
	require.NotNil(t, m.NowPlaying)
	assert.Equal(t, "Current", m.NowPlaying.Title)
}

func TestExternalCommand(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, ExternalCommandMsg{Cmd: control.PlaySelected{}})
	assert.Equal(t, control.PlaybackPlaying, m.State.Playback.Kind)

	snap := m.Store.Snapshot()
	assert.Equal(t, control.PlaybackPlaying, snap.Playback.Kind)
}

func TestViewRenders(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	out := m.View()
	assert.Contains(t, out, "a.mp3")
	assert.Contains(t, out, "Volume")
}
