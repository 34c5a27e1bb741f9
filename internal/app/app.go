// internal/app/app.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lsorel/murmur/internal/catalog"
	"github.com/lsorel/murmur/internal/config"
	"github.com/lsorel/murmur/internal/control"
	"github.com/lsorel/murmur/internal/notify"
)

// Model is the root application model. State transitions go through
// the control machine; the model holds the latest state snapshot plus
// view-only concerns (window size, metadata for the info panel).
type Model struct {
	Machine *control.Machine
	State   control.PlayerState
	Store   *control.Store
	Keys    KeyMap

	Root       string
	VolumeStep int
	Scanning   bool
	NowPlaying *catalog.TrackInfo
	Notifier   notify.Notifier
	AudioLog   <-chan string

	Width  int
	Height int
}

// New creates the application model seeded with an already scanned
// catalog. The startup scan runs before the program so scan failures
// can abort with an exit code instead of a blank screen.
func New(machine *control.Machine, store *control.Store, cfg *config.Config, root string, entries []catalog.Entry) Model {
	st := machine.Dispatch(control.NewPlayerState(cfg.Volume), control.RefreshCatalog{Entries: entries})
	if len(entries) > 0 {
		st.Status = fmt.Sprintf("Ready - %d music files", len(entries))
	}
	store.Publish(st)

	return Model{
		Machine:    machine,
		State:      st,
		Store:      store,
		Keys:       DefaultKeyMap(),
		Root:       root,
		VolumeStep: cfg.VolumeStep,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), WatchAudioLogCmd(m.AudioLog))
}
