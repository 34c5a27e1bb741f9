package control

import "github.com/lsorel/murmur/internal/catalog"

// Command is one discrete user (or system) action dispatched to the
// state machine. Commands are processed strictly in arrival order by
// the single-threaded update loop.
type Command interface {
	isCommand()
}

// MoveSelection moves the catalog cursor by Delta, clamped to the
// catalog bounds (no wraparound).
type MoveSelection struct {
	Delta int
}

// PlaySelected stops any active session and starts playback of the
// selected entry.
type PlaySelected struct{}

// PlayAdjacent plays the entry Delta positions away from the current
// track (or from the selection when stopped), clamped to the catalog.
type PlayAdjacent struct {
	Delta int
}

// TogglePause switches Playing and Paused; a no-op when stopped.
type TogglePause struct{}

// Stop ends the active session.
type Stop struct{}

// VolumeDelta adjusts the volume by Delta, clamped to 0..100.
type VolumeDelta struct {
	Delta int
}

// SetVolume sets the volume to an absolute level, clamped to 0..100.
type SetVolume struct {
	Level int
}

// RefreshCatalog replaces the catalog with the result of a rescan.
// A non-nil Err empties the catalog and reports the failure in the
// status line; the loop keeps running.
type RefreshCatalog struct {
	Entries []catalog.Entry
	Err     error
}

// TrackFinished reports that the active session exhausted its source
// naturally. Dispatched at most once per UI tick.
type TrackFinished struct{}

func (MoveSelection) isCommand()  {}
func (PlaySelected) isCommand()   {}
func (PlayAdjacent) isCommand()   {}
func (TogglePause) isCommand()    {}
func (Stop) isCommand()           {}
func (VolumeDelta) isCommand()    {}
func (SetVolume) isCommand()      {}
func (RefreshCatalog) isCommand() {}
func (TrackFinished) isCommand()  {}
