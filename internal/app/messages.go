// internal/app/messages.go
package app

import (
	"time"

	"github.com/lsorel/murmur/internal/catalog"
	"github.com/lsorel/murmur/internal/control"
)

// TickMsg drives periodic polling of the audio session.
type TickMsg time.Time

// AudioLogMsg carries one warning line the audio backend wrote to the
// captured stderr.
type AudioLogMsg string

// ScanResultMsg carries the outcome of a background catalog scan.
type ScanResultMsg struct {
	Entries []catalog.Entry
	Err     error
}

// TrackInfoMsg carries metadata read for the track at Path.
type TrackInfoMsg struct {
	Path string
	Info *catalog.TrackInfo
}

// ExternalCommandMsg injects a command from outside the terminal,
// e.g. an MPRIS method call. Sent via Program.Send so it funnels
// through the same single-threaded dispatch as key events.
type ExternalCommandMsg struct {
	Cmd control.Command
}
