// Package notify raises a desktop notification when playback moves to
// a new track. Each track replaces the previous bubble instead of
// stacking, and everything degrades to a no-op when no notification
// service is reachable.
package notify

import (
	"strings"

	"github.com/lsorel/murmur/internal/catalog"
)

// Notifier announces track changes to the desktop.
type Notifier interface {
	// TrackStarted raises (or replaces) the now-playing notification.
	TrackStarted(info *catalog.TrackInfo) error
	// Close withdraws any notification still on screen.
	Close() error
}

// Noop satisfies Notifier where desktop notifications are unavailable.
type Noop struct{}

func (Noop) TrackStarted(*catalog.TrackInfo) error { return nil }
func (Noop) Close() error                          { return nil }

// trackBody renders the notification body: artist and album on
// separate lines, omitting whichever tags are missing.
func trackBody(info *catalog.TrackInfo) string {
	parts := make([]string, 0, 2)
	if info.Artist != "" {
		parts = append(parts, info.Artist)
	}
	if info.Album != "" {
		parts = append(parts, info.Album)
	}
	return strings.Join(parts, "\n")
}
