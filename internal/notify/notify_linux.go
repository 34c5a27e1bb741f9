//go:build linux

package notify

import (
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/lsorel/murmur/internal/catalog"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = "/org/freedesktop/Notifications"
	notifyIface = "org.freedesktop.Notifications"

	// Bubble lifetime in ms. Long enough to glance at, short enough
	// that skipping through tracks doesn't linger.
	notifyTimeout = int32(4000)
)

// busNotifier talks to the freedesktop notification service. It keeps
// the last notification ID so each track replaces the previous bubble.
type busNotifier struct {
	obj dbus.BusObject

	mu     sync.Mutex
	lastID uint32
}

// New connects to the session bus. A missing bus is not an error; the
// returned Notifier is then a no-op.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Noop{}, nil //nolint:nilerr // headless sessions run without notifications
	}
	return &busNotifier{obj: conn.Object(notifyDest, notifyPath)}, nil
}

func (n *busNotifier) TrackStarted(info *catalog.TrackInfo) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	hints := map[string]dbus.Variant{
		"urgency":        dbus.MakeVariant(byte(0)), // low
		"desktop-entry":  dbus.MakeVariant("murmur"),
		"suppress-sound": dbus.MakeVariant(true),
		"transient":      dbus.MakeVariant(true),
	}

	call := n.obj.Call(
		notifyIface+".Notify",
		0,
		"Murmur",
		n.lastID, // replace the previous track's bubble
		catalog.FindArtwork(info.Path),
		info.Title,
		trackBody(info),
		[]string{},
		hints,
		notifyTimeout,
	)
	if call.Err != nil {
		return call.Err
	}
	return call.Store(&n.lastID)
}

func (n *busNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.lastID == 0 {
		return nil
	}
	call := n.obj.Call(notifyIface+".CloseNotification", 0, n.lastID)
	n.lastID = 0
	return call.Err
}
