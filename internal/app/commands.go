// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lsorel/murmur/internal/catalog"
	"github.com/lsorel/murmur/internal/notify"
)

const tickInterval = 500 * time.Millisecond

// TickCmd returns a command that sends TickMsg after the poll interval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ScanCmd rescans root in the background and reports the result.
func ScanCmd(root string) tea.Cmd {
	return func() tea.Msg {
		entries, err := catalog.Scan(root)
		return ScanResultMsg{Entries: entries, Err: err}
	}
}

// WatchAudioLogCmd waits for the next line the audio backend wrote to
// the captured stderr. Re-armed after each delivery.
func WatchAudioLogCmd(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil
		}
		return AudioLogMsg(line)
	}
}

// NotifyCmd sends a desktop notification for the track that just
// started. Best effort; failures are silent.
func NotifyCmd(n notify.Notifier, info *catalog.TrackInfo) tea.Cmd {
	if n == nil || info == nil {
		return nil
	}
	return func() tea.Msg {
		_ = n.TrackStarted(info)
		return nil
	}
}

// TrackInfoCmd reads tag metadata for path in the background.
func TrackInfoCmd(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := catalog.ReadTrackInfo(path)
		if err != nil {
			return TrackInfoMsg{Path: path, Info: nil}
		}
		return TrackInfoMsg{Path: path, Info: info}
	}
}
