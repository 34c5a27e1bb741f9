// internal/app/view.go
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/lsorel/murmur/internal/control"
	"github.com/lsorel/murmur/internal/ui/render"
	"github.com/lsorel/murmur/internal/ui/styles"
)

const minSideWidth = 30

// View renders the full-screen layout: header, catalog list with the
// info panel beside it, and the status line.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := m.renderHeader()
	status := m.renderStatus()

	bodyHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(status)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	sideWidth := max(m.Width/3, minSideWidth)
	if sideWidth > m.Width/2 {
		sideWidth = m.Width / 2
	}
	listWidth := m.Width - sideWidth

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderList(listWidth, bodyHeight),
		m.renderSide(sideWidth, bodyHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) renderHeader() string {
	t := styles.T()
	s := t.S()

	title := styles.ApplyBoldGradient("murmur", t.Primary, t.Secondary)
	root := s.Muted.Render(render.Truncate(m.Root, m.Width/2))

	return s.Panel.Width(m.Width - 2).
		Render(render.Row(title, root, m.Width-2))
}

func (m Model) renderList(width, height int) string {
	s := styles.T().S()

	innerWidth := width - 4 // border plus one cell of padding each side
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	if len(m.State.Catalog) == 0 {
		empty := s.Muted.Render("No music files found")
		return s.Panel.Width(width - 2).Height(innerHeight).
			Padding(0, 1).Render(empty)
	}

	offset := listOffset(m.State.Selected, len(m.State.Catalog), innerHeight)

	lines := make([]string, 0, innerHeight)
	for i := offset; i < len(m.State.Catalog) && len(lines) < innerHeight; i++ {
		entry := m.State.Catalog[i]

		marker := "  "
		if m.State.Playback.Kind.IsActive() && m.State.Playback.TrackIndex == i {
			marker = "♪ "
		}
		line := render.TruncateAndPad(marker+entry.Name, innerWidth)

		switch {
		case i == m.State.Selected:
			line = s.Cursor.Render(line)
		case marker == "♪ ":
			line = s.Playing.Render(line)
		default:
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}

	return s.Panel.Width(width - 2).Height(innerHeight).
		Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSide(width, height int) string {
	s := styles.T().S()

	innerWidth := width - 4
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	sections := []string{
		m.renderNowPlaying(innerWidth),
		"",
		m.renderVolume(innerWidth),
		"",
		m.renderHelp(innerWidth),
	}

	return s.Panel.Width(width - 2).Height(innerHeight).
		Padding(0, 1).Render(strings.Join(sections, "\n"))
}

func (m Model) renderNowPlaying(width int) string {
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Now Playing"))
	b.WriteString("\n")

	entry := m.State.PlayingEntry()
	if entry == nil {
		b.WriteString(s.Muted.Render("Nothing playing"))
		return b.String()
	}

	stateLabel := s.Success.Render(m.State.Playback.Kind.String())
	if m.State.Playback.Kind == control.PlaybackPaused {
		stateLabel = s.Warning.Render(m.State.Playback.Kind.String())
	}
	b.WriteString(render.Row(stateLabel, s.Muted.Render(formatDuration(m.position())), width))
	b.WriteString("\n")

	info := m.NowPlaying
	if info == nil || info.Path != entry.Path {
		b.WriteString(s.Base.Render(render.Truncate(entry.Name, width)))
		return b.String()
	}

	b.WriteString(s.Base.Render(render.Truncate(info.Title, width)))
	if info.Artist != "" {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(render.Truncate(info.Artist, width)))
	}
	if info.Album != "" {
		album := info.Album
		if info.Year > 0 {
			album = fmt.Sprintf("%s (%d)", album, info.Year)
		}
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(render.Truncate(album, width)))
	}
	if info.Size > 0 {
		b.WriteString("\n")
		b.WriteString(s.Subtle.Render(humanize.Bytes(uint64(info.Size))))
	}

	return b.String()
}

func (m Model) renderVolume(width int) string {
	s := styles.T().S()

	gaugeWidth := width - 6
	if gaugeWidth < 4 {
		gaugeWidth = 4
	}
	gauge := render.Gauge(m.State.Volume, gaugeWidth)
	return s.Title.Render("Volume") + "\n" +
		render.Row(s.Base.Render(gauge), s.Muted.Render(fmt.Sprintf("%d%%", m.State.Volume)), width)
}

func (m Model) renderHelp(width int) string {
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Keys"))
	for _, binding := range m.Keys.HelpBindings() {
		h := binding.Help()
		b.WriteString("\n")
		b.WriteString(render.Row(s.Base.Render(h.Key), s.Muted.Render(h.Desc), width))
	}
	return b.String()
}

func (m Model) renderStatus() string {
	s := styles.T().S()

	style := s.Muted
	switch {
	case strings.HasPrefix(m.State.Status, "♪"):
		style = s.Success
	case strings.HasPrefix(m.State.Status, "Failed"):
		style = s.Error
	case strings.HasPrefix(m.State.Status, "Audio:"):
		style = s.Warning
	}

	counter := ""
	if len(m.State.Catalog) > 0 {
		counter = fmt.Sprintf("%d/%d", m.State.Selected+1, len(m.State.Catalog))
	}

	return " " + render.Row(style.Render(render.Truncate(m.State.Status, m.Width-10)), s.Subtle.Render(counter), m.Width-2)
}

// position returns the live position while playing, or the captured
// hint while paused.
func (m Model) position() time.Duration {
	if m.State.Playback.Kind == control.PlaybackPaused {
		return m.State.Playback.Position
	}
	return m.Machine.Position()
}

// listOffset computes the first visible index so the selection stays
// roughly centered once the list outgrows the viewport.
func listOffset(selected, total, visible int) int {
	if total <= visible || selected < 0 {
		return 0
	}
	offset := selected - visible/2
	if offset < 0 {
		return 0
	}
	if offset > total-visible {
		return total - visible
	}
	return offset
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
