// Package styles defines the color palette and pre-built lipgloss
// styles shared by the view code.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the application.
type Theme struct {
	Primary   lipgloss.Color // accent - playing track, focused border
	Secondary lipgloss.Color // secondary accent - header gradient end

	FgBase   lipgloss.Color // primary text
	FgMuted  lipgloss.Color // secondary text
	FgSubtle lipgloss.Color // tertiary text

	BgCursor lipgloss.Color // selection highlight

	Border lipgloss.Color

	Success lipgloss.Color // playing
	Error   lipgloss.Color // errors
	Warning lipgloss.Color // paused, warnings

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Panel   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7dc4e4"),
	Secondary: lipgloss.Color("#c6a0f6"),

	FgBase:   lipgloss.Color("#cad3f5"),
	FgMuted:  lipgloss.Color("#8087a2"),
	FgSubtle: lipgloss.Color("#494d64"),

	BgCursor: lipgloss.Color("#363a4f"),

	Border: lipgloss.Color("#494d64"),

	Success: lipgloss.Color("#a6da95"),
	Error:   lipgloss.Color("#ed8796"),
	Warning: lipgloss.Color("#eed49f"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
	}
}
