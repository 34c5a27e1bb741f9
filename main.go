package main

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lsorel/murmur/internal/app"
	"github.com/lsorel/murmur/internal/audio"
	"github.com/lsorel/murmur/internal/catalog"
	"github.com/lsorel/murmur/internal/config"
	"github.com/lsorel/murmur/internal/control"
	"github.com/lsorel/murmur/internal/errmsg"
	"github.com/lsorel/murmur/internal/mpris"
	"github.com/lsorel/murmur/internal/notify"
	"github.com/lsorel/murmur/internal/stderr"
)

// resolveRoot picks the music directory: CLI argument, then config,
// then the XDG music dir, then the working directory.
func resolveRoot(cfg *config.Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg.DefaultFolder != "" {
		return cfg.DefaultFolder
	}
	if xdg.UserDirs.Music != "" {
		return xdg.UserDirs.Music
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}

	root := resolveRoot(cfg, os.Args[1:])

	// The startup scan runs before the TUI so a missing or unreadable
	// directory fails with a readable message and a nonzero exit.
	entries, err := catalog.Scan(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpScan, root, err))
		return 1
	}

	engine := audio.NewEngine()
	engine.SetVolume(cfg.Volume)

	machine := control.New(engine, control.WithAutoAdvance(cfg.ShouldAutoAdvance()))
	store := control.NewStore(control.NewPlayerState(cfg.Volume))
	m := app.New(machine, store, cfg, root, entries)
	if notifier, err := notify.New(); err == nil {
		m.Notifier = notifier
		defer notifier.Close()
	}

	// ALSA writes warnings to fd 2, which would corrupt the alternate
	// screen. Capture is best effort.
	capture, captureErr := stderr.Start()
	if captureErr == nil {
		defer capture.Restore()
		m.AudioLog = capture.Lines()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if adapter, err := mpris.New(store, func(cmd control.Command) {
		p.Send(app.ExternalCommandMsg{Cmd: cmd})
	}); err == nil {
		defer adapter.Close()
	}

	if _, err := p.Run(); err != nil {
		msg := errmsg.Format(errmsg.OpInitialize, err) + "\n"
		if captureErr == nil {
			capture.WriteOriginal(msg)
		} else {
			fmt.Fprint(os.Stderr, msg)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
