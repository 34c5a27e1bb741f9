package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := loadFrom(nil)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Volume != DefaultVolume {
		t.Errorf("Volume = %d, want %d", cfg.Volume, DefaultVolume)
	}
	if cfg.VolumeStep != DefaultVolumeStep {
		t.Errorf("VolumeStep = %d, want %d", cfg.VolumeStep, DefaultVolumeStep)
	}
	if cfg.DefaultFolder != "" {
		t.Errorf("DefaultFolder = %q, want empty", cfg.DefaultFolder)
	}
	if !cfg.ShouldAutoAdvance() {
		t.Error("ShouldAutoAdvance() = false by default, want true")
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := writeConfig(t, `
default_folder = "/srv/music"
volume = 40
volume_step = 10
auto_advance = false
`)

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.DefaultFolder != "/srv/music" {
		t.Errorf("DefaultFolder = %q, want /srv/music", cfg.DefaultFolder)
	}
	if cfg.Volume != 40 {
		t.Errorf("Volume = %d, want 40", cfg.Volume)
	}
	if cfg.VolumeStep != 10 {
		t.Errorf("VolumeStep = %d, want 10", cfg.VolumeStep)
	}
	if cfg.ShouldAutoAdvance() {
		t.Error("ShouldAutoAdvance() = true, want false")
	}
}

func TestLoadFrom_OutOfRangeValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
volume = 250
volume_step = -3
`)

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Volume != DefaultVolume {
		t.Errorf("Volume = %d for out-of-range value, want default %d", cfg.Volume, DefaultVolume)
	}
	if cfg.VolumeStep != DefaultVolumeStep {
		t.Errorf("VolumeStep = %d for invalid value, want default %d", cfg.VolumeStep, DefaultVolumeStep)
	}
}

func TestLoadFrom_MissingFileIsNotAnError(t *testing.T) {
	_, err := loadFrom([]string{filepath.Join(t.TempDir(), "absent.toml")})
	if err != nil {
		t.Errorf("loadFrom() with missing file = %v, want nil", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/albums", "music/albums"},
		{"empty string unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
