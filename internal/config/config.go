package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Volume defaults applied when the config file is absent or silent.
const (
	DefaultVolume     = 70
	DefaultVolumeStep = 5
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // starting directory; empty means platform music dir, then cwd
	Volume        int    `koanf:"volume"`         // initial volume, 0-100
	VolumeStep    int    `koanf:"volume_step"`    // step for volume keys
	AutoAdvance   *bool  `koanf:"auto_advance"`   // play next track on natural finish (default: true)
}

// Load reads configuration from the standard paths and applies
// defaults. A missing file is not an error.
func Load() (*Config, error) {
	return loadFrom(configPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Volume:     DefaultVolume,
		VolumeStep: DefaultVolumeStep,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Volume < 0 || cfg.Volume > 100 {
		cfg.Volume = DefaultVolume
	}
	if cfg.VolumeStep <= 0 || cfg.VolumeStep > 50 {
		cfg.VolumeStep = DefaultVolumeStep
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	return cfg, nil
}

// ShouldAutoAdvance returns the auto_advance setting with its default.
func (c *Config) ShouldAutoAdvance() bool {
	if c.AutoAdvance == nil {
		return true
	}
	return *c.AutoAdvance
}

func configPaths() []string {
	paths := []string{}

	// 1. ~/.config/murmur/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "murmur", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
