// Package catalog discovers playable audio files under a root directory.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Errors reported when a scan root is unusable.
var (
	ErrRootNotFound     = errors.New("root directory not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// Format identifies the container/codec family of an entry, derived
// from its file extension.
type Format int

const (
	FormatUnknown Format = iota
	FormatMP3
	FormatWAV
	FormatFLAC
	FormatOGG
	FormatM4A
	FormatAAC
)

// String returns the format name for display.
func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	case FormatWAV:
		return "WAV"
	case FormatFLAC:
		return "FLAC"
	case FormatOGG:
		return "OGG"
	case FormatM4A:
		return "M4A"
	case FormatAAC:
		return "AAC"
	default:
		return "Unknown"
	}
}

// ParseFormat maps a file extension (with or without leading dot,
// any case) to a Format. Returns FormatUnknown for anything outside
// the supported set.
func ParseFormat(ext string) Format {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "mp3":
		return FormatMP3
	case "wav":
		return FormatWAV
	case "flac":
		return FormatFLAC
	case "ogg":
		return FormatOGG
	case "m4a":
		return FormatM4A
	case "aac":
		return FormatAAC
	default:
		return FormatUnknown
	}
}

// Entry is one playable file in the catalog. Immutable once produced.
type Entry struct {
	Path   string
	Name   string
	Format Format
}

// IsAudioFile reports whether the path carries a supported audio
// extension.
func IsAudioFile(path string) bool {
	return ParseFormat(filepath.Ext(path)) != FormatUnknown
}

// Scan walks root recursively and returns all supported audio files,
// sorted by path. The ordering is stable across repeated scans of an
// unchanged directory. Per-file errors (unreadable subdirectories,
// vanished files) are skipped; only an unusable root fails the scan.
func Scan(root string) ([]Entry, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	var entries []Entry
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		// Skip walk errors - intentionally continuing to scan other paths
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			return nil
		}
		if !IsAudioFile(path) {
			return nil
		}
		entries = append(entries, Entry{
			Path:   path,
			Name:   filepath.Base(path),
			Format: ParseFormat(filepath.Ext(path)),
		})
		return nil
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrRootNotFound, root)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, root)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}
	return nil
}
