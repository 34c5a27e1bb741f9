package catalog

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// TrackInfo holds display metadata for a single file, read on demand
// for the info panel. Fields fall back to filename-derived values when
// the file carries no usable tags.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Year   int
	Track  int
	Size   int64
}

// ReadTrackInfo reads tag metadata and file size for path. Tag read
// failures are not errors: the returned info falls back to the file
// name so the UI always has something to show.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info := &TrackInfo{
		Path:  path,
		Title: filepath.Base(path),
	}

	if stat, err := f.Stat(); err == nil {
		info.Size = stat.Size()
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info, nil
	}

	if title := m.Title(); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Year = m.Year()
	info.Track, _ = m.Track()

	return info, nil
}
