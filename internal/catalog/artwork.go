package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// artworkRank orders base names by preference; lower is better.
var artworkRank = map[string]int{
	"cover":  0,
	"folder": 1,
	"album":  2,
	"front":  3,
}

var artworkExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// FindArtwork returns the best artwork image stored alongside the
// track, or "" when its directory has none. Candidates are matched
// case-insensitively on base name and ranked cover > folder > album >
// front; ties fall to directory order.
func FindArtwork(trackPath string) string {
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	best := ""
	bestRank := len(artworkRank)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !artworkExts[strings.ToLower(ext)] {
			continue
		}
		base := strings.ToLower(strings.TrimSuffix(name, ext))
		if rank, ok := artworkRank[base]; ok && rank < bestRank {
			best = name
			bestRank = rank
		}
	}

	if best == "" {
		return ""
	}
	return filepath.Join(dir, best)
}
