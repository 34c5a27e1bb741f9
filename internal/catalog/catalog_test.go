package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
	}{
		{".mp3", FormatMP3},
		{".MP3", FormatMP3},
		{"mp3", FormatMP3},
		{".wav", FormatWAV},
		{".flac", FormatFLAC},
		{".Ogg", FormatOGG},
		{".m4a", FormatM4A},
		{".aac", FormatAAC},
		{".txt", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := ParseFormat(tt.ext); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestScan_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.wav"))
	touch(t, filepath.Join(dir, "a.mp3"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "c.FLAC"))
	touch(t, filepath.Join(dir, "sub", "cover.jpg"))

	entries, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	wantPaths := []string{
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "b.wav"),
		filepath.Join(dir, "sub", "c.FLAC"),
	}
	if len(entries) != len(wantPaths) {
		t.Fatalf("Scan() returned %d entries, want %d", len(entries), len(wantPaths))
	}
	for i, want := range wantPaths {
		if entries[i].Path != want {
			t.Errorf("entries[%d].Path = %q, want %q", i, entries[i].Path, want)
		}
	}

	if entries[2].Format != FormatFLAC {
		t.Errorf("case-insensitive extension: got %v, want FLAC", entries[2].Format)
	}
	if entries[0].Name != "a.mp3" {
		t.Errorf("entries[0].Name = %q, want a.mp3", entries[0].Name)
	}
}

func TestScan_StableAcrossRescans(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "z.ogg"))
	touch(t, filepath.Join(dir, "a.m4a"))
	touch(t, filepath.Join(dir, "m.aac"))

	first, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("rescan length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entries[%d] differ across rescans: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	entries, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Scan() returned %d entries, want 0", len(entries))
	}
}

func TestScan_RootNotFound(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("Scan() error = %v, want ErrRootNotFound", err)
	}
}

func TestScan_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	touch(t, path)

	_, err := Scan(path)
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("Scan() on a file: error = %v, want ErrRootNotFound", err)
	}
}

func TestReadTrackInfo_FallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "untitled.mp3")
	touch(t, path)

	info, err := ReadTrackInfo(path)
	if err != nil {
		t.Fatalf("ReadTrackInfo() error = %v", err)
	}
	if info.Title != "untitled.mp3" {
		t.Errorf("Title = %q, want filename fallback", info.Title)
	}
	if info.Size != 1 {
		t.Errorf("Size = %d, want 1", info.Size)
	}
}

func TestReadTrackInfo_MissingFile(t *testing.T) {
	_, err := ReadTrackInfo(filepath.Join(t.TempDir(), "gone.mp3"))
	if err == nil {
		t.Error("ReadTrackInfo() on missing file: want error")
	}
}
