package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/lsorel/murmur/internal/catalog"
)

// decode picks a decoder from the file extension and returns a
// seekable streamer over the file's samples.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch catalog.ParseFormat(filepath.Ext(path)) {
	case catalog.FormatMP3:
		return decodeMP3(f)
	case catalog.FormatWAV:
		return wav.Decode(f)
	case catalog.FormatFLAC:
		// Skip an ID3v2 tag if present (some taggers prepend one to
		// FLAC files, which the FLAC decoder does not handle).
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case catalog.FormatOGG:
		return vorbis.Decode(f)
	case catalog.FormatM4A, catalog.FormatAAC:
		// Raw .aac files in the wild are usually M4A-contained; ADTS
		// streams the container reader cannot parse fail here and
		// surface as an unsupported-format status message.
		return decodeM4A(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unrecognized extension %q", filepath.Ext(path))
	}
}

// skipID3v2 skips an ID3v2 tag if present at the start of the stream,
// leaving the reader positioned at the first post-tag byte.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := r.Read(header)
	if err != nil {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer in bytes 6-9: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
