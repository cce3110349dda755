// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/bsswav/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	SampleRate() int
	Length() int64
}

// Decoder recognizes MPEG audio streams. It never returns samples: MP3 is
// lossy, so every valid stream is rejected with
// audio.ErrUnsupportedCompression.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Recording, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return nil, reject(dec)
}

func reject(dec mp3Reader) error {
	detail := fmt.Sprintf("%d Hz", dec.SampleRate())
	if n := dec.Length(); n > 0 {
		// go-mp3 always decodes to 16-bit stereo, four bytes per frame
		detail = fmt.Sprintf("%s, %d frames", detail, n/4)
	}

	return fmt.Errorf("%w: compression type is MPEG layer 3 (%s)", audio.ErrUnsupportedCompression, detail)
}
