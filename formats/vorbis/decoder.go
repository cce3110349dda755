// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/bsswav/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
}

// Decoder recognizes Ogg Vorbis streams and refuses them. Like WAV input, a
// single-channel stream fails the channel check first.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Recording, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return nil, reject(dec)
}

func reject(dec oggReader) error {
	if err := audio.CheckMultichannel(dec.Channels()); err != nil {
		return err
	}

	return fmt.Errorf("%w: compression type is Vorbis (%d Hz, %d channels)",
		audio.ErrUnsupportedCompression, dec.SampleRate(), dec.Channels())
}
