// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/bsswav/audio"
)

// readChunk is the number of frames pulled from go-audio per PCMBuffer call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads an uncompressed multi-channel AIFF or AIFC file.
func (Decoder) Decode(r io.Reader) (*audio.Recording, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	h, err := probe(rs)
	if err != nil {
		return nil, err
	}

	if err := audio.CheckMultichannel(h.channels); err != nil {
		return nil, err
	}

	if err := h.checkCompression(); err != nil {
		return nil, err
	}

	if !h.hasSound {
		return nil, ErrMissingSoundChunk
	}

	if h.frames == 0 {
		return nil, fmt.Errorf("aiff sound chunk is empty: %w", audio.ErrEmptySignal)
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return decode(dec, h)
}

// decode drains dec and converts the samples to their storage values. AIFF
// 8-bit samples are signed, but go-audio hands them over as the raw byte;
// flipping the top bit moves them into the unsigned uint8 range.
func decode(dec aiffReader, h *header) (*audio.Recording, error) {
	format := audio.FormatFor(h.bitDepth, false)

	buf := &goaudio.IntBuffer{
		Data:   make([]int, readChunk*h.channels),
		Format: dec.Format(),
	}

	expected := int(h.frames) * h.channels
	samples := make([]float64, 0, min(expected, 1<<20))

	convert := func(v int) float64 { return float64(v) }
	if format == audio.FormatUint8 {
		convert = func(v int) float64 { return float64(uint8(v) ^ 0x80) }
	}

	for {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			samples = append(samples, convert(v))
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding aiff samples: %w", err)
		}

		if n == 0 {
			break
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("aiff sound chunk is empty: %w", audio.ErrEmptySignal)
	}

	// a truncated file can end mid-frame
	samples = samples[:len(samples)-len(samples)%h.channels]

	m, err := audio.FromInterleaved(h.channels, samples)
	if err != nil {
		return nil, fmt.Errorf("decoding aiff samples: %w", err)
	}

	return &audio.Recording{
		SampleRate: h.sampleRate,
		Format:     format,
		Samples:    m,
	}, nil
}
