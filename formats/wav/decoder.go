// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/bsswav/audio"
)

// Decoder reads uncompressed multi-channel WAV files.
type Decoder struct{}

// Decode reads the whole file behind r into an audio.Recording.
//
// The header is checked before any sample is decoded: single-channel input
// fails with audio.ErrUnsupportedChannelCount and compressed input with
// audio.ErrUnsupportedCompression. Bit depths without a defined peak (24-bit
// PCM, for example) decode with audio.FormatUnknown.
func (Decoder) Decode(r io.Reader) (*audio.Recording, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
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

	if !h.hasData {
		return nil, ErrMissingDataChunk
	}

	if h.dataSize == 0 {
		return nil, fmt.Errorf("wav data chunk is empty: %w", audio.ErrEmptySignal)
	}

	format := h.sampleFormat()
	if h.formatTag == formatIEEEFloat && format == audio.FormatUnknown {
		return nil, fmt.Errorf("%w: %d-bit float", audio.ErrUnrecognizedSampleFormat, h.bitsPerSample)
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav samples: %w", err)
	}

	samples, err := audio.FromInterleaved(h.channels, toFloat64(buf.Data, format))
	if err != nil {
		return nil, fmt.Errorf("decoding wav samples: %w", err)
	}

	return &audio.Recording{
		SampleRate: h.sampleRate,
		Format:     format,
		Samples:    samples,
	}, nil
}

// toFloat64 converts go-audio integer samples to float64 without rescaling.
// 32-bit float files arrive as their raw bit patterns.
func toFloat64(data []int, format audio.SampleFormat) []float64 {
	out := make([]float64, len(data))

	if format == audio.FormatFloat32 {
		for i, v := range data {
			out[i] = float64(math.Float32frombits(uint32(v)))
		}
		return out
	}

	for i, v := range data {
		out[i] = float64(v)
	}

	return out
}
