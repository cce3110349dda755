// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SampleMatrix holds float64 samples laid out as [frames, channels].
// Row i is frame i; column c is channel (or source) c. Column order is never
// changed by any operation in this module.
type SampleMatrix struct {
	dense *mat.Dense
}

// NewSampleMatrix creates a frames x channels matrix. data is row-major
// (interleaved frames) and is used without copying; nil allocates zeros.
func NewSampleMatrix(frames, channels int, data []float64) (*SampleMatrix, error) {
	if frames < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: shape [%d, %d]", ErrInvalidParameter, frames, channels)
	}
	if data != nil && len(data) != frames*channels {
		return nil, fmt.Errorf("%w: %d values for shape [%d, %d]", ErrInvalidParameter, len(data), frames, channels)
	}

	return &SampleMatrix{dense: mat.NewDense(frames, channels, data)}, nil
}

// FromInterleaved builds a matrix from interleaved samples. The length of
// data must be a multiple of channels.
func FromInterleaved(channels int, data []float64) (*SampleMatrix, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidParameter, channels)
	}
	if len(data) == 0 {
		return nil, ErrEmptySignal
	}
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels", ErrInvalidParameter, len(data), channels)
	}

	return NewSampleMatrix(len(data)/channels, channels, data)
}

// FromColumns builds a matrix whose columns are cols, in order. All columns
// must have the same non-zero length.
func FromColumns(cols ...[]float64) (*SampleMatrix, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidParameter)
	}

	frames := len(cols[0])
	if frames == 0 {
		return nil, ErrEmptySignal
	}

	m, err := NewSampleMatrix(frames, len(cols), nil)
	if err != nil {
		return nil, err
	}

	for c, col := range cols {
		if len(col) != frames {
			return nil, fmt.Errorf("%w: column %d has %d frames, want %d", ErrInvalidParameter, c, len(col), frames)
		}
		m.dense.SetCol(c, col)
	}

	return m, nil
}

// FromDense wraps an existing gonum matrix without copying.
func FromDense(d *mat.Dense) (*SampleMatrix, error) {
	if d == nil || d.IsEmpty() {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidParameter)
	}

	return &SampleMatrix{dense: d}, nil
}

func (m *SampleMatrix) Frames() int {
	r, _ := m.dense.Dims()
	return r
}

func (m *SampleMatrix) Channels() int {
	_, c := m.dense.Dims()
	return c
}

func (m *SampleMatrix) At(frame, channel int) float64 { return m.dense.At(frame, channel) }

func (m *SampleMatrix) Set(frame, channel int, v float64) { m.dense.Set(frame, channel, v) }

// Dense exposes the underlying gonum matrix. Mutating it mutates m.
func (m *SampleMatrix) Dense() *mat.Dense { return m.dense }

// Column returns a copy of channel c.
func (m *SampleMatrix) Column(c int) []float64 {
	return mat.Col(nil, c, m.dense)
}

// Columns returns a copy of every channel, in channel order.
func (m *SampleMatrix) Columns() [][]float64 {
	out := make([][]float64, m.Channels())
	for c := range out {
		out[c] = m.Column(c)
	}

	return out
}

// Interleaved returns a row-major copy of the samples: frame 0 channel 0,
// frame 0 channel 1, and so on.
func (m *SampleMatrix) Interleaved() []float64 {
	frames, channels := m.dense.Dims()
	out := make([]float64, 0, frames*channels)
	for i := range frames {
		out = append(out, m.dense.RawRowView(i)...)
	}

	return out
}

// Clone returns a deep copy of m.
func (m *SampleMatrix) Clone() *SampleMatrix {
	return &SampleMatrix{dense: mat.DenseCopyOf(m.dense)}
}

// RequireChannels returns ErrInvalidParameter unless m is non-nil and has
// exactly n channels.
func RequireChannels(m *SampleMatrix, n int) error {
	if m == nil || m.dense == nil {
		return fmt.Errorf("%w: nil sample matrix", ErrInvalidParameter)
	}
	if got := m.Channels(); got != n {
		return fmt.Errorf("%w: got %d channels, want %d", ErrInvalidParameter, got, n)
	}

	return nil
}

// CheckMultichannel rejects decoded input that has fewer than two channels.
func CheckMultichannel(channels int) error {
	if channels < 2 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedChannelCount, channels)
	}

	return nil
}
