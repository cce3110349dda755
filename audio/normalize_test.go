// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVolume_Int16Example(t *testing.T) {
	t.Parallel()

	scaled, scale, err := NormalizeVolume([]float64{-2, 4, -1}, FormatInt16)
	require.NoError(t, err)

	assert.Equal(t, 8191.75, scale)
	assert.Equal(t, []float64{-16383.5, 32767.0, -8191.75}, scaled)
}

func TestReconstruct_Int16TruncatesTowardZero(t *testing.T) {
	t.Parallel()

	rec, err := Reconstruct([]float64{-2, 4, -1}, FormatInt16)
	require.NoError(t, err)

	assert.Equal(t, FormatInt16, rec.Format)
	assert.Equal(t, 1, rec.Channels)
	assert.Equal(t, 3, rec.Frames())
	assert.Equal(t, []float64{-16383, 32767, -8191}, rec.Samples)
}

func TestReconstruct_PeakTouchesFormatMax(t *testing.T) {
	t.Parallel()

	for _, format := range []SampleFormat{FormatUint8, FormatInt16, FormatInt32, FormatFloat32} {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			peak, err := format.Peak()
			require.NoError(t, err)

			rng := rand.New(rand.NewPCG(7, uint64(format)))
			source := make([]float64, 257)
			for i := range source {
				source[i] = rng.NormFloat64()
			}
			// make the loudest sample positive so uint8 keeps it
			source[100] = 10

			rec, err := Reconstruct(source, format)
			require.NoError(t, err)

			maxAbs := 0.0
			for _, v := range rec.Samples {
				maxAbs = math.Max(maxAbs, math.Abs(v))
			}
			assert.LessOrEqual(t, maxAbs, peak)
			assert.GreaterOrEqual(t, maxAbs, peak-1, "peak lost more than integer rounding")
		})
	}
}

func TestReconstruct_AlreadyAtPeak(t *testing.T) {
	t.Parallel()

	source := []float64{32767, -100, 5, -32767}
	rec, err := Reconstruct(source, FormatInt16)
	require.NoError(t, err)

	assert.Equal(t, 1.0, rec.Scale)
	assert.Equal(t, source, rec.Samples)

	rec, err = Reconstruct([]float64{0.5, -1, 0.25}, FormatFloat32)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rec.Scale)
	assert.Equal(t, []float64{0.5, -1, 0.25}, rec.Samples)
}

func TestReconstruct_SilentSourceIsNoOp(t *testing.T) {
	t.Parallel()

	rec, err := Reconstruct([]float64{0, 0, 0, 0}, FormatInt32)
	require.NoError(t, err)

	assert.Equal(t, 1.0, rec.Scale)
	assert.Equal(t, []float64{0, 0, 0, 0}, rec.Samples)
}

func TestReconstruct_Uint8ClampsNegatives(t *testing.T) {
	t.Parallel()

	rec, err := Reconstruct([]float64{-1, 2, 1}, FormatUint8)
	require.NoError(t, err)

	assert.Equal(t, 127.5, rec.Scale)
	assert.Equal(t, []float64{0, 255, 127}, rec.Samples)
}

func TestReconstruct_Float32Rounds(t *testing.T) {
	t.Parallel()

	rec, err := Reconstruct([]float64{0.1, -0.3}, FormatFloat32)
	require.NoError(t, err)

	for i, v := range rec.Samples {
		assert.Equal(t, float64(float32(v)), v, "sample %d is not a float32 value", i)
	}
	assert.Equal(t, -1.0, rec.Samples[1])
}

func TestReconstruct_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  []float64
		format  SampleFormat
		wantErr error
	}{
		{"unknown format", []float64{1, 2}, FormatUnknown, ErrUnrecognizedSampleFormat},
		{"out of range format", []float64{1, 2}, SampleFormat(9), ErrUnrecognizedSampleFormat},
		{"unknown format wins over empty", nil, FormatUnknown, ErrUnrecognizedSampleFormat},
		{"empty source", []float64{}, FormatInt16, ErrEmptySignal},
		{"nil source", nil, FormatFloat32, ErrEmptySignal},
		{"NaN sample", []float64{1, math.NaN()}, FormatInt16, ErrInvalidParameter},
		{"infinite sample", []float64{math.Inf(-1), 1}, FormatInt16, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, err := Reconstruct(tt.source, tt.format)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, rec)
		})
	}
}

func TestReconstructMatrix_SharedPeak(t *testing.T) {
	t.Parallel()

	m, err := FromColumns([]float64{1, 0.5}, []float64{-2, 4})
	require.NoError(t, err)

	rec, err := ReconstructMatrix(m, FormatFloat32)
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Channels)
	assert.Equal(t, 2, rec.Frames())
	assert.Equal(t, 0.25, rec.Scale)
	assert.Equal(t, []float64{0.25, -0.5, 0.125, 1}, rec.Samples)

	// the input matrix is left untouched
	assert.Equal(t, 4.0, m.At(1, 1))

	_, err = ReconstructMatrix(nil, FormatFloat32)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestScaleSource_DoesNotMutate(t *testing.T) {
	t.Parallel()

	source := []float64{1, -2, 3}
	scaled := ScaleSource(source, 2)

	assert.Equal(t, []float64{2, -4, 6}, scaled)
	assert.Equal(t, []float64{1, -2, 3}, source)
}

func BenchmarkReconstruct(b *testing.B) {
	source := make([]float64, 44100)
	for i := range source {
		source[i] = math.Sin(float64(i) * 0.01)
	}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Reconstruct(source, FormatInt16)
	}
}
