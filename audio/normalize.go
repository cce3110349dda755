// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/bsswav/utils"
)

// Reconstructed is a peak-normalized signal already cast to its storage type.
//
// Samples are interleaved and every value is exactly representable in Format:
// whole numbers in range for the integer formats, float32 values for
// FormatFloat32.
type Reconstructed struct {
	Format   SampleFormat
	Channels int
	Scale    float64
	Samples  []float64
}

// Frames returns the number of frames in r.
func (r *Reconstructed) Frames() int {
	if r.Channels == 0 {
		return 0
	}
	return len(r.Samples) / r.Channels
}

// ScaleSource multiplies every sample by factor and returns a new slice.
func ScaleSource(source []float64, factor float64) []float64 {
	out := make([]float64, len(source))
	copy(out, source)
	floats.Scale(factor, out)

	return out
}

// PeakScale returns the factor that makes the loudest sample of source touch
// the peak of format.
//
// A silent source (all zeros) has no loudest sample; its scale is 1 so the
// signal passes through unchanged.
func PeakScale(source []float64, format SampleFormat) (float64, error) {
	peak, err := format.Peak()
	if err != nil {
		return 0, err
	}

	if len(source) == 0 {
		return 0, ErrEmptySignal
	}

	for i, v := range source {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: sample %d is %v", ErrInvalidParameter, i, v)
		}
	}

	maxVal := math.Max(math.Abs(floats.Max(source)), math.Abs(floats.Min(source)))
	if maxVal == 0 {
		return 1, nil
	}

	return peak / maxVal, nil
}

// NormalizeVolume scales source so its loudest sample touches the peak of
// format. The result is not yet cast to the storage type.
func NormalizeVolume(source []float64, format SampleFormat) ([]float64, float64, error) {
	scale, err := PeakScale(source, format)
	if err != nil {
		return nil, 0, err
	}

	return ScaleSource(source, scale), scale, nil
}

// Reconstruct normalizes a single source and casts it to format.
func Reconstruct(source []float64, format SampleFormat) (*Reconstructed, error) {
	return reconstruct(source, 1, format)
}

// ReconstructMatrix normalizes every channel of m against one shared peak
// (the loudest sample anywhere in m) and casts the result to format.
func ReconstructMatrix(m *SampleMatrix, format SampleFormat) (*Reconstructed, error) {
	if m == nil || m.dense == nil {
		return nil, fmt.Errorf("%w: nil sample matrix", ErrInvalidParameter)
	}

	return reconstruct(m.Interleaved(), m.Channels(), format)
}

func reconstruct(samples []float64, channels int, format SampleFormat) (*Reconstructed, error) {
	scaled, scale, err := NormalizeVolume(samples, format)
	if err != nil {
		return nil, err
	}

	cast := castFunc(format)
	for i, v := range scaled {
		scaled[i] = cast(v)
	}

	return &Reconstructed{
		Format:   format,
		Channels: channels,
		Scale:    scale,
		Samples:  scaled,
	}, nil
}

// castFunc returns the storage conversion for a format that has already been
// validated by PeakScale.
func castFunc(format SampleFormat) func(float64) float64 {
	switch format {
	case FormatUint8:
		return func(v float64) float64 { return float64(utils.TruncateUint8(v)) }
	case FormatInt16:
		return func(v float64) float64 { return float64(utils.TruncateInt16(v)) }
	case FormatInt32:
		return func(v float64) float64 { return float64(utils.TruncateInt32(v)) }
	default:
		return func(v float64) float64 { return float64(utils.RoundFloat32(v)) }
	}
}
