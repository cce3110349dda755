// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// SampleFormat is the on-disk representation of a single sample.
//
// The set is closed: only the four formats below have a peak value, and the
// zero value FormatUnknown stands for anything a codec could not map.
type SampleFormat uint8

const (
	FormatUnknown SampleFormat = iota
	FormatUint8
	FormatInt16
	FormatInt32
	FormatFloat32
)

// Peak returns the largest magnitude the format can hold.
func (f SampleFormat) Peak() (float64, error) {
	switch f {
	case FormatUint8:
		return math.MaxUint8, nil
	case FormatInt16:
		return math.MaxInt16, nil
	case FormatInt32:
		return math.MaxInt32, nil
	case FormatFloat32:
		return 1.0, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnrecognizedSampleFormat, f)
	}
}

// Valid reports whether f is one of the four known formats.
func (f SampleFormat) Valid() bool {
	_, err := f.Peak()
	return err == nil
}

// BitDepth returns the storage width in bits, or 0 for FormatUnknown.
func (f SampleFormat) BitDepth() int {
	switch f {
	case FormatUint8:
		return 8
	case FormatInt16:
		return 16
	case FormatInt32, FormatFloat32:
		return 32
	default:
		return 0
	}
}

// IsFloat reports whether samples are stored as IEEE floats.
func (f SampleFormat) IsFloat() bool { return f == FormatFloat32 }

func (f SampleFormat) String() string {
	switch f {
	case FormatUint8:
		return "uint8"
	case FormatInt16:
		return "int16"
	case FormatInt32:
		return "int32"
	case FormatFloat32:
		return "float32"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// FormatFor maps a bit depth and sample kind to a SampleFormat.
// Combinations without a defined peak (24-bit PCM, 64-bit float, ...) return
// FormatUnknown.
func FormatFor(bitDepth int, isFloat bool) SampleFormat {
	if isFloat {
		if bitDepth == 32 {
			return FormatFloat32
		}
		return FormatUnknown
	}

	switch bitDepth {
	case 8:
		return FormatUint8
	case 16:
		return FormatInt16
	case 32:
		return FormatInt32
	default:
		return FormatUnknown
	}
}

// ParseFormat parses the names returned by String.
func ParseFormat(name string) (SampleFormat, error) {
	for _, f := range []SampleFormat{FormatUint8, FormatInt16, FormatInt32, FormatFloat32} {
		if f.String() == name {
			return f, nil
		}
	}

	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnrecognizedSampleFormat, name)
}
