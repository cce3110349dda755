// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedChannelCount is returned for input with fewer than two channels.
	ErrUnsupportedChannelCount = errors.New("must be more than 1 channel")
	// ErrUnsupportedCompression is returned for anything that is not uncompressed PCM or float.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrUnrecognizedSampleFormat is returned for a sample format without a defined peak.
	ErrUnrecognizedSampleFormat = errors.New("unrecognized sample format")
	// ErrEmptySignal is returned when a signal has no samples.
	ErrEmptySignal = errors.New("signal has no samples")
	// ErrInvalidParameter is returned for out of range arguments and wrong matrix shapes.
	ErrInvalidParameter = errors.New("invalid parameter")
)
