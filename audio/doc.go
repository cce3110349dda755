// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample representation and the volume
// reconstruction shared by the dataset generator and the WAV codecs.
//
// This package contains the core building blocks:
//   - SampleMatrix, a [frames, channels] float64 matrix backed by gonum
//   - SampleFormat, the closed set of storage formats and their peaks
//   - Reconstruct, peak normalization followed by a cast to the storage type
//   - Decoder interface and Registry for codec lookup by file extension
//
// # Sample Matrix
//
// Every pipeline works on the same shape: one row per frame, one column per
// channel or source. Column order is meaningful and is never changed:
//
//	m, _ := audio.FromColumns(left, right)
//	fmt.Println(m.Frames(), m.Channels())
//
// # Sample Formats
//
// A file is read once and its SampleFormat is reused for every file written
// back from it. Only four formats have a defined peak:
//
//	uint8    255
//	int16    32767
//	int32    2147483647
//	float32  1.0
//
// Anything else is FormatUnknown, and asking for its peak returns
// ErrUnrecognizedSampleFormat. A peak is never guessed.
//
// # Reconstruction
//
// Reconstruct rescales a source so that max(|max|, |min|) lands exactly on the
// format peak and then casts it:
//
//	rec, err := audio.Reconstruct([]float64{-2, 4, -1}, audio.FormatInt16)
//	// rec.Scale == 8191.75, rec.Samples == [-16383 32767 -8191]
//
// Integer formats truncate toward zero and saturate to the type range (uint8
// clamps negative values to 0). float32 rounds to nearest. A silent source
// keeps a scale of 1.
//
// # Errors
//
// All failures are reported through sentinel errors that can be matched with
// errors.Is:
//   - ErrUnsupportedChannelCount: decoded input with a single channel
//   - ErrUnsupportedCompression: anything other than uncompressed PCM/float
//   - ErrUnrecognizedSampleFormat: a format without a defined peak
//   - ErrEmptySignal: no samples to normalize
//   - ErrInvalidParameter: bad sizes, wrong matrix shape, non-finite samples
package audio
