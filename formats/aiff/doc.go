// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed multi-channel AIFF and AIFC files.
//
// It is an input-only codec: recordings read here are written back as WAV.
// Only AIFF and AIFC with compression type NONE are accepted; anything else
// fails with audio.ErrUnsupportedCompression. Single-channel files fail with
// audio.ErrUnsupportedChannelCount before any sample is read.
//
// Samples keep their storage values. 8-bit AIFF is signed and is shifted by
// 128 so it matches audio.FormatUint8; 16 and 32-bit map to audio.FormatInt16
// and audio.FormatInt32. Other depths decode as audio.FormatUnknown.
package aiff
