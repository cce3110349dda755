// SPDX-License-Identifier: EPL-2.0

// Package mp3 identifies MP3 input so it can be refused with a precise error.
//
// Separation output is written back in the exact sample format of its input,
// which a lossy stream does not have. Decode parses the first MPEG frame with
// github.com/hajimehoshi/go-mp3 and then fails with
// audio.ErrUnsupportedCompression, naming the codec and the stream rate.
// Input that is not MPEG audio at all fails with ErrNotMP3File.
package mp3
