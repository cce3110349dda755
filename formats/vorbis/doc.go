// SPDX-License-Identifier: EPL-2.0

// Package vorbis identifies Ogg Vorbis input and refuses it.
//
// The stream headers are read with github.com/jfreymuth/oggvorbis. A mono
// stream fails with audio.ErrUnsupportedChannelCount; any other valid stream
// fails with audio.ErrUnsupportedCompression, since Vorbis is lossy and has
// no storage format to write separated sources back in. Anything else fails
// with ErrNotVorbisFile.
package vorbis
