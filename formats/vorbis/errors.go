// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile indicates the input has no valid Ogg Vorbis headers
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")
