// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a FORM AIFF or AIFC file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates a missing or malformed COMM chunk
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrMissingSoundChunk indicates the file has no SSND chunk
	ErrMissingSoundChunk = errors.New("missing AIFF sound data chunk")
)
