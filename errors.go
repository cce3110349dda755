// SPDX-License-Identifier: EPL-2.0

package bsswav

import "errors"

// ErrUnsupportedFileType is returned by Open when no decoder is registered
// for the file extension.
var ErrUnsupportedFileType = errors.New("unsupported file type")
