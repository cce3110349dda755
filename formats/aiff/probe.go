// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/bsswav/audio"
)

// compressionNone is the AIFC compression type of uncompressed big-endian PCM.
const compressionNone = "NONE"

type header struct {
	aifc        bool
	channels    int
	frames      uint32
	bitDepth    int
	sampleRate  int
	compression string // AIFC only
	codecName   string // AIFC only, may be empty

	hasComm  bool
	hasSound bool
}

// probe walks the FORM chunks of r until both COMM and SSND have been seen.
func probe(r io.Reader) (*header, error) {
	form := make([]byte, 12)
	if _, err := io.ReadFull(r, form); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}

	if !bytes.Equal(form[:4], []byte("FORM")) {
		return nil, ErrNotAiffFile
	}

	h := &header{}
	switch string(form[8:12]) {
	case "AIFF":
	case "AIFC":
		h.aifc = true
	default:
		return nil, ErrNotAiffFile
	}

	chunk := make([]byte, 8)
	for !h.hasComm || !h.hasSound {
		if _, err := io.ReadFull(r, chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(chunk[:4])
		size := binary.BigEndian.Uint32(chunk[4:8])
		padded := int64(size) + int64(size%2)

		switch id {
		case "COMM":
			if size < 18 {
				return nil, ErrUnsupportedAiffLayout
			}
			body := make([]byte, padded)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
			}
			if err := h.parseComm(body[:size]); err != nil {
				return nil, err
			}

		case "SSND":
			h.hasSound = true
			if _, err := io.CopyN(io.Discard, r, padded); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
			}

		default:
			if _, err := io.CopyN(io.Discard, r, padded); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
			}
		}
	}

	if !h.hasComm {
		return nil, ErrUnsupportedAiffLayout
	}

	return h, nil
}

func (h *header) parseComm(body []byte) error {
	h.hasComm = true
	h.channels = int(int16(binary.BigEndian.Uint16(body[0:2])))
	h.frames = binary.BigEndian.Uint32(body[2:6])
	h.bitDepth = int(int16(binary.BigEndian.Uint16(body[6:8])))
	h.sampleRate = extendedToInt(body[8:18])

	if !h.aifc {
		h.compression = compressionNone
		return nil
	}

	if len(body) < 22 {
		return fmt.Errorf("%w: AIFC COMM chunk without compression type", ErrUnsupportedAiffLayout)
	}

	h.compression = string(body[18:22])
	if len(body) > 22 {
		n := int(body[22])
		if 23+n <= len(body) {
			h.codecName = string(body[23 : 23+n])
		}
	}

	return nil
}

// checkCompression accepts plain AIFF and AIFC with compression type NONE.
func (h *header) checkCompression() error {
	if h.compression == compressionNone {
		return nil
	}

	name := strings.TrimSpace(h.compression)
	if h.codecName != "" {
		name = fmt.Sprintf("%s (%s)", name, h.codecName)
	}

	return fmt.Errorf("%w: compression type is %s", audio.ErrUnsupportedCompression, name)
}

// extendedToInt converts an 80-bit IEEE 754 extended float to an integer,
// dropping any fraction. Sample rates are always whole numbers in practice.
func extendedToInt(b []byte) int {
	exp := int(binary.BigEndian.Uint16(b[0:2])&0x7fff) - 16383
	mantissa := binary.BigEndian.Uint64(b[2:10])

	if exp < 0 || exp > 62 {
		return 0
	}

	return int(mantissa >> (63 - exp))
}
