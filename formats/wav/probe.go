// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/bsswav/audio"
)

// WAVE format tags (the wFormatTag of the fmt chunk).
const (
	formatPCM        uint16 = 0x0001
	formatADPCM      uint16 = 0x0002
	formatIEEEFloat  uint16 = 0x0003
	formatALaw       uint16 = 0x0006
	formatMuLaw      uint16 = 0x0007
	formatIMAADPCM   uint16 = 0x0011
	formatGSM610     uint16 = 0x0031
	formatMPEG       uint16 = 0x0050
	formatMPEGLayer3 uint16 = 0x0055
	formatExtensible uint16 = 0xFFFE
)

// ksDataFormatSuffix is the common tail of every KSDATAFORMAT_SUBTYPE GUID;
// the first two bytes of the GUID carry the real format tag.
var ksDataFormatSuffix = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}

// header is what the probe learns from the RIFF chunks before any sample is
// decoded.
type header struct {
	formatTag     uint16 // resolved through the sub-format for WAVE_FORMAT_EXTENSIBLE
	channels      int
	sampleRate    int
	bitsPerSample int

	hasFmt   bool
	hasData  bool
	dataSize uint32
}

// probe walks the RIFF chunks of r up to the data chunk.
func probe(r io.Reader) (*header, error) {
	riff := make([]byte, 12)
	if _, err := io.ReadFull(r, riff); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if !bytes.HasPrefix(riff[:4], []byte("RIFF")) || !bytes.HasPrefix(riff[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	h := &header{}
	chunk := make([]byte, 8)

chunks:
	for {
		if _, err := io.ReadFull(r, chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(chunk[:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
			}
			h.parseFmt(body)
			if err := skipPad(r, size); err != nil {
				return nil, err
			}

		case "data":
			h.hasData = true
			h.dataSize = size
			break chunks

		default:
			// Unknown chunk, skip it together with its pad byte.
			if _, err := io.CopyN(io.Discard, r, int64(size)+int64(size%2)); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
			}
		}
	}

	if !h.hasFmt {
		return nil, ErrUnsupportedWavLayout
	}

	return h, nil
}

func (h *header) parseFmt(body []byte) {
	h.hasFmt = true
	h.formatTag = binary.LittleEndian.Uint16(body[0:2])
	h.channels = int(binary.LittleEndian.Uint16(body[2:4]))
	h.sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
	h.bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))

	// WAVE_FORMAT_EXTENSIBLE: cbSize, valid bits, channel mask, sub-format GUID.
	if h.formatTag == formatExtensible && len(body) >= 40 && bytes.Equal(body[26:40], ksDataFormatSuffix) {
		h.formatTag = binary.LittleEndian.Uint16(body[24:26])
	}
}

func skipPad(r io.Reader, size uint32) error {
	if size%2 == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r, 1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// checkCompression rejects anything but uncompressed integer PCM or IEEE
// float samples.
func (h *header) checkCompression() error {
	if h.formatTag == formatPCM || h.formatTag == formatIEEEFloat {
		return nil
	}

	return fmt.Errorf("%w: compression type is %s", audio.ErrUnsupportedCompression, compressionName(h.formatTag))
}

// sampleFormat maps the header to the storage format samples are written
// back in.
func (h *header) sampleFormat() audio.SampleFormat {
	return audio.FormatFor(h.bitsPerSample, h.formatTag == formatIEEEFloat)
}

func compressionName(tag uint16) string {
	switch tag {
	case formatPCM, formatIEEEFloat:
		return "not compressed"
	case formatADPCM:
		return "ADPCM"
	case formatALaw:
		return "a-law"
	case formatMuLaw:
		return "mu-law"
	case formatIMAADPCM:
		return "IMA ADPCM"
	case formatGSM610:
		return "GSM 6.10"
	case formatMPEG:
		return "MPEG"
	case formatMPEGLayer3:
		return "MPEG layer 3"
	case formatExtensible:
		return "unknown extensible sub-format"
	default:
		return fmt.Sprintf("format tag 0x%04x", tag)
	}
}
