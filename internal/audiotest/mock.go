// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds in-memory audio fixtures for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAVE format tags used by the fixtures.
const (
	TagPCM        uint16 = 0x0001
	TagIEEEFloat  uint16 = 0x0003
	TagALaw       uint16 = 0x0006
	TagMuLaw      uint16 = 0x0007
	TagExtensible uint16 = 0xFFFE
)

// WAV describes a synthetic WAV file.
type WAV struct {
	FormatTag     uint16
	Channels      int
	SampleRate    int
	BitsPerSample int
	// Data is the raw content of the data chunk.
	Data []byte
	// SubFormat is written into the sub-format GUID when FormatTag is
	// TagExtensible.
	SubFormat uint16
	// ExtraChunks are written between the fmt and data chunks, keyed by
	// their four-character id.
	ExtraChunks map[string][]byte
	// OmitData leaves the data chunk out entirely.
	OmitData bool
}

// Bytes renders w as a complete RIFF/WAVE file.
func (w WAV) Bytes() []byte {
	fmtChunk := new(bytes.Buffer)
	bytesPerSample := w.BitsPerSample / 8
	blockAlign := uint16(w.Channels * bytesPerSample)
	byteRate := uint32(w.SampleRate) * uint32(blockAlign)

	binary.Write(fmtChunk, binary.LittleEndian, w.FormatTag)
	binary.Write(fmtChunk, binary.LittleEndian, uint16(w.Channels))
	binary.Write(fmtChunk, binary.LittleEndian, uint32(w.SampleRate))
	binary.Write(fmtChunk, binary.LittleEndian, byteRate)
	binary.Write(fmtChunk, binary.LittleEndian, blockAlign)
	binary.Write(fmtChunk, binary.LittleEndian, uint16(w.BitsPerSample))

	if w.FormatTag == TagExtensible {
		binary.Write(fmtChunk, binary.LittleEndian, uint16(22)) // cbSize
		binary.Write(fmtChunk, binary.LittleEndian, uint16(w.BitsPerSample))
		binary.Write(fmtChunk, binary.LittleEndian, uint32(0)) // channel mask
		binary.Write(fmtChunk, binary.LittleEndian, w.SubFormat)
		fmtChunk.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71})
	}

	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	writeChunk(body, "fmt ", fmtChunk.Bytes())
	for id, data := range w.ExtraChunks {
		writeChunk(body, id, data)
	}
	if !w.OmitData {
		writeChunk(body, "data", w.Data)
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}

// PCM16 encodes interleaved int16 samples as little-endian bytes.
func PCM16(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

// PCM32 encodes interleaved int32 samples as little-endian bytes.
func PCM32(samples ...int32) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

// PCM8 returns unsigned 8-bit samples as-is.
func PCM8(samples ...uint8) []byte {
	return append([]byte(nil), samples...)
}

// Float32 encodes interleaved float32 samples as little-endian IEEE floats.
func Float32(samples ...float32) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, math.Float32bits(s))
	}
	return buf.Bytes()
}

// StereoPCM16 is a two-channel 16-bit PCM file holding the given frames.
func StereoPCM16(sampleRate int, samples ...int16) []byte {
	return WAV{
		FormatTag:     TagPCM,
		Channels:      2,
		SampleRate:    sampleRate,
		BitsPerSample: 16,
		Data:          PCM16(samples...),
	}.Bytes()
}

// Sine returns n samples of a sine wave at frequency hz sampled at
// sampleRate, scaled by amplitude.
func Sine(n, sampleRate int, hz, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = amplitude * math.Sin(2*math.Pi*hz*t)
	}
	return out
}

// AIFF describes a synthetic AIFF or AIFC file. Samples are big-endian.
type AIFF struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	// Data is the raw sample content of the SSND chunk.
	Data []byte
	// Compression makes the file AIFC with the given compression type, for
	// example "NONE" or "ulaw". Empty writes plain AIFF.
	Compression string
	// OmitSound leaves the SSND chunk out entirely.
	OmitSound bool
}

// Bytes renders a as a complete FORM file.
func (a AIFF) Bytes() []byte {
	frames := 0
	if a.Channels > 0 && a.BitsPerSample >= 8 {
		frames = len(a.Data) / (a.Channels * (a.BitsPerSample / 8))
	}

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, int16(a.Channels))
	binary.Write(comm, binary.BigEndian, uint32(frames))
	binary.Write(comm, binary.BigEndian, int16(a.BitsPerSample))
	comm.Write(extended(a.SampleRate))

	form := "AIFF"
	if a.Compression != "" {
		form = "AIFC"
		comm.WriteString(a.Compression)
		// pascal string name, padded to an even total length
		name := a.Compression
		comm.WriteByte(byte(len(name)))
		comm.WriteString(name)
		if (len(name)+1)%2 == 1 {
			comm.WriteByte(0)
		}
	}

	body := new(bytes.Buffer)
	body.WriteString(form)
	writeChunkBE(body, "COMM", comm.Bytes())
	if !a.OmitSound {
		ssnd := new(bytes.Buffer)
		binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
		binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
		ssnd.Write(a.Data)
		writeChunkBE(body, "SSND", ssnd.Bytes())
	}

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

func writeChunkBE(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}

// extended encodes a positive integer rate as an 80-bit IEEE 754 extended
// float, the representation AIFF uses for its sample rate.
func extended(rate int) []byte {
	out := make([]byte, 10)
	if rate <= 0 {
		return out
	}

	exp := 0
	for v := rate; v > 1; v >>= 1 {
		exp++
	}

	binary.BigEndian.PutUint16(out[0:2], uint16(16383+exp))
	binary.BigEndian.PutUint64(out[2:10], uint64(rate)<<(63-exp))

	return out
}

// BE16 encodes interleaved int16 samples as big-endian bytes.
func BE16(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, samples)
	return buf.Bytes()
}

// BE32 encodes interleaved int32 samples as big-endian bytes.
func BE32(samples ...int32) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, samples)
	return buf.Bytes()
}
