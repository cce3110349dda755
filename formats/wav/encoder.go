// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/bsswav/audio"
)

// Encode writes rec as a WAV stream at sampleRate. Integer formats are stored
// as PCM and FormatFloat32 as IEEE float.
func Encode(w io.WriteSeeker, sampleRate int, rec *audio.Reconstructed) error {
	if err := validate(sampleRate, rec); err != nil {
		return err
	}

	tag := formatPCM
	if rec.Format.IsFloat() {
		tag = formatIEEEFloat
	}

	bitDepth := rec.Format.BitDepth()
	enc := gowav.NewEncoder(w, sampleRate, bitDepth, rec.Channels, int(tag))

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: rec.Channels,
			SampleRate:  sampleRate,
		},
		Data:           toInts(rec),
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}

// WriteFile encodes rec into path. The data goes to a temporary file in the
// same directory first and is renamed into place only once it is complete,
// so a failed write never leaves a partial file at path.
func WriteFile(path string, sampleRate int, rec *audio.Reconstructed) (err error) {
	if err := validate(sampleRate, rec); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, sampleRate, rec); err != nil {
		return err
	}

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func validate(sampleRate int, rec *audio.Reconstructed) error {
	if rec == nil {
		return fmt.Errorf("%w: nil samples", audio.ErrInvalidParameter)
	}

	if _, err := rec.Format.Peak(); err != nil {
		return err
	}

	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", audio.ErrInvalidParameter, sampleRate)
	}

	if rec.Channels < 1 {
		return fmt.Errorf("%w: %d channels", audio.ErrInvalidParameter, rec.Channels)
	}

	if len(rec.Samples) == 0 {
		return audio.ErrEmptySignal
	}

	if len(rec.Samples)%rec.Channels != 0 {
		return fmt.Errorf("%w: %d samples is not a multiple of %d channels", audio.ErrInvalidParameter, len(rec.Samples), rec.Channels)
	}

	return nil
}

// toInts converts reconstructed samples to the integers go-audio writes.
// float32 samples are passed as their bit patterns, which the 32-bit encoder
// stores verbatim.
func toInts(rec *audio.Reconstructed) []int {
	out := make([]int, len(rec.Samples))

	if rec.Format.IsFloat() {
		for i, v := range rec.Samples {
			out[i] = int(int32(math.Float32bits(float32(v))))
		}
		return out
	}

	for i, v := range rec.Samples {
		out[i] = int(v)
	}

	return out
}
