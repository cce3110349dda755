// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed WAV files.
//
// The Decoder accepts integer PCM (8, 16, 24 and 32 bit) and 32-bit IEEE
// float data, including files written with WAVE_FORMAT_EXTENSIBLE. It walks
// the RIFF header before touching any sample so that unusable input is
// rejected early:
//
//   - fewer than two channels: audio.ErrUnsupportedChannelCount
//   - any compressed format tag (mu-law, a-law, ADPCM, MP3, ...):
//     audio.ErrUnsupportedCompression, with the codec named in the message
//   - no data chunk: ErrMissingDataChunk
//   - anything that is not RIFF/WAVE: ErrNotWavFile
//
// Samples are returned as raw float64 values in their storage range, without
// rescaling to [-1, 1].
//
//	f, _ := os.Open("mix.wav")
//	rec, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, audio.ErrUnsupportedChannelCount) {
//	    // single channel input cannot be separated
//	}
//
// WriteFile stores an audio.Reconstructed signal. Integer formats are written
// as PCM and audio.FormatFloat32 as IEEE float. The file is written to a
// temporary name in the destination directory and renamed when complete.
//
// Sample data is handled by github.com/go-audio/wav.
package wav
