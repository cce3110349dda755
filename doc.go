// SPDX-License-Identifier: EPL-2.0

// Package bsswav reads multi-channel recordings and writes extracted source
// signals back out as volume-normalized WAV files.
//
// It is the I/O end of a blind source separation workflow. A Session opens an
// uncompressed WAV (or AIFF) file, remembers its sample rate and sample
// format, and hands the samples out as an audio.SampleMatrix. Whatever
// separation runs in between, the recovered sources go back through
// WriteSources, which peak-normalizes each one to the recorded format and
// writes <name>_<i>.wav next to the input:
//
//	s, err := bsswav.Open("mix.wav")
//	if err != nil {
//	    return err
//	}
//
//	sources := separate(s.ReadSource()) // [][]float64
//	paths, err := s.WriteSources(sources...)
//
// Input with one channel, or with compressed sample data, is rejected when
// the file is opened.
//
// The dataset subpackage generates synthetic sources and mixes them with a
// fixed matrix, for exercising a separation algorithm without recordings.
package bsswav
