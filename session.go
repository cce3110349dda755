// SPDX-License-Identifier: EPL-2.0

package bsswav

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/bsswav/audio"
	"github.com/ik5/bsswav/formats/aiff"
	"github.com/ik5/bsswav/formats/mp3"
	"github.com/ik5/bsswav/formats/vorbis"
	"github.com/ik5/bsswav/formats/wav"
)

// DefaultRegistry returns a registry with the WAV and AIFF decoders. MP3 and
// Ogg Vorbis are registered too, so lossy input is reported as compressed
// rather than as an unknown file type.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// Session is an opened multi-channel recording. The sample rate and storage
// format captured by Open are reused for every file the session writes.
type Session struct {
	path string
	rec  *audio.Recording
	log  *slog.Logger
}

type options struct {
	registry *audio.Registry
	logger   *slog.Logger
}

type Option func(*options)

// WithRegistry selects the decoders Open chooses from.
func WithRegistry(r *audio.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Open decodes the file at path. The decoder is picked by file extension.
func Open(path string, opts ...Option) (*Session, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	ext := filepath.Ext(path)
	dec, ok := o.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	rec, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	o.logger.Debug("opened recording",
		"path", path,
		"sample_rate", rec.SampleRate,
		"format", rec.Format.String(),
		"channels", rec.Channels(),
		"frames", rec.Samples.Frames(),
	)

	return &Session{path: path, rec: rec, log: o.logger}, nil
}

func (s *Session) Path() string { return s.path }

func (s *Session) SampleRate() int { return s.rec.SampleRate }

func (s *Session) Format() audio.SampleFormat { return s.rec.Format }

func (s *Session) Channels() int { return s.rec.Channels() }

// ReadSource returns a copy of the decoded samples, one column per channel.
func (s *Session) ReadSource() *audio.SampleMatrix {
	return s.rec.Samples.Clone()
}

// OutputPath is the file source i is written to: the input path without its
// extension, followed by _<i>.wav.
func (s *Session) OutputPath(i int) string {
	return fmt.Sprintf("%s_%d.wav", strings.TrimSuffix(s.path, filepath.Ext(s.path)), i)
}

// WriteSources peak-normalizes every source to the session format and writes
// source i to OutputPath(i). All sources are reconstructed before the first
// file is written, so a bad source leaves no output at all.
func (s *Session) WriteSources(sources ...[]float64) ([]string, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no sources", audio.ErrInvalidParameter)
	}

	recs := make([]*audio.Reconstructed, len(sources))
	for i, src := range sources {
		rec, err := audio.Reconstruct(src, s.rec.Format)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		recs[i] = rec
	}

	paths := make([]string, 0, len(recs))
	for i, rec := range recs {
		path := s.OutputPath(i)
		if err := wav.WriteFile(path, s.rec.SampleRate, rec); err != nil {
			return paths, fmt.Errorf("writing source %d: %w", i, err)
		}

		s.log.Info("wrote source",
			"path", path,
			"scale", rec.Scale,
			"frames", rec.Frames(),
		)
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteColumns writes every column of m as its own source.
func (s *Session) WriteColumns(m *audio.SampleMatrix) ([]string, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil sample matrix", audio.ErrInvalidParameter)
	}

	return s.WriteSources(m.Columns()...)
}

// SplitFile opens path and writes each of its channels back out as a
// separate normalized file.
func SplitFile(path string, opts ...Option) ([]string, error) {
	s, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}

	return s.WriteColumns(s.rec.Samples)
}
