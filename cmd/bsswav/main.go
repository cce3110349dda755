// SPDX-License-Identifier: EPL-2.0

// Command bsswav generates synthetic blind source separation datasets and
// splits multi-channel recordings into normalized per-channel WAV files.
//
// Usage:
//
//	bsswav generate [-config f] [-seed n] [-points n] [-noise std] [-rate hz] [-format f] -out mixed.wav [-sources truth.wav]
//	bsswav split [-config f] input.wav [more.wav ...]
//	bsswav config [-config f] [-write path]
//
// Without -config, bsswav.yaml in the working directory is read when it
// exists. A file named with -config must exist.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/bsswav"
	"github.com/ik5/bsswav/audio"
	"github.com/ik5/bsswav/dataset"
	"github.com/ik5/bsswav/formats/wav"
	"github.com/ik5/bsswav/internal/config"
	"github.com/ik5/bsswav/internal/logger"
)

const usage = `usage:
  bsswav generate [-config f] [-seed n] [-points n] [-noise std] [-rate hz] [-format f] -out mixed.wav [-sources truth.wav]
  bsswav split [-config f] input.wav [more.wav ...]
  bsswav config [-config f] [-write path]
`

// defaultConfigFile is read, when present, if -config is not given.
const defaultConfigFile = "bsswav.yaml"

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "generate":
		err = runGenerate(args[1:], stdout, stderr)
	case "split":
		err = runSplit(args[1:], stdout, stderr)
	case "config":
		err = runConfig(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}

// loadConfig reads the file named by -config, or the default file when the
// flag is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadOptional(defaultConfigFile)
	}

	return config.Load(path)
}

// setup loads the config and builds the logger from it.
func setup(path string, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewWithWriter(stderr, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfgPath := fs.String("config", "", "YAML config file")
	seed := fs.Uint64("seed", 0, "random seed")
	points := fs.Int("points", 0, "number of samples per source")
	noise := fs.Float64("noise", 0, "standard deviation of the additive noise")
	rate := fs.Int("rate", 0, "sample rate of the written files in Hz")
	format := fs.String("format", "", "sample format: uint8, int16, int32 or float32")
	out := fs.String("out", "", "path of the mixed 3-channel WAV (required)")
	sources := fs.String("sources", "", "optional path for the ground-truth sources")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *out == "" {
		fmt.Fprintln(stderr, "generate: -out is required")
		fs.Usage()
		return errUsage
	}

	cfg, log, err := setup(*cfgPath, stderr)
	if err != nil {
		return err
	}

	// flags given on the command line override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Dataset.Seed = *seed
		case "points":
			cfg.Dataset.NumPoints = *points
		case "noise":
			cfg.Dataset.NoiseStd = *noise
		case "rate":
			cfg.Output.SampleRate = *rate
		case "format":
			cfg.Output.Format = *format
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	sampleFormat, err := cfg.SampleFormat()
	if err != nil {
		return err
	}

	gen, err := dataset.NewGenerator(dataset.NewRNG(cfg.Dataset.Seed), dataset.WithNoiseStd(cfg.Dataset.NoiseStd))
	if err != nil {
		return err
	}

	ds, err := gen.Dataset(cfg.Dataset.NumPoints)
	if err != nil {
		return err
	}

	log.Debug("generated dataset",
		"seed", cfg.Dataset.Seed,
		"points", ds.NumPoints(),
		"noise_std", gen.NoiseStd(),
	)

	outputs := []output{{path: *out, samples: ds.Mixed}}
	if *sources != "" {
		outputs = append(outputs, output{path: *sources, samples: ds.Sources})
	}

	written, err := writeOutputs(outputs, cfg.Output.SampleRate, sampleFormat, log)
	if err != nil {
		return err
	}

	for _, p := range written {
		fmt.Fprintln(stdout, p)
	}

	return nil
}

type output struct {
	path    string
	samples *audio.SampleMatrix
	rec     *audio.Reconstructed
}

// writeOutputs reconstructs every output before writing the first one. If a
// write fails, the files already written by this call are removed.
func writeOutputs(outputs []output, rate int, format audio.SampleFormat, log *slog.Logger) ([]string, error) {
	for i := range outputs {
		rec, err := audio.ReconstructMatrix(outputs[i].samples, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", outputs[i].path, err)
		}
		outputs[i].rec = rec
	}

	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		if err := wav.WriteFile(o.path, rate, o.rec); err != nil {
			for _, p := range written {
				_ = os.Remove(p)
			}
			return nil, fmt.Errorf("writing %s: %w", o.path, err)
		}

		log.Info("wrote dataset file",
			"path", o.path,
			"channels", o.rec.Channels,
			"frames", o.rec.Frames(),
			"format", format.String(),
			"scale", o.rec.Scale,
		)
		written = append(written, o.path)
	}

	return written, nil
}

func runSplit(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfgPath := fs.String("config", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "split: no input files")
		fs.Usage()
		return errUsage
	}

	cfg, log, err := setup(*cfgPath, stderr)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, in := range fs.Args() {
		paths, err := bsswav.SplitFile(in, bsswav.WithLogger(log))
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Fprintln(stdout, p)
		}
	}

	return nil
}

func runConfig(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfgPath := fs.String("config", "", "YAML config file")
	write := fs.String("write", "", "save the effective config to this path")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if *write != "" {
		return config.Save(*write, cfg)
	}

	enc := yaml.NewEncoder(stdout)
	defer enc.Close()

	return enc.Encode(cfg)
}
