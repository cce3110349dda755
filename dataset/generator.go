// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/ik5/bsswav/audio"
	"github.com/ik5/bsswav/utils"
)

const (
	// DefaultNumPoints is the sample count of the reference dataset.
	DefaultNumPoints = 2000
	// DefaultNoiseStd is the standard deviation of the additive noise.
	DefaultNoiseStd = 0.2

	// TimeStart and TimeEnd bound the time axis, both inclusive.
	TimeStart = 0.0
	TimeEnd   = 8.0

	// NumSources is the number of synthetic sources (and mixed signals).
	NumSources = 3
)

// NewRNG returns a deterministic random source for the given seed.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generator produces the synthetic sources. It is not safe for concurrent
// use because it consumes its random source.
type Generator struct {
	rng      *rand.Rand
	noiseStd float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithNoiseStd sets the standard deviation of the additive Gaussian noise.
func WithNoiseStd(std float64) Option {
	return func(g *Generator) { g.noiseStd = std }
}

// NewGenerator builds a Generator drawing its noise from rng.
func NewGenerator(rng *rand.Rand, opts ...Option) (*Generator, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", audio.ErrInvalidParameter)
	}

	g := &Generator{
		rng:      rng,
		noiseStd: DefaultNoiseStd,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.noiseStd < 0 || math.IsNaN(g.noiseStd) || math.IsInf(g.noiseStd, 0) {
		return nil, fmt.Errorf("%w: noise std %v", audio.ErrInvalidParameter, g.noiseStd)
	}

	return g, nil
}

// NoiseStd returns the configured noise level.
func (g *Generator) NoiseStd() float64 { return g.noiseStd }

// TimeAxis returns numPoints values evenly spaced over [TimeStart, TimeEnd].
func TimeAxis(numPoints int) []float64 {
	return utils.Linspace(TimeStart, TimeEnd, numPoints)
}

// Generate returns a [numPoints, 3] matrix of standardized noisy sources.
func (g *Generator) Generate(numPoints int) (*audio.SampleMatrix, error) {
	if numPoints <= 0 {
		return nil, fmt.Errorf("%w: num points %d", audio.ErrInvalidParameter, numPoints)
	}

	return g.generate(TimeAxis(numPoints))
}

func (g *Generator) generate(t []float64) (*audio.SampleMatrix, error) {
	n := len(t)
	data := make([]float64, n*NumSources)

	for i, ti := range t {
		row := data[i*NumSources : (i+1)*NumSources]
		row[0] = math.Sin(2 * ti)
		row[1] = utils.Sign(math.Sin(3 * ti))
		row[2] = utils.Sawtooth(2 * math.Pi * ti)
	}

	// noise is drawn row by row, in the same order the data is laid out
	for i := range data {
		data[i] += g.noiseStd * g.rng.NormFloat64()
	}

	m, err := audio.NewSampleMatrix(n, NumSources, data)
	if err != nil {
		return nil, err
	}

	standardize(m)

	return m, nil
}

// standardize divides every column by its population standard deviation.
// A column with zero spread is left unscaled.
func standardize(m *audio.SampleMatrix) {
	d := m.Dense()
	for c := range m.Channels() {
		col := m.Column(c)
		std := stat.PopStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			continue
		}
		for i := range col {
			col[i] /= std
		}
		d.SetCol(c, col)
	}
}
