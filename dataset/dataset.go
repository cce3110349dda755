// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"

	"github.com/ik5/bsswav/audio"
)

// Dataset is one generated scenario: the time axis, the ground-truth sources
// and what the three microphones record.
type Dataset struct {
	Time    []float64
	Sources *audio.SampleMatrix
	Mixed   *audio.SampleMatrix
}

// Dataset generates numPoints samples of the sources and mixes them.
func (g *Generator) Dataset(numPoints int) (*Dataset, error) {
	if numPoints <= 0 {
		return nil, fmt.Errorf("%w: num points %d", audio.ErrInvalidParameter, numPoints)
	}

	t := TimeAxis(numPoints)

	sources, err := g.generate(t)
	if err != nil {
		return nil, fmt.Errorf("generating sources: %w", err)
	}

	mixed, err := Mix(sources)
	if err != nil {
		return nil, fmt.Errorf("mixing sources: %w", err)
	}

	return &Dataset{
		Time:    t,
		Sources: sources,
		Mixed:   mixed,
	}, nil
}

// NumPoints returns the number of samples in the dataset.
func (d *Dataset) NumPoints() int { return len(d.Time) }
