// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ik5/bsswav/audio"
)

// mixingRows is A: row i holds the weights microphone i applies to each
// source.
var mixingRows = [NumSources][NumSources]float64{
	{1, 1, 1},
	{0.5, 2, 1.0},
	{1.5, 1.0, 2.0},
}

// MixingMatrix returns a copy of the fixed 3x3 mixing matrix A.
func MixingMatrix() *mat.Dense {
	data := make([]float64, 0, NumSources*NumSources)
	for _, row := range mixingRows {
		data = append(data, row[:]...)
	}

	return mat.NewDense(NumSources, NumSources, data)
}

// Mix returns sources · Aᵗ. sources must have exactly three columns.
func Mix(sources *audio.SampleMatrix) (*audio.SampleMatrix, error) {
	if err := audio.RequireChannels(sources, NumSources); err != nil {
		return nil, err
	}

	var mixed mat.Dense
	mixed.Mul(sources.Dense(), MixingMatrix().T())

	return audio.FromDense(&mixed)
}
