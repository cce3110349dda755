// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values over [start, stop], both ends
// included. n == 1 yields just start.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}

	out := floats.Span(make([]float64, n), start, stop)
	out[n-1] = stop

	return out
}

// Sign returns -1, 0 or +1. Sign(0) is 0, so a square wave built from it
// touches zero wherever its carrier does.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // keeps 0 and NaN as they are
	}
}

// Sawtooth is a rising ramp with period 2π: -1 at multiples of 2π, climbing
// linearly towards +1 just before the next one.
func Sawtooth(x float64) float64 {
	m := math.Mod(x, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}

	return m/math.Pi - 1
}
