// SPDX-License-Identifier: EPL-2.0

// Package dataset generates the synthetic blind source separation dataset:
// three known sources and their fixed linear mixture.
//
// # Sources
//
// Generate samples a time axis of n points over [0, 8] and builds three
// columns:
//
//	0: sin(2t)
//	1: sign(sin(3t))      square wave, 0 where sin(3t) is 0
//	2: sawtooth(2πt)      rising ramp with period 2π
//
// Gaussian noise (default σ = 0.2) is added to every element and each column
// is divided by its population standard deviation.
//
// The random source is an explicit handle, so the same seed always produces
// the same dataset:
//
//	gen, _ := dataset.NewGenerator(dataset.NewRNG(0))
//	sources, _ := gen.Generate(2000)
//
// # Mixing
//
// Mix simulates three microphones each hearing a weighted sum of the sources:
//
//	X = S · Aᵗ    A = | 1.0  1.0  1.0 |
//	                  | 0.5  2.0  1.0 |
//	                  | 1.5  1.0  2.0 |
//
// The matrix is fixed; changing it changes the scenario, not the algorithm.
package dataset
