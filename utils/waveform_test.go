// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		start, stop float64
		n           int
		want        []float64
	}{
		{name: "five points", start: 0, stop: 8, n: 5, want: []float64{0, 2, 4, 6, 8}},
		{name: "two points", start: 0, stop: 8, n: 2, want: []float64{0, 8}},
		{name: "single point", start: 0, stop: 8, n: 1, want: []float64{0}},
		{name: "zero points", start: 0, stop: 8, n: 0, want: nil},
		{name: "negative points", start: 0, stop: 8, n: -3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Linspace(tt.start, tt.stop, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len(Linspace()) = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Linspace()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinspace_EndpointsExact(t *testing.T) {
	t.Parallel()

	got := Linspace(0, 8, 2000)
	if got[0] != 0 {
		t.Errorf("first = %v, want 0", got[0])
	}
	if got[len(got)-1] != 8 {
		t.Errorf("last = %v, want 8", got[len(got)-1])
	}
}

func TestSign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float64
		want  float64
	}{
		{input: 3.2, want: 1},
		{input: -0.001, want: -1},
		{input: 0, want: 0},
	}

	for _, tt := range tests {
		if got := Sign(tt.input); got != tt.want {
			t.Errorf("Sign(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSawtooth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "start of period", input: 0, want: -1},
		{name: "quarter period", input: math.Pi / 2, want: -0.5},
		{name: "half period", input: math.Pi, want: 0},
		{name: "next period", input: 2*math.Pi + math.Pi/2, want: -0.5},
		{name: "negative input wraps", input: -math.Pi / 2, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sawtooth(tt.input); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sawtooth(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSawtooth_Range(t *testing.T) {
	t.Parallel()

	for _, x := range Linspace(-20, 20, 1001) {
		got := Sawtooth(x)
		if got < -1 || got >= 1 {
			t.Fatalf("Sawtooth(%v) = %v, want value in [-1, 1)", x, got)
		}
	}
}
