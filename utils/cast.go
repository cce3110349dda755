// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// TruncateUint8 truncates toward zero and saturates to [0, 255].
func TruncateUint8(x float64) uint8 {
	x = math.Trunc(x)
	// NaN compares false on both sides and falls through to zero.
	if x >= math.MaxUint8 {
		return math.MaxUint8
	} else if x > 0 {
		return uint8(x)
	}

	return 0
}

// TruncateInt16 truncates toward zero and saturates to the int16 range.
func TruncateInt16(x float64) int16 {
	x = math.Trunc(x)
	if math.IsNaN(x) {
		return 0
	} else if x >= math.MaxInt16 {
		return math.MaxInt16
	} else if x <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}

// TruncateInt32 truncates toward zero and saturates to the int32 range.
func TruncateInt32(x float64) int32 {
	x = math.Trunc(x)
	if math.IsNaN(x) {
		return 0
	} else if x >= math.MaxInt32 {
		return math.MaxInt32
	} else if x <= math.MinInt32 {
		return math.MinInt32
	}

	return int32(x)
}

// RoundFloat32 rounds x to the nearest float32.
func RoundFloat32(x float64) float32 {
	return float32(x)
}
