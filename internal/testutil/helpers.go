// Package testutil provides reusable test helpers for plane and image tests.
package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertAllInRange verifies that every sample is within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []int32, minVal, maxVal int32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "sample out of range",
				"s[%d]=%d is outside range [%d, %d]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertPlaneEqual verifies that two row-major planes of the given width
// hold the same samples, reporting the first mismatch by (row, col).
func AssertPlaneEqual(t *testing.T, want, got []int32, width int, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return assert.Fail(t, "plane mismatch",
				"(%d,%d): want %d, got %d", i/width, i%width, want[i], got[i])
		}
	}
	return true
}

// AssertUniform verifies that every sample equals v.
func AssertUniform(t *testing.T, s []int32, v int32, msgAndArgs ...any) bool {
	t.Helper()
	for i, x := range s {
		if x != v {
			return assert.Fail(t, "plane not uniform",
				"s[%d]=%d, want %d", i, x, v)
		}
	}
	return true
}

// RandomBytes returns n deterministic pseudo-random 8-bit samples.
func RandomBytes(seed uint64, n int) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.UintN(256))
	}
	return out
}

// RandomSamples returns n deterministic pseudo-random samples in [0, maxVal].
func RandomSamples(seed uint64, n int, maxVal int32) []int32 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.UintN(uint(maxVal) + 1))
	}
	return out
}

// Ramp returns a width x height plane whose samples rise by step along
// each row and restart at every row, wrapped to 8 bits.
func Ramp(width, height, step int) []byte {
	out := make([]byte, width*height)
	for row := range height {
		for col := range width {
			out[row*width+col] = byte((col * step) & 0xff)
		}
	}
	return out
}
