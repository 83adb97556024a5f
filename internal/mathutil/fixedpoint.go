// Package mathutil provides the integer helpers shared by the scaling engine.
package mathutil

// Sample range limits.
const (
	// DefaultBitDepth is the sample precision of raw 8-bit YUV frames.
	DefaultBitDepth = 8

	// MinBitDepth and MaxBitDepth bound the supported sample precision.
	// 16 bits is the widest depth whose intermediate sums still fit int32.
	MinBitDepth = 1
	MaxBitDepth = 16
)

const halfDivisor = 2

// Clip clamps val to [lo, hi].
func Clip(val, lo, hi int) int {
	if val <= lo {
		return lo
	}
	if val >= hi {
		return hi
	}
	return val
}

// Clip32 is Clip for int32 samples.
func Clip32(val, lo, hi int32) int32 {
	if val <= lo {
		return lo
	}
	if val >= hi {
		return hi
	}
	return val
}

// RoundUpEven rounds n up to the nearest even value.
func RoundUpEven(n int) int {
	return n + n&1
}

// HalfCeil returns ceil(n/2), the chroma extent of a 4:2:0 plane.
func HalfCeil(n int) int {
	return (n + 1) / halfDivisor
}

// MaxSample returns the largest sample value representable at bitDepth.
func MaxSample(bitDepth int) int32 {
	return int32(1)<<uint(bitDepth) - 1
}
