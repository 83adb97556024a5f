package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/simd/f64"
)

const kernelTaps = 12

func integerOperands() (a, c []float64) {
	a = make([]float64, kernelTaps)
	c = make([]float64, kernelTaps)
	for i := range a {
		a[i] = float64(i*37%23 - 11)
		c[i] = float64(i * 21 % 256)
	}
	return a, c
}

// TestDotProductExactOnIntegers checks that the SIMD dot product matches
// integer arithmetic for tap-sized operands.
func TestDotProductExactOnIntegers(t *testing.T) {
	a, c := integerOperands()
	var want int64
	for i := range a {
		want += int64(a[i]) * int64(c[i])
	}
	assert.Equal(t, float64(want), Float64Ops().DotProductUnsafe(a, c))
	assert.NotEmpty(t, Info())
}

// BenchmarkDirectF64DotProduct measures direct SIMD call overhead.
func BenchmarkDirectF64DotProduct(b *testing.B) {
	a, c := integerOperands()

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(a, c)
	}
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := Float64Ops()
	a, c := integerOperands()

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}

// BenchmarkScalarIntDot is the integer baseline for a 12-tap kernel.
func BenchmarkScalarIntDot(b *testing.B) {
	a := make([]int32, kernelTaps)
	c := make([]int32, kernelTaps)
	for i := range a {
		a[i] = int32(i*37%23 - 11)
		c[i] = int32(i * 21 % 256)
	}

	b.ReportAllocs()
	var sink int64
	for b.Loop() {
		var sum int64
		for i := range a {
			sum += int64(a[i]) * int64(c[i])
		}
		sink += sum
	}
	_ = sink
}
