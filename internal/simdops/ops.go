// Package simdops dispatches the float64 vector kernels used by the
// scaling engine to github.com/tphakala/simd.
//
// The engine feeds these kernels integer-valued operands only (filter taps
// and samples), and every partial sum stays far below 2^53, so results are
// exact and bit-identical to the integer path regardless of the order in
// which the SIMD implementation reduces lanes.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
// Function pointers keep call sites independent of the backing library.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64
}

var ops64 = Ops{
	DotProductUnsafe: f64.DotProductUnsafe,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Info describes the instruction set the SIMD library selected.
func Info() string {
	return cpu.Info()
}
