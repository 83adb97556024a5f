package engine

import "github.com/tphakala/go-yuv-scaler/internal/filter"

// Export internal functions for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// Dot exposes the tap dot product of r for one output sample.
func (r *Resampler) Dot(class filter.Class, phase, refPos int, data []int32, base, stride, n int) int64 {
	var taps [filter.NumTaps]float64
	return r.dot(class, phase, refPos, data, base, stride, n, &taps)
}

// NormShift is the right shift applied after the vertical pass.
const NormShift = normShift
