package engine

import "github.com/tphakala/go-yuv-scaler/internal/filter"

// Normalization after the vertical pass. Each pass multiplies by
// filter.Unity (2^7), so the cascade carries a 2^14 gain that is removed
// with round-to-nearest.
const (
	normShift = 2 * filter.UnityBits
	normRound = 1 << (normShift - 1)
)
