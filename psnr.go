package scaler

import (
	"fmt"
	"math"

	"github.com/tphakala/go-yuv-scaler/internal/mathutil"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
	"github.com/tphakala/simd/f64"
)

// PSNR returns the peak signal-to-noise ratio in dB of each plane of b
// against a, in Y, U, V order, for 8-bit samples. Identical planes give
// +Inf.
func PSNR(a, b *ImageBuffer) ([picture.NumPlanes]float64, error) {
	return PSNRBitDepth(a, b, mathutil.DefaultBitDepth)
}

// PSNRBitDepth is like PSNR with the peak taken from bitDepth.
func PSNRBitDepth(a, b *ImageBuffer, bitDepth int) ([picture.NumPlanes]float64, error) {
	var out [picture.NumPlanes]float64

	if bitDepth < mathutil.MinBitDepth || bitDepth > mathutil.MaxBitDepth {
		return out, fmt.Errorf("%w: bit depth must be %d-%d", ErrInvalidConfig, mathutil.MinBitDepth, mathutil.MaxBitDepth)
	}
	if a == nil || b == nil {
		return out, fmt.Errorf("%w: nil image", ErrPlaneMismatch)
	}

	peak := float64(mathutil.MaxSample(bitDepth))
	pa, pb := a.Planes(), b.Planes()
	for i := range pa {
		if pa[i] == nil || pb[i] == nil || pa[i].Width != pb[i].Width || pa[i].Height != pb[i].Height {
			return out, fmt.Errorf("%w: plane %s sizes differ", ErrPlaneMismatch, planeNames[i])
		}
		out[i] = planePSNR(pa[i].Data, pb[i].Data, peak)
	}
	return out, nil
}

func planePSNR(a, b []int32, peak float64) float64 {
	if len(a) == 0 {
		return math.Inf(1)
	}
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = float64(a[i] - b[i])
	}
	mse := f64.DotProduct(diff, diff) / float64(len(diff))
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(peak*peak/mse)
}
