package filter

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// defaultResponsePoints is the FFT length used when callers pass n <= 0.
const defaultResponsePoints = 256

// MagnitudeResponse returns |H(f)| of one kernel sampled at n/2+1 evenly
// spaced frequencies from DC to Nyquist, normalized so the DC bin is 1.
// The kernel is zero-padded to n taps before the transform.
func MagnitudeResponse(c Class, phase, n int) ([]float64, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid filter class %d", int(c))
	}
	if n <= 0 {
		n = defaultResponsePoints
	}
	if n < NumTaps {
		return nil, fmt.Errorf("response length %d shorter than kernel (%d taps)", n, NumTaps)
	}

	seq := make([]float64, n)
	copy(seq, Kernel64(c, phase))

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	mag := make([]float64, len(coeffs))
	for i, v := range coeffs {
		mag[i] = cmplx.Abs(v) / Unity
	}
	return mag, nil
}

// StopbandGain returns the largest normalized magnitude above the given
// normalized cutoff (0..0.5 cycles/sample) for one kernel. It is a coarse
// indicator of how much aliasing a class lets through.
func StopbandGain(c Class, phase int, cutoff float64, n int) (float64, error) {
	mag, err := MagnitudeResponse(c, phase, n)
	if err != nil {
		return 0, err
	}
	bins := len(mag) - 1
	start := int(cutoff * 2 * float64(bins))
	if start < 0 || start > bins {
		return 0, fmt.Errorf("cutoff %g outside (0, 0.5)", cutoff)
	}
	peak := 0.0
	for _, m := range mag[start:] {
		peak = max(peak, m)
	}
	return peak, nil
}
