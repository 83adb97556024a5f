package main

import (
	"fmt"

	"github.com/tphakala/go-yuv-scaler/internal/engine"
	"github.com/tphakala/go-yuv-scaler/internal/filter"
)

const (
	// Frequency response parameters
	responsePoints = 128 // FFT length for the magnitude response
	stopbandCutoff = 0.4 // Normalized frequency (cycles/sample) where aliasing starts to matter

	// Display limits
	responseBinsToShow = 8 // Evenly spaced bins printed per kernel
)

func main() {
	fmt.Println("=== Analyzing Filter Bank ===")
	fmt.Printf("Classes: %d, phases: %d, taps: %d, unity: %d\n\n",
		filter.NumClasses, filter.NumPhases, filter.NumTaps, filter.Unity)

	// DC gain of every kernel must equal Unity.
	fmt.Println("DC gain per class (min/max over phases):")
	for c := range filter.Class(filter.NumClasses) {
		lo, hi := filter.DCGain(c, 0), filter.DCGain(c, 0)
		for phase := 1; phase < filter.NumPhases; phase++ {
			g := filter.DCGain(c, phase)
			lo, hi = min(lo, g), max(hi, g)
		}
		status := "ok"
		if lo != filter.Unity || hi != filter.Unity {
			status = "MISMATCH"
		}
		fmt.Printf("  Class %d %-14s %6.1f %6.1f  %s\n", int(c), c, lo, hi, status)
	}

	// Magnitude response of phase 0 for each class.
	fmt.Printf("\nMagnitude response, phase 0 (%d-point FFT, DC..Nyquist):\n", responsePoints)
	for c := range filter.Class(filter.NumClasses) {
		mag, err := filter.MagnitudeResponse(c, 0, responsePoints)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		step := (len(mag) - 1) / responseBinsToShow
		fmt.Printf("  Class %d:", int(c))
		for i := 0; i < len(mag); i += step {
			fmt.Printf(" %.3f", mag[i])
		}
		fmt.Println()
	}

	// Worst stopband leakage over all phases.
	fmt.Printf("\nPeak gain above %.2f cycles/sample (worst phase):\n", stopbandCutoff)
	for c := range filter.Class(filter.NumClasses) {
		worst, worstPhase := 0.0, 0
		for phase := range filter.NumPhases {
			g, err := filter.StopbandGain(c, phase, stopbandCutoff, responsePoints)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if g > worst {
				worst, worstPhase = g, phase
			}
		}
		fmt.Printf("  Class %d: %.4f (phase %d)\n", int(c), worst, worstPhase)
	}

	// Classes and phases picked for common conversions.
	testSizes := []struct {
		src, dst int
		name     string
	}{
		{1920, 1920, "identity"},
		{1920, 1280, "1080p -> 720p"},
		{1920, 960, "2x downscale"},
		{1920, 640, "3x downscale"},
		{3840, 640, "6x downscale"},
		{1280, 1920, "720p -> 1080p"},
	}

	fmt.Println("\nPhase usage per conversion:")
	for _, test := range testSizes {
		p, err := engine.NewParams(test.src, test.src, test.dst, test.dst)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		hor, _ := p.Classes()

		var used [filter.NumPhases]int
		for j := range p.RndTrgtWidth {
			_, phase := engine.RefPosition(j, p.ScaleX, p.AddX, p.ShiftX)
			used[phase]++
		}
		distinct := 0
		for _, n := range used {
			if n > 0 {
				distinct++
			}
		}
		fmt.Printf("  %-14s scale=%d class=%d (%s), %d of %d phases used\n",
			test.name, p.ScaleX, int(hor), hor, distinct, filter.NumPhases)
	}
}
