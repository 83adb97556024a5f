// Package scaler rescales planar YUV pictures in pure Go.
//
// The scaler implements the fixed-point polyphase resampling used for
// reference-picture rescaling in scalable video coding: a separable
// 12-tap filter with 16 sub-sample phases, chosen per axis from 8 ratio
// classes so that stronger downscaling gets a narrower low-pass kernel.
//
// # Features
//
//   - Bit-exact fixed-point arithmetic, identical on every platform
//   - Luma and chroma planes, with 4:2:0 or 4:4:4 chroma
//   - Sample precision from 1 to 16 bits
//   - Optional SIMD acceleration (AVX2/SSE/NEON) via github.com/tphakala/simd
//   - Parallel plane processing and row/column partitioning of each pass
//   - Interop with image.YCbCr
//
// # Quick Start
//
// For one-shot scaling of an image.YCbCr:
//
//	out, err := scaler.ScaleYCbCr(src, 1280, 720)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated scaling with a configured scaler:
//
//	s, err := scaler.New(&scaler.Config{
//	    Workers:        runtime.NumCPU(),
//	    EnableParallel: true,
//	    EnableSIMD:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	params, err := scaler.NewScalingParameters(1920, 1080, 1280, 720)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for img := range frames {
//	    out, err := s.Scale(img, params, true)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    writeOutput(out)
//	    out.Release()
//	}
//
// # Target Rounding
//
// Target sizes are rounded up to even values so that 4:2:0 chroma stays
// aligned with luma. A 1920x1080 picture scaled to 641x361 produces a
// 642x362 luma plane and 321x181 chroma planes. The fixed-point step is
// derived from the rounded target.
//
// # Architecture
//
// Each plane is filtered in two passes:
//
//	Input -> [Horizontal pass] -> Intermediate -> [Vertical pass] -> Output
//	          (rows, gain 128)     (src height)     (columns, >>14, clip)
//
// The horizontal pass keeps the 7-bit gain of the kernel in its
// intermediate plane; the vertical pass removes the combined 14-bit gain
// with rounding and clips to the sample range. Source positions are
// tracked in 1/16 sample steps; taps beyond an edge repeat the edge
// sample.
//
// # Thread Safety
//
// A [Scaler] holds no per-image state and may be used from multiple
// goroutines. Images are owned by their creator and must not be modified
// while being scaled.
//
// # Attribution
//
// The filter bank coefficients come from the SHM reference software for
// the scalable extension of HEVC (SHVC).
package scaler
