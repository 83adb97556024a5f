package scaler

import (
	"runtime"
	"testing"
)

// BenchmarkScaleSequential benchmarks sequential 1080p to 720p scaling.
func BenchmarkScaleSequential(b *testing.B) {
	benchmarkScale(b, Config{})
}

// BenchmarkScaleParallelPlanes benchmarks scaling the three planes concurrently.
func BenchmarkScaleParallelPlanes(b *testing.B) {
	benchmarkScale(b, Config{EnableParallel: true})
}

// BenchmarkScaleWorkers benchmarks row/column partitioning across all CPUs.
func BenchmarkScaleWorkers(b *testing.B) {
	benchmarkScale(b, Config{Workers: runtime.NumCPU(), EnableParallel: true})
}

// BenchmarkScaleSIMD benchmarks the SIMD tap kernel.
func BenchmarkScaleSIMD(b *testing.B) {
	benchmarkScale(b, Config{Workers: runtime.NumCPU(), EnableParallel: true, EnableSIMD: true})
}

func benchmarkScale(b *testing.B, config Config) {
	b.Helper()

	const (
		srcWidth  = 1920
		srcHeight = 1080
		dstWidth  = 1280
		dstHeight = 720
	)

	s, err := New(&config)
	if err != nil {
		b.Fatalf("Failed to create scaler: %v", err)
	}

	img := newRandomImage(b, 1, srcWidth, srcHeight)
	params, err := NewScalingParameters(srcWidth, srcHeight, dstWidth, dstHeight)
	if err != nil {
		b.Fatalf("Failed to derive parameters: %v", err)
	}

	b.ReportAllocs()

	for b.Loop() {
		out, err := s.Scale(img, params, true)
		if err != nil {
			b.Fatalf("Scale failed: %v", err)
		}
		out.Release()
	}
}
