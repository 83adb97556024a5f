package engine

import (
	"testing"

	"github.com/tphakala/go-yuv-scaler/internal/filter"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
	"github.com/tphakala/go-yuv-scaler/internal/testutil"
)

// BenchmarkDot_Scalar benchmarks the integer 12-tap dot product.
func BenchmarkDot_Scalar(b *testing.B) {
	benchmarkDot(b, Options{})
}

// BenchmarkDot_SIMD benchmarks the float64 SIMD 12-tap dot product.
func BenchmarkDot_SIMD(b *testing.B) {
	benchmarkDot(b, Options{UseSIMD: true})
}

func benchmarkDot(b *testing.B, opts Options) {
	b.Helper()

	r, err := NewResampler(opts)
	if err != nil {
		b.Fatal(err)
	}
	data := testutil.RandomSamples(3, 1024, 255)
	var taps [filter.NumTaps]float64

	b.ResetTimer()
	var sink int64
	for b.Loop() {
		for j := 16; j < 1000; j += 3 {
			sink += r.dot(filter.Class2, j&filter.PhaseMask, j, data, 0, 1, len(data), &taps)
		}
	}
	_ = sink
}

// BenchmarkHorizontal_720p benchmarks the row pass of a 1080p to 720p
// luma plane.
func BenchmarkHorizontal_720p(b *testing.B) {
	r, err := NewResampler(Options{})
	if err != nil {
		b.Fatal(err)
	}
	p, err := NewParams(1920, 1080, 1280, 720)
	if err != nil {
		b.Fatal(err)
	}
	src, err := picture.NewBufferFromSamples(testutil.RandomSamples(5, 1920*1080, 255), 1920, 1080, false)
	if err != nil {
		b.Fatal(err)
	}
	hor, _ := p.Classes()

	b.ResetTimer()
	for b.Loop() {
		mid, err := r.Horizontal(src, p, hor)
		if err != nil {
			b.Fatal(err)
		}
		mid.Release()
	}
}

// BenchmarkVertical_720p benchmarks the column pass of a 1080p to 720p
// luma plane.
func BenchmarkVertical_720p(b *testing.B) {
	r, err := NewResampler(Options{})
	if err != nil {
		b.Fatal(err)
	}
	p, err := NewParams(1920, 1080, 1280, 720)
	if err != nil {
		b.Fatal(err)
	}
	src, err := picture.NewBufferFromSamples(testutil.RandomSamples(5, 1920*1080, 255), 1920, 1080, false)
	if err != nil {
		b.Fatal(err)
	}
	hor, ver := p.Classes()
	mid, err := r.Horizontal(src, p, hor)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		out, err := r.Vertical(mid, p, ver)
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}
