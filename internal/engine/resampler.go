// Package engine implements the two-pass polyphase plane resampler.
//
// A plane is filtered horizontally first, producing an intermediate
// buffer of unnormalized sums (gain filter.Unity), and then vertically,
// where the combined 2^14 gain of both passes is removed with rounding and
// the result is clipped to the sample range.
package engine

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-yuv-scaler/internal/filter"
	"github.com/tphakala/go-yuv-scaler/internal/mathutil"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
	"github.com/tphakala/go-yuv-scaler/internal/simdops"
)

// Options configures a Resampler.
type Options struct {
	// Workers is the number of goroutines each pass splits its rows or
	// columns across. Values below 2 run the passes sequentially.
	Workers int

	// UseSIMD computes the tap dot products with the float64 SIMD kernels.
	// Results are bit-identical to the integer path.
	UseSIMD bool

	// BitDepth is the sample precision used for output clipping.
	// Zero selects 8 bits.
	BitDepth int
}

// Resampler runs the horizontal and vertical filter passes over planes.
// It holds no per-call state and is safe for concurrent use.
type Resampler struct {
	workers   int
	maxSample int32
	ops       *simdops.Ops
}

// NewResampler creates a Resampler from opts.
func NewResampler(opts Options) (*Resampler, error) {
	depth := opts.BitDepth
	if depth == 0 {
		depth = mathutil.DefaultBitDepth
	}
	if depth < mathutil.MinBitDepth || depth > mathutil.MaxBitDepth {
		return nil, fmt.Errorf("bit depth %d out of range [%d, %d]",
			depth, mathutil.MinBitDepth, mathutil.MaxBitDepth)
	}

	r := &Resampler{
		workers:   max(opts.Workers, 1),
		maxSample: mathutil.MaxSample(depth),
	}
	if opts.UseSIMD {
		r.ops = simdops.Float64Ops()
	}
	return r, nil
}

// MaxSample returns the upper clipping bound.
func (r *Resampler) MaxSample() int32 {
	return r.maxSample
}

// SIMDInfo describes the SIMD instruction set in use, or "none".
func (r *Resampler) SIMDInfo() string {
	if r.ops == nil {
		return "none"
	}
	return simdops.Info()
}

// Plane scales src according to p and returns a new RndTrgtWidth x
// RndTrgtHeight plane. src is not modified.
func (r *Resampler) Plane(src *picture.Buffer, p Params) (*picture.Buffer, error) {
	hor, ver := p.Classes()

	mid, err := r.Horizontal(src, p, hor)
	if err != nil {
		return nil, err
	}
	defer mid.Release()

	return r.Vertical(mid, p, ver)
}

// Horizontal filters every row of src to RndTrgtWidth samples and returns
// the intermediate plane (src.Height rows). Values keep the filter.Unity
// gain of the pass and are not clipped.
func (r *Resampler) Horizontal(src *picture.Buffer, p Params, class filter.Class) (*picture.Buffer, error) {
	if src.Width != p.SrcWidth || src.Height != p.SrcHeight {
		return nil, fmt.Errorf("%w: source plane %dx%d, parameters expect %dx%d",
			picture.ErrPlaneMismatch, src.Width, src.Height, p.SrcWidth, p.SrcHeight)
	}
	if !class.Valid() {
		return nil, fmt.Errorf("invalid horizontal filter class %d", int(class))
	}

	mid, err := picture.NewBuffer(p.RndTrgtWidth, src.Height, true)
	if err != nil {
		return nil, fmt.Errorf("intermediate plane: %w", err)
	}

	r.run(src.Height, mid.Width, mid.ScratchRow, func(lo, hi int, scratch []int32) {
		var taps [filter.NumTaps]float64
		tmp := scratch[:mid.Width]
		for i := lo; i < hi; i++ {
			base := src.Index(i, 0)
			for j := range tmp {
				refPos, phase := RefPosition(j, p.ScaleX, p.AddX, p.ShiftX)
				tmp[j] = int32(r.dot(class, phase, refPos, src.Data, base, 1, src.Width, &taps))
			}
			copy(mid.Row(i), tmp)
		}
	})

	return mid, nil
}

// Vertical filters every column of the intermediate plane mid to
// RndTrgtHeight samples, normalizes, clips and returns the output plane.
func (r *Resampler) Vertical(mid *picture.Buffer, p Params, class filter.Class) (*picture.Buffer, error) {
	if mid.Width != p.RndTrgtWidth || mid.Height != p.SrcHeight {
		return nil, fmt.Errorf("%w: intermediate plane %dx%d, parameters expect %dx%d",
			picture.ErrPlaneMismatch, mid.Width, mid.Height, p.RndTrgtWidth, p.SrcHeight)
	}
	if !class.Valid() {
		return nil, fmt.Errorf("invalid vertical filter class %d", int(class))
	}

	out, err := picture.NewBuffer(p.RndTrgtWidth, p.RndTrgtHeight, true)
	if err != nil {
		return nil, fmt.Errorf("output plane: %w", err)
	}

	r.run(mid.Width, out.Height, out.ScratchRow, func(lo, hi int, scratch []int32) {
		var taps [filter.NumTaps]float64
		tmp := scratch[:out.Height]
		for i := lo; i < hi; i++ {
			for j := range tmp {
				refPos, phase := RefPosition(j, p.ScaleY, p.AddY, p.ShiftY)
				sum := r.dot(class, phase, refPos, mid.Data, i, mid.Width, mid.Height, &taps)
				tmp[j] = int32((sum + normRound) >> normShift)
			}
			for n, v := range tmp {
				out.Set(n, i, mathutil.Clip32(v, 0, r.maxSample))
			}
		}
	})

	out.ScratchRow = nil
	return out, nil
}

// dot returns the 12-tap product of the (class, phase) kernel with the
// samples data[base + m*stride], where m = refPos + k - filter.TapOffset is
// clamped to [0, n-1] so taps past either edge repeat the edge sample.
func (r *Resampler) dot(class filter.Class, phase, refPos int, data []int32, base, stride, n int, taps *[filter.NumTaps]float64) int64 {
	first := refPos - filter.TapOffset

	if r.ops != nil {
		for k := range taps {
			m := mathutil.Clip(first+k, 0, n-1)
			taps[k] = float64(data[base+m*stride])
		}
		return int64(r.ops.DotProductUnsafe(filter.Kernel64(class, phase), taps[:]))
	}

	kernel := filter.Kernel(class, phase)
	var sum int64
	for k, c := range kernel {
		m := mathutil.Clip(first+k, 0, n-1)
		sum += int64(c) * int64(data[base+m*stride])
	}
	return sum
}

// run calls fn over [0, n) in contiguous chunks, one per worker. The first
// chunk uses shared as its scratch row; the others get their own rows of
// scratchLen samples.
func (r *Resampler) run(n, scratchLen int, shared []int32, fn func(lo, hi int, scratch []int32)) {
	workers := min(r.workers, n)
	if workers <= 1 {
		fn(0, n, shared)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		scratch := shared
		if lo > 0 {
			scratch = make([]int32, scratchLen)
		}
		wg.Add(1)
		go func(lo, hi int, scratch []int32) {
			defer wg.Done()
			fn(lo, hi, scratch)
		}(lo, hi, scratch)
	}
	wg.Wait()
}
