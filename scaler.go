package scaler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-yuv-scaler/internal/engine"
	"github.com/tphakala/go-yuv-scaler/internal/filter"
	"github.com/tphakala/go-yuv-scaler/internal/mathutil"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
)

// ImageBuffer is a three-plane YUV picture: a luma plane and two chroma
// planes, optionally 4:2:0 subsampled.
type ImageBuffer = picture.Image

// PixelBuffer is a single plane of samples in row-major order.
type PixelBuffer = picture.Buffer

// ScalingParameters holds the fixed-point scaling setup for one plane.
type ScalingParameters = engine.Params

// Config holds scaler configuration.
type Config struct {
	// Workers is the number of goroutines each filter pass splits its rows
	// or columns across. Zero or one runs the passes sequentially.
	Workers int

	// EnableParallel scales the three planes concurrently.
	EnableParallel bool

	// EnableSIMD computes the filter taps with the SIMD dot product when
	// available. Output is bit-identical either way.
	EnableSIMD bool

	// BitDepth is the sample precision of input and output planes.
	// Zero selects 8 bits.
	BitDepth int
}

// Common errors returned by the scaler.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid scaler configuration")

	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = picture.ErrInvalidDimensions

	// ErrSampleCount indicates plane samples that do not match the
	// plane dimensions.
	ErrSampleCount = picture.ErrSampleCount

	// ErrAllocation indicates a plane too large to allocate.
	ErrAllocation = picture.ErrAllocation

	// ErrPlaneMismatch indicates planes whose sizes do not agree with the
	// image subsampling or with the scaling parameters.
	ErrPlaneMismatch = picture.ErrPlaneMismatch
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	if c.Workers > maxWorkers {
		return fmt.Errorf("%w: too many workers (max %d)", ErrInvalidConfig, maxWorkers)
	}

	if c.BitDepth != 0 && (c.BitDepth < mathutil.MinBitDepth || c.BitDepth > mathutil.MaxBitDepth) {
		return fmt.Errorf("%w: bit depth must be %d-%d", ErrInvalidConfig, mathutil.MinBitDepth, mathutil.MaxBitDepth)
	}

	return nil
}

// Scaler rescales YUV images with the polyphase filter bank.
// A Scaler holds no per-image state and is safe for concurrent use.
type Scaler struct {
	config    Config
	resampler *engine.Resampler
}

// New creates a scaler with the specified configuration.
// A nil config selects the defaults: sequential, scalar, 8-bit.
func New(config *Config) (*Scaler, error) {
	if config == nil {
		config = &Config{}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	r, err := engine.NewResampler(engine.Options{
		Workers:  config.Workers,
		UseSIMD:  config.EnableSIMD,
		BitDepth: config.BitDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Scaler{config: *config, resampler: r}, nil
}

// Scale returns a new image holding input rescaled to the rounded target
// of params. Luma uses params; with chromaSubsampled the chroma planes use
// params.ChromaParams(), otherwise params as well. The input is never
// modified.
func (s *Scaler) Scale(input *ImageBuffer, params ScalingParameters, chromaSubsampled bool) (*ImageBuffer, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: nil image", ErrPlaneMismatch)
	}
	if input.ChromaSubsampled != chromaSubsampled {
		return nil, fmt.Errorf("%w: image subsampling is %t, scaling requested %t",
			ErrPlaneMismatch, input.ChromaSubsampled, chromaSubsampled)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	chroma := params
	if chromaSubsampled {
		chroma = params.ChromaParams()
	}
	planeParams := [picture.NumPlanes]ScalingParameters{params, chroma, chroma}

	src := input.Planes()
	var out [picture.NumPlanes]*picture.Buffer

	if !s.config.EnableParallel {
		for i := range src {
			result, err := s.resampler.Plane(src[i], planeParams[i])
			if err != nil {
				releasePlanes(out[:])
				return nil, fmt.Errorf("plane %d: %w", i, err)
			}
			out[i] = result
		}
		return picture.NewImageFromPlanes(out[picture.PlaneY], out[picture.PlaneU], out[picture.PlaneV], chromaSubsampled)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(src))

	for i := range src {
		wg.Add(1)
		go func(plane int) {
			defer wg.Done()

			result, err := s.resampler.Plane(src[plane], planeParams[plane])
			if err != nil {
				errChan <- fmt.Errorf("plane %d: %w", plane, err)
				return
			}
			out[plane] = result
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			releasePlanes(out[:])
			return nil, err
		}
	}

	return picture.NewImageFromPlanes(out[picture.PlaneY], out[picture.PlaneU], out[picture.PlaneV], chromaSubsampled)
}

// ScaleInto scales input to the size of dst and stores the result in the
// planes of dst. The parameters are derived from the two luma sizes. When
// dst has an odd width or height, the rounded-up result is cropped to fit.
func (s *Scaler) ScaleInto(input, dst *ImageBuffer) error {
	if input == nil || dst == nil {
		return fmt.Errorf("%w: nil image", ErrPlaneMismatch)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if dst.ChromaSubsampled != input.ChromaSubsampled {
		return fmt.Errorf("%w: destination subsampling is %t, input %t",
			ErrPlaneMismatch, dst.ChromaSubsampled, input.ChromaSubsampled)
	}

	params, err := NewScalingParameters(input.Width(), input.Height(), dst.Width(), dst.Height())
	if err != nil {
		return err
	}

	out, err := s.Scale(input, params, input.ChromaSubsampled)
	if err != nil {
		return err
	}
	defer out.Release()

	src, to := out.Planes(), dst.Planes()
	for i := range src {
		picture.Copy(src[i], to[i], false)
	}
	return nil
}

// Info describes a scaler setup.
type Info struct {
	// Workers is the number of goroutines per filter pass.
	Workers int

	// ParallelPlanes reports whether planes are scaled concurrently.
	ParallelPlanes bool

	// BitDepth is the sample precision used for clipping.
	BitDepth int

	// MaxSample is the largest output sample value.
	MaxSample int32

	// FilterTaps is the number of taps per kernel.
	FilterTaps int

	// Phases is the number of sub-sample phases per class.
	Phases int

	// Classes is the number of ratio classes in the filter bank.
	Classes int

	// SIMDEnabled indicates if SIMD optimizations are active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// GetInfo returns information about the scaler.
func (s *Scaler) GetInfo() Info {
	depth := s.config.BitDepth
	if depth == 0 {
		depth = mathutil.DefaultBitDepth
	}
	return Info{
		Workers:        max(s.config.Workers, 1),
		ParallelPlanes: s.config.EnableParallel,
		BitDepth:       depth,
		MaxSample:      s.resampler.MaxSample(),
		FilterTaps:     filter.NumTaps,
		Phases:         filter.NumPhases,
		Classes:        filter.NumClasses,
		SIMDEnabled:    s.config.EnableSIMD,
		SIMDType:       s.resampler.SIMDInfo(),
	}
}

func releasePlanes(planes []*picture.Buffer) {
	for _, p := range planes {
		p.Release()
	}
}
