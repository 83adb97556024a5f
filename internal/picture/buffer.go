// Package picture implements the owned sample buffers the scaler works on:
// single planes ([Buffer]) and three-plane YUV images ([Image]).
package picture

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-yuv-scaler/internal/mathutil"
)

// MaxSamples caps the number of samples a single plane may hold.
// Requests above it fail with ErrAllocation instead of panicking in make.
const MaxSamples = 1 << 30

// Errors returned by buffer constructors.
var (
	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrSampleCount indicates a sample slice whose length does not match
	// the plane dimensions.
	ErrSampleCount = errors.New("sample count does not match dimensions")

	// ErrAllocation indicates a plane too large to allocate.
	ErrAllocation = errors.New("plane allocation failed")
)

// Buffer is one plane of samples in row-major order.
//
// Data always holds Width*Height samples and is addressed as
// row*Width + col. ScratchRow, when present, is working storage for a
// filtering pass; its contents are meaningless between calls.
type Buffer struct {
	Width      int
	Height     int
	Data       []int32
	ScratchRow []int32
}

// checkSize validates plane dimensions and returns the sample count.
func checkSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height || width*height > MaxSamples {
		return 0, fmt.Errorf("%w: %dx%d exceeds %d samples", ErrAllocation, width, height, MaxSamples)
	}
	return width * height, nil
}

// NewBuffer allocates a zeroed width x height plane. When withScratch is
// set, a scratch row of max(width, height) samples is attached.
func NewBuffer(width, height int, withScratch bool) (*Buffer, error) {
	n, err := checkSize(width, height)
	if err != nil {
		return nil, err
	}

	b := &Buffer{
		Width:  width,
		Height: height,
		Data:   make([]int32, n),
	}
	if withScratch {
		b.ScratchRow = make([]int32, max(width, height))
	}
	return b, nil
}

// NewBufferFromBytes allocates a plane and fills it from 8-bit samples.
// A nil samples slice yields a zeroed plane.
func NewBufferFromBytes(samples []byte, width, height int, withScratch bool) (*Buffer, error) {
	b, err := NewBuffer(width, height, withScratch)
	if err != nil {
		return nil, err
	}
	if samples == nil {
		return b, nil
	}
	if len(samples) != len(b.Data) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSampleCount, len(samples), len(b.Data))
	}
	for i, s := range samples {
		b.Data[i] = int32(s)
	}
	return b, nil
}

// NewBufferFromSamples allocates a plane holding a copy of samples.
// Use it for bit depths above 8. A nil samples slice yields a zeroed plane.
func NewBufferFromSamples(samples []int32, width, height int, withScratch bool) (*Buffer, error) {
	b, err := NewBuffer(width, height, withScratch)
	if err != nil {
		return nil, err
	}
	if samples == nil {
		return b, nil
	}
	if len(samples) != len(b.Data) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSampleCount, len(samples), len(b.Data))
	}
	copy(b.Data, samples)
	return b, nil
}

// Index returns the offset of (row, col) in Data.
func (b *Buffer) Index(row, col int) int {
	return row*b.Width + col
}

// At returns the sample at (row, col).
func (b *Buffer) At(row, col int) int32 {
	return b.Data[b.Index(row, col)]
}

// Set stores v at (row, col).
func (b *Buffer) Set(row, col int, v int32) {
	b.Data[b.Index(row, col)] = v
}

// Row returns row i as a sub-slice of Data.
func (b *Buffer) Row(i int) []int32 {
	start := b.Index(i, 0)
	return b.Data[start : start+b.Width]
}

// EnsureScratch grows the scratch row to at least n samples.
func (b *Buffer) EnsureScratch(n int) []int32 {
	if len(b.ScratchRow) < n {
		b.ScratchRow = make([]int32, n)
	}
	return b.ScratchRow
}

// Clone returns a deep copy of the plane without a scratch row.
func (b *Buffer) Clone() *Buffer {
	data := make([]int32, len(b.Data))
	copy(data, b.Data)
	return &Buffer{Width: b.Width, Height: b.Height, Data: data}
}

// Bytes returns the plane as 8-bit samples, clipping out-of-range values.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.Data))
	for i, v := range b.Data {
		out[i] = byte(mathutil.Clip32(v, 0, math.MaxUint8))
	}
	return out
}

// Released reports whether the plane storage has been dropped.
func (b *Buffer) Released() bool {
	return b.Data == nil
}

// Release drops the plane storage. It is safe to call more than once.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.Data = nil
	b.ScratchRow = nil
	b.Width = 0
	b.Height = 0
}
