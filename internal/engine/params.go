package engine

import (
	"fmt"

	"github.com/tphakala/go-yuv-scaler/internal/filter"
	"github.com/tphakala/go-yuv-scaler/internal/mathutil"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
)

// Fixed-point layout of source positions.
const (
	// ScaleShift is the number of fractional bits in ScaleX/ScaleY: the
	// filter.PhaseBits phase bits plus extraPrecisionBits of headroom.
	ScaleShift = filter.PhaseBits + extraPrecisionBits

	extraPrecisionBits = 4

	// roundingAddShift places the rounding bias at half of one phase step.
	roundingAddShift = filter.PhaseBits + 1
)

// Params holds the scaling parameters for one plane: the fixed-point step
// between output samples, the rounding bias and the crop margins used by
// the ratio classifier.
//
// Targets are rounded up to even sizes so that 4:2:0 chroma stays aligned,
// and the step is always derived from the rounded target.
type Params struct {
	SrcWidth   int
	SrcHeight  int
	TrgtWidth  int
	TrgtHeight int

	RndTrgtWidth  int
	RndTrgtHeight int

	// ScaleX and ScaleY are (src << ShiftX) / rndTrgt, rounded.
	ScaleX int
	ScaleY int

	AddX int
	AddY int

	ShiftX int
	ShiftY int

	LeftOffset   int
	RightOffset  int
	TopOffset    int
	BottomOffset int
}

// NewParams derives scaling parameters for a srcWidth x srcHeight plane
// scaled to trgtWidth x trgtHeight.
func NewParams(srcWidth, srcHeight, trgtWidth, trgtHeight int) (Params, error) {
	if srcWidth <= 0 || srcHeight <= 0 || trgtWidth <= 0 || trgtHeight <= 0 {
		return Params{}, fmt.Errorf("%w: %dx%d -> %dx%d",
			picture.ErrInvalidDimensions, srcWidth, srcHeight, trgtWidth, trgtHeight)
	}
	return newParams(srcWidth, srcHeight, trgtWidth, trgtHeight,
		mathutil.RoundUpEven(trgtWidth), mathutil.RoundUpEven(trgtHeight)), nil
}

func newParams(srcWidth, srcHeight, trgtWidth, trgtHeight, rndWidth, rndHeight int) Params {
	p := Params{
		SrcWidth:      srcWidth,
		SrcHeight:     srcHeight,
		TrgtWidth:     trgtWidth,
		TrgtHeight:    trgtHeight,
		RndTrgtWidth:  rndWidth,
		RndTrgtHeight: rndHeight,
		ShiftX:        ScaleShift,
		ShiftY:        ScaleShift,
	}
	p.ScaleX = ((srcWidth << p.ShiftX) + rndWidth/2) / rndWidth
	p.ScaleY = ((srcHeight << p.ShiftY) + rndHeight/2) / rndHeight
	p.AddX = 1 << (p.ShiftX - roundingAddShift)
	p.AddY = 1 << (p.ShiftY - roundingAddShift)
	return p
}

// WithCrop returns a copy of p with the given crop margins. The margins
// only shrink the extent seen by the ratio classifier.
func (p Params) WithCrop(left, right, top, bottom int) (Params, error) {
	if left < 0 || right < 0 || top < 0 || bottom < 0 {
		return Params{}, fmt.Errorf("%w: negative crop margin", picture.ErrInvalidDimensions)
	}
	if left+right >= p.SrcWidth || top+bottom >= p.SrcHeight {
		return Params{}, fmt.Errorf("%w: crop %d,%d,%d,%d leaves no picture in %dx%d",
			picture.ErrInvalidDimensions, left, right, top, bottom, p.SrcWidth, p.SrcHeight)
	}
	p.LeftOffset = left
	p.RightOffset = right
	p.TopOffset = top
	p.BottomOffset = bottom
	return p, nil
}

// ChromaParams derives the parameters of a 4:2:0 chroma plane from luma
// parameters. The chroma target is exactly half of the (even) rounded luma
// target and is not rounded again.
func (p Params) ChromaParams() Params {
	c := newParams(
		mathutil.HalfCeil(p.SrcWidth), mathutil.HalfCeil(p.SrcHeight),
		mathutil.HalfCeil(p.TrgtWidth), mathutil.HalfCeil(p.TrgtHeight),
		p.RndTrgtWidth/2, p.RndTrgtHeight/2,
	)
	c.LeftOffset = p.LeftOffset / 2
	c.RightOffset = p.RightOffset / 2
	c.TopOffset = p.TopOffset / 2
	c.BottomOffset = p.BottomOffset / 2
	return c
}

// CropWidth is the horizontal extent used for ratio classification.
func (p Params) CropWidth() int {
	return p.SrcWidth - p.LeftOffset - p.RightOffset
}

// CropHeight is the vertical extent used for ratio classification.
func (p Params) CropHeight() int {
	return p.SrcHeight - p.TopOffset - p.BottomOffset
}

// Classes returns the horizontal and vertical filter classes. Each axis is
// classified from its own crop extent and rounded target.
func (p Params) Classes() (hor, ver filter.Class) {
	return filter.ClassForRatio(p.CropWidth(), p.RndTrgtWidth),
		filter.ClassForRatio(p.CropHeight(), p.RndTrgtHeight)
}

// Identity reports whether the plane keeps its size on both axes.
func (p Params) Identity() bool {
	return p.SrcWidth == p.RndTrgtWidth && p.SrcHeight == p.RndTrgtHeight
}

// String summarizes the parameters for logs.
func (p Params) String() string {
	hor, ver := p.Classes()
	return fmt.Sprintf("%dx%d->%dx%d scale=(%d,%d)/2^%d add=(%d,%d) class=(%v,%v)",
		p.SrcWidth, p.SrcHeight, p.RndTrgtWidth, p.RndTrgtHeight,
		p.ScaleX, p.ScaleY, p.ShiftX, p.AddX, p.AddY, hor, ver)
}

// RefPosition maps output index j to a source position in 1/16 sample
// units given the per-axis step, bias and shift.
func RefPosition(j, scale, add, shift int) (refPos, phase int) {
	ref16 := (j*scale + add) >> (shift - filter.PhaseBits)
	return ref16 >> filter.PhaseBits, ref16 & filter.PhaseMask
}
