package picture

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-yuv-scaler/internal/mathutil"
)

// NumPlanes is the number of planes in a YUV image.
const NumPlanes = 3

// Plane indices in Y, U, V order.
const (
	PlaneY = iota
	PlaneU
	PlaneV
)

// ErrPlaneMismatch indicates chroma planes whose size does not follow the
// image subsampling.
var ErrPlaneMismatch = errors.New("chroma plane size mismatch")

// Image groups a luma plane with two chroma planes. It owns all three
// planes exclusively; Release drops them together.
type Image struct {
	Luma    *Buffer
	ChromaU *Buffer
	ChromaV *Buffer

	// ChromaSubsampled marks 4:2:0 chroma (half width and height, rounded
	// up). When false the chroma planes match the luma size.
	ChromaSubsampled bool
}

// ChromaSize returns the chroma plane size for a width x height luma plane.
func ChromaSize(width, height int, subsampled bool) (int, int) {
	if subsampled {
		return mathutil.HalfCeil(width), mathutil.HalfCeil(height)
	}
	return width, height
}

// NewImage builds an image from 8-bit plane samples. Any nil plane is
// allocated zeroed so it can be filled later.
func NewImage(y, u, v []byte, width, height int, subsampled bool) (*Image, error) {
	cw, ch := ChromaSize(width, height, subsampled)

	luma, err := NewBufferFromBytes(y, width, height, false)
	if err != nil {
		return nil, fmt.Errorf("luma plane: %w", err)
	}
	cu, err := NewBufferFromBytes(u, cw, ch, false)
	if err != nil {
		return nil, fmt.Errorf("chroma U plane: %w", err)
	}
	cv, err := NewBufferFromBytes(v, cw, ch, false)
	if err != nil {
		return nil, fmt.Errorf("chroma V plane: %w", err)
	}

	return &Image{Luma: luma, ChromaU: cu, ChromaV: cv, ChromaSubsampled: subsampled}, nil
}

// NewImageFromPlanes wraps three existing planes after checking that their
// sizes agree with the subsampling mode. Ownership moves to the image.
func NewImageFromPlanes(y, u, v *Buffer, subsampled bool) (*Image, error) {
	img := &Image{Luma: y, ChromaU: u, ChromaV: v, ChromaSubsampled: subsampled}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// Width returns the luma width.
func (img *Image) Width() int { return img.Luma.Width }

// Height returns the luma height.
func (img *Image) Height() int { return img.Luma.Height }

// Planes returns the planes in Y, U, V order.
func (img *Image) Planes() [NumPlanes]*Buffer {
	return [NumPlanes]*Buffer{img.Luma, img.ChromaU, img.ChromaV}
}

// Validate checks the chroma size invariant.
func (img *Image) Validate() error {
	if img.Luma == nil || img.ChromaU == nil || img.ChromaV == nil {
		return fmt.Errorf("%w: missing plane", ErrPlaneMismatch)
	}
	cw, ch := ChromaSize(img.Luma.Width, img.Luma.Height, img.ChromaSubsampled)
	for i, p := range []*Buffer{img.ChromaU, img.ChromaV} {
		if p.Width != cw || p.Height != ch {
			return fmt.Errorf("%w: plane %d is %dx%d, want %dx%d",
				ErrPlaneMismatch, i+1, p.Width, p.Height, cw, ch)
		}
	}
	return nil
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	return &Image{
		Luma:             img.Luma.Clone(),
		ChromaU:          img.ChromaU.Clone(),
		ChromaV:          img.ChromaV.Clone(),
		ChromaSubsampled: img.ChromaSubsampled,
	}
}

// Release drops all three planes. It is safe to call more than once and on
// a nil image.
func (img *Image) Release() {
	if img == nil {
		return
	}
	img.Luma.Release()
	img.ChromaU.Release()
	img.ChromaV.Release()
}
