package scaler

import (
	"fmt"
	"image"

	"github.com/tphakala/go-yuv-scaler/internal/engine"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
)

// NewScalingParameters derives the scaling parameters for a
// srcWidth x srcHeight plane scaled to trgtWidth x trgtHeight. Targets are
// rounded up to even sizes and the fixed-point step is taken from the
// rounded target.
func NewScalingParameters(srcWidth, srcHeight, trgtWidth, trgtHeight int) (ScalingParameters, error) {
	return engine.NewParams(srcWidth, srcHeight, trgtWidth, trgtHeight)
}

// NewImageBuffer builds an image from 8-bit planes. Nil planes are
// allocated zeroed. With chromaSubsampled the chroma planes must be
// ceil(width/2) x ceil(height/2), otherwise width x height.
func NewImageBuffer(y, u, v []byte, width, height int, chromaSubsampled bool) (*ImageBuffer, error) {
	return picture.NewImage(y, u, v, width, height, chromaSubsampled)
}

// NewPixelBuffer builds a plane from samples of any bit depth.
// The samples are copied.
func NewPixelBuffer(samples []int32, width, height int) (*PixelBuffer, error) {
	return picture.NewBufferFromSamples(samples, width, height, false)
}

// NewImageBufferFromPlanes groups three planes into an image after
// checking their sizes against the subsampling mode.
func NewImageBufferFromPlanes(y, u, v *PixelBuffer, chromaSubsampled bool) (*ImageBuffer, error) {
	return picture.NewImageFromPlanes(y, u, v, chromaSubsampled)
}

// Release drops the storage of all planes of img. It is safe to call on a
// nil or already released image.
func Release(img *ImageBuffer) {
	img.Release()
}

// Scale rescales input with a default sequential 8-bit scaler.
// See [Scaler.Scale].
func Scale(input *ImageBuffer, params ScalingParameters, chromaSubsampled bool) (*ImageBuffer, error) {
	s, err := New(nil)
	if err != nil {
		return nil, err
	}
	return s.Scale(input, params, chromaSubsampled)
}

// ScaleTo rescales input to width x height (rounded up to even) with a
// default scaler, deriving the parameters from the image size.
func ScaleTo(input *ImageBuffer, width, height int) (*ImageBuffer, error) {
	if input == nil || input.Luma == nil {
		return nil, fmt.Errorf("%w: nil image", ErrPlaneMismatch)
	}
	params, err := NewScalingParameters(input.Width(), input.Height(), width, height)
	if err != nil {
		return nil, err
	}
	return Scale(input, params, input.ChromaSubsampled)
}

// FromYCbCr copies a 4:2:0 or 4:4:4 image.YCbCr into a new ImageBuffer.
func FromYCbCr(src *image.YCbCr) (*ImageBuffer, error) {
	return picture.FromYCbCr(src)
}

// ScaleYCbCr rescales an image.YCbCr to width x height (rounded up to
// even) and returns the result as a new image.YCbCr.
func ScaleYCbCr(src *image.YCbCr, width, height int) (*image.YCbCr, error) {
	img, err := FromYCbCr(src)
	if err != nil {
		return nil, err
	}
	defer img.Release()

	out, err := ScaleTo(img, width, height)
	if err != nil {
		return nil, err
	}
	defer out.Release()

	return out.ToYCbCr()
}
