package picture

import (
	"errors"
	"fmt"
	"image"
)

// ErrUnsupportedLayout indicates an image.YCbCr subsampling ratio or origin
// that has no planar equivalent here.
var ErrUnsupportedLayout = errors.New("unsupported YCbCr layout")

// FromYCbCr copies a 4:2:0 or 4:4:4 image.YCbCr into a new Image.
// For 4:2:0 the rectangle must start on even coordinates.
func FromYCbCr(src *image.YCbCr) (*Image, error) {
	var subsampled bool
	switch src.SubsampleRatio {
	case image.YCbCrSubsampleRatio420:
		subsampled = true
		if src.Rect.Min.X%2 != 0 || src.Rect.Min.Y%2 != 0 {
			return nil, fmt.Errorf("%w: 4:2:0 origin %v is not even", ErrUnsupportedLayout, src.Rect.Min)
		}
	case image.YCbCrSubsampleRatio444:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedLayout, src.SubsampleRatio)
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	img, err := NewImage(nil, nil, nil, w, h, subsampled)
	if err != nil {
		return nil, err
	}

	minX, minY := src.Rect.Min.X, src.Rect.Min.Y
	for row := range h {
		off := src.YOffset(minX, minY+row)
		fillRow(img.Luma.Row(row), src.Y[off:off+w])
	}

	cw, ch := img.ChromaU.Width, img.ChromaU.Height
	step := 1
	if subsampled {
		step = 2
	}
	for row := range ch {
		off := src.COffset(minX, minY+row*step)
		fillRow(img.ChromaU.Row(row), src.Cb[off:off+cw])
		fillRow(img.ChromaV.Row(row), src.Cr[off:off+cw])
	}

	return img, nil
}

// ToYCbCr copies the image into a new image.YCbCr anchored at the origin.
// Samples are clipped to 8 bits.
func (img *Image) ToYCbCr() (*image.YCbCr, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	ratio := image.YCbCrSubsampleRatio444
	if img.ChromaSubsampled {
		ratio = image.YCbCrSubsampleRatio420
	}
	w, h := img.Width(), img.Height()
	dst := image.NewYCbCr(image.Rect(0, 0, w, h), ratio)

	luma := img.Luma.Bytes()
	for row := range h {
		copy(dst.Y[row*dst.YStride:row*dst.YStride+w], luma[row*w:(row+1)*w])
	}

	cw, ch := img.ChromaU.Width, img.ChromaU.Height
	cb, cr := img.ChromaU.Bytes(), img.ChromaV.Bytes()
	for row := range ch {
		off := row * dst.CStride
		copy(dst.Cb[off:off+cw], cb[row*cw:(row+1)*cw])
		copy(dst.Cr[off:off+cw], cr[row*cw:(row+1)*cw])
	}

	return dst, nil
}

func fillRow(dst []int32, src []byte) {
	for i, v := range src {
		dst[i] = int32(v)
	}
}
