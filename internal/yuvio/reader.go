// Package yuvio reads and writes raw planar YUV 4:2:0 frames with 8-bit
// samples: a width x height luma plane followed by two
// (width/2) x (height/2) chroma planes, with no header or padding.
package yuvio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/tphakala/go-yuv-scaler/internal/picture"
)

// readerBufferSize is the bufio buffer in front of the source.
const readerBufferSize = 256 * 1024

// ErrFrameSize indicates a destination image smaller than the frames
// being read, or a frame larger than the image being written.
var ErrFrameSize = errors.New("frame size does not fit image")

// FrameSize returns the size in bytes of one width x height frame.
func FrameSize(width, height int) int {
	return width*height + 2*(width/2)*(height/2)
}

// Reader reads consecutive frames of a fixed size. Use it like
// bufio.Scanner: call ReadFrame until it returns false, then check Err.
type Reader struct {
	r      *bufio.Reader
	width  int
	height int
	buf    []byte
	frames int
	err    error
}

// NewReader returns a Reader of width x height frames from r.
func NewReader(r io.Reader, width, height int) (*Reader, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", picture.ErrInvalidDimensions, width, height)
	}
	return &Reader{
		r:      bufio.NewReaderSize(r, readerBufferSize),
		width:  width,
		height: height,
		buf:    make([]byte, FrameSize(width, height)),
	}, nil
}

// ReadFrame reads the next frame into img. If img is larger than the
// frame, the right and bottom borders are filled by repeating the last
// column and row. It returns false at the end of the input or on error;
// a clean end of input leaves Err nil, a truncated frame reports an error
// wrapping io.ErrUnexpectedEOF.
func (r *Reader) ReadFrame(img *picture.Image) bool {
	if r.err != nil {
		return false
	}

	if img.Width() < r.width || img.Height() < r.height {
		r.err = fmt.Errorf("%w: image %dx%d, frames %dx%d",
			ErrFrameSize, img.Width(), img.Height(), r.width, r.height)
		return false
	}

	n, err := io.ReadFull(r.r, r.buf)
	switch {
	case errors.Is(err, io.EOF) && n == 0:
		return false
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.err = fmt.Errorf("frame %d: read %d of %d bytes: %w", r.frames, n, len(r.buf), err)
		return false
	case err != nil:
		r.err = fmt.Errorf("frame %d: %w", r.frames, err)
		return false
	}

	lumaSize := r.width * r.height
	cw, ch := r.width/2, r.height/2
	chromaSize := cw * ch

	if err := load(r.buf[:lumaSize], r.width, r.height, img.Luma); err != nil {
		r.err = fmt.Errorf("frame %d luma: %w", r.frames, err)
		return false
	}
	if chromaSize > 0 {
		u := r.buf[lumaSize : lumaSize+chromaSize]
		v := r.buf[lumaSize+chromaSize:]
		if err := load(u, cw, ch, img.ChromaU); err != nil {
			r.err = fmt.Errorf("frame %d chroma U: %w", r.frames, err)
			return false
		}
		if err := load(v, cw, ch, img.ChromaV); err != nil {
			r.err = fmt.Errorf("frame %d chroma V: %w", r.frames, err)
			return false
		}
	}

	r.frames++
	return true
}

// Err returns the first error encountered by ReadFrame.
func (r *Reader) Err() error {
	return r.err
}

// Frames returns the number of frames read successfully.
func (r *Reader) Frames() int {
	return r.frames
}

// load copies a width x height plane of samples into dst, extending it
// when dst is larger.
func load(samples []byte, width, height int, dst *picture.Buffer) error {
	if dst.Width == width && dst.Height == height {
		for i, s := range samples {
			dst.Data[i] = int32(s)
		}
		return nil
	}

	src, err := picture.NewBufferFromBytes(samples, width, height, false)
	if err != nil {
		return err
	}
	picture.Copy(src, dst, true)
	src.Release()
	return nil
}
