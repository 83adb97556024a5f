package yuvio

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tphakala/go-yuv-scaler/internal/mathutil"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
)

// writerBufferSize is the bufio buffer in front of the destination.
const writerBufferSize = 256 * 1024

// Writer writes frames in the raw 4:2:0 layout. Call Flush after the last
// frame.
type Writer struct {
	w      *bufio.Writer
	row    []byte
	frames int
}

// NewWriter returns a Writer to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, writerBufferSize)}
}

// WriteFrame writes the top-left width x height luma region of img and the
// top-left (width/2) x (height/2) region of each chroma plane. Samples are
// clipped to 8 bits. The image may be larger than the frame, as happens
// when the scaler rounds an odd target up.
func (w *Writer) WriteFrame(img *picture.Image, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", picture.ErrInvalidDimensions, width, height)
	}
	if img.Width() < width || img.Height() < height {
		return fmt.Errorf("%w: frame %dx%d, image %dx%d",
			ErrFrameSize, width, height, img.Width(), img.Height())
	}
	cw, ch := width/2, height/2
	if img.ChromaU.Width < cw || img.ChromaU.Height < ch {
		return fmt.Errorf("%w: chroma %dx%d, image chroma %dx%d",
			ErrFrameSize, cw, ch, img.ChromaU.Width, img.ChromaU.Height)
	}

	if err := w.writePlane(img.Luma, width, height); err != nil {
		return fmt.Errorf("frame %d luma: %w", w.frames, err)
	}
	if err := w.writePlane(img.ChromaU, cw, ch); err != nil {
		return fmt.Errorf("frame %d chroma U: %w", w.frames, err)
	}
	if err := w.writePlane(img.ChromaV, cw, ch); err != nil {
		return fmt.Errorf("frame %d chroma V: %w", w.frames, err)
	}

	w.frames++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Frames returns the number of frames written.
func (w *Writer) Frames() int {
	return w.frames
}

func (w *Writer) writePlane(p *picture.Buffer, width, height int) error {
	if cap(w.row) < width {
		w.row = make([]byte, width)
	}
	row := w.row[:width]

	for i := range height {
		for j, v := range p.Row(i)[:width] {
			row[j] = byte(mathutil.Clip32(v, 0, math.MaxUint8))
		}
		if _, err := w.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
