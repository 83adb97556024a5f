package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	scaler "github.com/tphakala/go-yuv-scaler"
	"github.com/tphakala/go-yuv-scaler/internal/yuvio"
)

// errNoFrame indicates an input that ends before the first frame.
var errNoFrame = errors.New("input holds no frame")

// frameJob describes one frame conversion.
type frameJob struct {
	width     int
	height    int
	outWidth  int
	outHeight int
	verbose   bool
}

// scaleStats summarizes a finished conversion.
type scaleStats struct {
	outWidth  int
	outHeight int
	params    string
	bytesIn   int
	bytesOut  int
}

// process reads one frame from in, scales it with s and writes it to out.
func (j frameJob) process(s *scaler.Scaler, in io.Reader, out io.Writer) (*scaleStats, error) {
	params, err := scaler.NewScalingParameters(j.width, j.height, j.outWidth, j.outHeight)
	if err != nil {
		return nil, err
	}

	reader, err := yuvio.NewReader(in, j.width, j.height)
	if err != nil {
		return nil, err
	}

	img, err := scaler.NewImageBuffer(nil, nil, nil, j.width, j.height, true)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate input frame: %w", err)
	}
	defer img.Release()

	if !reader.ReadFrame(img) {
		if err := reader.Err(); err != nil {
			return nil, fmt.Errorf("failed to read frame: %w", err)
		}
		return nil, errNoFrame
	}

	if j.verbose {
		log.Printf("Parameters: %s", params)
	}

	scaled, err := s.Scale(img, params, true)
	if err != nil {
		return nil, fmt.Errorf("failed to scale frame: %w", err)
	}
	defer scaled.Release()

	writer := yuvio.NewWriter(out)
	if err := writer.WriteFrame(scaled, j.outWidth, j.outHeight); err != nil {
		return nil, fmt.Errorf("failed to write frame: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write frame: %w", err)
	}

	return &scaleStats{
		outWidth:  scaled.Width(),
		outHeight: scaled.Height(),
		params:    params.String(),
		bytesIn:   yuvio.FrameSize(j.width, j.height),
		bytesOut:  yuvio.FrameSize(j.outWidth, j.outHeight),
	}, nil
}

// openInput opens path for reading; "-" selects stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == stdStream {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, nil
}

// createOutput creates path for writing; "-" selects stdout.
func createOutput(path string) (io.WriteCloser, error) {
	if path == stdStream {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
