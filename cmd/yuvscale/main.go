// Command yuvscale rescales one raw planar YUV 4:2:0 frame.
//
// Usage:
//
//	yuvscale -width 1920 -height 1080 -out-width 1280 -out-height 720 -i in.yuv -o out.yuv
//	yuvscale -width 8 -height 4 -out-width 4 -out-height 2 -i - -o - < in.yuv > out.yuv
//	yuvscale -simd -parallel=false -i in.yuv -o out.yuv
//
// Odd output sizes are scaled to the next even size and cropped on write.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	scaler "github.com/tphakala/go-yuv-scaler"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	width := flag.Int("width", defaultWidth, "Input frame width in pixels")
	height := flag.Int("height", defaultHeight, "Input frame height in pixels")
	outWidth := flag.Int("out-width", defaultOutputWidth, "Output frame width in pixels")
	outHeight := flag.Int("out-height", defaultOutputHeight, "Output frame height in pixels")
	inputPath := flag.String("i", stdStream, "Input raw YUV file (- for stdin)")
	outputPath := flag.String("o", stdStream, "Output raw YUV file (- for stdout)")
	parallel := flag.Bool("parallel", true, "Scale planes concurrently and split passes across CPUs")
	simd := flag.Bool("simd", false, "Use SIMD dot products for the filter taps")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i in.yuv -o out.yuv                          # 1080p to 720p\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -width 1280 -height 720 -out-width 640 -out-height 360 -i in.yuv -o out.yuv\n", os.Args[0])
		return fmt.Errorf("unexpected arguments: %v", flag.Args())
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	config := scaler.Config{EnableSIMD: *simd}
	if *parallel {
		config.Workers = runtime.NumCPU()
		config.EnableParallel = true
	}

	s, err := scaler.New(&config)
	if err != nil {
		return fmt.Errorf("failed to create scaler: %w", err)
	}

	job := frameJob{
		width:     *width,
		height:    *height,
		outWidth:  *outWidth,
		outHeight: *outHeight,
		verbose:   *verbose,
	}

	if *verbose {
		info := s.GetInfo()
		log.Printf("Input: %s (%dx%d)", *inputPath, job.width, job.height)
		log.Printf("Output: %s (%dx%d)", *outputPath, job.outWidth, job.outHeight)
		log.Printf("Filter bank: %d classes, %d phases, %d taps", info.Classes, info.Phases, info.FilterTaps)
		log.Printf("Workers: %d, parallel planes: %v", info.Workers, info.ParallelPlanes)
		log.Printf("SIMD: %v (%s)", info.SIMDEnabled, info.SIMDType)
	}

	in, err := openInput(*inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := createOutput(*outputPath)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := job.process(s, in, out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.Printf("Scaled %dx%d -> %dx%d (%s)", job.width, job.height, stats.outWidth, stats.outHeight, stats.params)
	log.Printf("  %.1f KB -> %.1f KB in %.2fms",
		float64(stats.bytesIn)/bytesPerKilobyte, float64(stats.bytesOut)/bytesPerKilobyte,
		float64(elapsed.Microseconds())/1000)

	return nil
}
