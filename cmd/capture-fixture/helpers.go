package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	worklet "github.com/montag/audioworklet-test-demo"
	"github.com/montag/audioworklet-test-demo/fixture"
)

var errNoOutput = errors.New("no output requested: set -go and/or -wav")

// options holds the parsed command line.
type options struct {
	capture      fixture.CaptureConfig
	phaseDegrees float64
	inputPath    string
	name         string
	goPath       string
	pkg          string
	wavPath      string
	bitDepth     int
}

func defaultOptions() options {
	cfg := fixture.Sine440Config()
	return options{
		capture:      cfg,
		phaseDegrees: defaultPhaseDegrees,
		name:         defaultName,
		pkg:          defaultPackage,
		bitDepth:     defaultBitDepth,
	}
}

// loadFrame synthesizes the block, or reads it from the input WAV when set.
// It returns the frame and its sample rate.
func loadFrame(opts *options) (worklet.Frame, int, error) {
	if opts.inputPath == "" {
		cfg := opts.capture
		cfg.PhaseStep = opts.phaseDegrees * 2 * math.Pi / degreesPerTurn
		f, err := fixture.Capture(&cfg)
		if err != nil {
			return nil, 0, err
		}
		return f, int(cfg.SampleRate), nil
	}

	file, err := os.Open(opts.inputPath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	f, rate, err := fixture.ReadWAV(file)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", opts.inputPath, err)
	}
	return firstBlock(f, opts.capture.BlockSize), rate, nil
}

// firstBlock trims every channel to at most n samples.
func firstBlock(f worklet.Frame, n int) worklet.Frame {
	if n <= 0 || f.BlockSize() <= n {
		return f
	}
	out := make(worklet.Frame, len(f))
	for ch, buf := range f {
		out[ch] = buf[:n:n]
	}
	return out
}

// writeOutputs writes the Go source and/or WAV file requested in opts.
func writeOutputs(opts *options, frame worklet.Frame, rate int) error {
	if opts.goPath != "" {
		var buf bytes.Buffer
		if err := fixture.GoSource(&buf, opts.pkg, map[string]worklet.Frame{opts.name: frame}); err != nil {
			return err
		}
		if err := os.WriteFile(opts.goPath, buf.Bytes(), outputFileMode); err != nil {
			return fmt.Errorf("failed to write Go source: %w", err)
		}
	}

	if opts.wavPath != "" {
		file, err := os.Create(opts.wavPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		cfg := fixture.WAVConfig{SampleRate: rate, BitDepth: opts.bitDepth}
		if err := fixture.WriteWAV(file, frame, cfg); err != nil {
			_ = file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
	}
	return nil
}
