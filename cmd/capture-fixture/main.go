// Command capture-fixture regenerates the static fixture frames.
//
// It synthesizes a sine block (or cuts one block out of a WAV file) and
// writes it as a generated Go source file and/or a WAV file. It runs offline;
// tests only ever read its output.
//
// Usage:
//
//	capture-fixture -go fixture/data.go
//	capture-fixture -freq 1000 -channels 1 -wav tone.wav
//	capture-fixture -in recording.wav -name take1 -go take1.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/montag/audioworklet-test-demo/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("capture-fixture", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := defaultOptions()
	fs.Float64Var(&opts.capture.SampleRate, "rate", opts.capture.SampleRate, "Sample rate in Hz")
	fs.Float64Var(&opts.capture.Frequency, "freq", opts.capture.Frequency, "Sine frequency in Hz")
	fs.Float64Var(&opts.capture.Amplitude, "amp", opts.capture.Amplitude, "Sine amplitude (0, 1]")
	fs.IntVar(&opts.capture.Channels, "channels", opts.capture.Channels, "Number of channels")
	fs.IntVar(&opts.capture.BlockSize, "block", opts.capture.BlockSize, "Samples per channel")
	fs.Float64Var(&opts.phaseDegrees, "phase", opts.phaseDegrees, "Phase offset per channel in degrees")
	fs.StringVar(&opts.inputPath, "in", "", "Read the block from this WAV file instead of synthesizing")
	fs.StringVar(&opts.name, "name", opts.name, "Fixture name (Go identifier)")
	fs.StringVar(&opts.goPath, "go", "", "Write generated Go source to this file")
	fs.StringVar(&opts.pkg, "pkg", opts.pkg, "Package name for generated Go source")
	fs.StringVar(&opts.wavPath, "wav", "", "Write the block to this WAV file")
	fs.IntVar(&opts.bitDepth, "bits", opts.bitDepth, "WAV bit depth: 16, 24 or 32")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.goPath == "" && opts.wavPath == "" {
		fs.Usage()
		return errNoOutput
	}

	log := logging.New(stderr, logging.Verbosity(*verbose))
	log.Debug().
		Str("name", opts.name).
		Str("input", opts.inputPath).
		Float64("rate", opts.capture.SampleRate).
		Msg("capturing fixture")

	frame, rate, err := loadFrame(&opts)
	if err != nil {
		return err
	}

	if err := writeOutputs(&opts, frame, rate); err != nil {
		return err
	}

	log.Info().
		Str("name", opts.name).
		Int("channels", frame.Channels()).
		Int("samples", frame.BlockSize()).
		Str("go", opts.goPath).
		Str("wav", opts.wavPath).
		Msg("fixture captured")
	return nil
}
