package fixture

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"math"
	"sort"
	"strconv"

	worklet "github.com/montag/audioworklet-test-demo"
)

// CaptureConfig describes an offline sine capture.
// Capture runs only when fixtures are regenerated, never during tests.
type CaptureConfig struct {
	// SampleRate in Hz.
	SampleRate float64

	// Frequency of the sine in Hz. Must be below Nyquist.
	Frequency float64

	// Amplitude in (0, 1].
	Amplitude float64

	// Channels to capture.
	Channels int

	// BlockSize is the number of samples per channel.
	BlockSize int

	// PhaseStep is the phase offset in radians added per channel.
	PhaseStep float64
}

// Sine440Config returns the configuration the sine440 fixture was captured with.
func Sine440Config() CaptureConfig {
	return CaptureConfig{
		SampleRate: sine440Rate,
		Frequency:  sine440Frequency,
		Amplitude:  sine440Amplitude,
		Channels:   sine440Channels,
		BlockSize:  worklet.DefaultBlockSize,
		PhaseStep:  math.Pi / 2,
	}
}

// Validate checks the capture configuration.
func (c *CaptureConfig) Validate() error {
	if c.SampleRate < minSampleRate || c.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: sample rate must be %v-%v Hz", worklet.ErrInvalidConfig, minSampleRate, maxSampleRate)
	}
	if c.Frequency <= 0 || c.Frequency >= c.SampleRate/2 {
		return fmt.Errorf("%w: frequency must be in (0, %v)", worklet.ErrInvalidConfig, c.SampleRate/2)
	}
	if c.Amplitude <= 0 || c.Amplitude > 1 {
		return fmt.Errorf("%w: amplitude must be in (0, 1]", worklet.ErrInvalidConfig)
	}
	if c.Channels < 1 || c.Channels > worklet.MaxChannels {
		return fmt.Errorf("%w: channels must be 1-%d", worklet.ErrInvalidConfig, worklet.MaxChannels)
	}
	if c.BlockSize < 1 {
		return fmt.Errorf("%w: block size must be positive", worklet.ErrInvalidConfig)
	}
	if math.IsNaN(c.PhaseStep) || math.IsInf(c.PhaseStep, 0) {
		return fmt.Errorf("%w: phase step must be finite", worklet.ErrInvalidConfig)
	}
	return nil
}

// Capture synthesizes one block of sine per channel.
func Capture(cfg *CaptureConfig) (worklet.Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := worklet.NewFrame(cfg.Channels, cfg.BlockSize)
	if err != nil {
		return nil, err
	}

	w := 2 * math.Pi * cfg.Frequency / cfg.SampleRate
	for ch, buf := range f {
		phase := float64(ch) * cfg.PhaseStep
		for i := range buf {
			buf[i] = float32(cfg.Amplitude * math.Sin(w*float64(i)+phase))
		}
	}
	return f, nil
}

// GoSource writes frames as a generated Go file in package pkg. Each frame
// becomes a variable named <name>Data, so names must be Go identifiers.
func GoSource(w io.Writer, pkg string, frames map[string]worklet.Frame) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("%w: package name %q", worklet.ErrInvalidConfig, pkg)
	}

	names := make([]string, 0, len(frames))
	for name := range frames {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("%w: fixture name %q is not an identifier", worklet.ErrInvalidConfig, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by capture-fixture; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	for _, name := range names {
		fmt.Fprintf(&buf, "\nvar %sData = [][]float32{\n", name)
		for _, ch := range frames[name] {
			buf.WriteString("\t{\n")
			for i := 0; i < len(ch); i += valuesPerLine {
				buf.WriteString("\t\t")
				end := min(i+valuesPerLine, len(ch))
				for j, v := range ch[i:end] {
					if j > 0 {
						buf.WriteString(", ")
					}
					buf.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
				}
				buf.WriteString(",\n")
			}
			buf.WriteString("\t},\n")
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
