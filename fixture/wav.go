package fixture

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	worklet "github.com/montag/audioworklet-test-demo"
	"github.com/montag/audioworklet-test-demo/internal/simdops"
)

// WAVConfig selects the PCM format fixtures are written in.
type WAVConfig struct {
	SampleRate int
	BitDepth   int
}

// Validate checks the WAV configuration.
func (c *WAVConfig) Validate() error {
	if c.SampleRate < int(minSampleRate) || c.SampleRate > int(maxSampleRate) {
		return fmt.Errorf("%w: sample rate must be %v-%v Hz", worklet.ErrInvalidConfig, minSampleRate, maxSampleRate)
	}
	return validateBitDepth(c.BitDepth)
}

// validateBitDepth accepts the signed PCM depths getMaxValue knows.
func validateBitDepth(bitDepth int) error {
	switch bitDepth {
	case bitDepth16, bitDepth24, bitDepth32:
		return nil
	default:
		return fmt.Errorf("%w: unsupported bit depth %d", worklet.ErrInvalidConfig, bitDepth)
	}
}

// getMaxValue returns the full-scale integer value for a bit depth
// accepted by validateBitDepth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitDepth16:
		return maxInt16
	case bitDepth24:
		return maxInt24
	case bitDepth32:
		return maxInt32
	default:
		return maxInt16
	}
}

// WriteWAV encodes f as interleaved integer PCM. Samples outside [-1, 1] are clipped.
func WriteWAV(w io.WriteSeeker, f worklet.Frame, cfg WAVConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}

	channels := f.Channels()
	n := f.BlockSize()
	maxVal := getMaxValue(cfg.BitDepth)

	// Widen and scale each channel, then interleave
	scaled := make([][]float64, channels)
	for ch, buf := range f {
		scaled[ch] = make([]float64, n)
		for i, v := range buf {
			scaled[ch][i] = math.Round(max(-1, min(1, float64(v))) * maxVal)
		}
	}

	interleaved := make([]float64, n*channels)
	if channels == stereoChannels {
		simdops.For[float64]().Interleave2(interleaved, scaled[0], scaled[1])
	} else {
		for i := range n {
			for ch := range channels {
				interleaved[i*channels+ch] = scaled[ch][i]
			}
		}
	}

	data := make([]int, len(interleaved))
	for i, v := range interleaved {
		data[i] = int(v)
	}

	enc := wav.NewEncoder(w, cfg.SampleRate, cfg.BitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: cfg.SampleRate},
		Data:           data,
		SourceBitDepth: cfg.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// ReadWAV decodes an integer PCM WAV into a frame and returns its sample rate.
func ReadWAV(r io.ReadSeeker) (worklet.Frame, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: not a valid WAV file", worklet.ErrInvalidConfig)
	}
	if err := validateBitDepth(int(dec.BitDepth)); err != nil {
		return nil, 0, err
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode WAV: %w", err)
	}

	channels := int(dec.NumChans)
	if channels < 1 || len(pcm.Data) == 0 || len(pcm.Data)%channels != 0 {
		return nil, 0, fmt.Errorf("%w: %d samples for %d channels", worklet.ErrInvalidShape, len(pcm.Data), channels)
	}

	f, err := worklet.NewFrame(channels, len(pcm.Data)/channels)
	if err != nil {
		return nil, 0, err
	}

	invMax := 1.0 / getMaxValue(int(dec.BitDepth))
	for i, v := range pcm.Data {
		f[i%channels][i/channels] = float32(float64(v) * invMax)
	}
	return f, int(dec.SampleRate), nil
}
