package fixture

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	worklet "github.com/montag/audioworklet-test-demo"
)

// PeakFrequency estimates the dominant frequency of buf in Hz.
//
// The block is Hann-windowed, zero-padded to at least minAnalysisSize points
// and the peak bin is refined by parabolic interpolation. The DC bin is
// ignored. This is only meant to check that a fixture holds the tone it
// claims to.
func PeakFrequency(buf worklet.ChannelBuffer, sampleRate float64) (float64, error) {
	if len(buf) < 3 {
		return 0, fmt.Errorf("%w: need at least 3 samples, got %d", worklet.ErrInvalidShape, len(buf))
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be positive", worklet.ErrInvalidConfig)
	}

	size := minAnalysisSize
	for size < len(buf) {
		size *= 2
	}

	windowed := make([]float64, len(buf))
	for i, v := range buf {
		windowed[i] = float64(v)
	}
	window.Hann(windowed)

	seq := make([]float64, size)
	copy(seq, windowed)

	coeffs := fourier.NewFFT(size).Coefficients(nil, seq)
	mags := make([]float64, len(coeffs))
	for k, c := range coeffs {
		mags[k] = cmplx.Abs(c)
	}

	peak := 1
	for k := 2; k < len(mags)-1; k++ {
		if mags[k] > mags[peak] {
			peak = k
		}
	}

	// Parabolic interpolation around the peak bin
	offset := 0.0
	a, b, c := mags[peak-1], mags[peak], mags[peak+1]
	if den := a - 2*b + c; den != 0 {
		offset = 0.5 * (a - c) / den
	}
	return (float64(peak) + offset) * sampleRate / float64(size), nil
}
