// Package testutil provides reusable assertion helpers for frame-based tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	worklet "github.com/montag/audioworklet-test-demo"
)

// AssertFrameShape verifies channel count and per-channel block size.
func AssertFrameShape(t *testing.T, f worklet.Frame, channels, blockSize int, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, f, channels, msgAndArgs...) {
		return false
	}
	for ch, buf := range f {
		if !assert.Len(t, buf, blockSize, "channel %d", ch) {
			return false
		}
	}
	return true
}

// AssertAllZero verifies that every sample of every channel is exactly 0.
func AssertAllZero(t *testing.T, f worklet.Frame, msgAndArgs ...any) bool {
	t.Helper()
	for ch, buf := range f {
		for i, v := range buf {
			if v != 0 {
				return assert.Fail(t, "non-zero sample",
					"frame[%d][%d]=%v", ch, i, v)
			}
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no sample is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, f worklet.Frame, msgAndArgs ...any) bool {
	t.Helper()
	for ch, buf := range f {
		for i, v := range buf {
			if math.IsNaN(float64(v)) {
				return assert.Fail(t, "found NaN", "frame[%d][%d] is NaN", ch, i)
			}
			if math.IsInf(float64(v), 0) {
				return assert.Fail(t, "found Inf", "frame[%d][%d] is Inf", ch, i)
			}
		}
	}
	return true
}

// AssertAllInRange verifies that all samples are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, f worklet.Frame, minVal, maxVal float32, msgAndArgs ...any) bool {
	t.Helper()
	for ch, buf := range f {
		for i, v := range buf {
			if v < minVal || v > maxVal {
				return assert.Fail(t, "value out of range",
					"frame[%d][%d]=%v is outside range [%v, %v]", ch, i, v, minVal, maxVal)
			}
		}
	}
	return true
}

// AssertBitEqual verifies that two buffers hold bit-identical samples.
func AssertBitEqual(t *testing.T, expected, actual worklet.ChannelBuffer, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Float32bits(expected[i]) != math.Float32bits(actual[i]) {
			return assert.Fail(t, "samples differ",
				"sample %d: expected %v (0x%08x), got %v (0x%08x)", i,
				expected[i], math.Float32bits(expected[i]), actual[i], math.Float32bits(actual[i]))
		}
	}
	return true
}
