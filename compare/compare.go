// Package compare checks processed buffers against a reference transform of
// their input.
//
// The default comparison is exact: sample i of the result must equal the
// transformed sample i of the expected buffer bit for bit (with 0 == -0).
// That only holds when the reference transform reproduces the processor's
// float32 arithmetic, as a single multiply does. [Approx] is the tolerant
// variant for pipelines where that is not guaranteed.
//
// A zero multiplier matches an all-zero result only when every expected
// sample is finite: Inf*0 and NaN*0 are NaN, which never compares equal.
package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	worklet "github.com/montag/audioworklet-test-demo"
)

// DefaultMultiplier is the identity relationship output == input.
const DefaultMultiplier float32 = 1.0

// Transform maps the expected sample at index i to the value the result must hold.
type Transform func(i int, v float32) float32

// Scalar returns the constant-multiplier transform v * m.
func Scalar(m float32) Transform {
	return func(_ int, v float32) float32 {
		return v * m
	}
}

// ParamTransform returns the reference transform v * params[name], reading a
// k-rate or a-rate value per sample. def is used when name is absent. An a-rate
// slice shorter than the buffer yields NaN past its end, which never compares
// equal.
func ParamTransform(params worklet.ParamSet, name string, def float32) Transform {
	values, ok := params[name]
	if !ok || len(values) == 0 {
		return Scalar(def)
	}
	if len(values) == 1 {
		return Scalar(values[0])
	}
	return func(i int, v float32) float32 {
		if i >= len(values) {
			return float32(math.NaN())
		}
		return v * values[i]
	}
}

// Buffers reports whether r[i] == e[i]*m for every i.
func Buffers(r, e worklet.ChannelBuffer, m float32) (bool, error) {
	return BuffersFunc(r, e, Scalar(m))
}

// Equal reports whether r and e are identical, Buffers with DefaultMultiplier.
func Equal(r, e worklet.ChannelBuffer) (bool, error) {
	return Buffers(r, e, DefaultMultiplier)
}

// BuffersFunc reports whether r[i] == fn(i, e[i]) for every i. It stops at the
// first mismatch. Buffers of different lengths are an error, not a mismatch.
func BuffersFunc(r, e worklet.ChannelBuffer, fn Transform) (bool, error) {
	if err := sameLength(r, e); err != nil {
		return false, err
	}
	_, ok := firstMismatch(r, e, fn)
	return ok, nil
}

// Mismatch returns the index of the first sample where r differs from
// fn(i, e[i]), and false. It returns -1 and true when all samples match.
// Buffers of different lengths are an error.
func Mismatch(r, e worklet.ChannelBuffer, fn Transform) (int, bool, error) {
	if err := sameLength(r, e); err != nil {
		return -1, false, err
	}
	idx, ok := firstMismatch(r, e, fn)
	return idx, ok, nil
}

// Frames compares every channel of r against the same channel of e.
func Frames(r, e worklet.Frame, fn Transform) (bool, error) {
	if err := worklet.SameShape(r, e); err != nil {
		return false, err
	}
	for ch := range r {
		if _, ok := firstMismatch(r[ch], e[ch], fn); !ok {
			return false, nil
		}
	}
	return true, nil
}

// Approx reports whether every r[i] is within tol of e[i]*m, absolutely or
// relatively. The product is formed in float32 like the exact comparison;
// only the distance check is done in float64.
func Approx(r, e worklet.ChannelBuffer, m float32, tol float64) (bool, error) {
	if err := sameLength(r, e); err != nil {
		return false, err
	}
	if tol < 0 || math.IsNaN(tol) {
		return false, fmt.Errorf("%w: tolerance must be non-negative, got %v", worklet.ErrInvalidConfig, tol)
	}
	for i := range r {
		want := e[i] * m
		if !scalar.EqualWithinAbsOrRel(float64(r[i]), float64(want), tol, tol) {
			return false, nil
		}
	}
	return true, nil
}

func sameLength(r, e worklet.ChannelBuffer) error {
	if len(r) != len(e) {
		return fmt.Errorf("%w: result has %d samples, expected has %d", worklet.ErrShapeMismatch, len(r), len(e))
	}
	return nil
}

func firstMismatch(r, e worklet.ChannelBuffer, fn Transform) (int, bool) {
	for i := range r {
		if r[i] != fn(i, e[i]) {
			return i, false
		}
	}
	return -1, true
}
