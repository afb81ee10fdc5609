// Package fixture supplies static input frames for processor tests.
//
// The frames are captured once (see cmd/capture-fixture) and compiled in, so
// every test run sees the same samples. Callers always receive copies: a
// processor writing to its input cannot corrupt the fixture for later tests.
package fixture

import (
	"errors"
	"fmt"
	"sort"

	worklet "github.com/montag/audioworklet-test-demo"
)

// Fixture names
const (
	// NameSine440 is a 128-sample block of a 440 Hz sine at 44.1 kHz.
	// Channel 1 leads channel 0 by a quarter period.
	NameSine440 = "sine440"

	// NameBasic is two channels of [1, 0.5, -1].
	NameBasic = "basic"
)

// ErrUnknownFixture indicates a fixture name that does not exist.
var ErrUnknownFixture = errors.New("unknown fixture")

var basicData = [][]float32{
	{1.0, 0.5, -1.0},
	{1.0, 0.5, -1.0},
}

var frames = map[string][][]float32{
	NameSine440: sine440Data,
	NameBasic:   basicData,
}

// Names returns the fixture names in sorted order.
func Names() []string {
	names := make([]string, 0, len(frames))
	for name := range frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Input returns a copy of the named input frame.
func Input(name string) (worklet.Frame, error) {
	data, ok := frames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
	}
	f := make(worklet.Frame, len(data))
	for ch, buf := range data {
		f[ch] = append(worklet.ChannelBuffer(nil), buf...)
	}
	return f, nil
}

// Output returns a zeroed frame shaped like the named input.
func Output(name string) (worklet.Frame, error) {
	in, err := Input(name)
	if err != nil {
		return nil, err
	}
	return OutputFor(in), nil
}

// OutputFor returns a zeroed frame with the same shape as in.
func OutputFor(in worklet.Frame) worklet.Frame {
	out := make(worklet.Frame, len(in))
	for ch, buf := range in {
		out[ch] = make(worklet.ChannelBuffer, len(buf))
	}
	return out
}
