package worklet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	worklet "github.com/montag/audioworklet-test-demo"
	"github.com/montag/audioworklet-test-demo/compare"
	"github.com/montag/audioworklet-test-demo/fixture"
	"github.com/montag/audioworklet-test-demo/gain"
	"github.com/montag/audioworklet-test-demo/internal/testutil"
	"github.com/montag/audioworklet-test-demo/stub"
)

// loadGain installs a fresh stub environment, loads the gain module and
// constructs the processor by name.
func loadGain(t *testing.T) worklet.Processor {
	t.Helper()
	env := stub.New()
	require.NoError(t, worklet.Load(env.Scope(), gain.Module))
	p, err := env.Construct(gain.Name, worklet.Options{})
	require.NoError(t, err)
	return p
}

func TestHarness_ZeroGainSilencesBothChannels(t *testing.T) {
	t.Parallel()
	p := loadGain(t)

	in, err := fixture.Input(fixture.NameBasic)
	require.NoError(t, err)
	testutil.AssertFrameShape(t, in, 2, 3)
	out := fixture.OutputFor(in)

	_, err = worklet.Render(p, in, out, worklet.ParamSet{gain.ParamGain: worklet.KRate(0)})
	require.NoError(t, err)
	testutil.AssertAllZero(t, out)

	ok, err := compare.Frames(out, in, compare.Scalar(0))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHarness_LoadWithoutEnvironmentFails(t *testing.T) {
	t.Parallel()
	err := worklet.Load(&worklet.Scope{}, gain.Module)
	require.ErrorIs(t, err, worklet.ErrMissingSymbol)

	err = gain.Module(nil)
	require.ErrorIs(t, err, worklet.ErrMissingSymbol)
}

func TestHarness_GainOverFixtures(t *testing.T) {
	t.Parallel()
	for _, name := range fixture.Names() {
		for _, g := range []float32{0, 0.5, 1, -1, 0.1, 2} {
			p := loadGain(t)
			in, err := fixture.Input(name)
			require.NoError(t, err)
			out, err := fixture.Output(name)
			require.NoError(t, err)

			params := worklet.ParamSet{gain.ParamGain: worklet.KRate(g)}
			alive, err := worklet.Render(p, in, out, params)
			require.NoError(t, err)
			assert.True(t, alive)

			for ch := range out {
				ok, err := compare.Buffers(out[ch], in[ch], g)
				require.NoError(t, err)
				assert.True(t, ok, "fixture %s gain %v channel %d", name, g, ch)
			}
		}
	}
}

func TestHarness_ARateGain(t *testing.T) {
	t.Parallel()
	p := loadGain(t)
	in, err := fixture.Input(fixture.NameSine440)
	require.NoError(t, err)
	out := fixture.OutputFor(in)

	ramp := make([]float32, in.BlockSize())
	for i := range ramp {
		ramp[i] = float32(i) / float32(len(ramp))
	}
	params := worklet.ParamSet{gain.ParamGain: worklet.ARate(ramp...)}

	_, err = worklet.Render(p, in, out, params)
	require.NoError(t, err)

	ok, err := compare.Frames(out, in, compare.ParamTransform(params, gain.ParamGain, 1))
	require.NoError(t, err)
	assert.True(t, ok)

	// A constant multiplier cannot describe a ramp
	ok, err = compare.Frames(out, in, compare.Scalar(0.5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHarness_RepeatedRenderDoesNotLeak(t *testing.T) {
	t.Parallel()
	p := loadGain(t)
	in, err := fixture.Input(fixture.NameBasic)
	require.NoError(t, err)
	out := fixture.OutputFor(in)

	_, err = worklet.Render(p, in, out, worklet.ParamSet{gain.ParamGain: worklet.KRate(2)})
	require.NoError(t, err)

	// Disconnected input: the second call sees an empty frame
	alive := p.Process(worklet.Frame{}, out, nil)
	assert.True(t, alive)
	testutil.AssertAllZero(t, out)
}

func TestHarness_FixtureUnchangedAfterRender(t *testing.T) {
	t.Parallel()
	p := loadGain(t)
	in, err := fixture.Input(fixture.NameSine440)
	require.NoError(t, err)

	// Process in place: input and output share buffers
	p.Process(in, in, worklet.ParamSet{gain.ParamGain: worklet.KRate(0)})
	testutil.AssertAllZero(t, in)

	fresh, err := fixture.Input(fixture.NameSine440)
	require.NoError(t, err)
	assert.NotEqual(t, float32(0), fresh[0][1])
}
