package gain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	worklet "github.com/montag/audioworklet-test-demo"
	"github.com/montag/audioworklet-test-demo/internal/testutil"
	"github.com/montag/audioworklet-test-demo/stub"
)

type recordingPort struct {
	msgs []any
}

func (p *recordingPort) PostMessage(msg any) { p.msgs = append(p.msgs, msg) }

func newProcessor(t *testing.T, opts worklet.Options) *Processor {
	t.Helper()
	p, err := New(stub.New().NewBase(), opts)
	require.NoError(t, err)
	gp, ok := p.(*Processor)
	require.True(t, ok)
	return gp
}

// reference duplicates the processor's arithmetic sample by sample.
func reference(in worklet.Frame, gain []float32) worklet.Frame {
	out := in.Clone()
	for ch := range out {
		for i := range out[ch] {
			g := gain[0]
			if len(gain) > 1 {
				g = gain[i]
			}
			out[ch][i] = in[ch][i] * g
		}
	}
	return out
}

func TestModule_Registers(t *testing.T) {
	env := stub.New()
	require.NoError(t, worklet.Load(env.Scope(), Module))
	assert.Equal(t, []string{Name}, env.Registered())

	// Loading twice into the same host fails like the real registry
	err := worklet.Load(env.Scope(), Module)
	require.ErrorIs(t, err, worklet.ErrAlreadyRegistered)
}

func TestModule_MissingSymbol(t *testing.T) {
	var mse *worklet.MissingSymbolError
	require.ErrorAs(t, Module(&worklet.Scope{}), &mse)
	assert.Equal(t, worklet.SymbolProcessorBase, mse.Symbol)
}

func TestNew_PostsReady(t *testing.T) {
	port := &recordingPort{}
	_, err := New(stub.New(stub.WithPort(port)).NewBase(), worklet.Options{
		ParameterData: map[string]float32{ParamGain: 0.25},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{Ready{Name: Name, Gain: 0.25}}, port.msgs)
}

func TestNew_RejectsNaNInitialGain(t *testing.T) {
	_, err := New(worklet.ProcessorBase{}, worklet.Options{
		ParameterData: map[string]float32{ParamGain: float32(math.NaN())},
	})
	require.ErrorIs(t, err, worklet.ErrInvalidParam)
}

func TestNew_ClampsInitialGain(t *testing.T) {
	p := newProcessor(t, worklet.Options{
		ParameterData: map[string]float32{ParamGain: float32(math.Inf(1))},
	})
	assert.Equal(t, float32(math.MaxFloat32), p.initial)
}

func TestParameterDescriptors(t *testing.T) {
	p := newProcessor(t, worklet.Options{})
	descs := p.ParameterDescriptors()
	require.Len(t, descs, 1)
	require.NoError(t, descs[0].Validate())
	assert.Equal(t, ParamGain, descs[0].Name)
	assert.Equal(t, float32(1), descs[0].DefaultValue)
	assert.Equal(t, worklet.ARateAutomation, descs[0].AutomationRate)

	// Callers get a copy
	descs[0].DefaultValue = 7
	assert.Equal(t, float32(1), p.ParameterDescriptors()[0].DefaultValue)

	var _ worklet.Describer = p
}

func TestProcess_KRate(t *testing.T) {
	tests := []struct {
		name string
		gain float32
		in   worklet.Frame
	}{
		{"unity", 1, worklet.Frame{{1, 0.5, -1}}},
		{"half", 0.5, worklet.Frame{{1, 0.5, -1}, {0.3, -0.7, 0.1}}},
		{"zero", 0, worklet.Frame{{1, 0.5, -1}, {1, 0.5, -1}}},
		{"invert", -1, worklet.Frame{{0.25, -0.125}}},
		{"odd block", 0.1, worklet.Frame{{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProcessor(t, worklet.Options{})
			out := tt.in.Clone()
			out.Zero()

			alive := p.Process(tt.in, out, worklet.ParamSet{ParamGain: worklet.KRate(tt.gain)})
			assert.True(t, alive)

			want := reference(tt.in, []float32{tt.gain})
			for ch := range want {
				testutil.AssertBitEqual(t, want[ch], out[ch], "channel %d", ch)
			}
		})
	}
}

func TestProcess_ARate(t *testing.T) {
	p := newProcessor(t, worklet.Options{})
	in := worklet.Frame{{1, 0.5, -1}, {1, 0.5, -1}}
	out := worklet.Frame{{0, 0, 0}, {0, 0, 0}}
	gain := worklet.ARate(0, 0.5, 2)

	p.Process(in, out, worklet.ParamSet{ParamGain: gain})
	assert.Equal(t, worklet.Frame{{0, 0.25, -2}, {0, 0.25, -2}}, out)
}

func TestProcess_MissingParamUsesInitial(t *testing.T) {
	in := worklet.Frame{{1, 0.5, -1}}

	p := newProcessor(t, worklet.Options{})
	out := worklet.Frame{{0, 0, 0}}
	p.Process(in, out, nil)
	assert.Equal(t, in, out)

	p = newProcessor(t, worklet.Options{ParameterData: map[string]float32{ParamGain: 0.5}})
	out = worklet.Frame{{0, 0, 0}}
	p.Process(in, out, worklet.ParamSet{})
	assert.Equal(t, worklet.Frame{{0.5, 0.25, -0.5}}, out)
}

func TestProcess_NoInputsSilences(t *testing.T) {
	p := newProcessor(t, worklet.Options{})
	out := worklet.Frame{{9, 9}, {9, 9}}
	assert.True(t, p.Process(nil, out, nil))
	testutil.AssertAllZero(t, out)
}

func TestProcess_OnlyOverlapWritten(t *testing.T) {
	p := newProcessor(t, worklet.Options{})
	in := worklet.Frame{{1, 1, 1}}
	out := worklet.Frame{{0, 0}, {5, 5}}

	p.Process(in, out, worklet.ParamSet{ParamGain: worklet.KRate(2)})
	assert.Equal(t, worklet.Frame{{2, 2}, {5, 5}}, out)
}

func TestProcess_BlockSizeIndependent(t *testing.T) {
	p := newProcessor(t, worklet.Options{})
	for _, n := range []int{1, 3, 64, 128, 129, 1000} {
		in, err := worklet.NewFrame(2, n)
		require.NoError(t, err)
		for ch := range in {
			for i := range in[ch] {
				in[ch][i] = float32(math.Sin(float64(i+ch) * 0.01))
			}
		}
		out, err := worklet.NewFrame(2, n)
		require.NoError(t, err)

		p.Process(in, out, worklet.ParamSet{ParamGain: worklet.KRate(0.75)})
		want := reference(in, []float32{0.75})
		for ch := range want {
			testutil.AssertBitEqual(t, want[ch], out[ch], "n=%d channel %d", n, ch)
		}
	}
}
