// Package gain implements a gain processor: every output sample is the
// matching input sample multiplied by the "gain" parameter.
package gain

import (
	"fmt"
	"math"

	worklet "github.com/montag/audioworklet-test-demo"
	"github.com/montag/audioworklet-test-demo/internal/simdops"
)

// Name is the name the module registers the processor under.
const Name = "gain-processor"

// ParamGain is the name of the gain parameter.
const ParamGain = "gain"

const defaultGain = 1.0

// Ready is posted on the processor's port once it is constructed.
type Ready struct {
	Name string
	Gain float32
}

var descriptors = []worklet.ParamDescriptor{
	{
		Name:           ParamGain,
		DefaultValue:   defaultGain,
		MinValue:       -math.MaxFloat32,
		MaxValue:       math.MaxFloat32,
		AutomationRate: worklet.ARateAutomation,
	},
}

// Module registers the gain processor. It is the load-time body of the
// processor module and must run against an installed scope.
func Module(scope *worklet.Scope) error {
	if err := scope.Resolve(); err != nil {
		return err
	}
	if err := scope.Register(Name, New); err != nil {
		return fmt.Errorf("failed to register %s: %w", Name, err)
	}
	return nil
}

// Processor multiplies its input by the gain parameter.
type Processor struct {
	worklet.ProcessorBase

	// initial is used when a call carries no gain parameter.
	initial float32
	ops     *simdops.Ops[float32]
}

// New constructs a gain processor. opts.ParameterData may set the initial
// gain, which is clamped to the descriptor range.
func New(base worklet.ProcessorBase, opts worklet.Options) (worklet.Processor, error) {
	desc := descriptors[0]
	initial := desc.DefaultValue
	if v, ok := opts.ParameterData[ParamGain]; ok {
		if math.IsNaN(float64(v)) {
			return nil, fmt.Errorf("%w: initial %s is NaN", worklet.ErrInvalidParam, ParamGain)
		}
		initial = desc.Clamp(v)
	}

	p := &Processor{
		ProcessorBase: base,
		initial:       initial,
		ops:           simdops.Float32Ops(),
	}
	p.PostMessage(Ready{Name: Name, Gain: initial})
	return p, nil
}

// ParameterDescriptors returns the processor's automatable parameters.
func (p *Processor) ParameterDescriptors() []worklet.ParamDescriptor {
	return append([]worklet.ParamDescriptor(nil), descriptors...)
}

// Process writes inputs[c][i] * gain into outputs[c][i]. Only channels and
// samples present in both frames are touched. With no inputs connected the
// outputs are silenced.
func (p *Processor) Process(inputs, outputs worklet.Frame, params worklet.ParamSet) bool {
	if len(inputs) == 0 {
		outputs.Zero()
		return true
	}

	gain, ok := params[ParamGain]
	if !ok || len(gain) == 0 {
		gain = worklet.KRate(p.initial)
	}

	channels := min(len(inputs), len(outputs))
	for ch := range channels {
		in, out := inputs[ch], outputs[ch]
		n := min(len(in), len(out))

		if len(gain) == 1 {
			p.ops.Scale(out[:n], in[:n], gain[0])
			continue
		}

		n = min(n, len(gain))
		for i := range n {
			out[i] = in[i] * gain[i]
		}
	}
	return true
}
