package worklet

import "fmt"

// Render drives one processing call the way the host does: it checks that
// inputs and outputs share a shape and that params fit the block, resets
// outputs to zero, then calls p.Process.
//
// Shape problems are returned as errors. They are never folded into the
// processor's return value.
func Render(p Processor, inputs, outputs Frame, params ParamSet) (bool, error) {
	if err := inputs.Validate(); err != nil {
		return false, fmt.Errorf("inputs: %w", err)
	}
	if err := SameShape(inputs, outputs); err != nil {
		return false, fmt.Errorf("outputs: %w", err)
	}
	if err := params.Validate(inputs.BlockSize()); err != nil {
		return false, err
	}

	outputs.Zero()
	return p.Process(inputs, outputs, params), nil
}
