package worklet

// MessagePort is the side channel between a processor and its owner.
type MessagePort interface {
	PostMessage(msg any)
}

// ProcessorBase is the host-provided part of every processor.
// Processors embed it and receive it from their Constructor.
type ProcessorBase struct {
	Port MessagePort
}

// PostMessage sends msg through the base's port. A base without a port drops it.
func (b *ProcessorBase) PostMessage(msg any) {
	if b.Port == nil {
		return
	}
	b.Port.PostMessage(msg)
}

// Processor is a block-based stream transform.
type Processor interface {
	// Process reads inputs and params and writes outputs in place.
	// Block size is the length of each channel buffer.
	// The return value asks the host to keep the processor alive.
	Process(inputs, outputs Frame, params ParamSet) bool
}

// Describer is implemented by processors that expose automatable parameters.
type Describer interface {
	ParameterDescriptors() []ParamDescriptor
}

// Options are the node options handed to a processor at construction.
type Options struct {
	NumberOfInputs     int
	NumberOfOutputs    int
	OutputChannelCount []int
	ParameterData      map[string]float32
	ProcessorOptions   map[string]any
}

// Constructor builds a processor on top of a host-provided base.
type Constructor func(base ProcessorBase, opts Options) (Processor, error)
