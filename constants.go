package worklet

// Frame shape limits
const (
	MaxChannels      = 32  // Maximum channels per frame (host limit for AudioWorklet outputs)
	DefaultBlockSize = 128 // Render quantum size used by the host
)

// Host symbol names a processor module resolves at load time.
const (
	SymbolProcessorBase = "AudioWorkletProcessor"
	SymbolRegister      = "registerProcessor"
)

// Parameter rate lengths
const (
	kRateLength = 1 // A k-rate parameter carries one value per block
)
