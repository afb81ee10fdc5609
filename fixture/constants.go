package fixture

// Capture parameters of the generated sine fixture
const (
	sine440Rate      = 44100.0
	sine440Frequency = 440.0
	sine440Amplitude = 1.0
	sine440Channels  = 2
)

// Capture limits
const (
	minSampleRate = 8000.0
	maxSampleRate = 384000.0
)

// WAV sample formats
const (
	bitDepth16 = 16
	bitDepth24 = 24
	bitDepth32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1
)

// Spectrum analysis
const (
	minAnalysisSize = 8192 // Zero-padded FFT size for peak estimation
	stereoChannels  = 2
	valuesPerLine   = 8 // Samples per line in generated Go source
)
