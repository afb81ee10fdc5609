package worklet

import "fmt"

// ChannelBuffer is one channel of float32 samples.
// Length is the block size of the call it belongs to.
type ChannelBuffer []float32

// Frame is a time-aligned set of channel buffers, indexed by channel.
type Frame []ChannelBuffer

// NewFrame allocates a zeroed frame of the given shape.
func NewFrame(channels, length int) (Frame, error) {
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: channels must be 1-%d, got %d", ErrInvalidShape, MaxChannels, channels)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidShape, length)
	}

	// One backing array keeps channels contiguous
	backing := make([]float32, channels*length)
	f := make(Frame, channels)
	for ch := range f {
		f[ch] = backing[ch*length : (ch+1)*length : (ch+1)*length]
	}
	return f, nil
}

// Channels returns the channel count.
func (f Frame) Channels() int {
	return len(f)
}

// BlockSize returns the length of channel 0, or 0 for an empty frame.
func (f Frame) BlockSize() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Validate checks that the frame is non-empty, within MaxChannels, and that
// every channel holds the same positive number of samples, the same shape
// NewFrame accepts.
func (f Frame) Validate() error {
	if len(f) == 0 {
		return fmt.Errorf("%w: frame has no channels", ErrInvalidShape)
	}
	if len(f) > MaxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidShape, MaxChannels)
	}
	n := len(f[0])
	if n < 1 {
		return fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidShape, n)
	}
	for ch, buf := range f {
		if len(buf) != n {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrInvalidShape, ch, len(buf), n)
		}
	}
	return nil
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	if f == nil {
		return nil
	}
	out := make(Frame, len(f))
	for ch, buf := range f {
		out[ch] = append(ChannelBuffer(nil), buf...)
	}
	return out
}

// Zero resets every sample to 0.
func (f Frame) Zero() {
	for _, buf := range f {
		clear(buf)
	}
}

// SameShape returns ErrShapeMismatch unless a and b have the same channel
// count and the same length per channel.
func SameShape(a, b Frame) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d channels vs %d", ErrShapeMismatch, len(a), len(b))
	}
	for ch := range a {
		if len(a[ch]) != len(b[ch]) {
			return fmt.Errorf("%w: channel %d has %d samples vs %d", ErrShapeMismatch, ch, len(a[ch]), len(b[ch]))
		}
	}
	return nil
}
