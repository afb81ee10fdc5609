package worklet

import (
	"fmt"
	"math"
	"sort"
)

// ParamSet maps a parameter name to its values for one processing call.
// A single value is k-rate (constant for the block); one value per sample is
// a-rate. Processors must treat it as read-only.
type ParamSet map[string][]float32

// KRate returns a one-value parameter slice.
func KRate(v float32) []float32 {
	return []float32{v}
}

// ARate returns a per-sample parameter slice.
func ARate(values ...float32) []float32 {
	return append([]float32(nil), values...)
}

// IsConstant reports whether name is present and k-rate.
func (p ParamSet) IsConstant(name string) bool {
	v, ok := p[name]
	return ok && len(v) == kRateLength
}

// At returns the value of name at sample i.
func (p ParamSet) At(name string, i int) (float32, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	switch {
	case len(v) == kRateLength:
		return v[0], nil
	case i < 0 || i >= len(v):
		return 0, fmt.Errorf("%w: %q has %d values, sample %d requested", ErrInvalidParam, name, len(v), i)
	default:
		return v[i], nil
	}
}

// Validate checks that every entry is k-rate or has exactly blockSize values.
func (p ParamSet) Validate(blockSize int) error {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n := len(p[name])
		if n != kRateLength && n != blockSize {
			return fmt.Errorf("%w: %q has %d values, want 1 or %d", ErrInvalidParam, name, n, blockSize)
		}
	}
	return nil
}

// AutomationRate selects k-rate or a-rate automation for a parameter.
type AutomationRate int

const (
	// ARateAutomation lets the value change every sample.
	ARateAutomation AutomationRate = iota

	// KRateAutomation holds one value for the whole block.
	KRateAutomation
)

func (r AutomationRate) String() string {
	switch r {
	case ARateAutomation:
		return "a-rate"
	case KRateAutomation:
		return "k-rate"
	default:
		return fmt.Sprintf("AutomationRate(%d)", int(r))
	}
}

// ParamDescriptor describes one automatable parameter of a processor.
type ParamDescriptor struct {
	Name           string
	DefaultValue   float32
	MinValue       float32
	MaxValue       float32
	AutomationRate AutomationRate
}

// Validate checks the descriptor for a name and a consistent range.
func (d *ParamDescriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: parameter name is empty", ErrInvalidConfig)
	}
	if math.IsNaN(float64(d.MinValue)) || math.IsNaN(float64(d.MaxValue)) || d.MinValue > d.MaxValue {
		return fmt.Errorf("%w: %q range [%v, %v] is invalid", ErrInvalidConfig, d.Name, d.MinValue, d.MaxValue)
	}
	if d.DefaultValue < d.MinValue || d.DefaultValue > d.MaxValue {
		return fmt.Errorf("%w: %q default %v outside [%v, %v]", ErrInvalidConfig, d.Name, d.DefaultValue, d.MinValue, d.MaxValue)
	}
	if d.AutomationRate != ARateAutomation && d.AutomationRate != KRateAutomation {
		return fmt.Errorf("%w: %q has unknown automation rate %v", ErrInvalidConfig, d.Name, d.AutomationRate)
	}
	return nil
}

// Clamp limits v to the descriptor range.
func (d *ParamDescriptor) Clamp(v float32) float32 {
	return min(max(v, d.MinValue), d.MaxValue)
}

// DefaultParams builds a k-rate ParamSet holding every descriptor's default.
// The slices are freshly allocated, so callers may modify them.
func DefaultParams(descs []ParamDescriptor) ParamSet {
	p := make(ParamSet, len(descs))
	for _, d := range descs {
		p[d.Name] = KRate(d.DefaultValue)
	}
	return p
}
