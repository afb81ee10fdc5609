package worklet

import (
	"errors"
	"fmt"
)

// Common errors returned by the harness.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidShape indicates a frame that is empty, too wide or ragged.
	ErrInvalidShape = errors.New("invalid frame shape")

	// ErrShapeMismatch indicates two frames or buffers that should have the
	// same shape do not.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMissingSymbol indicates a processor module was loaded into a scope
	// that lacks a host symbol it references.
	ErrMissingSymbol = errors.New("missing host symbol")

	// ErrUnknownParam indicates a parameter name absent from a ParamSet.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrInvalidParam indicates a parameter whose values do not fit the block.
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrInvalidName indicates an empty processor name.
	ErrInvalidName = errors.New("invalid processor name")

	// ErrAlreadyRegistered indicates a processor name registered twice.
	ErrAlreadyRegistered = errors.New("processor already registered")

	// ErrUnknownProcessor indicates a lookup of a name nobody registered.
	ErrUnknownProcessor = errors.New("unknown processor")
)

// MissingSymbolError reports which host symbol a module could not resolve.
type MissingSymbolError struct {
	Symbol string
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("%v: %s is not defined", ErrMissingSymbol, e.Symbol)
}

// Is reports whether target is ErrMissingSymbol.
func (e *MissingSymbolError) Is(target error) bool {
	return target == ErrMissingSymbol
}
