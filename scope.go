package worklet

// BaseFactory produces a fresh ProcessorBase.
type BaseFactory func() ProcessorBase

// RegisterFunc announces a processor constructor under a name.
type RegisterFunc func(name string, ctor Constructor) error

// Scope is the set of host symbols visible to a processor module while it
// loads. The zero Scope defines nothing.
type Scope struct {
	NewBase  BaseFactory
	Register RegisterFunc
}

// Module is the load-time body of a processor module.
type Module func(scope *Scope) error

// Resolve checks that every host symbol is defined.
func (s *Scope) Resolve() error {
	if s == nil || s.NewBase == nil {
		return &MissingSymbolError{Symbol: SymbolProcessorBase}
	}
	if s.Register == nil {
		return &MissingSymbolError{Symbol: SymbolRegister}
	}
	return nil
}

// Load runs each module against scope. Symbols are resolved before any
// module runs, so a module never observes a partially installed scope.
func Load(scope *Scope, modules ...Module) error {
	if err := scope.Resolve(); err != nil {
		return err
	}
	for _, m := range modules {
		if err := m(scope); err != nil {
			return err
		}
	}
	return nil
}
