// Package stub provides a substitute audio worklet host for tests.
//
// An [Environment] supplies the two host symbols a processor module needs at
// load time: a processor base carrying a no-op message port, and a
// registration function. Each test creates its own Environment, so tests
// can run in parallel without sharing a global scope.
package stub

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	worklet "github.com/montag/audioworklet-test-demo"
)

// NopPort is a message port that accepts any payload and drops it.
type NopPort struct {
	log zerolog.Logger
}

// PostMessage drops msg.
func (p NopPort) PostMessage(msg any) {
	p.log.Trace().Interface("msg", msg).Msg("port message dropped")
}

// Environment is a host stand-in that records registrations.
type Environment struct {
	log  zerolog.Logger
	port worklet.MessagePort

	mu         sync.Mutex
	registered map[string]worklet.Constructor
}

// Option configures an Environment.
type Option func(*Environment)

// WithLogger sets the logger used for registration and port tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Environment) {
		e.log = log
	}
}

// WithPort replaces the no-op port handed to every processor base.
func WithPort(port worklet.MessagePort) Option {
	return func(e *Environment) {
		e.port = port
	}
}

// New creates an Environment. Without options it logs nothing and hands out
// NopPort bases.
func New(opts ...Option) *Environment {
	e := &Environment{
		log:        zerolog.Nop(),
		registered: make(map[string]worklet.Constructor),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.port == nil {
		e.port = NopPort{log: e.log}
	}
	return e
}

// Install defines both host symbols in scope. A nil scope is left alone;
// loading into it still fails with worklet.ErrMissingSymbol.
func (e *Environment) Install(scope *worklet.Scope) {
	if scope == nil {
		return
	}
	scope.NewBase = e.NewBase
	scope.Register = e.Register
}

// Scope returns a new scope with the environment installed.
func (e *Environment) Scope() *worklet.Scope {
	scope := &worklet.Scope{}
	e.Install(scope)
	return scope
}

// NewBase returns a processor base wired to the environment's port.
func (e *Environment) NewBase() worklet.ProcessorBase {
	return worklet.ProcessorBase{Port: e.port}
}

// Register records ctor under name. Like the real host it rejects empty
// names and duplicate registrations; otherwise it has no effect.
func (e *Environment) Register(name string, ctor worklet.Constructor) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", worklet.ErrInvalidName)
	}
	if ctor == nil {
		return fmt.Errorf("%w: %q has no constructor", worklet.ErrInvalidConfig, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.registered[name]; ok {
		return fmt.Errorf("%w: %q", worklet.ErrAlreadyRegistered, name)
	}
	e.registered[name] = ctor
	e.log.Debug().Str("processor", name).Msg("processor registered")
	return nil
}

// Registered returns the registered processor names in sorted order.
func (e *Environment) Registered() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.registered))
	for name := range e.registered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Construct builds the processor registered under name on a fresh base.
func (e *Environment) Construct(name string, opts worklet.Options) (worklet.Processor, error) {
	e.mu.Lock()
	ctor, ok := e.registered[name]
	e.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", worklet.ErrUnknownProcessor, name)
	}

	p, err := ctor(e.NewBase(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %q: %w", name, err)
	}
	return p, nil
}
