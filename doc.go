// Package worklet provides the host surface needed to build and drive
// AudioWorklet-style block processors outside a real-time audio engine.
//
// A processor is any [Processor]: it reads an input [Frame], writes an output
// [Frame] of the same shape in place, and receives a [ParamSet] of k-rate or
// a-rate values. Processors are built on a [ProcessorBase], which carries the
// [MessagePort] side channel.
//
// # Modules and scopes
//
// A processor module announces itself at load time by registering a
// [Constructor] under a name. Instead of relying on process-wide globals the
// module receives a [Scope] holding the two host symbols it needs: a
// [BaseFactory] and a [RegisterFunc].
//
//	env := stub.New()
//	if err := worklet.Load(env.Scope(), gain.Module); err != nil {
//	    log.Fatal(err)
//	}
//
// Loading a module into a scope that lacks a symbol fails with a
// [MissingSymbolError], which matches [ErrMissingSymbol]. That is the expected
// outcome when a test forgets to install the environment first.
//
// # Rendering
//
// [Render] performs one processing call: it checks that inputs and outputs
// share a shape, that every parameter is k-rate or block-sized, zeroes the
// outputs and calls [Processor.Process].
//
//	in, _ := fixture.Input(fixture.NameSine440)
//	out := fixture.OutputFor(in)
//	params := worklet.ParamSet{"gain": worklet.KRate(0.5)}
//	if _, err := worklet.Render(proc, in, out, params); err != nil {
//	    log.Fatal(err)
//	}
//
// The output can then be checked channel by channel with the compare package.
//
// # Precision
//
// Samples are float32 throughout. Nothing in the harness widens samples to
// float64 before an exact comparison.
package worklet
