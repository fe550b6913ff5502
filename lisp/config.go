package lisp

import "io"

// Config is a function that configures a Runtime.
type Config func(rt *Runtime)

// WithStdout returns a Config that makes the runtime write program output,
// such as that of the write primitive, to w instead of os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

// WithStderr returns a Config that makes the runtime write diagnostics to w
// instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stderr = w
	}
}

// WithReader returns a Config that makes the read primitive parse values from
// r.  There is no default Reader for a runtime.
func WithReader(r Reader) Config {
	return func(rt *Runtime) {
		rt.Reader = r
	}
}

// WithSymbolTable returns a Config that makes the runtime intern symbols in
// table instead of DefaultSymbolTable.  Values read for the runtime must be
// interned in the same table.
func WithSymbolTable(table *SymbolTable) Config {
	return func(rt *Runtime) {
		rt.Symbols = table
	}
}

// WithDiagnosticHandler returns a Config that passes every diagnostic to fn
// instead of printing it to the runtime's Stderr.
func WithDiagnosticHandler(fn DiagnosticHandler) Config {
	return func(rt *Runtime) {
		rt.OnDiagnostic = fn
	}
}

// WithBuiltins returns a Config that binds defs in the global environment in
// addition to DefaultBuiltins.  A def shadows a default with the same name.
func WithBuiltins(defs ...LBuiltinDef) Config {
	return func(rt *Runtime) {
		rt.extra = append(rt.extra, defs...)
	}
}
