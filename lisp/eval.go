package lisp

import (
	"io"
	"os"
)

// Reader parses values from a source stream.
type Reader interface {
	// Read returns the next value in the stream.  Read returns io.EOF when
	// the stream has no more values.
	Read() (*LVal, error)
}

// Runtime holds the state shared by an evaluation: its streams, its symbol
// table and the global environment.  A Runtime must not be used from
// multiple goroutines at once.
type Runtime struct {
	Symbols      *SymbolTable
	Reader       Reader
	Stdout       io.Writer
	Stderr       io.Writer
	OnDiagnostic DiagnosticHandler

	global *LVal
	extra  []LBuiltinDef
}

// NewRuntime initializes and returns a new Runtime with the global
// environment populated by DefaultBuiltins.
func NewRuntime(config ...Config) *Runtime {
	rt := &Runtime{
		Symbols: DefaultSymbolTable,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	for _, fn := range config {
		fn(rt)
	}
	rt.global = rt.bindBuiltins(nil, DefaultBuiltins())
	rt.global = rt.bindBuiltins(rt.global, rt.extra)
	rt.global = Bind(rt.global, rt.Symbols.Intern("null"), nil)
	return rt
}

// GlobalEnv returns the environment that top-level expressions are evaluated
// in.
func (rt *Runtime) GlobalEnv() *LVal {
	return rt.global
}

// Intern interns name in the runtime's symbol table.
func (rt *Runtime) Intern(name string) *LVal {
	return rt.Symbols.Intern(name)
}

// True returns the canonical true value.
func (rt *Runtime) True() *LVal {
	return True(rt.Symbols)
}

// Bool returns the canonical true value if ok, nil otherwise.
func (rt *Runtime) Bool(ok bool) *LVal {
	if ok {
		return rt.True()
	}
	return nil
}

// EvalGlobal evaluates expr in the global environment.
func (rt *Runtime) EvalGlobal(expr *LVal) *LVal {
	return rt.Eval(expr, rt.global)
}

// Eval evaluates expr in env.  Failures are reported as diagnostics and the
// failing expression evaluates to nil.
func (rt *Runtime) Eval(expr *LVal, env *LVal) *LVal {
	if expr == nil {
		return nil
	}
	switch expr.Type {
	case LSymbol:
		v, ok := Lookup(env, expr)
		if !ok {
			return rt.diagnose(UnboundVariable, expr, nil)
		}
		return v
	case LClosure:
		return rt.Eval(expr.Body, expr.Env)
	case LPair:
		return rt.Apply(rt.Eval(expr.car, env), expr, env)
	default:
		return rt.diagnose(NotEvaluable, expr, nil)
	}
}

// Apply applies fun, the evaluated head of the call expression expr, to the
// arguments in expr.  Macros and special forms receive their arguments
// unevaluated.  Procedure arguments are evaluated left to right in env.
func (rt *Runtime) Apply(fun *LVal, expr *LVal, env *LVal) *LVal {
	args := CDR(expr)
	if fun != nil {
		switch fun.Type {
		case LMacro:
			return rt.evalBody(fun, args)
		case LSyntax:
			return fun.Syntax(rt, expr, env)
		}
	}
	return rt.Call(fun, rt.evalList(args, env))
}

// Call applies a procedure to a list of evaluated arguments.
func (rt *Runtime) Call(fun *LVal, args *LVal) *LVal {
	if fun != nil {
		switch fun.Type {
		case LPrimitive:
			return fun.Builtin(rt, args)
		case LClosure:
			return rt.evalBody(fun, args)
		}
	}
	return rt.diagnose(NotApplicable, fun, nil)
}

// evalBody binds the formals of the closure or macro fun to args and evaluates
// its body.
func (rt *Runtime) evalBody(fun *LVal, args *LVal) *LVal {
	env, ok := Extend(fun.Formals, args, fun.Env)
	if !ok {
		rt.diagnosef(ArityShortfall, fun.Formals, "%d argument(s) given", listLen(args))
	}
	return rt.Eval(fun.Body, env)
}

func (rt *Runtime) evalList(exprs *LVal, env *LVal) *LVal {
	var b ListBuilder
	for ; IsPair(exprs); exprs = exprs.cdr {
		b.Append(rt.Eval(exprs.car, env))
	}
	return b.List()
}

func listLen(v *LVal) int {
	n, _ := Len(v)
	return n
}
