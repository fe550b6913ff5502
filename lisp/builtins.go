package lisp

import (
	"errors"
	"fmt"
	"io"
)

// LBuiltinDef is a named value bound in the global environment of every
// Runtime: a primitive procedure or a special form.
type LBuiltinDef interface {
	Name() string
	LVal() *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) LVal() *LVal {
	return Primitive(fun.name, fun.fun)
}

type langSyntax struct {
	name string
	fun  LSyntaxFunc
}

func (op *langSyntax) Name() string {
	return op.name
}

func (op *langSyntax) LVal() *LVal {
	return Syntax(op.name, op.fun)
}

// NewBuiltin returns an LBuiltinDef for a primitive procedure.
func NewBuiltin(name string, fn LBuiltin) LBuiltinDef {
	return &langBuiltin{name, fn}
}

// NewSpecialOp returns an LBuiltinDef for a special form.
func NewSpecialOp(name string, fn LSyntaxFunc) LBuiltinDef {
	return &langSyntax{name, fn}
}

var langSpecialOps = []*langSyntax{
	{"quote", opQuote},
	{"lambda", opLambda},
	{"cond", opCond},
	{"let", opLet},
	{"macro", opMacro},
	{"apply", opApply},
}

var langBuiltins = []*langBuiltin{
	{"cons", builtinCons},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"eq?", builtinEq},
	{"pair?", builtinPairP},
	{"symbol?", builtinSymbolP},
	{"null?", builtinNullP},
	{"read", builtinRead},
	{"write", builtinWrite},
}

// DefaultBuiltins returns the special forms and primitive procedures bound in
// the global environment of a new Runtime.
func DefaultBuiltins() []LBuiltinDef {
	defs := make([]LBuiltinDef, 0, len(langSpecialOps)+len(langBuiltins))
	for _, op := range langSpecialOps {
		defs = append(defs, op)
	}
	for _, fn := range langBuiltins {
		defs = append(defs, fn)
	}
	return defs
}

func (rt *Runtime) bindBuiltins(env *LVal, defs []LBuiltinDef) *LVal {
	for _, def := range defs {
		env = Bind(env, rt.Symbols.Intern(def.Name()), def.LVal())
	}
	return env
}

// (quote expr)
func opQuote(rt *Runtime, expr, env *LVal) *LVal {
	return CAR(CDR(expr))
}

// (lambda formals body)
func opLambda(rt *Runtime, expr, env *LVal) *LVal {
	return Closure(CAR(CDR(expr)), CAR(CDR(CDR(expr))), env)
}

// (cond (test result) ...)
func opCond(rt *Runtime, expr, env *LVal) *LVal {
	for clauses := CDR(expr); clauses != nil; clauses = CDR(clauses) {
		clause := CAR(clauses)
		test := rt.Eval(CAR(clause), env)
		if test == nil {
			continue
		}
		if !IsPair(CDR(clause)) {
			return test
		}
		return rt.Eval(CAR(CDR(clause)), env)
	}
	return nil
}

// (let ((name value) ...) body)
func opLet(rt *Runtime, expr, env *LVal) *LVal {
	var names, values ListBuilder
	for bindings := CAR(CDR(expr)); bindings != nil; bindings = CDR(bindings) {
		binding := CAR(bindings)
		if !IsPair(binding) {
			return rt.diagnosef(BadSyntax, binding, "let: binding is not a list")
		}
		names.Append(CAR(binding))
		values.Append(CAR(CDR(binding)))
	}
	fun := Closure(names.List(), CAR(CDR(CDR(expr))), env)
	return rt.Call(fun, rt.evalList(values.List(), env))
}

// (macro closure)
func opMacro(rt *Runtime, expr, env *LVal) *LVal {
	fun := rt.Eval(CAR(CDR(expr)), env)
	if fun == nil || fun.Type != LClosure {
		return rt.diagnosef(BadSyntax, fun, "macro: argument is not a closure")
	}
	return Macro(fun.Formals, fun.Body, fun.Env)
}

// (apply fun arg ... lis)
//
// The arguments are evaluated left to right before fun.
func opApply(rt *Runtime, expr, env *LVal) *LVal {
	var args ListBuilder
	rest := CDR(CDR(expr))
	for ; IsPair(CDR(rest)); rest = CDR(rest) {
		args.Append(rt.Eval(CAR(rest), env))
	}
	if rest != nil {
		args.SetTail(rt.Eval(CAR(rest), env))
	}
	fun := rt.Eval(CAR(CDR(expr)), env)
	return rt.Call(fun, args.List())
}

// (cons head tail)
func builtinCons(rt *Runtime, args *LVal) *LVal {
	return Cons(CAR(args), CAR(CDR(args)))
}

// (car lis)
func builtinCAR(rt *Runtime, args *LVal) *LVal {
	return CAR(CAR(args))
}

// (cdr lis)
func builtinCDR(rt *Runtime, args *LVal) *LVal {
	return CDR(CAR(args))
}

// (eq? a b)
func builtinEq(rt *Runtime, args *LVal) *LVal {
	return rt.Bool(CAR(args) == CAR(CDR(args)))
}

// (pair? v)
func builtinPairP(rt *Runtime, args *LVal) *LVal {
	return rt.Bool(IsPair(CAR(args)))
}

// (symbol? v)
func builtinSymbolP(rt *Runtime, args *LVal) *LVal {
	return rt.Bool(IsSymbol(CAR(args)))
}

// (null? v)
func builtinNullP(rt *Runtime, args *LVal) *LVal {
	return rt.Bool(CAR(args) == nil)
}

// (read)
func builtinRead(rt *Runtime, args *LVal) *LVal {
	if rt.Reader == nil {
		return rt.diagnose(IOError, nil, errors.New("no reader configured"))
	}
	v, err := rt.Reader.Read()
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("end of input: %w", err)
		}
		return rt.diagnose(IOError, nil, err)
	}
	return v
}

// (write v)
func builtinWrite(rt *Runtime, args *LVal) *LVal {
	_, err := Format(rt.Stdout, CAR(args))
	if err == nil {
		_, err = io.WriteString(rt.Stdout, "\n")
	}
	if err != nil {
		return rt.diagnose(IOError, CAR(args), fmt.Errorf("write: %w", err))
	}
	return rt.True()
}
