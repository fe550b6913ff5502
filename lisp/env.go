package lisp

// VarArgSymbol is the reserved symbol in a formal parameter list that binds
// the symbol following it to the list of remaining arguments.
//		(lambda (x . rest) rest)
const VarArgSymbol = "."

// An environment is a list of binding frames, each frame a two element list
// (symbol value).  Frames are only ever prepended so an environment captured
// by a closure never changes underneath it.

// Lookup returns the value bound to sym in env.  The innermost binding wins.
// Lookup returns false if sym is unbound.
func Lookup(env *LVal, sym *LVal) (*LVal, bool) {
	for ; env != nil; env = CDR(env) {
		frame := CAR(env)
		if CAR(frame) == sym {
			return CAR(CDR(frame)), true
		}
	}
	return nil, false
}

// Bind returns env extended with a binding of sym to val.
func Bind(env *LVal, sym *LVal, val *LVal) *LVal {
	return Cons(List(sym, val), env)
}

// Extend binds formals to args pairwise in a new environment whose tail is
// parent.  When VarArgSymbol appears in formals the symbol after it is bound
// to the remaining args.  A formals list ending in a bare symbol, or a formals
// value that is itself a symbol, binds that symbol to the remaining args as
// well.  Surplus args are ignored.
//
// Extend returns false if args ran out before every simple formal was bound.
// The bindings made before that point are kept.
func Extend(formals, args, parent *LVal) (*LVal, bool) {
	var b ListBuilder
	ok := true
	for formals != nil {
		if IsSymbol(formals) {
			b.Append(List(formals, args))
			break
		}
		name := CAR(formals)
		if isVarArgMarker(name) {
			b.Append(List(CAR(CDR(formals)), args))
			break
		}
		if args == nil {
			ok = false
			break
		}
		b.Append(List(name, CAR(args)))
		formals, args = CDR(formals), CDR(args)
	}
	b.SetTail(parent)
	return b.List(), ok
}

func isVarArgMarker(v *LVal) bool {
	return IsSymbol(v) && v.Str == VarArgSymbol
}

// EnvSymbols returns the symbols bound in env, innermost first.  A symbol
// shadowed by an inner binding is listed once.
func EnvSymbols(env *LVal) []*LVal {
	var syms []*LVal
	seen := make(map[*LVal]bool)
	for ; env != nil; env = CDR(env) {
		sym := CAR(CAR(env))
		if !seen[sym] {
			seen[sym] = true
			syms = append(syms, sym)
		}
	}
	return syms
}
