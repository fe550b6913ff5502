package lisp

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LSymbol
	LPair
	LPrimitive
	LClosure
	LMacro
	LSyntax
)

var lvalTypeStrings = []string{
	LInvalid:   "INVALID",
	LSymbol:    "symbol",
	LPair:      "pair",
	LPrimitive: "primitive",
	LClosure:   "closure",
	LMacro:     "macro",
	LSyntax:    "syntax",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a native procedure.  It receives a list of evaluated
// arguments.
type LBuiltin func(rt *Runtime, args *LVal) *LVal

// LSyntaxFunc is a native special form.  It receives the complete call
// expression, unevaluated, and the environment of the call.
type LSyntaxFunc func(rt *Runtime, expr *LVal, env *LVal) *LVal

// LVal is a lisp value.  A nil *LVal is the absent value: the empty list and
// false.
type LVal struct {
	Type LValType

	// Str is the name of a symbol or of a native procedure or special form.
	Str string

	// Fields used by LPair values
	car *LVal
	cdr *LVal

	// Native code of LPrimitive and LSyntax values
	Builtin LBuiltin
	Syntax  LSyntaxFunc

	// Fields used by LClosure and LMacro values
	Formals *LVal
	Body    *LVal
	Env     *LVal
}

// newSymbol allocates a symbol.  Only a SymbolTable may call newSymbol.
func newSymbol(name string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  name,
	}
}

// Cons returns a new pair with the given head and tail.
//		(cons head tail)
func Cons(head, tail *LVal) *LVal {
	return &LVal{
		Type: LPair,
		car:  head,
		cdr:  tail,
	}
}

// List returns a proper list containing v.
func List(v ...*LVal) *LVal {
	var lis *LVal
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// Primitive returns a native procedure named name.
func Primitive(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LPrimitive,
		Str:     name,
		Builtin: fn,
	}
}

// Syntax returns a native special form named name.
func Syntax(name string, fn LSyntaxFunc) *LVal {
	return &LVal{
		Type:   LSyntax,
		Str:    name,
		Syntax: fn,
	}
}

// Closure returns a procedure with the given formal parameters and body that
// closes over env.
func Closure(formals, body, env *LVal) *LVal {
	return &LVal{
		Type:    LClosure,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Macro returns a closure-shaped value whose arguments are not evaluated
// before it is applied.
func Macro(formals, body, env *LVal) *LVal {
	return &LVal{
		Type:    LMacro,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// True returns the canonical true value, the list (quote t), using symbols
// from table.
func True(table *SymbolTable) *LVal {
	return List(table.Intern("quote"), table.Intern("t"))
}

// CAR returns the head of v.  CAR returns nil if v is not a pair.
func CAR(v *LVal) *LVal {
	if v == nil || v.Type != LPair {
		return nil
	}
	return v.car
}

// CDR returns the tail of v.  CDR returns nil if v is not a pair.
func CDR(v *LVal) *LVal {
	if v == nil || v.Type != LPair {
		return nil
	}
	return v.cdr
}

// IsNil returns true if v is the absent value.
func IsNil(v *LVal) bool {
	return v == nil
}

// IsPair returns true if v is a pair.
func IsPair(v *LVal) bool {
	return v != nil && v.Type == LPair
}

// IsSymbol returns true if v is a symbol.
func IsSymbol(v *LVal) bool {
	return v != nil && v.Type == LSymbol
}

// IsCallable returns true if v may appear at the head of a call expression.
func IsCallable(v *LVal) bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case LPrimitive, LClosure, LMacro, LSyntax:
		return true
	default:
		return false
	}
}

// Len returns the number of pairs in the chain starting at v.  Len returns
// false if the chain does not end in nil.
func Len(v *LVal) (int, bool) {
	n := 0
	for ; v != nil; v = v.cdr {
		if v.Type != LPair {
			return n, false
		}
		n++
	}
	return n, true
}

// Slice collects the elements of list v.  Slice stops at the first tail that
// is not a pair.
func Slice(v *LVal) []*LVal {
	var s []*LVal
	for ; IsPair(v); v = v.cdr {
		s = append(s, v.car)
	}
	return s
}

// ListBuilder appends elements to the end of a list without copying it.
type ListBuilder struct {
	front *LVal
	back  *LVal
}

// List returns the list built so far.  The list returned is modified by
// later calls to Append.
func (b *ListBuilder) List() *LVal {
	return b.front
}

// Append adds elements to the end of the list.
func (b *ListBuilder) Append(v ...*LVal) {
	for i := range v {
		cell := Cons(v[i], nil)
		if b.back == nil {
			b.front = cell
		} else {
			b.back.cdr = cell
		}
		b.back = cell
	}
}

// SetTail makes tail the CDR of the last pair.  If nothing was appended
// tail becomes the whole list.
func (b *ListBuilder) SetTail(tail *LVal) {
	if b.back == nil {
		b.front = tail
		return
	}
	b.back.cdr = tail
}

func (v *LVal) String() string {
	return FormatString(v)
}
