package lisp

import (
	"fmt"
	"io"
)

// Condition classifies a Diagnostic.
type Condition int

// Possible Condition values
const (
	UnboundVariable Condition = iota
	NotApplicable
	NotEvaluable
	ArityShortfall
	BadSyntax
	IOError
)

var conditionStrings = []string{
	UnboundVariable: "unbound variable",
	NotApplicable:   "not applicable",
	NotEvaluable:    "cannot evaluate expression",
	ArityShortfall:  "too few arguments",
	BadSyntax:       "bad syntax",
	IOError:         "i/o error",
}

func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionStrings) {
		return "unknown condition"
	}
	return conditionStrings[c]
}

// Diagnostic describes a failure detected during evaluation.  Evaluation
// never stops because of a Diagnostic.  The failing expression evaluates to
// nil instead.
type Diagnostic struct {
	Condition Condition
	// Value is the offending value, if any.
	Value *LVal
	// Err carries an underlying Go error or a detailed message.
	Err error
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	switch {
	case d.Err != nil && d.Value != nil:
		return fmt.Sprintf("%v: %v: %v", d.Condition, d.Err, d.Value)
	case d.Err != nil:
		return fmt.Sprintf("%v: %v", d.Condition, d.Err)
	default:
		return fmt.Sprintf("%v: %v", d.Condition, d.Value)
	}
}

// Unwrap returns the underlying error.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// DiagnosticHandler receives every Diagnostic emitted by a Runtime.
type DiagnosticHandler func(d *Diagnostic)

// WriteDiagnostics returns a DiagnosticHandler that prints each Diagnostic on
// its own line of w.
func WriteDiagnostics(w io.Writer) DiagnosticHandler {
	return func(d *Diagnostic) {
		fmt.Fprintln(w, d.Error())
	}
}

// CollectDiagnostics returns a DiagnosticHandler that appends to *ds.
func CollectDiagnostics(ds *[]*Diagnostic) DiagnosticHandler {
	return func(d *Diagnostic) {
		*ds = append(*ds, d)
	}
}

func (rt *Runtime) diagnose(c Condition, v *LVal, err error) *LVal {
	d := &Diagnostic{
		Condition: c,
		Value:     v,
		Err:       err,
	}
	if rt.OnDiagnostic != nil {
		rt.OnDiagnostic(d)
	} else {
		WriteDiagnostics(rt.Stderr)(d)
	}
	return nil
}

func (rt *Runtime) diagnosef(c Condition, v *LVal, format string, args ...interface{}) *LVal {
	return rt.diagnose(c, v, fmt.Errorf(format, args...))
}
