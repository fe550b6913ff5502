// Package lisptest runs table-driven tests of lisp expressions.
package lisptest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Islam0mar/micro-lisp/lisp"
	"github.com/Islam0mar/micro-lisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by one lisp.Runtime.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Output string // text written by the expression, diagnostics included
}

// TestSuite is a set of named TestSequences.  Input is the stream that the
// read primitive parses from.
type TestSuite []struct {
	Name  string
	Input string
	TestSequence
}

// NewRuntime returns a runtime with a private symbol table that writes
// program output and diagnostics to out and reads from input.
func NewRuntime(input string, out *bytes.Buffer) *lisp.Runtime {
	table := lisp.NewSymbolTable(lisp.SymbolMax)
	return lisp.NewRuntime(
		lisp.WithSymbolTable(table),
		lisp.WithStdout(out),
		lisp.WithStderr(out),
		lisp.WithReader(parser.NewReader("input", strings.NewReader(input), table)),
	)
}

// RunTestSuite runs each TestSequence in tests on an isolated lisp.Runtime.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var out bytes.Buffer
		rt := NewRuntime(test.Input, &out)
		for j, expr := range test.TestSequence {
			v, err := parser.ReadAllString(rt.Symbols, expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			out.Reset()
			result := lisp.FormatString(rt.EvalGlobal(v[0]))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, out.String())
			}
		}
	}
}
