// Package repl implements an interactive read-eval-print loop on top of
// github.com/chzyer/readline.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Islam0mar/micro-lisp/lisp"
	"github.com/Islam0mar/micro-lisp/parser"
	"github.com/chzyer/readline"
)

// LineReader is the line editing interface used by the loop.
// *readline.Instance implements it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Option configures a repl.
type Option func(*config)

type config struct {
	table *lisp.SymbolTable
}

// WithSymbolTable interns symbols read at the prompt in table.
func WithSymbolTable(table *lisp.SymbolTable) Option {
	return func(c *config) {
		c.table = table
	}
}

// RunRepl runs a repl on the terminal until the input is closed.
func RunRepl(prompt string, opts ...Option) error {
	comp := &completer{}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		AutoComplete:    comp,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	s := New(rl, prompt, rl.Stdout(), rl.Stderr(), opts...)
	comp.s = s
	return s.Run()
}

// Session is a repl attached to a LineReader.
type Session struct {
	rt         *lisp.Runtime
	table      *lisp.SymbolTable
	lines      *lineSource
	reader     *parser.Reader
	prompt     string
	contPrompt string
	out        io.Writer
	errout     io.Writer
}

// New returns a Session which reads lines from rl and writes results to out.
// Diagnostics and read errors are written to errout.
func New(rl LineReader, prompt string, out, errout io.Writer, opts ...Option) *Session {
	c := &config{table: lisp.DefaultSymbolTable}
	for _, fn := range opts {
		fn(c)
	}
	s := &Session{
		table:      c.table,
		prompt:     prompt,
		contPrompt: strings.Repeat(" ", len(prompt)), // prompt had better be ascii...
		out:        out,
		errout:     errout,
	}
	s.lines = &lineSource{rl: rl, s: s}
	s.rt = lisp.NewRuntime(
		lisp.WithSymbolTable(c.table),
		lisp.WithStdout(out),
		lisp.WithStderr(errout),
	)
	s.reset()
	return s
}

// Runtime returns the runtime evaluating the session's expressions.
func (s *Session) Runtime() *lisp.Runtime {
	return s.rt
}

// reset discards buffered input and starts a new reader.
func (s *Session) reset() {
	s.lines.buf = nil
	s.lines.interrupted = false
	s.reader = parser.NewReader("stdin", s.lines, s.table)
	s.rt.Reader = s.reader
}

// Run evaluates expressions until the input ends.  The result of each
// expression is printed on its own line.
func (s *Session) Run() error {
	for {
		expr, err := s.reader.Read()
		if s.lines.interrupted {
			s.reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return err
		}
		if err != nil {
			fmt.Fprintln(s.errout, err)
			continue
		}
		v := s.rt.EvalGlobal(expr)
		if s.lines.interrupted {
			s.reset()
			continue
		}
		fmt.Fprintln(s.out, lisp.FormatString(v))
	}
}

// lineSource feeds lines from a LineReader to the parser one at a time,
// switching to the continuation prompt inside an unfinished list.
type lineSource struct {
	rl          LineReader
	s           *Session
	buf         []byte
	interrupted bool
}

func (src *lineSource) Read(p []byte) (int, error) {
	for len(src.buf) == 0 {
		if src.interrupted {
			return 0, readline.ErrInterrupt
		}
		if src.s.reader != nil && src.s.reader.IsParsing() {
			src.rl.SetPrompt(src.s.contPrompt)
		} else {
			src.rl.SetPrompt(src.s.prompt)
		}
		line, err := src.rl.Readline()
		if err == readline.ErrInterrupt {
			src.interrupted = true
			return 0, err
		}
		if err != nil {
			return 0, err
		}
		src.buf = append([]byte(line), '\n')
	}
	n := copy(p, src.buf)
	src.buf = src.buf[n:]
	return n, nil
}

// completer completes symbols bound in the global environment.
type completer struct {
	s *Session
}

var _ readline.AutoCompleter = (*completer)(nil)

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	if c.s == nil {
		return nil, 0
	}
	start := pos
	for start > 0 && !isDelim(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	var cands [][]rune
	for _, sym := range lisp.EnvSymbols(c.s.rt.GlobalEnv()) {
		if strings.HasPrefix(sym.Str, prefix) {
			cands = append(cands, []rune(sym.Str[len(prefix):]))
		}
	}
	return cands, len([]rune(prefix))
}

func isDelim(c rune) bool {
	return c == '(' || c == ')' || c == ' ' || c == '\t'
}
