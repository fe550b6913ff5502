package repl

import (
	"bytes"
	"io"
	"testing"

	"github.com/Islam0mar/micro-lisp/lisp"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptLine struct {
	text string
	err  error
}

type scriptReader struct {
	lines   []scriptLine
	prompt  string
	prompts []string
}

func (r *scriptReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *scriptReader) Readline() (string, error) {
	r.prompts = append(r.prompts, r.prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line.text, line.err
}

func newTestSession(lines ...scriptLine) (*Session, *scriptReader, *bytes.Buffer, *bytes.Buffer) {
	var out, errout bytes.Buffer
	rl := &scriptReader{lines: lines}
	s := New(rl, "> ", &out, &errout, WithSymbolTable(lisp.NewSymbolTable(lisp.SymbolMax)))
	return s, rl, &out, &errout
}

func TestSession(t *testing.T) {
	s, rl, out, errout := newTestSession(
		scriptLine{text: "(cons (quote a)"},
		scriptLine{text: "(quote b))"},
		scriptLine{text: "(write (quote x))"},
		scriptLine{text: ")"},
		scriptLine{text: "undefined"},
	)
	require.NoError(t, s.Run())
	assert.Equal(t, "(a . b)\nx\n(quote t)\n()\n", out.String())
	assert.Equal(t, "stdin:4:1: unexpected )\nunbound variable: undefined\n", errout.String())
	assert.Equal(t, []string{"> ", "  ", "> ", "> ", "> ", "> "}, rl.prompts)
}

func TestSession_read(t *testing.T) {
	s, _, out, errout := newTestSession(
		scriptLine{text: "(cons (read) (quote b))"},
		scriptLine{text: "a"},
	)
	require.NoError(t, s.Run())
	assert.Equal(t, "(a . b)\n", out.String())
	assert.Empty(t, errout.String())
}

func TestSession_interrupt(t *testing.T) {
	s, rl, out, errout := newTestSession(
		scriptLine{text: "(cons (quote a)"},
		scriptLine{err: readline.ErrInterrupt},
		scriptLine{text: "(quote c)"},
	)
	require.NoError(t, s.Run())
	assert.Equal(t, "c\n", out.String())
	assert.Empty(t, errout.String())
	assert.Equal(t, []string{"> ", "  ", "> ", "> "}, rl.prompts)
}

func TestSession_unexpectedEOF(t *testing.T) {
	s, _, out, _ := newTestSession(scriptLine{text: "(a"})
	err := s.Run()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Empty(t, out.String())
}

func TestCompleter(t *testing.T) {
	s, _, _, _ := newTestSession()
	c := &completer{s}
	cands, n := c.Do([]rune("(sym"), 4)
	assert.Equal(t, 3, n)
	assert.Equal(t, [][]rune{[]rune("bol?")}, cands)

	cands, n = c.Do([]rune("(cons (nu"), 9)
	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, [][]rune{[]rune("ll?"), []rune("ll")}, cands)
}
