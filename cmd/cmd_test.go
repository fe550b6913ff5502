package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalOne(t *testing.T) {
	var out, errout bytes.Buffer
	err := evalOne(strings.NewReader("(cons (read) (quote b))\n a"), &out, &errout)
	require.NoError(t, err)
	assert.Equal(t, "(a . b)\n", out.String())
	assert.Empty(t, errout.String())

	out.Reset()
	err = evalOne(strings.NewReader("(car undefined)"), &out, &errout)
	require.NoError(t, err)
	assert.Equal(t, "()\n", out.String())
	assert.Equal(t, "unbound variable: undefined\n", errout.String())

	out.Reset()
	err = evalOne(strings.NewReader("  \n"), &out, &errout)
	assert.EqualError(t, err, "no expression on input")
	err = evalOne(strings.NewReader("(a (b)"), &out, &errout)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Empty(t, out.String())
}

func TestRunSources(t *testing.T) {
	defer func(p bool) { runPrint = p }(runPrint)
	runPrint = true

	var out, errout bytes.Buffer
	sources := []runSource{
		{"first", []byte("(write (quote x)) (cons (quote a) (quote b))")},
		{"second", []byte("(read)")},
	}
	err := runSources(sources, strings.NewReader("(y z)"), &out, &errout)
	require.NoError(t, err)
	assert.Equal(t, "x\n(quote t)\n(a . b)\n(y z)\n", out.String())
	assert.Empty(t, errout.String())

	out.Reset()
	err = runSources([]runSource{{"bad", []byte("(quote a) )")}}, strings.NewReader(""), &out, &errout)
	assert.EqualError(t, err, "bad:1:11: unexpected )")
	assert.Equal(t, "a\n", out.String())
}

func TestRunReadSources(t *testing.T) {
	defer func(e bool) { runExpression = e }(runExpression)

	runExpression = true
	sources, err := runReadSources([]string{"(quote a)", "b"})
	require.NoError(t, err)
	assert.Equal(t, []runSource{
		{"expression1", []byte("(quote a)")},
		{"expression2", []byte("b")},
	}, sources)

	runExpression = false
	path := filepath.Join(t.TempDir(), "prog.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(quote a)"), 0600))
	sources, err = runReadSources([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []runSource{{path, []byte("(quote a)")}}, sources)

	_, err = runReadSources([]string{filepath.Join(t.TempDir(), "missing.lisp")})
	assert.Error(t, err)
}
