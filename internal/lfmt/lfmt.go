// Package lfmt contains helpers for writing formatted lisp values.
package lfmt

import "io"

// CountingWriter is an io.Writer that tracks the number of bytes written
// through it and remembers the first write error.  Once an error has occurred
// all later writes are dropped.
type CountingWriter struct {
	w   io.Writer
	n   int
	err error
}

// NewCountingWriter wraps w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer
func (cw *CountingWriter) Write(b []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(b)
	cw.n += n
	cw.err = err
	return n, err
}

// WriteString implements io.StringWriter
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := io.WriteString(cw.w, s)
	cw.n += n
	cw.err = err
	return n, err
}

// N returns the total number of bytes written.
func (cw *CountingWriter) N() int {
	return cw.n
}

// Err returns the first error encountered while writing.
func (cw *CountingWriter) Err() error {
	return cw.err
}

// Result returns N and Err, the values a formatting function returns.
func (cw *CountingWriter) Result() (int, error) {
	return cw.n, cw.err
}
