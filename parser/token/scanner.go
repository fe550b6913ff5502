package token

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner splits a character stream into tokens.  It holds at most one rune
// of lookahead, so a stream shared with other readers is consumed only as far
// as the last token scanned (plus one rune).
type Scanner struct {
	file string
	r    io.RuneReader
	max  int

	look    rune
	hasLook bool
	readErr error

	pos  int // byte offset of look
	line int // line number of look
	col  int // column number of look
	buf  strings.Builder
}

// NewScanner initializes and returns a new Scanner reading from r.  Symbol
// tokens are limited to max-1 bytes.  The first character that does not fit
// and every character after it are read and discarded.
// When max is not positive tokens are unbounded.
func NewScanner(file string, r io.Reader, max int) *Scanner {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Scanner{
		file: file,
		r:    rr,
		max:  max,
		line: 1,
		col:  1,
	}
}

// Err returns the first read error other than io.EOF.
func (s *Scanner) Err() error {
	if s.readErr == io.EOF {
		return nil
	}
	return s.readErr
}

// Loc returns the location of the next rune to be scanned.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

// peek fills the lookahead.  peek returns false at the end of the stream or
// after a read error.
func (s *Scanner) peek() (rune, bool) {
	if s.hasLook {
		return s.look, true
	}
	if s.readErr != nil {
		return 0, false
	}
	c, _, err := s.r.ReadRune()
	if err != nil {
		s.readErr = err
		return 0, false
	}
	s.look, s.hasLook = c, true
	return c, true
}

// advance consumes the lookahead rune.
func (s *Scanner) advance() {
	if !s.hasLook {
		return
	}
	s.hasLook = false
	s.pos += utf8.RuneLen(s.look)
	if s.look == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

// Next scans and returns the next token.  At the end of the stream Next
// returns an EOF token.  A read error produces an ERROR token whose Text is
// the error message.
func (s *Scanner) Next() *Token {
	c, ok := s.peek()
	for ok && isSpace(c) {
		s.advance()
		c, ok = s.peek()
	}
	loc := s.Loc()
	if !ok {
		return s.endToken(loc)
	}
	switch c {
	case '(':
		s.advance()
		return &Token{Type: PAREN_L, Text: "(", Source: loc}
	case ')':
		s.advance()
		return &Token{Type: PAREN_R, Text: ")", Source: loc}
	}
	s.buf.Reset()
	truncated := false
	for ok && !isSpace(c) && !isParen(c) {
		if !truncated && s.fits(c) {
			s.buf.WriteRune(c)
		} else {
			truncated = true
		}
		s.advance()
		c, ok = s.peek()
	}
	return &Token{
		Type:      SYMBOL,
		Text:      s.buf.String(),
		Source:    loc,
		Truncated: truncated,
	}
}

func (s *Scanner) endToken(loc *Location) *Token {
	if err := s.Err(); err != nil {
		return &Token{Type: ERROR, Text: err.Error(), Source: loc}
	}
	return &Token{Type: EOF, Source: loc}
}

func (s *Scanner) fits(c rune) bool {
	return s.max <= 0 || s.buf.Len()+utf8.RuneLen(c) <= s.max-1
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c)
}

func isParen(c rune) bool {
	return c == '(' || c == ')'
}
