/*
Package parser provides a streaming lisp reader.

	expr   := '(' <expr>* ')' | <symbol>
	symbol := /[^[:space:]()]+/

Symbols longer than the bound of the symbol table are truncated.  There are
no quote characters, literals or comments.
*/
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/Islam0mar/micro-lisp/lisp"
	"github.com/Islam0mar/micro-lisp/parser/token"
)

// Reader parses one value at a time from a character stream.  Successive
// calls to Read continue where the previous call stopped.
type Reader struct {
	scanner *token.Scanner
	table   *lisp.SymbolTable
	depth   int
}

var _ lisp.Reader = (*Reader)(nil)

// NewReader returns a Reader that parses values from r and interns symbols in
// table.  Tokens are bounded by table.Max().
func NewReader(name string, r io.Reader, table *lisp.SymbolTable) *Reader {
	return &Reader{
		scanner: token.NewScanner(name, r, table.Max()),
		table:   table,
	}
}

// IsParsing returns true if the Reader is in the middle of a list.
func (p *Reader) IsParsing() bool {
	return p.depth > 0
}

// Read implements lisp.Reader.  Read returns io.EOF if the stream ends before
// a value begins and io.ErrUnexpectedEOF if it ends inside a list.
func (p *Reader) Read() (*lisp.LVal, error) {
	p.depth = 0
	tok := p.scanner.Next()
	switch tok.Type {
	case token.EOF:
		return nil, io.EOF
	case token.PAREN_R:
		return nil, fmt.Errorf("%v: unexpected %v", tok.Source, tok.Type)
	}
	return p.parse(tok)
}

// ReadAll reads values until the end of the stream.
func (p *Reader) ReadAll() ([]*lisp.LVal, error) {
	var vals []*lisp.LVal
	for {
		v, err := p.Read()
		if err == io.EOF {
			return vals, nil
		}
		if err != nil {
			return vals, err
		}
		vals = append(vals, v)
	}
}

func (p *Reader) parse(tok *token.Token) (*lisp.LVal, error) {
	switch tok.Type {
	case token.SYMBOL:
		return p.table.Intern(tok.Text), nil
	case token.PAREN_L:
		p.depth++
		defer func() { p.depth-- }()
		return p.parseList()
	case token.ERROR:
		return nil, fmt.Errorf("%v: %s", tok.Source, tok.Text)
	default:
		return nil, fmt.Errorf("%v: unexpected %v", tok.Source, tok.Type)
	}
}

// parseList parses list elements following an opening parenthesis up to and
// including the matching close.
func (p *Reader) parseList() (*lisp.LVal, error) {
	var b lisp.ListBuilder
	for {
		tok := p.scanner.Next()
		switch tok.Type {
		case token.PAREN_R:
			return b.List(), nil
		case token.EOF:
			return nil, fmt.Errorf("%v: %w", tok.Source, io.ErrUnexpectedEOF)
		}
		v, err := p.parse(tok)
		if err != nil {
			return nil, err
		}
		b.Append(v)
	}
}

// ReadString parses the first value in text.
func ReadString(table *lisp.SymbolTable, text string) (*lisp.LVal, error) {
	return NewReader("string", strings.NewReader(text), table).Read()
}

// ReadAllString parses all values in text.
func ReadAllString(table *lisp.SymbolTable, text string) ([]*lisp.LVal, error) {
	return ParseBytes("string", []byte(text), table)
}
