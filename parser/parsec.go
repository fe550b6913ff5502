package parser

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/Islam0mar/micro-lisp/lisp"
	"github.com/Islam0mar/micro-lisp/parser/token"
	parsec "github.com/prataprc/goparsec"
)

// whitespace matches the characters for which unicode.IsSpace is true.
const whitespace = `[\t\n\v\f\r \x{85}\pZ]`

// lvalNode carries a parsed value through parsec combinators.  The value may
// be nil (the empty list) so it is never returned as a bare *lisp.LVal.
type lvalNode struct {
	v *lisp.LVal
}

// ParseBytes parses every value in text, a complete in-memory source named
// name, interning symbols in table.  Symbols are truncated by table exactly as
// a Reader truncates them.  When text is malformed the values preceding the
// error are returned along with it.  A stray ")" is reported with its
// location and an unterminated list wraps io.ErrUnexpectedEOF.
func ParseBytes(name string, text []byte, table *lisp.SymbolTable) ([]*lisp.LVal, error) {
	var v []*lisp.LVal
	s := parsec.NewScanner(text).SetWSPattern("^" + whitespace + "+")
	parser := newParsecParser(table)
	root, s := parser(s)
	for root != nil {
		v = append(v, root.(*lvalNode).v)
		root, s = parser(s)
	}
	return v, parsecRemainder(name, text, s.GetCursor())
}

func newParsecParser(table *lisp.SymbolTable) parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	symbol := parsec.Token(`[^\t\n\v\f\r \x{85}\pZ()]+`, "SYMBOL")
	term := parsec.OrdChoice(func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		term := nodes[0].(*parsec.Terminal)
		return &lvalNode{table.Intern(term.Value)}
	}, symbol)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	items := parsec.Kleene(func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		var b lisp.ListBuilder
		for _, n := range nodes {
			b.Append(n.(*lvalNode).v)
		}
		return &lvalNode{b.List()}
	}, &expr)
	list := parsec.And(func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		// We don't want terminal parsec nodes '(' and ')'
		return nodes[1]
	}, openP, items, closeP)
	expr = parsec.OrdChoice(nil, term, list)
	return expr
}

// parsecRemainder explains why parsing stopped at offset cursor of text.
func parsecRemainder(name string, text []byte, cursor int) error {
	pos := cursor
	for pos < len(text) {
		c, n := utf8.DecodeRune(text[pos:])
		if !unicode.IsSpace(c) {
			break
		}
		pos += n
	}
	switch {
	case pos >= len(text):
		return nil
	case text[pos] == ')':
		return fmt.Errorf("%v: unexpected %v", locate(name, text, pos), token.PAREN_R)
	default:
		return fmt.Errorf("%v: %w", locate(name, text, len(text)), io.ErrUnexpectedEOF)
	}
}

// locate returns the location of byte offset pos in text.
func locate(name string, text []byte, pos int) *token.Location {
	loc := &token.Location{File: name, Pos: pos, Line: 1, Col: 1}
	for _, c := range string(text[:pos]) {
		if c == '\n' {
			loc.Line++
			loc.Col = 1
		} else {
			loc.Col++
		}
	}
	return loc
}
