package lisp

import (
	"fmt"
	"io"
	"strings"

	"github.com/Islam0mar/micro-lisp/internal/lfmt"
)

// NilString is the text printed for the absent value.  Reading it back
// produces nil again.
const NilString = "()"

// Format writes a source-code representation of v to w.  Lists are printed in
// the usual parenthesized notation, a chain whose last tail is neither nil nor
// a pair uses dotted notation.  Procedures, macros and special forms are
// printed as opaque placeholders which cannot be read back.
func Format(w io.Writer, v *LVal) (int, error) {
	cw := lfmt.NewCountingWriter(w)
	format(cw, v)
	return cw.Result()
}

// FormatString returns the text written by Format.
func FormatString(v *LVal) string {
	var b strings.Builder
	Format(&b, v)
	return b.String()
}

func format(w *lfmt.CountingWriter, v *LVal) {
	if v == nil {
		io.WriteString(w, NilString)
		return
	}
	switch v.Type {
	case LSymbol:
		io.WriteString(w, v.Str)
	case LPair:
		formatList(w, v)
	case LClosure:
		io.WriteString(w, "<closure>")
	case LMacro:
		io.WriteString(w, "<macro>")
	case LPrimitive:
		fmt.Fprintf(w, "<primitive %s>", v.Str)
	case LSyntax:
		fmt.Fprintf(w, "<syntax %s>", v.Str)
	default:
		fmt.Fprintf(w, "<%v>", v.Type)
	}
}

func formatList(w *lfmt.CountingWriter, v *LVal) {
	io.WriteString(w, "(")
	for {
		format(w, v.car)
		if w.Err() != nil {
			return
		}
		if v.cdr == nil {
			break
		}
		if v.cdr.Type != LPair {
			io.WriteString(w, " . ")
			format(w, v.cdr)
			break
		}
		io.WriteString(w, " ")
		v = v.cdr
	}
	io.WriteString(w, ")")
}
