package lisp

import (
	"sync"
	"unicode/utf8"
)

// SymbolMax is the default bound on symbol length.  Symbol names are
// significant up to SymbolMax-1 bytes.
const SymbolMax = 32

// DefaultSymbolTable is the process-wide symbol table.  Runtimes use it
// unless configured WithSymbolTable.
var DefaultSymbolTable = NewSymbolTable(SymbolMax)

// Intern uses DefaultSymbolTable to intern name.
func Intern(name string) *LVal {
	return DefaultSymbolTable.Intern(name)
}

// SymbolTable interns names as symbols.  Two names that agree on their
// significant prefix intern to the same *LVal.  The table is append-only.
type SymbolTable struct {
	sync sync.RWMutex
	max  int
	s    map[string]*LVal
	syms []*LVal
}

// NewSymbolTable returns an empty table that compares names on their first
// max-1 bytes.  When max is not positive names are compared in full.
func NewSymbolTable(max int) *SymbolTable {
	return &SymbolTable{
		max: max,
		s:   make(map[string]*LVal),
	}
}

// Max returns the bound given to NewSymbolTable.
func (t *SymbolTable) Max() int {
	return t.max
}

// Len returns the number of symbols interned in the table.
func (t *SymbolTable) Len() int {
	t.sync.RLock()
	defer t.sync.RUnlock()
	return len(t.syms)
}

// Intern returns the symbol for name, allocating it if no symbol with the same
// significant prefix exists.
func (t *SymbolTable) Intern(name string) *LVal {
	key := t.key(name)
	t.sync.Lock()
	defer t.sync.Unlock()
	if sym, ok := t.s[key]; ok {
		return sym
	}
	sym := newSymbol(key)
	t.s[key] = sym
	t.syms = append(t.syms, sym)
	return sym
}

// Peek retrieves the symbol for name without interning it.
func (t *SymbolTable) Peek(name string) (*LVal, bool) {
	key := t.key(name)
	t.sync.RLock()
	defer t.sync.RUnlock()
	sym, ok := t.s[key]
	return sym, ok
}

// Symbols returns the interned symbols in the order they were interned.
func (t *SymbolTable) Symbols() []*LVal {
	t.sync.RLock()
	defer t.sync.RUnlock()
	syms := make([]*LVal, len(t.syms))
	copy(syms, t.syms)
	return syms
}

func (t *SymbolTable) key(name string) string {
	return Truncate(name, t.max)
}

// Truncate returns the significant prefix of name under the bound max,
// the first max-1 bytes, backing off so that a multi-byte rune is never
// split.  Truncate returns name unchanged when max is not positive.
func Truncate(name string, max int) string {
	if max <= 0 || len(name) < max {
		return name
	}
	n := max - 1
	for n > 0 && !utf8.RuneStart(name[n]) {
		n--
	}
	return name[:n]
}
