package module

import (
	"fmt"
	"slices"
)

// Table is an immutable, ordered lookup from symbol to module. The position
// of a module is its symbol value for checksum purposes.
type Table struct {
	keys    []string
	modules []Module
	index   map[string]int
}

// NewTable builds a table keyed by each module's Symbol. It panics on
// duplicate symbols.
func NewTable(modules ...Module) *Table {
	t := &Table{
		keys:    make([]string, len(modules)),
		modules: slices.Clone(modules),
		index:   make(map[string]int, len(modules)),
	}
	for i, m := range modules {
		s := m.Symbol()
		if _, dup := t.index[s]; dup {
			panic(fmt.Sprintf("module: duplicate symbol %q", s))
		}
		t.keys[i] = s
		t.index[s] = i
	}
	return t
}

// Lookup returns the module for symbol.
func (t *Table) Lookup(symbol string) (Module, bool) {
	i, ok := t.index[symbol]
	if !ok {
		return nil, false
	}
	return t.modules[i], true
}

// Index returns the position of symbol, or -1.
func (t *Table) Index(symbol string) int {
	if i, ok := t.index[symbol]; ok {
		return i
	}
	return -1
}

// At returns the module at position i.
func (t *Table) At(i int) Module { return t.modules[i] }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.modules) }

// Keys returns the symbols in table order.
func (t *Table) Keys() []string { return slices.Clone(t.keys) }
