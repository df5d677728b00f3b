// Package symbols implements the two-level symbol model described in the
// spec: per-chunk local Syms that SemaDriver creates as it walks a chunk,
// and the process-wide ResolvedSym/ResolvedFuncSym tables that give those
// local references a stable, cross-chunk identity once resolved.
package symbols

import (
	"cyan/internal/ids"
	"cyan/internal/names"
)

// Sym is a local (per-chunk) symbol reference. Two references to the same
// parent+name+signature inside one chunk always share a Sym, which is why
// lookup is keyed rather than allocate-on-every-reference.
type Sym struct {
	Parent  ids.SymID          // none for a chunk-root reference
	Name    names.NameId
	FuncSig ids.LocalFuncSigID // none marks a variable/module reference
	Used    bool

	// Resolved is set by the sema driver: at declaration for a declaring
	// Sym, on first resolution for a referencing one. It stays
	// NoResolvedSymID until then, and if resolution fails.
	Resolved ids.ResolvedSymID
}

type symKey struct {
	parent ids.SymID
	name   names.NameId
	sig    ids.LocalFuncSigID
}

// Table stores every local Sym created while analyzing one chunk.
type Table struct {
	syms  []Sym // 1-based arena
	index map[symKey]ids.SymID
}

// NewTable creates an empty per-chunk symbol table.
func NewTable() *Table {
	return &Table{index: make(map[symKey]ids.SymID, 64)}
}

// Get returns a writable pointer to the Sym, or nil if id is invalid.
func (t *Table) Get(id ids.SymID) *Sym {
	if !id.IsValid() || int(id) > len(t.syms) {
		return nil
	}
	return &t.syms[id-1]
}

// GetOrCreate returns the existing Sym for (parent, name, sig), creating one
// if this is the first reference. The returned bool reports whether a new
// Sym was allocated.
func (t *Table) GetOrCreate(parent ids.SymID, name names.NameId, sig ids.LocalFuncSigID) (ids.SymID, bool) {
	key := symKey{parent, name, sig}
	if id, ok := t.index[key]; ok {
		return id, false
	}
	t.syms = append(t.syms, Sym{Parent: parent, Name: name, FuncSig: sig})
	id := ids.SymID(len(t.syms))
	t.index[key] = id
	return id, true
}

// Touch marks a Sym as used (spec §3). Resolution does not check the mark.
func (t *Table) Touch(id ids.SymID) {
	if s := t.Get(id); s != nil {
		s.Used = true
	}
}

// Len reports how many local Syms this chunk has created.
func (t *Table) Len() int { return len(t.syms) }
