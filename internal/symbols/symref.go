package symbols

import "cyan/internal/ids"

// SymRefKind discriminates the three ways a root-level (parentless) local
// Sym can bottom out once resolution walks past the chunk's own symbol
// table (spec §4.6: "root-sym search in resolvedSymMap then symRef fallback
// (moduleMember/module/sym) then builtin-type").
type SymRefKind uint8

const (
	SymRefNone SymRefKind = iota
	SymRefModule
	SymRefModuleMember
	SymRefSym
)

// SymRef records how an imported name was bound into a chunk: either the
// module itself (`import foo`), one member copied out of it
// (`import-all foo`), or a direct alias of an already-resolved symbol.
type SymRef struct {
	Kind      SymRefKind
	Module    ids.ModuleID
	Member    ids.ResolvedSymID // valid when Kind == SymRefModuleMember
	Sym       ids.ResolvedSymID // valid when Kind == SymRefSym
}

// SymRefTable maps a chunk-root local Sym to how it was imported. Entries
// are populated by the import-stmt and import-all handling in sema, and
// consulted as the last fallback during root-sym resolution.
type SymRefTable struct {
	refs map[ids.SymID]SymRef
}

// NewSymRefTable creates an empty per-chunk import-binding table.
func NewSymRefTable() *SymRefTable {
	return &SymRefTable{refs: make(map[ids.SymID]SymRef, 8)}
}

// Bind records how local sym was introduced by an import.
func (t *SymRefTable) Bind(sym ids.SymID, ref SymRef) {
	t.refs[sym] = ref
}

// Lookup returns the binding for sym, if any.
func (t *SymRefTable) Lookup(sym ids.SymID) (SymRef, bool) {
	ref, ok := t.refs[sym]
	return ref, ok
}
