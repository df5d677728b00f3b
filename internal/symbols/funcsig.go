package symbols

import "cyan/internal/ids"

// LocalSigTable interns per-chunk function signatures: a tuple of local
// SymIDs with the return type in the last slot. Two references built from
// identical element sequences (e.g. two untyped calls of the same arity)
// share a LocalFuncSigID.
type LocalSigTable struct {
	sigs  [][]ids.SymID // 1-based
	index map[string]ids.LocalFuncSigID
}

// NewLocalSigTable creates an empty per-chunk signature interner.
func NewLocalSigTable() *LocalSigTable {
	return &LocalSigTable{index: make(map[string]ids.LocalFuncSigID, 16)}
}

func sigKey(elems []ids.SymID) string {
	buf := make([]byte, 0, len(elems)*4)
	for _, e := range elems {
		buf = append(buf, byte(e), byte(e>>8), byte(e>>16), byte(e>>24))
	}
	return string(buf)
}

// Intern returns the LocalFuncSigID for elems (params..., return), creating
// it on first sight.
func (t *LocalSigTable) Intern(elems []ids.SymID) ids.LocalFuncSigID {
	key := sigKey(elems)
	if id, ok := t.index[key]; ok {
		return id
	}
	cp := append([]ids.SymID(nil), elems...)
	t.sigs = append(t.sigs, cp)
	id := ids.LocalFuncSigID(len(t.sigs))
	t.index[key] = id
	return id
}

// InternUntyped builds and interns the untyped (any, any, ..., any) signature
// of the given arity (params plus one trailing return slot), all elements
// bound to anySym. Two calls with the same arity therefore always share a
// LocalFuncSigID (spec §8 idempotence).
func (t *LocalSigTable) InternUntyped(arity int, anySym ids.SymID) ids.LocalFuncSigID {
	elems := make([]ids.SymID, arity+1)
	for i := range elems {
		elems[i] = anySym
	}
	return t.Intern(elems)
}

// Elems returns the element tuple for a LocalFuncSigID, or nil if invalid.
func (t *LocalSigTable) Elems(id ids.LocalFuncSigID) []ids.SymID {
	if !id.IsValid() || int(id) > len(t.sigs) {
		return nil
	}
	return t.sigs[id-1]
}

// ResolvedSigTable interns the process-wide resolved counterpart: tuples of
// ResolvedSymIDs. IsTyped is true iff any element differs from the builtin
// "any" resolved symbol.
type ResolvedSigTable struct {
	sigs    [][]ids.ResolvedSymID // 1-based
	index   map[string]ids.ResolvedFuncSigID
	isTyped []bool
}

// NewResolvedSigTable creates an empty global signature interner.
func NewResolvedSigTable() *ResolvedSigTable {
	return &ResolvedSigTable{index: make(map[string]ids.ResolvedFuncSigID, 16)}
}

func resolvedSigKey(elems []ids.ResolvedSymID) string {
	buf := make([]byte, 0, len(elems)*4)
	for _, e := range elems {
		buf = append(buf, byte(e), byte(e>>8), byte(e>>16), byte(e>>24))
	}
	return string(buf)
}

// Intern returns the ResolvedFuncSigID for elems, creating it (and computing
// IsTyped against anySym) on first sight.
func (t *ResolvedSigTable) Intern(elems []ids.ResolvedSymID, anySym ids.ResolvedSymID) ids.ResolvedFuncSigID {
	key := resolvedSigKey(elems)
	if id, ok := t.index[key]; ok {
		return id
	}
	cp := append([]ids.ResolvedSymID(nil), elems...)
	t.sigs = append(t.sigs, cp)
	typed := false
	for _, e := range cp {
		if e != anySym {
			typed = true
			break
		}
	}
	t.isTyped = append(t.isTyped, typed)
	id := ids.ResolvedFuncSigID(len(t.sigs))
	t.index[key] = id
	return id
}

// Elems returns the element tuple for a ResolvedFuncSigID, or nil if invalid.
func (t *ResolvedSigTable) Elems(id ids.ResolvedFuncSigID) []ids.ResolvedSymID {
	if !id.IsValid() || int(id) > len(t.sigs) {
		return nil
	}
	return t.sigs[id-1]
}

// IsTyped reports whether any element of id's tuple is not the builtin
// "any" symbol.
func (t *ResolvedSigTable) IsTyped(id ids.ResolvedFuncSigID) bool {
	if !id.IsValid() || int(id) > len(t.isTyped) {
		return false
	}
	return t.isTyped[id-1]
}

// Arity reports the parameter count (tuple length minus the return slot).
func (t *ResolvedSigTable) Arity(id ids.ResolvedFuncSigID) int {
	elems := t.Elems(id)
	if len(elems) == 0 {
		return 0
	}
	return len(elems) - 1
}
