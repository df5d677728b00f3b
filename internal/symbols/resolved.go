package symbols

import (
	"cyan/internal/ids"
	"cyan/internal/names"
	"cyan/internal/source"
	"cyan/internal/types"
)

// Variant discriminates what a ResolvedSym names.
type Variant uint8

const (
	VariantInvalid Variant = iota
	VariantFunc
	VariantVariable
	VariantObject
	VariantModule
	VariantBuiltinType
)

// overloadedSentinel marks a ResolvedSym's FuncSym field when more than one
// overload exists; callers must then consult ResolvedFuncSyms by
// (resolved sym, resolved sig) instead of reading FuncSym directly.
const overloadedSentinel = ids.ResolvedFuncSymID(^uint32(0))

// ResolvedSym is the process-wide, canonical identity of a name. Chunks
// never hold these directly; a local Sym's Resolved field points at one.
type ResolvedSym struct {
	Parent   ids.ResolvedSymID // none for a root-level symbol
	Name     names.NameId
	Variant  Variant
	Exported bool

	// FuncSym is valid only when Variant == VariantFunc. It names the sole
	// overload directly when there is exactly one, or overloadedSentinel
	// when there are several (see ResolvedFuncSyms.Overloads).
	FuncSym ids.ResolvedFuncSymID
}

// IsOverloaded reports whether a func ResolvedSym has more than one
// overload and must be disambiguated via the func-sig overload map.
func (s *ResolvedSym) IsOverloaded() bool {
	return s.Variant == VariantFunc && s.FuncSym == overloadedSentinel
}

// ResolvedFuncSym is one overload of a resolved function symbol.
type ResolvedFuncSym struct {
	Chunk                source.FileID // owning chunk; zero for natives
	IsNative             bool
	RFuncSigID           ids.ResolvedFuncSigID
	ReturnType           types.Type
	HasStaticInitializer bool
}

type resolvedKey struct {
	parent ids.ResolvedSymID
	name   names.NameId
}

type overloadKey struct {
	sym ids.ResolvedSymID
	sig ids.ResolvedFuncSigID
}

// Globals is the process-wide table shared by every chunk being analyzed.
// Because chunks are processed sequentially (spec §5), it needs no locking.
type Globals struct {
	syms       []ResolvedSym // 1-based
	symIndex   map[resolvedKey]ids.ResolvedSymID
	funcs      []ResolvedFuncSym // 1-based
	overload   map[overloadKey]ids.ResolvedFuncSymID
	builtinAny ids.ResolvedSymID
}

// NewGlobals creates an empty global resolution table, pre-registering the
// builtin "any" type symbol every untyped func-sig element points at.
func NewGlobals(anyName names.NameId) *Globals {
	g := &Globals{
		symIndex: make(map[resolvedKey]ids.ResolvedSymID, 64),
		overload: make(map[overloadKey]ids.ResolvedFuncSymID, 64),
	}
	g.builtinAny, _ = g.GetOrCreateSym(ids.NoResolvedSymID, anyName, VariantBuiltinType)
	if sym := g.Sym(g.builtinAny); sym != nil {
		sym.Exported = true
	}
	return g
}

// BuiltinAny returns the resolved symbol id for the builtin "any" type.
func (g *Globals) BuiltinAny() ids.ResolvedSymID { return g.builtinAny }

// Sym returns a writable pointer to the resolved symbol, or nil.
func (g *Globals) Sym(id ids.ResolvedSymID) *ResolvedSym {
	if !id.IsValid() || int(id) > len(g.syms) {
		return nil
	}
	return &g.syms[id-1]
}

// Lookup finds an existing resolved symbol under parent with the given name,
// without creating one.
func (g *Globals) Lookup(parent ids.ResolvedSymID, name names.NameId) (ids.ResolvedSymID, bool) {
	id, ok := g.symIndex[resolvedKey{parent, name}]
	return id, ok
}

// GetOrCreateSym returns the resolved symbol for (parent, name), creating it
// with the given variant if this is the first time it is named. If it
// already exists, the existing entry's variant is left untouched and the
// second return value is false.
func (g *Globals) GetOrCreateSym(parent ids.ResolvedSymID, name names.NameId, variant Variant) (ids.ResolvedSymID, bool) {
	key := resolvedKey{parent, name}
	if id, ok := g.symIndex[key]; ok {
		return id, false
	}
	g.syms = append(g.syms, ResolvedSym{Parent: parent, Name: name, Variant: variant})
	id := ids.ResolvedSymID(len(g.syms))
	g.symIndex[key] = id
	return id, true
}

// Func returns a writable pointer to the resolved func overload, or nil.
func (g *Globals) Func(id ids.ResolvedFuncSymID) *ResolvedFuncSym {
	if !id.IsValid() || int(id) > len(g.funcs) {
		return nil
	}
	return &g.funcs[id-1]
}

// FuncOverload looks up the overload registered for (sym, sig).
func (g *Globals) FuncOverload(sym ids.ResolvedSymID, sig ids.ResolvedFuncSigID) (ids.ResolvedFuncSymID, bool) {
	id, ok := g.overload[overloadKey{sym, sig}]
	return id, ok
}

// AddOverload registers a new ResolvedFuncSym for (sym, sig) and updates the
// owning ResolvedSym's FuncSym field: the sole overload directly if this is
// the first, overloadedSentinel from the second onward (spec §8 testable
// property: "resolvedFuncSymMap has exactly k entries").
func (g *Globals) AddOverload(sym ids.ResolvedSymID, sig ids.ResolvedFuncSigID, entry ResolvedFuncSym) ids.ResolvedFuncSymID {
	key := overloadKey{sym, sig}
	if id, ok := g.overload[key]; ok {
		return id
	}
	g.funcs = append(g.funcs, entry)
	id := ids.ResolvedFuncSymID(len(g.funcs))
	g.overload[key] = id

	rs := g.Sym(sym)
	if rs != nil {
		rs.Variant = VariantFunc
		switch {
		case rs.FuncSym == ids.NoResolvedFuncSymID:
			rs.FuncSym = id
		case rs.FuncSym != overloadedSentinel:
			rs.FuncSym = overloadedSentinel
		}
	}
	return id
}

// OverloadCount reports how many overloads sym currently has.
func (g *Globals) OverloadCount(sym ids.ResolvedSymID) int {
	n := 0
	for k := range g.overload {
		if k.sym == sym {
			n++
		}
	}
	return n
}
