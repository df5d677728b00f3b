package symbols

import "cyan/internal/ids"

// RefKind describes how a name was used at a reference site: as the callee
// of a call expression (where arity/sig disambiguates an overload set) or
// as a plain value/type reference.
type RefKind uint8

const (
	RefValue RefKind = iota
	RefCall
)

// MatchResult reports what a resolved candidate turned out to be, once
// matched against how it was referenced.
type MatchResult struct {
	Sym ids.ResolvedSymID
	// Func is valid when the match resolved to one specific overload
	// (RefCall against a non-overloaded or sig-disambiguated func sym, or
	// RefValue against a non-overloaded one).
	Func    ids.ResolvedFuncSymID
	IsFunc  bool
	Matched bool
}

// Match applies the spec §4.6 func-vs-nonfunc disambiguation rules: a call
// site must land on a VariantFunc symbol and (if overloaded) a signature
// present in its overload set; a plain value/type site accepts any variant,
// reporting the sole overload when there is exactly one.
func Match(g *Globals, sym ids.ResolvedSymID, kind RefKind, callSig ids.ResolvedFuncSigID) MatchResult {
	rs := g.Sym(sym)
	if rs == nil {
		return MatchResult{}
	}

	switch kind {
	case RefCall:
		if rs.Variant != VariantFunc {
			return MatchResult{Sym: sym}
		}
		if !rs.IsOverloaded() {
			return MatchResult{Sym: sym, Func: rs.FuncSym, IsFunc: true, Matched: true}
		}
		fn, ok := g.FuncOverload(sym, callSig)
		if !ok {
			return MatchResult{Sym: sym, IsFunc: true}
		}
		return MatchResult{Sym: sym, Func: fn, IsFunc: true, Matched: true}

	default: // RefValue
		if rs.Variant != VariantFunc {
			return MatchResult{Sym: sym, Matched: true}
		}
		if rs.IsOverloaded() {
			// A bare reference to an overloaded function group is valid
			// (e.g. passing it as a value); there is no single overload to
			// report yet, so Func stays none.
			return MatchResult{Sym: sym, IsFunc: true, Matched: true}
		}
		return MatchResult{Sym: sym, Func: rs.FuncSym, IsFunc: true, Matched: true}
	}
}
