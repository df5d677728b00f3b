package sema

import (
	"cyan/internal/block"
	"cyan/internal/diag"
	"cyan/internal/ids"
	"cyan/internal/names"
	"cyan/internal/source"
	"cyan/internal/symbols"
)

// LookupStrategy selects how getOrLookupVar treats a name reference (spec
// §4.5): a plain read, a plain assignment, or an assignment carrying an
// explicit `capture`/`static` modifier.
type LookupStrategy uint8

const (
	StratRead LookupStrategy = iota
	StratAssign
	StratCaptureAssign
	StratStaticAssign
)

// RefResult is the outcome of resolving a name reference: either a local
// variable slot, or a chunk-local Sym that the resolution pass will later
// tie to a ResolvedSym.
type RefResult struct {
	IsLocal bool
	Var     ids.LocalVarID
	IsSym   bool
	Sym     ids.SymID
}

// getOrLookupVar covers the present/absent x
// read/assign/captureAssign/staticAssign cases of spec §4.5, looking only
// at locals of the current block. A plain read of a name with no local
// there falls back to the chunk's root Sym table, to be resolved later
// against globals/imports/builtins; enclosing blocks are not searched, so a
// read never creates a captured local. A plain assign with no existing
// local implicitly declares one (this is a scripting-language chunk, not
// one requiring prior declaration). A capture assign with no existing local
// declares a new captured, boxed local that is not linked to any local of
// an enclosing block. The
// "upgrade a plain local to captured/static on first explicit modifier"
// case is deliberately left unsupported per spec §9's Open Question: it is
// reported rather than silently promoted.
func (d *Driver) getOrLookupVar(name names.NameId, span source.Span, strat LookupStrategy) RefResult {
	blk := d.chunk.blocks.Current()
	var existing ids.LocalVarID
	var present bool
	if blk != nil {
		existing, present = blk.LookupLocal(name)
	}

	switch strat {
	case StratRead:
		if present {
			if d.chunk.inStaticInit {
				d.report(diag.SemaCanNotUseLocal, span, "local variables cannot be read inside a static variable's initializer")
				return RefResult{}
			}
			return RefResult{IsLocal: true, Var: existing}
		}
		sym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, name, ids.NoLocalFuncSigID)
		d.chunk.syms.Touch(sym)
		return RefResult{IsSym: true, Sym: sym}

	case StratAssign:
		if present {
			if lv := d.chunk.vars.Get(existing); lv != nil && (lv.IsCaptured || lv.IsStaticAlias) {
				d.report(diag.SemaAssignNeedsModifier, span, "this variable was declared with capture/static and must keep using that modifier")
			}
			return RefResult{IsLocal: true, Var: existing}
		}
		id := d.chunk.vars.New(block.LocalVar{})
		if blk != nil {
			blk.DeclareLocal(name, id)
		}
		return RefResult{IsLocal: true, Var: id}

	case StratCaptureAssign:
		if d.chunk.currentIsStaticFunc() {
			d.report(diag.SemaCaptureInStaticFn, span, "a static function cannot capture an enclosing variable")
			return RefResult{}
		}
		if present {
			if lv := d.chunk.vars.Get(existing); lv != nil && !lv.IsCaptured {
				d.report(diag.SemaAssignNeedsModifier, span, "this variable was declared without capture and cannot be upgraded after the fact")
			}
			return RefResult{IsLocal: true, Var: existing}
		}
		id := d.chunk.vars.New(block.LocalVar{IsCaptured: true, IsBoxed: true, HasCaptureOrStaticModifier: true})
		if blk != nil {
			blk.DeclareLocal(name, id)
		}
		return RefResult{IsLocal: true, Var: id}

	case StratStaticAssign:
		if present {
			if lv := d.chunk.vars.Get(existing); lv != nil && !lv.IsStaticAlias {
				d.report(diag.SemaAssignNeedsModifier, span, "this variable was declared without static and cannot be upgraded after the fact")
			}
			return RefResult{IsLocal: true, Var: existing}
		}
		owner := d.chunk.currentFuncSym()
		resolvedSym, _ := d.Globals.GetOrCreateSym(owner, name, symbols.VariantVariable)
		localSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, name, ids.NoLocalFuncSigID)
		d.chunk.syms.Touch(localSym)
		if s := d.chunk.syms.Get(localSym); s != nil {
			s.Resolved = resolvedSym
		}
		id := d.chunk.vars.New(block.LocalVar{IsStaticAlias: true, HasCaptureOrStaticModifier: true, Alias: localSym})
		if blk != nil {
			blk.DeclareLocal(name, id)
		}
		return RefResult{IsLocal: true, Var: id}
	}
	return RefResult{}
}
