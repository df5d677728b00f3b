package sema

import (
	"fortio.org/safecast"

	"cyan/internal/ast"
	"cyan/internal/block"
	"cyan/internal/diag"
	"cyan/internal/ids"
	"cyan/internal/names"
	"cyan/internal/source"
	"cyan/internal/symbols"
	"cyan/internal/types"
)

// fitsI32 reports whether v (an unsigned literal value as parsed) narrows to
// a signed 32-bit integer without loss, i.e. may be requested as an int by
// an integer-sensitive operator (spec §3's canRequestInteger payload).
func fitsI32(v uint64) bool {
	_, err := safecast.Conv[int32](v)
	return err == nil
}

// AnalyzeExpr infers and returns the coarse Type of the expression
// identified by id, annotating its node's sema slots along the way (spec
// §4, per-kind rules).
func (d *Driver) AnalyzeExpr(id ast.ExprID) types.Type {
	e := d.chunk.file.Exprs.Get(id)
	if e == nil {
		return types.Any
	}

	switch e.Kind {
	case ast.EIdent:
		return d.analyzeIdent(e)

	case ast.ELitNumber:
		if e.Number.IsFloat {
			return types.Number
		}
		if fitsI32(e.Number.IntValue) {
			return types.NumberOrRequestInteger()
		}
		// Non-decimal/overflowing integer literals beyond i32: spec §9
		// leaves the exact policy an open question; we fall back to plain
		// number rather than guessing an int-request that codegen cannot
		// actually honor.
		return types.Number

	case ast.ELitString:
		return types.String

	case ast.ELitBool:
		return types.Boolean

	case ast.ETemplate:
		for _, sub := range e.TemplateExprs {
			d.AnalyzeExpr(sub)
		}
		return types.String

	case ast.ETagInit:
		tagType := d.VM.EnsureTagType(e.Name)
		sym := d.VM.EnsureTagLitSym(tagType, e.TagMember)
		d.VM.SetTagLitSym(sym, tagType, 0)
		return types.Tag(byte(tagType))

	case ast.EBinary:
		return d.analyzeBinary(e)

	case ast.ECompare:
		return d.analyzeCompare(e)

	case ast.EUnary:
		return d.analyzeUnary(e)

	case ast.ECall:
		return d.analyzeCall(e)

	case ast.EAccess:
		return d.analyzeAccess(e)

	case ast.EIndex:
		d.AnalyzeExpr(e.Base)
		d.AnalyzeExpr(e.Key)
		return types.Any

	case ast.ELambda:
		return d.analyzeLambda(e)

	case ast.EMatch:
		return d.analyzeMatchExpr(e)

	case ast.EIfExpr:
		d.AnalyzeExpr(e.IfCond)
		t1 := d.AnalyzeExpr(e.IfThen)
		t2 := d.AnalyzeExpr(e.IfElse)
		return types.CommonTag(t1, t2)

	case ast.EObjectInit:
		for _, f := range e.ObjectFields {
			d.AnalyzeExpr(f.Value)
		}
		return types.Any

	case ast.EOpaque:
		// coyield / coresume / try / compt and anything else not given its
		// own rule: always any (spec §4, "unknown-but-valid forms").
		return types.Any
	}
	return types.Any
}

func (d *Driver) analyzeIdent(e *ast.Expr) types.Type {
	ref := d.getOrLookupVar(e.Name, e.Span, StratRead)
	if ref.IsLocal {
		e.SemaVarID = ref.Var
		if lv := d.chunk.vars.Get(ref.Var); lv != nil {
			return lv.VType
		}
		return types.Any
	}
	if ref.IsSym {
		e.SemaSymID = ref.Sym
		// The true type of a resolved global is only known once its own
		// declaration has been analyzed; until then (or for natives/
		// builtins with no declared type) a bare reference reads as any.
		return types.Any
	}
	return types.Any
}

func (d *Driver) analyzeBinary(e *ast.Expr) types.Type {
	lt := d.AnalyzeExpr(e.Left)
	rt := d.AnalyzeExpr(e.Right)
	switch e.Op {
	case ast.OpAdd:
		if lt.Kind == types.KindString {
			return types.String
		}
		return types.Number
	case ast.OpAnd, ast.OpOr:
		return types.CommonTag(lt, rt)
	default: // Sub/Mul/Div/Mod/BitAnd/BitOr/BitXor/Shl/Shr
		return types.Number
	}
}

func (d *Driver) analyzeCompare(e *ast.Expr) types.Type {
	lt := d.AnalyzeExpr(e.Left)
	rt := d.AnalyzeExpr(e.Right)
	if e.Op == ast.OpLt && types.IsIntegerOperand(lt) && types.IsIntegerOperand(rt) {
		e.SemaCanRequestIntegerOperands = true
	}
	return types.Boolean
}

func (d *Driver) analyzeUnary(e *ast.Expr) types.Type {
	d.AnalyzeExpr(e.Left)
	switch e.Op {
	case ast.OpNeg, ast.OpBNot:
		return types.Number
	case ast.OpNot:
		return types.Boolean
	}
	return types.Any
}

func (d *Driver) analyzeMatchExpr(e *ast.Expr) types.Type {
	d.AnalyzeExpr(e.Scrutinee)
	var result types.Type
	first := true
	for _, c := range e.Cases {
		for _, cond := range c.Conds {
			d.AnalyzeExpr(cond)
		}
		for _, s := range c.Body {
			d.AnalyzeStmt(s)
		}
		if c.BodyExpr.IsValid() {
			t := d.AnalyzeExpr(c.BodyExpr)
			if first {
				result, first = t, false
			} else {
				result = types.CommonTag(result, t)
			}
		}
	}
	if first {
		return types.Any
	}
	return result
}

func (d *Driver) analyzeLambda(e *ast.Expr) types.Type {
	d.chunk.blocks.PushBlock()
	d.chunk.funcSyms = append(d.chunk.funcSyms, ids.NoResolvedSymID)
	d.chunk.staticFn = append(d.chunk.staticFn, false)

	blk := d.chunk.blocks.Current()
	for _, p := range e.LambdaParams {
		v := d.chunk.vars.New(block.LocalVar{IsParam: true, VType: types.Any})
		if blk != nil {
			blk.DeclareLocal(p, v)
		}
	}
	e.RFuncSigID = d.ResolvedSigs.Intern(untypedTuple(len(e.LambdaParams)+1, d.Globals.BuiltinAny()), d.Globals.BuiltinAny())

	if e.LambdaExpr.IsValid() {
		d.AnalyzeExpr(e.LambdaExpr)
	} else {
		for _, s := range e.LambdaBody {
			d.AnalyzeStmt(s)
		}
	}

	d.chunk.funcSyms = d.chunk.funcSyms[:len(d.chunk.funcSyms)-1]
	d.chunk.staticFn = d.chunk.staticFn[:len(d.chunk.staticFn)-1]
	d.chunk.blocks.EndBlock()
	// A lambda value itself carries no tag in the closed TypeTag set; it is
	// always any to its surroundings (spec §4, unknown-but-valid forms).
	return types.Any
}

func untypedTuple(n int, anySym ids.ResolvedSymID) []ids.ResolvedSymID {
	out := make([]ids.ResolvedSymID, n)
	for i := range out {
		out[i] = anySym
	}
	return out
}

func (d *Driver) analyzeCall(e *ast.Expr) types.Type {
	if e.HasNamedArgs {
		d.report(diag.SemaNamedArgsUnsupported, e.Span, "named arguments are not supported in call expressions")
	}
	for _, a := range e.Args {
		d.AnalyzeExpr(a)
	}
	arity := len(e.Args)

	callee := d.chunk.file.Exprs.Get(e.Callee)
	if callee == nil {
		return types.Any
	}

	switch callee.Kind {
	case ast.EIdent:
		ref := d.getOrLookupVar(callee.Name, callee.Span, StratRead)
		if ref.IsLocal {
			callee.SemaVarID = ref.Var
			return types.Any
		}
		if ref.IsSym {
			callee.SemaSymID = ref.Sym
			return d.resolveCallReturnType(ref.Sym, callee.Name, arity, e.Span)
		}
		return types.Any

	case ast.EAccess:
		d.AnalyzeExpr(e.Callee)
		if callee.SemaSymID.IsValid() {
			name := d.localSymName(callee.SemaSymID)
			return d.resolveCallReturnType(callee.SemaSymID, name, arity, e.Span)
		}
		return types.Any

	default:
		d.AnalyzeExpr(e.Callee)
		return types.Any
	}
}

func (d *Driver) resolveCallReturnType(localSym ids.SymID, name names.NameId, arity int, span source.Span) types.Type {
	rsym := d.resolveRootSym(localSym, name, span)
	if !rsym.IsValid() {
		return types.Any
	}
	anySym := d.Globals.BuiltinAny()
	sig := d.ResolvedSigs.Intern(untypedTuple(arity+1, anySym), anySym)

	m := symbols.Match(d.Globals, rsym, symbols.RefCall, sig)
	if !m.Matched {
		if m.IsFunc {
			d.report(diag.SemaAmbiguousSymbol, span, "no overload of this call's arity was found")
		} else {
			d.report(diag.SemaNotAFunctionRef, span, "this value is not callable")
		}
		return types.Any
	}
	if fn := d.Globals.Func(m.Func); fn != nil {
		return fn.ReturnType
	}
	return types.Any
}

func (d *Driver) analyzeAccess(e *ast.Expr) types.Type {
	base := d.chunk.file.Exprs.Get(e.Base)
	if base == nil {
		return types.Any
	}
	d.AnalyzeExpr(e.Base)

	if !base.SemaSymID.IsValid() {
		// Base is a runtime value (e.g. an object instance), not part of a
		// resolvable sym chain; its field type isn't modeled (Non-goal:
		// full static typing).
		return types.Any
	}
	parentResolved := d.resolveRootSym(base.SemaSymID, d.localSymName(base.SemaSymID), base.Span)
	if !parentResolved.IsValid() {
		return types.Any
	}

	sym, _ := d.chunk.syms.GetOrCreate(base.SemaSymID, e.Name, ids.NoLocalFuncSigID)
	d.chunk.syms.Touch(sym)
	if s := d.chunk.syms.Get(sym); s != nil {
		if resolved, ok := d.Globals.Lookup(parentResolved, e.Name); ok {
			s.Resolved = resolved
		}
	}
	e.SemaSymID = sym
	return types.Any
}

func (d *Driver) localSymName(sym ids.SymID) names.NameId {
	if s := d.chunk.syms.Get(sym); s != nil {
		return s.Name
	}
	return names.NoNameId
}

// resolveRootSym resolves a chunk-root local Sym (one with no parent) to
// its process-wide ResolvedSym, memoizing the result on the Sym itself.
// Resolution checks, in order: an already-cached result, an already
// globally-registered root symbol, a type-alias or import-all binding
// recorded in symRefs, then the builtin "any" type (spec §4.6).
func (d *Driver) resolveRootSym(localSym ids.SymID, name names.NameId, span source.Span) ids.ResolvedSymID {
	s := d.chunk.syms.Get(localSym)
	if s == nil {
		return ids.NoResolvedSymID
	}
	if s.Resolved.IsValid() {
		return s.Resolved
	}

	if resolved, ok := d.Globals.Lookup(ids.NoResolvedSymID, name); ok {
		s.Resolved = resolved
		return resolved
	}

	if ref, ok := d.chunk.symRefs.Lookup(localSym); ok {
		switch ref.Kind {
		case symbols.SymRefSym:
			s.Resolved = ref.Sym
			return ref.Sym
		case symbols.SymRefModuleMember:
			s.Resolved = ref.Member
			return ref.Member
		}
	}

	if name == d.anyName {
		s.Resolved = d.Globals.BuiltinAny()
		return s.Resolved
	}

	d.report(diag.SemaUnresolvedSymbol, span, "unresolved symbol: "+d.Names.MustLookup(name))
	return ids.NoResolvedSymID
}
