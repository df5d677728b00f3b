package sema

import (
	"time"

	"cyan/internal/ast"
	"cyan/internal/block"
	"cyan/internal/diag"
	"cyan/internal/ids"
	"cyan/internal/modreg"
	"cyan/internal/names"
	"cyan/internal/symbols"
	"cyan/internal/trace"
	"cyan/internal/types"
)

// AnalyzeStmt walks one statement, annotating its sema slots and reporting
// diagnostics as needed. A non-nil error means chunk analysis must stop
// (spec §7: "other errors terminate chunk analysis"); diagnostics reported
// along the way do not themselves stop anything.
func (d *Driver) AnalyzeStmt(id ast.StmtID) error {
	s := d.chunk.file.Stmts.Get(id)
	if s == nil {
		return nil
	}

	switch s.Kind {
	case ast.SPass, ast.SBreak, ast.SContinue, ast.SAt:
		return nil

	case ast.SReturn:
		t := types.Undefined
		if s.HasExpr {
			t = d.AnalyzeExpr(s.Expr)
		}
		if n := len(d.chunk.returnTypes); n > 0 {
			d.chunk.returnTypes[n-1] = append(d.chunk.returnTypes[n-1], t)
		}
		return nil

	case ast.SExprStmt:
		if s.HasExpr {
			d.AnalyzeExpr(s.Expr)
		}
		return nil

	case ast.SOpAssign:
		return d.analyzeOpAssign(s)

	case ast.SAssign:
		rtype := d.AnalyzeExpr(s.RHS)
		d.assignVar(s.LHS, rtype, StratAssign)
		return nil

	case ast.SVarDecl:
		d.analyzeStaticVarDecl(s, ids.NoResolvedSymID, false)
		return nil

	case ast.SStaticDecl:
		d.analyzeStaticVarDecl(s, d.chunk.currentFuncSym(), true)
		return nil

	case ast.SCaptureDecl:
		rtype := types.Any
		if s.DeclHasInit {
			rtype = d.AnalyzeExpr(s.DeclInit)
		}
		ref := d.getOrLookupVar(s.DeclName, s.Span, StratCaptureAssign)
		if ref.IsLocal {
			d.chunk.blocks.AssignToLocal(ref.Var, types.ToLocalType(rtype))
		}
		return nil

	case ast.STypeAlias:
		d.analyzeTypeAlias(s)
		return nil

	case ast.STagType:
		d.analyzeTagType(s)
		return nil

	case ast.SObjectDecl:
		d.analyzeObjectDecl(s)
		return nil

	case ast.SFuncDecl:
		d.analyzeFuncDecl(s, d.chunk.currentFuncSym(), false)
		return nil

	case ast.SIf:
		return d.analyzeIf(s)

	case ast.SWhileCond:
		d.AnalyzeExpr(s.LoopCond)
		d.chunk.blocks.PushSubBlock(nil)
		d.analyzeBody(s.LoopBody)
		d.chunk.blocks.EndSubBlock()
		return nil

	case ast.SWhileInf:
		d.chunk.blocks.PushSubBlock(nil)
		d.analyzeBody(s.LoopBody)
		d.chunk.blocks.EndSubBlock()
		return nil

	case ast.SForOpt:
		return d.analyzeForOpt(s)

	case ast.SForIter:
		return d.analyzeForIter(s)

	case ast.SForRange:
		return d.analyzeForRange(s)

	case ast.SMatchStmt:
		return d.analyzeMatchStmt(s)

	case ast.SImport:
		d.analyzeImport(s)
		return nil

	case ast.SExport:
		return d.analyzeExport(s)
	}
	return nil
}

func (d *Driver) analyzeBody(body []ast.StmtID) {
	for _, s := range body {
		d.AnalyzeStmt(s)
	}
}

func (d *Driver) analyzeOpAssign(s *ast.Stmt) error {
	rtype := d.AnalyzeExpr(s.RHS)
	var newType types.Type
	switch s.AssignOp {
	case ast.OpAdd:
		if rtype.Kind == types.KindString {
			newType = types.String
		} else {
			newType = types.Number
		}
	case ast.OpAnd, ast.OpOr:
		newType = types.Any
	default:
		newType = types.Number
	}
	d.assignVar(s.LHS, newType, StratAssign)
	return nil
}

// assignVar resolves the assignment target and, for a plain local, pushes
// the new type through the block merge algebra (spec §4.4/§4.5).
func (d *Driver) assignVar(lhsID ast.ExprID, rtype types.Type, strat LookupStrategy) {
	lhs := d.chunk.file.Exprs.Get(lhsID)
	if lhs == nil {
		return
	}
	switch lhs.Kind {
	case ast.EIdent:
		ref := d.getOrLookupVar(lhs.Name, lhs.Span, strat)
		if ref.IsLocal {
			lhs.SemaVarID = ref.Var
			local := types.ToLocalType(rtype)
			d.chunk.blocks.AssignToLocal(ref.Var, local)
			d.VM.Retain(local)
		}
	case ast.EAccess, ast.EIndex:
		d.AnalyzeExpr(lhsID)
	default:
		d.report(diag.SemaBadAssignTarget, lhs.Span, "left-hand side of an assignment must be a variable, field, or index expression")
	}
}

func (d *Driver) analyzeStaticVarDecl(s *ast.Stmt, owner ids.ResolvedSymID, aliasIntoLocals bool) {
	d.chunk.inStaticInit = true
	rtype := types.Any
	if s.DeclHasInit {
		rtype = d.AnalyzeExpr(s.DeclInit)
	}
	d.chunk.inStaticInit = false

	resolvedSym, created := d.Globals.GetOrCreateSym(owner, s.DeclName, symbols.VariantVariable)
	if !created {
		d.reportNote(diag.SemaDuplicateTopLevel, s.Span, "duplicate declaration of "+d.Names.MustLookup(s.DeclName), s.Span, "previous declaration")
	}
	local := types.ToLocalType(rtype)
	d.VM.SetVarSym(resolvedSym, local)

	localSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, s.DeclName, ids.NoLocalFuncSigID)
	if sym := d.chunk.syms.Get(localSym); sym != nil {
		sym.Resolved = resolvedSym
	}
	s.SemaSymID = localSym

	if aliasIntoLocals {
		if blk := d.chunk.blocks.Current(); blk != nil {
			id := d.chunk.vars.New(block.LocalVar{IsStaticAlias: true, HasCaptureOrStaticModifier: true, Alias: localSym, VType: local})
			blk.DeclareLocal(s.DeclName, id)
		}
	}
}

func (d *Driver) analyzeTypeAlias(s *ast.Stmt) {
	rhs := d.chunk.file.Exprs.Get(s.AliasRHS)
	d.AnalyzeExpr(s.AliasRHS)
	if rhs == nil || !rhs.SemaSymID.IsValid() {
		d.report(diag.SemaBadTypeAliasRHS, s.Span, "type alias right-hand side must name a declared type")
		return
	}
	target := d.resolveRootSym(rhs.SemaSymID, d.localSymName(rhs.SemaSymID), rhs.Span)
	if !target.IsValid() {
		return
	}
	localSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, s.AliasName, ids.NoLocalFuncSigID)
	d.chunk.symRefs.Bind(localSym, symbols.SymRef{Kind: symbols.SymRefSym, Sym: target})
	s.SemaSymID = localSym
}

func (d *Driver) analyzeTagType(s *ast.Stmt) {
	tagType := d.VM.EnsureTagType(s.TagTypeName)
	resolvedSym, created := d.Globals.GetOrCreateSym(ids.NoResolvedSymID, s.TagTypeName, symbols.VariantBuiltinType)
	if !created {
		d.report(diag.SemaDuplicateType, s.Span, "duplicate tag type declaration: "+d.Names.MustLookup(s.TagTypeName))
	}
	for i, member := range s.TagMembers {
		litSym := d.VM.EnsureTagLitSym(tagType, member)
		d.VM.SetTagLitSym(litSym, tagType, i)
		d.Globals.GetOrCreateSym(resolvedSym, member, symbols.VariantVariable)
	}
	localSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, s.TagTypeName, ids.NoLocalFuncSigID)
	if sym := d.chunk.syms.Get(localSym); sym != nil {
		sym.Resolved = resolvedSym
	}
	s.SemaSymID = localSym
}

func (d *Driver) analyzeObjectDecl(s *ast.Stmt) {
	objType := d.VM.EnsureObjectType(s.ObjectName)
	resolvedSym, created := d.Globals.GetOrCreateSym(ids.NoResolvedSymID, s.ObjectName, symbols.VariantObject)
	if !created {
		d.report(diag.SemaDuplicateType, s.Span, "duplicate object type declaration: "+d.Names.MustLookup(s.ObjectName))
	}
	for i, field := range s.ObjectFields {
		fieldSym := d.VM.EnsureFieldSym(objType, field)
		d.VM.AddFieldSym(objType, fieldSym, i)
	}
	for _, fnID := range s.ObjectFuncs {
		fn := d.chunk.file.Stmts.Get(fnID)
		if fn == nil {
			continue
		}
		isMethod := len(fn.FuncParams) > 0 && d.Names.MustLookup(fn.FuncParams[0].Name) == "self"
		d.analyzeFuncDecl(fn, resolvedSym, !isMethod)
	}
	localSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, s.ObjectName, ids.NoLocalFuncSigID)
	if sym := d.chunk.syms.Get(localSym); sym != nil {
		sym.Resolved = resolvedSym
	}
	s.SemaSymID = localSym
}

// analyzeFuncDecl implements spec §4.3 for both plain func decls and
// func-decl-with-initializer: intern the (possibly untyped) signature,
// push a function block, walk the body, infer the return type, then
// register the overload.
func (d *Driver) analyzeFuncDecl(s *ast.Stmt, owner ids.ResolvedSymID, isStatic bool) {
	anyLocal, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, d.anyName, ids.NoLocalFuncSigID)
	d.chunk.syms.Touch(anyLocal)

	elems := make([]ids.SymID, len(s.FuncParams)+1)
	for i, p := range s.FuncParams {
		if p.HasType {
			paramSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, p.Type, ids.NoLocalFuncSigID)
			d.chunk.syms.Touch(paramSym)
			elems[i] = paramSym
		} else {
			elems[i] = anyLocal
		}
	}
	if s.FuncHasRetType {
		retSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, s.FuncRetType, ids.NoLocalFuncSigID)
		d.chunk.syms.Touch(retSym)
		elems[len(elems)-1] = retSym
	} else {
		elems[len(elems)-1] = anyLocal
	}
	localSig := d.chunk.localSigs.Intern(elems)

	anyResolved := d.Globals.BuiltinAny()
	resolvedElems := make([]ids.ResolvedSymID, len(elems))
	allResolved := true
	for i, el := range elems {
		r := d.resolveRootSym(el, d.localSymName(el), s.Span)
		if !r.IsValid() {
			allResolved = false
		}
		resolvedElems[i] = r
	}
	var rsig ids.ResolvedFuncSigID
	if allResolved {
		rsig = d.ResolvedSigs.Intern(resolvedElems, anyResolved)
	} else {
		d.report(diag.SemaUnresolvedParamType, s.Span, "cannot resolve a parameter type for "+d.Names.MustLookup(s.FuncName))
		rsig = d.ResolvedSigs.Intern(untypedTuple(len(elems), anyResolved), anyResolved)
	}

	resolvedSym, _ := d.Globals.GetOrCreateSym(owner, s.FuncName, symbols.VariantFunc)
	if _, dup := d.Globals.FuncOverload(resolvedSym, rsig); dup {
		d.report(diag.SemaOverloadCollision, s.Span, "an overload with this arity/signature already exists for "+d.Names.MustLookup(s.FuncName))
	}

	d.chunk.blocks.PushBlock()
	d.chunk.funcSyms = append(d.chunk.funcSyms, resolvedSym)
	d.chunk.staticFn = append(d.chunk.staticFn, isStatic)
	d.chunk.returnTypes = append(d.chunk.returnTypes, nil)

	blk := d.chunk.blocks.Current()
	for _, p := range s.FuncParams {
		v := d.chunk.vars.New(block.LocalVar{IsParam: true, VType: types.Any})
		if blk != nil {
			blk.DeclareLocal(p.Name, v)
		}
	}
	if s.FuncHasInit && s.FuncInitializer.IsValid() {
		d.AnalyzeExpr(s.FuncInitializer)
	}
	d.analyzeBody(s.FuncBody)

	seen := d.chunk.returnTypes[len(d.chunk.returnTypes)-1]
	retType := types.Undefined
	for i, t := range seen {
		if i == 0 {
			retType = t
		} else {
			retType = types.CommonTag(retType, t)
		}
	}

	d.chunk.returnTypes = d.chunk.returnTypes[:len(d.chunk.returnTypes)-1]
	d.chunk.staticFn = d.chunk.staticFn[:len(d.chunk.staticFn)-1]
	d.chunk.funcSyms = d.chunk.funcSyms[:len(d.chunk.funcSyms)-1]
	d.chunk.blocks.EndBlock()

	fn := d.Globals.AddOverload(resolvedSym, rsig, symbols.ResolvedFuncSym{
		Chunk:                d.chunk.file.ID,
		RFuncSigID:           rsig,
		ReturnType:           retType,
		HasStaticInitializer: s.FuncHasInit,
	})
	d.VM.SetFuncSym(fn, rsig, retType)

	localSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, s.FuncName, localSig)
	if sym := d.chunk.syms.Get(localSym); sym != nil {
		sym.Resolved = resolvedSym
	}
	s.SemaSymID = localSym

	if s.FuncExported {
		mod := d.ensureModule()
		mod.Put(s.FuncName, rsig, modreg.Member{Kind: modreg.MemberUserFunc, Sym: resolvedSym, Func: fn})
	}
}

func (d *Driver) analyzeIf(s *ast.Stmt) error {
	d.AnalyzeExpr(s.IfCond)
	d.chunk.blocks.PushSubBlock(nil)
	d.analyzeBody(s.IfThenBody)
	d.chunk.blocks.EndSubBlock()

	for _, elif := range s.IfElifs {
		d.AnalyzeExpr(elif.Cond)
		d.chunk.blocks.PushSubBlock(nil)
		d.analyzeBody(elif.Body)
		d.chunk.blocks.EndSubBlock()
	}

	if s.IfHasElse {
		d.chunk.blocks.PushSubBlock(nil)
		d.analyzeBody(s.IfElseBody)
		d.chunk.blocks.EndSubBlock()
	}
	return nil
}

func (d *Driver) analyzeForOpt(s *ast.Stmt) error {
	blk := d.chunk.blocks.Current()
	var iterVars []ids.LocalVarID
	if s.ForOptHasAs {
		v := d.chunk.vars.New(block.LocalVar{VType: types.Any})
		if blk != nil {
			blk.DeclareLocal(s.ForOptAs, v)
		}
		iterVars = append(iterVars, v)
	}
	d.AnalyzeExpr(s.ForOptCond)
	d.chunk.blocks.PushSubBlock(iterVars)
	d.analyzeBody(s.LoopBody)
	d.chunk.blocks.EndIterSubBlock()
	return nil
}

func (d *Driver) analyzeForIter(s *ast.Stmt) error {
	d.AnalyzeExpr(s.ForIterSource)
	blk := d.chunk.blocks.Current()
	valueVar := d.chunk.vars.New(block.LocalVar{VType: types.Any})
	if blk != nil {
		blk.DeclareLocal(s.ForIterValue, valueVar)
	}
	iterVars := []ids.LocalVarID{valueVar}
	if s.ForIterHasKey {
		keyVar := d.chunk.vars.New(block.LocalVar{VType: types.Any})
		if blk != nil {
			blk.DeclareLocal(s.ForIterKey, keyVar)
		}
		iterVars = append(iterVars, keyVar)
	}
	d.chunk.blocks.PushSubBlock(iterVars)
	d.analyzeBody(s.LoopBody)
	d.chunk.blocks.EndIterSubBlock()
	return nil
}

func (d *Driver) analyzeForRange(s *ast.Stmt) error {
	d.AnalyzeExpr(s.ForRangeStart)
	d.AnalyzeExpr(s.ForRangeEnd)
	blk := d.chunk.blocks.Current()
	v := d.chunk.vars.New(block.LocalVar{VType: types.Number})
	if blk != nil {
		blk.DeclareLocal(s.ForRangeVar, v)
	}
	d.chunk.blocks.PushSubBlock([]ids.LocalVarID{v})
	d.analyzeBody(s.LoopBody)
	d.chunk.blocks.EndIterSubBlock()
	return nil
}

func (d *Driver) analyzeMatchStmt(s *ast.Stmt) error {
	d.AnalyzeExpr(s.MatchScrutinee)
	for _, c := range s.MatchCases {
		for _, cond := range c.Conds {
			d.AnalyzeExpr(cond)
		}
		d.chunk.blocks.PushSubBlock(nil)
		d.analyzeBody(c.Body)
		d.chunk.blocks.EndSubBlock()
	}
	return nil
}

func (d *Driver) analyzeImport(s *ast.Stmt) {
	d.Tracer.Emit(trace.Event{Time: time.Now(), Scope: trace.ScopeImport, Name: "resolve", Note: s.ImportSpec})
	mod, err := d.Loader.GetOrLoadModule(s.ImportSpec, d.chunk.dir, d.ChunkLoader)
	if err != nil {
		if err == modreg.ErrImportPathNotFound {
			d.report(diag.SemaImportPathNotFound, s.Span, "import path does not exist: "+s.ImportSpec)
		} else {
			d.report(diag.SemaImportUnsupported, s.Span, err.Error())
		}
		return
	}

	if s.ImportName.IsValid() {
		localSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, s.ImportName, ids.NoLocalFuncSigID)
		d.chunk.symRefs.Bind(localSym, symbols.SymRef{Kind: symbols.SymRefModule, Module: mod.ID})
		s.SemaSymID = localSym
		return
	}

	// import-all: copy each member published under its bare name (no
	// overload signature) into this chunk's symRef table (spec §4.7). A
	// member published only under an overload-signature key, such as an
	// exported user func, is not copied.
	for _, name := range mod.Names() {
		member, ok := mod.Get(name, ids.NoResolvedFuncSigID)
		if !ok {
			continue
		}
		memberSym, _ := d.chunk.syms.GetOrCreate(ids.NoSymID, name, ids.NoLocalFuncSigID)
		d.chunk.symRefs.Bind(memberSym, symbols.SymRef{Kind: symbols.SymRefModuleMember, Module: mod.ID, Member: member.Sym})
	}
}

func (d *Driver) analyzeExport(s *ast.Stmt) error {
	if err := d.AnalyzeStmt(s.ExportInner); err != nil {
		return err
	}
	inner := d.chunk.file.Stmts.Get(s.ExportInner)
	if inner == nil {
		return nil
	}

	name := declNameOf(inner)
	if !name.IsValid() || !inner.SemaSymID.IsValid() {
		d.report(diag.SemaBadExportSubject, s.Span, "this statement cannot be exported")
		return nil
	}
	localSym := d.chunk.syms.Get(inner.SemaSymID)
	if localSym == nil || !localSym.Resolved.IsValid() {
		return nil
	}
	if rs := d.Globals.Sym(localSym.Resolved); rs != nil {
		rs.Exported = true
	}

	mod := d.ensureModule()
	mod.Put(name, ids.NoResolvedFuncSigID, modreg.Member{Kind: exportMemberKind(inner.Kind), Sym: localSym.Resolved})
	return nil
}

func declNameOf(s *ast.Stmt) names.NameId {
	switch s.Kind {
	case ast.SFuncDecl:
		return s.FuncName
	case ast.SVarDecl, ast.SStaticDecl, ast.SCaptureDecl:
		return s.DeclName
	case ast.SObjectDecl:
		return s.ObjectName
	case ast.STypeAlias:
		return s.AliasName
	case ast.STagType:
		return s.TagTypeName
	}
	return names.NoNameId
}

func exportMemberKind(k ast.StmtKind) modreg.MemberKind {
	switch k {
	case ast.SFuncDecl:
		return modreg.MemberUserFunc
	case ast.SVarDecl, ast.SStaticDecl:
		return modreg.MemberUserVar
	case ast.SObjectDecl:
		return modreg.MemberUserObject
	default:
		return modreg.MemberObject
	}
}
