package sema

import (
	"testing"

	"cyan/internal/ast"
	"cyan/internal/diag"
	"cyan/internal/modreg"
	"cyan/internal/names"
	"cyan/internal/source"
)

func newTestDriver() (*Driver, *diag.Bag) {
	bag := diag.NewBag()
	interner := names.NewInterner()
	reg := modreg.NewRegistry()
	loader := modreg.NewLoader(reg, nil, nil)
	d := NewDriver(interner, NullVMHost{}, bag, reg, loader)
	return d, bag
}

func TestCompareLiteralsSetsIntegerRequest(t *testing.T) {
	d, bag := newTestDriver()
	file := ast.NewFile(1, "chunk")
	one := file.Exprs.Int(source.Span{}, 1)
	two := file.Exprs.Int(source.Span{}, 2)
	cmp := file.Exprs.Compare(source.Span{}, ast.OpLt, one, two)
	file.Top = []ast.StmtID{file.Stmts.ExprStmt(source.Span{}, cmp)}

	d.BeginChunk(file, "")
	if err := d.AnalyzeChunk(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	got := file.Exprs.Get(cmp)
	if !got.SemaCanRequestIntegerOperands {
		t.Fatalf("expected 1 < 2 to set semaCanRequestIntegerOperands")
	}
}

func TestStaticVarReferencingLocalReportsCanNotUseLocal(t *testing.T) {
	d, bag := newTestDriver()
	interner := d.Names
	nameA := interner.Intern("a")
	nameB := interner.Intern("b")

	file := ast.NewFile(1, "chunk")
	zero := file.Exprs.Int(source.Span{}, 0)
	lhsA := file.Exprs.Ident(source.Span{}, nameA)
	assignA := file.Stmts.Assign(source.Span{}, lhsA, zero)

	readA := file.Exprs.Ident(source.Span{}, nameA)
	varB := file.Stmts.VarDecl(source.Span{}, nameB, readA)

	file.Top = []ast.StmtID{assignA, varB}

	d.BeginChunk(file, "")
	if err := d.AnalyzeChunk(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, item := range bag.Items() {
		if item.Code == diag.SemaCanNotUseLocal {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a sema-can-not-use-local diagnostic, got %+v", bag.Items())
	}
}

func TestCaptureInsideObjectStaticFuncIsHardError(t *testing.T) {
	d, bag := newTestDriver()
	interner := d.Names
	objName := interner.Intern("Counter")
	fnName := interner.Intern("make")
	capturedName := interner.Intern("seed")

	file := ast.NewFile(1, "chunk")

	one := file.Exprs.Int(source.Span{}, 1)
	captureStmt := file.Stmts.CaptureDecl(source.Span{}, capturedName, one, true)
	// No "self" first param: this func is an object static func, not a method.
	staticFn := file.Stmts.FuncDecl(source.Span{}, fnName, nil, []ast.StmtID{captureStmt}, false)

	objDecl := file.Stmts.ObjectDecl(source.Span{}, objName, nil, []ast.StmtID{staticFn})
	file.Top = []ast.StmtID{objDecl}

	d.BeginChunk(file, "")
	if err := d.AnalyzeChunk(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, item := range bag.Items() {
		if item.Code == diag.SemaCaptureInStaticFn {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected sema-capture-in-static-fn diagnostic, got %+v", bag.Items())
	}
}

func TestCaptureInsideObjectMethodIsAllowed(t *testing.T) {
	d, bag := newTestDriver()
	interner := d.Names
	objName := interner.Intern("Counter")
	fnName := interner.Intern("bump")
	selfName := interner.Intern("self")
	capturedName := interner.Intern("seed")

	file := ast.NewFile(1, "chunk")
	one := file.Exprs.Int(source.Span{}, 1)
	captureStmt := file.Stmts.CaptureDecl(source.Span{}, capturedName, one, true)
	method := file.Stmts.FuncDecl(source.Span{}, fnName, []ast.FuncParam{{Name: selfName}}, []ast.StmtID{captureStmt}, false)

	objDecl := file.Stmts.ObjectDecl(source.Span{}, objName, nil, []ast.StmtID{method})
	file.Top = []ast.StmtID{objDecl}

	d.BeginChunk(file, "")
	if err := d.AnalyzeChunk(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for a capture inside a method: %+v", bag.Items())
	}
}

func TestFuncDeclOverloadsByArity(t *testing.T) {
	d, bag := newTestDriver()
	interner := d.Names
	fnName := interner.Intern("make")

	file := ast.NewFile(1, "chunk")

	boolLit := file.Exprs.Bool(source.Span{}, true)
	retBool := file.Stmts.Return(source.Span{}, boolLit, true)
	oneArg := file.Stmts.FuncDecl(source.Span{}, fnName, nil, []ast.StmtID{retBool}, false)

	numLit := file.Exprs.Int(source.Span{}, 5)
	retNum := file.Stmts.Return(source.Span{}, numLit, true)
	param := ast.FuncParam{Name: interner.Intern("x")}
	twoArg := file.Stmts.FuncDecl(source.Span{}, fnName, []ast.FuncParam{param}, []ast.StmtID{retNum}, false)

	file.Top = []ast.StmtID{oneArg, twoArg}

	d.BeginChunk(file, "")
	if err := d.AnalyzeChunk(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	oneArgStmt := file.Stmts.Get(oneArg)
	twoArgStmt := file.Stmts.Get(twoArg)
	sym1 := d.chunk.syms.Get(oneArgStmt.SemaSymID).Resolved
	sym2 := d.chunk.syms.Get(twoArgStmt.SemaSymID).Resolved
	if sym1 != sym2 {
		t.Fatalf("expected both overloads to share the same ResolvedSym group")
	}
	if got := d.Globals.OverloadCount(sym1); got != 2 {
		t.Fatalf("expected 2 overloads, got %d", got)
	}
}
