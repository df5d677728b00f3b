package ast

import (
	"cyan/internal/names"
	"cyan/internal/source"
)

// The constructors below are thin sugar over Exprs.New/Stmts.New, used by
// tests (and would be used by the parser) to build trees without spelling
// out every Expr/Stmt field by hand.

func (e *Exprs) Ident(span source.Span, name names.NameId) ExprID {
	return e.New(Expr{Kind: EIdent, Span: span, Name: name})
}

func (e *Exprs) Int(span source.Span, v uint64) ExprID {
	return e.New(Expr{Kind: ELitNumber, Span: span, Number: NumberLit{Base: 10, IntValue: v}})
}

func (e *Exprs) Float(span source.Span, v float64) ExprID {
	return e.New(Expr{Kind: ELitNumber, Span: span, Number: NumberLit{Base: 10, IsFloat: true, FloatVal: v}})
}

func (e *Exprs) Str(span source.Span, s string) ExprID {
	return e.New(Expr{Kind: ELitString, Span: span, Str: s})
}

func (e *Exprs) Bool(span source.Span, v bool) ExprID {
	return e.New(Expr{Kind: ELitBool, Span: span, Bool: v})
}

func (e *Exprs) Binary(span source.Span, op Operator, l, r ExprID) ExprID {
	return e.New(Expr{Kind: EBinary, Span: span, Op: op, Left: l, Right: r})
}

func (e *Exprs) Compare(span source.Span, op Operator, l, r ExprID) ExprID {
	return e.New(Expr{Kind: ECompare, Span: span, Op: op, Left: l, Right: r})
}

func (e *Exprs) Unary(span source.Span, op Operator, operand ExprID) ExprID {
	return e.New(Expr{Kind: EUnary, Span: span, Op: op, Left: operand})
}

func (e *Exprs) Access(span source.Span, base ExprID, name names.NameId) ExprID {
	return e.New(Expr{Kind: EAccess, Span: span, Base: base, Name: name})
}

func (e *Exprs) Index(span source.Span, base, key ExprID) ExprID {
	return e.New(Expr{Kind: EIndex, Span: span, Base: base, Key: key})
}

func (e *Exprs) Call(span source.Span, callee ExprID, args []ExprID, namedArgs bool) ExprID {
	return e.New(Expr{Kind: ECall, Span: span, Callee: callee, Args: args, HasNamedArgs: namedArgs})
}

func (e *Exprs) TagInit(span source.Span, typeName, member names.NameId) ExprID {
	return e.New(Expr{Kind: ETagInit, Span: span, Name: typeName, TagMember: member})
}

func (e *Exprs) Lambda(span source.Span, params []names.NameId, body ExprID) ExprID {
	return e.New(Expr{Kind: ELambda, Span: span, LambdaParams: params, LambdaExpr: body})
}

func (e *Exprs) Opaque(span source.Span) ExprID {
	return e.New(Expr{Kind: EOpaque, Span: span})
}

func (s *Stmts) ExprStmt(span source.Span, expr ExprID) StmtID {
	return s.New(Stmt{Kind: SExprStmt, Span: span, Expr: expr, HasExpr: true})
}

func (s *Stmts) Pass(span source.Span) StmtID { return s.New(Stmt{Kind: SPass, Span: span}) }

func (s *Stmts) Return(span source.Span, expr ExprID, has bool) StmtID {
	return s.New(Stmt{Kind: SReturn, Span: span, Expr: expr, HasExpr: has})
}

func (s *Stmts) Assign(span source.Span, lhs, rhs ExprID) StmtID {
	return s.New(Stmt{Kind: SAssign, Span: span, LHS: lhs, RHS: rhs})
}

func (s *Stmts) OpAssign(span source.Span, op Operator, lhs, rhs ExprID) StmtID {
	return s.New(Stmt{Kind: SOpAssign, Span: span, AssignOp: op, LHS: lhs, RHS: rhs})
}

func (s *Stmts) VarDecl(span source.Span, name names.NameId, init ExprID) StmtID {
	return s.New(Stmt{Kind: SVarDecl, Span: span, DeclName: name, DeclInit: init, DeclHasInit: true})
}

func (s *Stmts) CaptureDecl(span source.Span, name names.NameId, init ExprID, hasInit bool) StmtID {
	return s.New(Stmt{Kind: SCaptureDecl, Span: span, DeclName: name, DeclInit: init, DeclHasInit: hasInit})
}

func (s *Stmts) StaticDecl(span source.Span, name names.NameId, init ExprID) StmtID {
	return s.New(Stmt{Kind: SStaticDecl, Span: span, DeclName: name, DeclInit: init, DeclHasInit: true})
}

func (s *Stmts) TypeAlias(span source.Span, name names.NameId, rhs ExprID) StmtID {
	return s.New(Stmt{Kind: STypeAlias, Span: span, AliasName: name, AliasRHS: rhs})
}

func (s *Stmts) TagType(span source.Span, name names.NameId, members []names.NameId) StmtID {
	return s.New(Stmt{Kind: STagType, Span: span, TagTypeName: name, TagMembers: members})
}

func (s *Stmts) ObjectDecl(span source.Span, name names.NameId, fields []names.NameId, funcs []StmtID) StmtID {
	return s.New(Stmt{Kind: SObjectDecl, Span: span, ObjectName: name, ObjectFields: fields, ObjectFuncs: funcs})
}

func (s *Stmts) FuncDecl(span source.Span, name names.NameId, params []FuncParam, body []StmtID, exported bool) StmtID {
	return s.New(Stmt{Kind: SFuncDecl, Span: span, FuncName: name, FuncParams: params, FuncBody: body, FuncExported: exported})
}

func (s *Stmts) If(span source.Span, cond ExprID, thenBody []StmtID, elifs []ElifClause, elseBody []StmtID, hasElse bool) StmtID {
	return s.New(Stmt{Kind: SIf, Span: span, IfCond: cond, IfThenBody: thenBody, IfElifs: elifs, IfElseBody: elseBody, IfHasElse: hasElse})
}

func (s *Stmts) WhileCond(span source.Span, cond ExprID, body []StmtID) StmtID {
	return s.New(Stmt{Kind: SWhileCond, Span: span, LoopCond: cond, LoopBody: body})
}

func (s *Stmts) WhileInf(span source.Span, body []StmtID) StmtID {
	return s.New(Stmt{Kind: SWhileInf, Span: span, LoopBody: body})
}

func (s *Stmts) ForIter(span source.Span, value, key names.NameId, hasKey bool, iterable ExprID, body []StmtID) StmtID {
	return s.New(Stmt{Kind: SForIter, Span: span, ForIterValue: value, ForIterKey: key, ForIterHasKey: hasKey, ForIterSource: iterable, LoopBody: body})
}

func (s *Stmts) ForRange(span source.Span, v names.NameId, start, end ExprID, body []StmtID) StmtID {
	return s.New(Stmt{Kind: SForRange, Span: span, ForRangeVar: v, ForRangeStart: start, ForRangeEnd: end, LoopBody: body})
}

func (s *Stmts) Import(span source.Span, spec string, localName names.NameId) StmtID {
	return s.New(Stmt{Kind: SImport, Span: span, ImportSpec: spec, ImportName: localName})
}

func (s *Stmts) Export(span source.Span, inner StmtID) StmtID {
	return s.New(Stmt{Kind: SExport, Span: span, ExportInner: inner})
}

func (s *Stmts) MatchStmt(span source.Span, scrutinee ExprID, cases []MatchCase) StmtID {
	return s.New(Stmt{Kind: SMatchStmt, Span: span, MatchScrutinee: scrutinee, MatchCases: cases})
}
