// Package semakit holds small test fixture builders and invariant checks
// over the ast and block types, in the style of the teacher's internal/testkit:
// thin assertion helpers over production types rather than a new testing
// framework.
package semakit

import (
	"fmt"

	"cyan/internal/ast"
	"cyan/internal/block"
	"cyan/internal/ids"
	"cyan/internal/names"
	"cyan/internal/source"
)

// Chunk is a minimal ast.File plus its interner, convenient for tests that
// only need a handful of statements wired up without repeating the
// NewFile/Exprs/Stmts boilerplate at every call site.
type Chunk struct {
	Interner *names.Interner
	File     *ast.File
}

// NewChunk creates an empty chunk file with a fresh interner.
func NewChunk(uri string) *Chunk {
	return &Chunk{
		Interner: names.NewInterner(),
		File:     ast.NewFile(1, uri),
	}
}

// Assign builds `name = <int literal value>` as a top-level statement and
// returns its StmtID, for tests that just need one plain assignment.
func (c *Chunk) Assign(name string, value uint64) ast.StmtID {
	n := c.Interner.Intern(name)
	lit := c.File.Exprs.Int(source.Span{}, value)
	lhs := c.File.Exprs.Ident(source.Span{}, n)
	return c.File.Stmts.Assign(source.Span{}, lhs, lit)
}

// CheckLocalVarInvariants verifies the LocalVar invariant from spec §3: at
// most one of {captured, static-alias} holds per slot, and a captured local
// is always boxed.
func CheckLocalVarInvariants(vars *block.Vars) error {
	for i := 1; i <= vars.Len(); i++ {
		lv := vars.Get(ids.LocalVarID(i))
		if lv == nil {
			continue
		}
		if lv.IsCaptured && lv.IsStaticAlias {
			return fmt.Errorf("local var %d is both captured and a static alias", i)
		}
		if lv.IsCaptured && !lv.IsBoxed {
			return fmt.Errorf("local var %d is captured but not boxed", i)
		}
	}
	return nil
}
