package ast

import "cyan/internal/source"

// File is one parsed chunk: a flat top-level statement list plus the two
// node arenas it owns. The parser (external to this module) is expected to
// build one of these per source file/module; SemaDriver then walks it.
type File struct {
	ID    source.FileID
	URI   string // chunk path/spec, used by the import loader to resolve relatives
	Stmts *Stmts
	Exprs *Exprs
	Top   []StmtID
}

// NewFile creates an empty chunk ready for a parser to populate.
func NewFile(id source.FileID, uri string) *File {
	return &File{ID: id, URI: uri, Stmts: NewStmts(), Exprs: NewExprs()}
}
