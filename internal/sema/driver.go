package sema

import (
	"time"

	"cyan/internal/ast"
	"cyan/internal/block"
	"cyan/internal/diag"
	"cyan/internal/ids"
	"cyan/internal/modreg"
	"cyan/internal/names"
	"cyan/internal/source"
	"cyan/internal/symbols"
	"cyan/internal/trace"
	"cyan/internal/types"
)

// Driver holds the process-wide tables shared across every chunk analyzed
// in one run (spec §5: sequential, single-threaded, no locking needed) plus
// the per-chunk state for whichever chunk is currently being walked.
type Driver struct {
	Names        *names.Interner
	Globals      *symbols.Globals
	ResolvedSigs *symbols.ResolvedSigTable
	Modules      *modreg.Registry
	Loader       *modreg.Loader
	VM           VMHost
	Reporter     diag.Reporter
	Tracer       *trace.Ring

	// ChunkLoader actually parses and analyzes the chunk behind an import;
	// parsing a file from spec/path into an ast.File is the parser's job,
	// an external collaborator, so this is supplied by whatever embeds
	// sema rather than implemented here.
	ChunkLoader modreg.LoadFunc

	anyName names.NameId

	chunk *chunkState
}

type chunkState struct {
	file      *ast.File
	dir       string
	syms      *symbols.Table
	symRefs   *symbols.SymRefTable
	localSigs *symbols.LocalSigTable
	vars      *block.Vars
	blocks    *block.Stack
	module    *modreg.Module

	// funcSyms tracks the enclosing resolved function symbol for each open
	// function block, used to parent newly created static vars.
	funcSyms []ids.ResolvedSymID
	// staticFn marks, per open function block, whether that function is a
	// static one (capture is a hard error inside it, spec §4.5).
	staticFn []bool
	// returnTypes collects every `return expr`'s inferred type for the
	// innermost open function block, folded into its return type on exit.
	returnTypes [][]types.Type

	inStaticInit bool
}

// NewDriver wires a fresh Driver over shared process-wide tables.
func NewDriver(interner *names.Interner, vm VMHost, reporter diag.Reporter, modules *modreg.Registry, loader *modreg.Loader) *Driver {
	anyName := interner.Intern("any")
	return &Driver{
		Names:        interner,
		Globals:      symbols.NewGlobals(anyName),
		ResolvedSigs: symbols.NewResolvedSigTable(),
		Modules:      modules,
		Loader:       loader,
		VM:           vm,
		Reporter:     reporter,
		Tracer:       trace.NewRing(0, trace.LevelOff),
		anyName:      anyName,
	}
}

// BeginChunk opens a fresh per-chunk scratch state and makes file the
// current chunk for subsequent Analyze* calls.
func (d *Driver) BeginChunk(file *ast.File, dir string) {
	vars := block.NewVars()
	d.chunk = &chunkState{
		file:      file,
		dir:       dir,
		syms:      symbols.NewTable(),
		symRefs:   symbols.NewSymRefTable(),
		localSigs: symbols.NewLocalSigTable(),
		vars:      vars,
		blocks:    block.NewStack(vars),
	}
}

// AnalyzeChunk walks every top-level statement of the chunk begun by
// BeginChunk. It stops at the first non-recoverable error (spec §7: "other
// errors terminate chunk analysis"); the import loader is responsible for
// continuing on to the next queued chunk regardless.
func (d *Driver) AnalyzeChunk() error {
	d.Tracer.Emit(trace.Event{Time: time.Now(), Scope: trace.ScopeChunk, Name: "begin", Note: d.chunk.file.URI})
	defer d.Tracer.Emit(trace.Event{Time: time.Now(), Scope: trace.ScopeChunk, Name: "end", Note: d.chunk.file.URI})

	d.chunk.blocks.PushBlock()
	defer d.chunk.blocks.EndBlock()
	for _, stmt := range d.chunk.file.Top {
		if err := d.AnalyzeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) report(code diag.Code, span source.Span, msg string) {
	diag.ReportError(d.Reporter, code, span, msg).Emit()
}

func (d *Driver) reportNote(code diag.Code, span source.Span, msg string, noteSpan source.Span, note string) {
	diag.ReportError(d.Reporter, code, span, msg).WithNote(noteSpan, note).Emit()
}

// currentFuncSym returns the resolved symbol of the innermost open function
// block, or NoResolvedSymID at chunk top level.
func (c *chunkState) currentFuncSym() ids.ResolvedSymID {
	if len(c.funcSyms) == 0 {
		return ids.NoResolvedSymID
	}
	return c.funcSyms[len(c.funcSyms)-1]
}

func (c *chunkState) currentIsStaticFunc() bool {
	if len(c.staticFn) == 0 {
		return false
	}
	return c.staticFn[len(c.staticFn)-1]
}

// ensureModule lazily creates the module this chunk exports into, used by
// export-stmt handling.
func (d *Driver) ensureModule() *modreg.Module {
	if d.chunk.module == nil {
		mod, _ := d.Modules.GetOrCreatePlaceholder(d.chunk.file.URI)
		d.chunk.module = mod
	}
	return d.chunk.module
}
