package symbols

import (
	"github.com/vmihailenco/msgpack/v5"

	"cyan/internal/ids"
	"cyan/internal/names"
	"cyan/internal/source"
	"cyan/internal/types"
)

// snapshotSym and snapshotFunc mirror ResolvedSym/ResolvedFuncSym field for
// field. A separate wire type keeps the msgpack encoding stable even if the
// in-memory layout grows fields that have no business surviving a snapshot
// (e.g. a future cache pointer).
type snapshotSym struct {
	Parent   ids.ResolvedSymID
	Name     uint32
	Variant  Variant
	Exported bool
	FuncSym  ids.ResolvedFuncSymID
}

type snapshotFunc struct {
	Chunk                uint32
	IsNative             bool
	RFuncSigID           ids.ResolvedFuncSigID
	ReturnKind           uint8
	ReturnCanReqInt      bool
	ReturnTagID          byte
	HasStaticInitializer bool
}

// Snapshot is the on-disk/cross-process form of a Globals table: every
// resolved symbol and every resolved function overload, by array position
// (1-based IDs are preserved as slice index+1 on reload).
type Snapshot struct {
	Syms  []snapshotSym
	Funcs []snapshotFunc
}

// Snapshot captures g's current state for persistence (spec §2's
// process-wide tables, made durable across runs of a long-lived host).
// NameIds are saved as-is; the caller is responsible for persisting and
// restoring the matching names.Interner so NameId values still resolve to
// the same strings on reload.
func (g *Globals) Snapshot() Snapshot {
	out := Snapshot{
		Syms:  make([]snapshotSym, len(g.syms)),
		Funcs: make([]snapshotFunc, len(g.funcs)),
	}
	for i, s := range g.syms {
		out.Syms[i] = snapshotSym{
			Parent:   s.Parent,
			Name:     uint32(s.Name),
			Variant:  s.Variant,
			Exported: s.Exported,
			FuncSym:  s.FuncSym,
		}
	}
	for i, f := range g.funcs {
		out.Funcs[i] = snapshotFunc{
			Chunk:                uint32(f.Chunk),
			IsNative:             f.IsNative,
			RFuncSigID:           f.RFuncSigID,
			ReturnKind:           uint8(f.ReturnType.Kind),
			ReturnCanReqInt:      f.ReturnType.CanRequestInteger,
			ReturnTagID:          f.ReturnType.TagID,
			HasStaticInitializer: f.HasStaticInitializer,
		}
	}
	return out
}

// EncodeSnapshot msgpack-encodes g's current state.
func (g *Globals) EncodeSnapshot() ([]byte, error) {
	return msgpack.Marshal(g.Snapshot())
}

// DecodeSnapshot reads a msgpack-encoded Snapshot back out, without
// installing it into any Globals (see Restore).
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	err := msgpack.Unmarshal(data, &snap)
	return snap, err
}

// Restore rebuilds a Globals from a Snapshot, reconstructing the symIndex
// lookup map from the flattened sym array. anyName must be the same
// interned NameId the original Globals was built with, so builtinAny
// resolves to the same root entry rather than creating a duplicate.
func Restore(snap Snapshot, anyName names.NameId) *Globals {
	g := &Globals{
		syms:     make([]ResolvedSym, len(snap.Syms)),
		funcs:    make([]ResolvedFuncSym, len(snap.Funcs)),
		symIndex: make(map[resolvedKey]ids.ResolvedSymID, len(snap.Syms)),
		overload: make(map[overloadKey]ids.ResolvedFuncSymID, len(snap.Funcs)),
	}
	for i, s := range snap.Syms {
		g.syms[i] = ResolvedSym{
			Parent:   s.Parent,
			Name:     names.NameId(s.Name),
			Variant:  s.Variant,
			Exported: s.Exported,
			FuncSym:  s.FuncSym,
		}
		g.symIndex[resolvedKey{s.Parent, g.syms[i].Name}] = ids.ResolvedSymID(i + 1)
	}
	for i, f := range snap.Funcs {
		g.funcs[i] = ResolvedFuncSym{
			Chunk:      source.FileID(f.Chunk),
			IsNative:   f.IsNative,
			RFuncSigID: f.RFuncSigID,
			ReturnType: types.Type{
				Kind:              types.Kind(f.ReturnKind),
				CanRequestInteger: f.ReturnCanReqInt,
				TagID:             f.ReturnTagID,
			},
			HasStaticInitializer: f.HasStaticInitializer,
		}
	}
	g.builtinAny, _ = g.Lookup(ids.NoResolvedSymID, anyName)
	// The overload map's key space (sym, sig) isn't recoverable from the
	// flattened func array alone, since a ResolvedFuncSym doesn't itself
	// record its owning sym. Restore leaves it empty; a restored Globals is
	// meant for read-only symbol/type lookups (e.g. an LSP hover query), not
	// for resuming mid-analysis overload registration.
	return g
}
