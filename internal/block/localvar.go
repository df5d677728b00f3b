// Package block implements the per-chunk lexical scope model: function
// Blocks, the SubBlock stack used for if/else/loop/match branches, and the
// LocalVar table whose types get merged (demoted to any) when a branch
// assigns a variable a type its pre-branch snapshot disagrees with.
package block

import (
	"cyan/internal/ids"
	"cyan/internal/types"
)

// LocalVar is one chunk-local variable slot, either a true stack local, a
// captured upvalue, or a static alias back into the resolved-symbol table.
type LocalVar struct {
	VType types.Type

	IsParam                    bool
	IsCaptured                 bool
	IsBoxed                    bool
	IsStaticAlias              bool
	HasCaptureOrStaticModifier bool
	LifetimeRCCandidate        bool
	GenInitializer             bool
	GenIsDefined               bool

	// Slot is the codegen register assignment; opaque to this package.
	Slot uint32

	// Alias is the resolved static-var symbol this local aliases; valid
	// only when IsStaticAlias is true (spec §3, LocalVar payload).
	Alias ids.SymID
}

// Vars is the per-chunk arena of every LocalVar created while walking a
// chunk. Blocks reference entries by ids.LocalVarID; the arena itself
// outlives any one Block/SubBlock.
type Vars struct {
	vars []LocalVar // 1-based
}

// NewVars creates an empty per-chunk local-variable arena.
func NewVars() *Vars { return &Vars{} }

// New allocates a fresh LocalVar and returns its id.
func (v *Vars) New(lv LocalVar) ids.LocalVarID {
	v.vars = append(v.vars, lv)
	return ids.LocalVarID(len(v.vars))
}

// Get returns a writable pointer to the LocalVar, or nil if id is invalid.
func (v *Vars) Get(id ids.LocalVarID) *LocalVar {
	if !id.IsValid() || int(id) > len(v.vars) {
		return nil
	}
	return &v.vars[id-1]
}

// Len reports how many locals this chunk has allocated.
func (v *Vars) Len() int { return len(v.vars) }
