package block

import (
	"cyan/internal/ids"
	"cyan/internal/names"
	"cyan/internal/types"
)

// SubBlock tracks the variables assigned inside one if/elif/else/loop/match
// arm, so its enclosing Block can detect type divergence on exit and widen
// (demote to any) accordingly. See spec §4.4.
type SubBlock struct {
	ID     ids.SubBlockID
	IsIter bool

	// assigned is the set of locals written at least once in this
	// sub-block, each mapped to the type it held just before that first
	// write (the snapshot EndSubBlock compares against).
	assigned map[ids.LocalVarID]types.Type

	// iterVarBeginTypes snapshots the loop variables' types at sub-block
	// entry, recorded only for iter sub-blocks, for the code generator's
	// loop-head initializer (spec §4.4, §9).
	iterVarBeginTypes map[ids.LocalVarID]types.Type
}

func newSubBlock(id ids.SubBlockID, isIter bool) *SubBlock {
	return &SubBlock{ID: id, IsIter: isIter, assigned: make(map[ids.LocalVarID]types.Type, 4)}
}

// Block is one function-level scope: its own name table plus a stack of
// SubBlocks for the branches/loops opened while walking its body.
type Block struct {
	ID     ids.BlockID
	Parent ids.BlockID // enclosing function block, none for the chunk root

	nameToVar map[names.NameId]ids.LocalVarID
	subStack  []*SubBlock
}

func newBlock(id, parent ids.BlockID) *Block {
	return &Block{ID: id, Parent: parent, nameToVar: make(map[names.NameId]ids.LocalVarID, 8)}
}

// DeclareLocal binds name to varID in this block's name table.
func (b *Block) DeclareLocal(name names.NameId, varID ids.LocalVarID) {
	b.nameToVar[name] = varID
}

// LookupLocal finds a variable declared directly in this block (not its
// enclosing blocks; capture/static walking is sema's job).
func (b *Block) LookupLocal(name names.NameId) (ids.LocalVarID, bool) {
	id, ok := b.nameToVar[name]
	return id, ok
}

func (b *Block) currentSub() *SubBlock {
	if len(b.subStack) == 0 {
		return nil
	}
	return b.subStack[len(b.subStack)-1]
}

// Stack drives the block/sub-block algebra for one chunk's traversal. It
// holds the open function-block stack (nested for lambdas/inner funcs) and
// the shared LocalVar arena those blocks' locals live in.
type Stack struct {
	vars *Vars

	blocks []*Block
	nextB  uint32
	nextSB uint32
}

// NewStack creates an empty block stack over the given local-variable arena.
func NewStack(vars *Vars) *Stack { return &Stack{vars: vars} }

// Current returns the innermost open Block, or nil if none is open.
func (s *Stack) Current() *Block {
	if len(s.blocks) == 0 {
		return nil
	}
	return s.blocks[len(s.blocks)-1]
}

// PushBlock opens a new function-level scope (a top-level function, method,
// or lambda body) nested under the currently open block, if any.
func (s *Stack) PushBlock() ids.BlockID {
	s.nextB++
	id := ids.BlockID(s.nextB)
	parent := ids.NoBlockID
	if cur := s.Current(); cur != nil {
		parent = cur.ID
	}
	s.blocks = append(s.blocks, newBlock(id, parent))
	return id
}

// EndBlock closes the innermost function block. Per spec §4.4, any
// sub-block still open at that point is implicitly ended first.
func (s *Stack) EndBlock() {
	cur := s.Current()
	if cur == nil {
		return
	}
	for len(cur.subStack) > 0 {
		s.EndSubBlock()
	}
	s.blocks = s.blocks[:len(s.blocks)-1]
}

// PushSubBlock opens a branch/loop arm on the current block. iterVars, when
// non-empty, marks this as an iter sub-block and snapshots their current
// types as the loop-head begin-types.
func (s *Stack) PushSubBlock(iterVars []ids.LocalVarID) ids.SubBlockID {
	cur := s.Current()
	if cur == nil {
		return ids.NoSubBlockID
	}
	s.nextSB++
	id := ids.SubBlockID(s.nextSB)
	sb := newSubBlock(id, len(iterVars) > 0)
	if sb.IsIter {
		sb.iterVarBeginTypes = make(map[ids.LocalVarID]types.Type, len(iterVars))
		for _, v := range iterVars {
			if lv := s.vars.Get(v); lv != nil {
				sb.iterVarBeginTypes[v] = lv.VType
			}
		}
	}
	cur.subStack = append(cur.subStack, sb)
	return id
}

// AssignToLocal records a write to varID inside the current sub-block (if
// any is open) and stores newType as its current type. Only the first
// write within a given sub-block snapshots the pre-write type; later
// writes in the same sub-block just update VType.
func (s *Stack) AssignToLocal(varID ids.LocalVarID, newType types.Type) {
	lv := s.vars.Get(varID)
	if lv == nil {
		return
	}
	if cur := s.Current(); cur != nil {
		if sb := cur.currentSub(); sb != nil {
			if _, seen := sb.assigned[varID]; !seen {
				sb.assigned[varID] = lv.VType
			}
		}
	}
	lv.VType = newType
	if newType.RCCandidate() {
		lv.LifetimeRCCandidate = true
	}
}

// EndSubBlock closes the innermost sub-block of the current block, merging
// any variable whose type diverged from its pre-branch snapshot to any
// (spec §4.4 "merge-to-any demotion"). When another sub-block remains open
// above it, the demoted/assigned vars are re-recorded against that parent
// sub-block so the widening keeps propagating outward. Returns the set of
// locals touched in this sub-block.
func (s *Stack) EndSubBlock() []ids.LocalVarID {
	cur := s.Current()
	if cur == nil || len(cur.subStack) == 0 {
		return nil
	}
	sb := cur.subStack[len(cur.subStack)-1]
	cur.subStack = cur.subStack[:len(cur.subStack)-1]

	touched := make([]ids.LocalVarID, 0, len(sb.assigned))
	for varID, before := range sb.assigned {
		touched = append(touched, varID)
		lv := s.vars.Get(varID)
		if lv == nil {
			continue
		}
		if lv.VType.Kind != before.Kind || lv.VType.TagID != before.TagID {
			lv.VType = types.Any
			lv.LifetimeRCCandidate = true
		}
		if parent := cur.currentSub(); parent != nil {
			if _, seen := parent.assigned[varID]; !seen {
				parent.assigned[varID] = before
			}
		}
	}
	return touched
}

// EndIterSubBlock closes an iter sub-block (for-loop bodies) the same
// way EndSubBlock does, additionally returning the loop-head begin-types
// recorded when it was opened, for the code generator's iteration
// initializer.
func (s *Stack) EndIterSubBlock() ([]ids.LocalVarID, map[ids.LocalVarID]types.Type) {
	cur := s.Current()
	if cur == nil || len(cur.subStack) == 0 {
		return nil, nil
	}
	begin := cur.subStack[len(cur.subStack)-1].iterVarBeginTypes
	touched := s.EndSubBlock()
	return touched, begin
}
