package block

import (
	"testing"

	"cyan/internal/ids"
	"cyan/internal/types"
)

func TestAssignMergeDemotesOnDivergence(t *testing.T) {
	vars := NewVars()
	x := vars.New(LocalVar{VType: types.Number})

	s := NewStack(vars)
	s.PushBlock()
	s.PushSubBlock(nil) // if-branch
	s.AssignToLocal(x, types.String)
	s.EndSubBlock()

	got := vars.Get(x)
	if got.VType.Kind != types.KindAny {
		t.Fatalf("expected merge-to-any after divergent branch assign, got %v", got.VType.Kind)
	}
	if !got.LifetimeRCCandidate {
		t.Fatalf("expected lifetimeRcCandidate after widening to any")
	}
}

func TestAssignNoMergeWhenTypeAgrees(t *testing.T) {
	vars := NewVars()
	x := vars.New(LocalVar{VType: types.Number})

	s := NewStack(vars)
	s.PushBlock()
	s.PushSubBlock(nil)
	s.AssignToLocal(x, types.Number)
	s.EndSubBlock()

	got := vars.Get(x)
	if got.VType.Kind != types.KindNumber {
		t.Fatalf("expected type to remain number, got %v", got.VType.Kind)
	}
}

func TestNestedSubBlockPropagatesWidening(t *testing.T) {
	vars := NewVars()
	x := vars.New(LocalVar{VType: types.Number})

	s := NewStack(vars)
	s.PushBlock()
	s.PushSubBlock(nil) // outer if
	s.PushSubBlock(nil) // nested if inside it
	s.AssignToLocal(x, types.String)
	s.EndSubBlock() // closes inner: the divergence widens x to any here
	s.EndSubBlock() // closes outer: x must stay widened

	got := vars.Get(x)
	if got.VType.Kind != types.KindAny {
		t.Fatalf("expected widening to propagate through nested sub-blocks, got %v", got.VType.Kind)
	}
}

func TestIterSubBlockRecordsBeginTypes(t *testing.T) {
	vars := NewVars()
	x := vars.New(LocalVar{VType: types.Int})

	s := NewStack(vars)
	s.PushBlock()
	s.PushSubBlock([]ids.LocalVarID{x})
	s.AssignToLocal(x, types.Number)
	touched, begin := s.EndIterSubBlock()

	if len(touched) != 1 || touched[0] != x {
		t.Fatalf("expected x reported as touched, got %v", touched)
	}
	bt, ok := begin[x]
	if !ok || bt.Kind != types.KindInt {
		t.Fatalf("expected begin type int recorded for loop var, got %+v ok=%v", bt, ok)
	}
}

func TestEndBlockClosesOutstandingSubBlock(t *testing.T) {
	vars := NewVars()
	s := NewStack(vars)
	s.PushBlock()
	s.PushSubBlock(nil)
	s.EndBlock() // should not panic and should leave no open block
	if s.Current() != nil {
		t.Fatalf("expected no block open after EndBlock")
	}
}
