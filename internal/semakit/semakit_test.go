package semakit

import (
	"testing"

	"cyan/internal/block"
)

func TestCheckLocalVarInvariantsRejectsCapturedAndStaticAlias(t *testing.T) {
	vars := block.NewVars()
	vars.New(block.LocalVar{IsCaptured: true, IsStaticAlias: true, IsBoxed: true})
	if err := CheckLocalVarInvariants(vars); err == nil {
		t.Fatalf("expected an invariant violation")
	}
}

func TestCheckLocalVarInvariantsRejectsUnboxedCapture(t *testing.T) {
	vars := block.NewVars()
	vars.New(block.LocalVar{IsCaptured: true})
	if err := CheckLocalVarInvariants(vars); err == nil {
		t.Fatalf("expected an invariant violation for an unboxed capture")
	}
}

func TestCheckLocalVarInvariantsAcceptsPlainLocal(t *testing.T) {
	vars := block.NewVars()
	vars.New(block.LocalVar{})
	if err := CheckLocalVarInvariants(vars); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChunkAssignBuildsTopLevelStatement(t *testing.T) {
	c := NewChunk("chunk")
	stmt := c.Assign("x", 5)
	if !stmt.IsValid() {
		t.Fatalf("expected a valid statement id")
	}
}
