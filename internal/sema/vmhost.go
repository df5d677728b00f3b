// Package sema implements SemaDriver: the statement/expression traversal
// that discovers and classifies every name in a chunk, resolves references
// to local slots or global symbols, infers coarse value types, and records
// the block structure a downstream code generator consumes. The tokenizer,
// parser, bytecode generator, VM runtime and CLI are external collaborators
// this package never imports; it only reaches into the VM's object-type,
// field-sym and tag-literal tables through the narrow VMHost interface.
package sema

import (
	"cyan/internal/ids"
	"cyan/internal/names"
	"cyan/internal/types"
)

// VMHost is the narrow interface SemaDriver uses to register types and
// symbols with the runtime's global tables without depending on the VM
// package itself (spec §6).
type VMHost interface {
	EnsureTagType(name names.NameId) ids.TagTypeID
	EnsureTagLitSym(tagType ids.TagTypeID, member names.NameId) ids.ResolvedSymID
	SetTagLitSym(sym ids.ResolvedSymID, tagType ids.TagTypeID, ordinal int)

	EnsureObjectType(name names.NameId) ids.ObjectTypeID
	EnsureFieldSym(obj ids.ObjectTypeID, name names.NameId) ids.FieldSymID
	AddFieldSym(obj ids.ObjectTypeID, field ids.FieldSymID, ordinal int)

	EnsureFuncSym(owner ids.ResolvedSymID, name names.NameId) ids.ResolvedFuncSymID
	EnsureVarSym(owner ids.ResolvedSymID, name names.NameId) ids.ResolvedSymID
	SetFuncSym(sym ids.ResolvedFuncSymID, sig ids.ResolvedFuncSigID, ret types.Type)
	SetVarSym(sym ids.ResolvedSymID, vtype types.Type)

	// Retain hints the VM that a value of this type outlives the
	// expression that produced it (e.g. stored into a local); a no-op
	// host is valid, this is advisory bookkeeping only.
	Retain(t types.Type)
}

// NullVMHost is a VMHost that does nothing, useful for tests that only
// care about sema's own bookkeeping.
type NullVMHost struct{}

func (NullVMHost) EnsureTagType(names.NameId) ids.TagTypeID { return 1 }
func (NullVMHost) EnsureTagLitSym(ids.TagTypeID, names.NameId) ids.ResolvedSymID {
	return 0
}
func (NullVMHost) SetTagLitSym(ids.ResolvedSymID, ids.TagTypeID, int)       {}
func (NullVMHost) EnsureObjectType(names.NameId) ids.ObjectTypeID          { return 1 }
func (NullVMHost) EnsureFieldSym(ids.ObjectTypeID, names.NameId) ids.FieldSymID {
	return 1
}
func (NullVMHost) AddFieldSym(ids.ObjectTypeID, ids.FieldSymID, int)             {}
func (NullVMHost) EnsureFuncSym(ids.ResolvedSymID, names.NameId) ids.ResolvedFuncSymID {
	return 1
}
func (NullVMHost) EnsureVarSym(ids.ResolvedSymID, names.NameId) ids.ResolvedSymID { return 1 }
func (NullVMHost) SetFuncSym(ids.ResolvedFuncSymID, ids.ResolvedFuncSigID, types.Type) {}
func (NullVMHost) SetVarSym(ids.ResolvedSymID, types.Type)                            {}
func (NullVMHost) Retain(types.Type)                                                  {}
