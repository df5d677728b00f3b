// Package ids centralizes the small integer-handle types shared between the
// AST, symbol tables, block analyzer and module registry. Keeping them in
// one leaf package (rather than defining each in its owning package, as the
// teacher's compiler does) lets ast.Expr carry a writable resolution slot
// without creating an import cycle back into the symbols package that fills
// it in later.
package ids

// SymID identifies a local (per-chunk) Sym entry. Zero means unresolved.
type SymID uint32

// NoSymID marks the absence of a local symbol reference.
const NoSymID SymID = 0

func (id SymID) IsValid() bool { return id != NoSymID }

// ResolvedSymID identifies a process-wide ResolvedSym entry.
type ResolvedSymID uint32

const NoResolvedSymID ResolvedSymID = 0

func (id ResolvedSymID) IsValid() bool { return id != NoResolvedSymID }

// ResolvedFuncSymID identifies one overload of a resolved function symbol.
type ResolvedFuncSymID uint32

const NoResolvedFuncSymID ResolvedFuncSymID = 0

func (id ResolvedFuncSymID) IsValid() bool { return id != NoResolvedFuncSymID }

// LocalFuncSigID identifies an interned per-chunk function signature (tuple
// of local SymIDs including the return slot).
type LocalFuncSigID uint32

const NoLocalFuncSigID LocalFuncSigID = 0

func (id LocalFuncSigID) IsValid() bool { return id != NoLocalFuncSigID }

// ResolvedFuncSigID identifies an interned, process-wide function signature
// (tuple of ResolvedSymIDs).
type ResolvedFuncSigID uint32

const NoResolvedFuncSigID ResolvedFuncSigID = 0

func (id ResolvedFuncSigID) IsValid() bool { return id != NoResolvedFuncSigID }

// ModuleID identifies an entry in the module registry.
type ModuleID uint32

const NoModuleID ModuleID = 0

func (id ModuleID) IsValid() bool { return id != NoModuleID }

// LocalVarID identifies a LocalVar slot within a chunk.
type LocalVarID uint32

const NoLocalVarID LocalVarID = 0

func (id LocalVarID) IsValid() bool { return id != NoLocalVarID }

// BlockID identifies a function-level Block within a chunk.
type BlockID uint32

const NoBlockID BlockID = 0

func (id BlockID) IsValid() bool { return id != NoBlockID }

// SubBlockID identifies a lexical SubBlock within a chunk.
type SubBlockID uint32

const NoSubBlockID SubBlockID = 0

func (id SubBlockID) IsValid() bool { return id != NoSubBlockID }

// TagTypeID identifies a user-defined tag (enum) type registered with the VM.
type TagTypeID uint16

const NoTagTypeID TagTypeID = 0

func (id TagTypeID) IsValid() bool { return id != NoTagTypeID }

// FieldSymID identifies an object field symbol registered with the VM.
type FieldSymID uint32

const NoFieldSymID FieldSymID = 0

func (id FieldSymID) IsValid() bool { return id != NoFieldSymID }

// ObjectTypeID identifies a user-defined object type registered with the VM.
type ObjectTypeID uint32

const NoObjectTypeID ObjectTypeID = 0

func (id ObjectTypeID) IsValid() bool { return id != NoObjectTypeID }
