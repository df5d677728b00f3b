package diag

// Code is a stable, compact identifier for one diagnostic kind. The sema
// core only ever emits codes from the Sema* range; lexer/parser/codegen
// ranges belong to other components and are not defined here.
type Code uint16

const (
	UnknownCode Code = 0

	// Lookup / resolution.
	SemaUnresolvedParamType  Code = 3001
	SemaAmbiguousSymbol      Code = 3002
	SemaUnresolvedSymbol     Code = 3003
	SemaNotExported          Code = 3004
	SemaNotAFunctionRef      Code = 3005
	SemaUnsupportedModuleSym Code = 3006

	// Declaration conflicts.
	SemaDuplicateLocal    Code = 3010
	SemaDuplicateType     Code = 3011
	SemaDuplicateTopLevel Code = 3012
	SemaOverloadCollision Code = 3013

	// Scope discipline.
	SemaCanNotUseLocal     Code = 3020
	SemaCaptureInStaticFn  Code = 3021
	SemaAssignNeedsModifier Code = 3022
	SemaBadAliasTarget     Code = 3023

	// Syntax-level rejections surfaced during sema.
	SemaBadAssignTarget   Code = 3030
	SemaBadExportSubject  Code = 3031
	SemaNamedArgsUnsupported Code = 3032
	SemaBadTypeAliasRHS   Code = 3033
	SemaBadStaticVarLHS   Code = 3034

	// Import diagnostics.
	SemaImportPathNotFound Code = 3040
	SemaImportUnsupported  Code = 3041
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "unknown"
	case SemaUnresolvedParamType:
		return "sema-unresolved-param-type"
	case SemaAmbiguousSymbol:
		return "sema-ambiguous-symbol"
	case SemaUnresolvedSymbol:
		return "sema-unresolved-symbol"
	case SemaNotExported:
		return "sema-not-exported"
	case SemaNotAFunctionRef:
		return "sema-not-a-function-ref"
	case SemaUnsupportedModuleSym:
		return "sema-unsupported-module-sym"
	case SemaDuplicateLocal:
		return "sema-duplicate-local"
	case SemaDuplicateType:
		return "sema-duplicate-type"
	case SemaDuplicateTopLevel:
		return "sema-duplicate-top-level"
	case SemaOverloadCollision:
		return "sema-overload-collision"
	case SemaCanNotUseLocal:
		return "sema-can-not-use-local"
	case SemaCaptureInStaticFn:
		return "sema-capture-in-static-fn"
	case SemaAssignNeedsModifier:
		return "sema-assign-needs-modifier"
	case SemaBadAliasTarget:
		return "sema-bad-alias-target"
	case SemaBadAssignTarget:
		return "sema-bad-assign-target"
	case SemaBadExportSubject:
		return "sema-bad-export-subject"
	case SemaNamedArgsUnsupported:
		return "sema-named-args-unsupported"
	case SemaBadTypeAliasRHS:
		return "sema-bad-type-alias-rhs"
	case SemaBadStaticVarLHS:
		return "sema-bad-static-var-lhs"
	case SemaImportPathNotFound:
		return "sema-import-path-not-found"
	case SemaImportUnsupported:
		return "sema-import-unsupported"
	default:
		return "unknown"
	}
}
