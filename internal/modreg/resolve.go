// Package modreg implements the import-spec resolver and module registry
// described in spec §4.7: classifying an import string as builtin,
// http(s) (with the GitHub shorthand rewrite), or filesystem-relative, then
// loading and caching the resulting module exactly once per run.
package modreg

import (
	"errors"
	"net/url"
	"strings"
)

// SpecKind discriminates how an import string was classified.
type SpecKind uint8

const (
	SpecUnknown SpecKind = iota
	SpecBuiltin
	SpecHTTP
	SpecFilesystem
)

// ErrImportPathNotFound reports a filesystem import whose target could not
// be canonicalized (spec §6, "Import path does not exist").
var ErrImportPathNotFound = errors.New("import path does not exist")

// BuiltinSet answers whether a bare import name is a known builtin module,
// exactly the narrow membership test spec §6 asks of the module loader
// callback ("just for builtin-membership testing").
type BuiltinSet interface {
	IsBuiltin(name string) bool
}

// githubRawRewrite matches `https://github.com/<user>/<repo>` (optionally
// with a trailing slash and nothing else), the only GitHub shorthand the
// spec rewrites.
func githubRawRewrite(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host != "github.com" {
		return "", false
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) != 2 || segs[0] == "" || segs[1] == "" {
		return "", false
	}
	return "https://raw.githubusercontent.com/" + segs[0] + "/" + segs[1] + "/master/mod.cys", true
}

// Resolved is the outcome of classifying one import spec string.
type Resolved struct {
	Kind SpecKind
	// Canonical is the spec to key the module cache on: the rewritten
	// GitHub raw URL for SpecHTTP, the realpath'd absolute path for
	// SpecFilesystem, or the bare name for SpecBuiltin.
	Canonical string
}

// FileResolver abstracts the filesystem realpath lookup spec §6 describes
// as `currentDirectory.realpath(path, scratch)`, kept narrow so this
// package never does its own I/O.
type FileResolver interface {
	// Realpath resolves path relative to the directory containing
	// importingChunk (itself a realpath'd chunk URI) to an absolute,
	// canonical path. ok is false when the target does not exist.
	Realpath(importingChunkDir, path string) (resolved string, ok bool)
}

// ResolveSpec classifies spec per spec §4.7: a builtin module name passes
// through unchanged; an http(s) URL is rewritten when it matches the GitHub
// shorthand and left alone otherwise; anything else is treated as a
// filesystem path relative to importingChunkDir, canonicalized through
// resolver. The >2-segment passthrough carve-out belongs only to the GitHub
// shorthand decision above: every filesystem spec, regardless of how many
// path segments it has, is canonicalized through resolver so that two
// chunks importing the same file via different relative paths land on the
// same Canonical string.
func ResolveSpec(spec, importingChunkDir string, builtins BuiltinSet, resolver FileResolver) (Resolved, error) {
	if builtins != nil && builtins.IsBuiltin(spec) {
		return Resolved{Kind: SpecBuiltin, Canonical: spec}, nil
	}

	if strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://") {
		if raw, ok := githubRawRewrite(spec); ok {
			return Resolved{Kind: SpecHTTP, Canonical: raw}, nil
		}
		return Resolved{Kind: SpecHTTP, Canonical: spec}, nil
	}

	resolved, ok := resolver.Realpath(importingChunkDir, spec)
	if !ok {
		return Resolved{}, ErrImportPathNotFound
	}
	return Resolved{Kind: SpecFilesystem, Canonical: resolved}, nil
}
