package modreg

import "testing"

type fakeBuiltins map[string]bool

func (f fakeBuiltins) IsBuiltin(name string) bool { return f[name] }

type fakeResolver struct {
	exists map[string]string
}

func (r fakeResolver) Realpath(dir, path string) (string, bool) {
	resolved, ok := r.exists[dir+"|"+path]
	return resolved, ok
}

func TestResolveSpecBuiltinPassesThrough(t *testing.T) {
	got, err := ResolveSpec("io", "/chunks", fakeBuiltins{"io": true}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != SpecBuiltin || got.Canonical != "io" {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestResolveSpecGitHubRewrite(t *testing.T) {
	got, err := ResolveSpec("https://github.com/user/repo", "/chunks", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://raw.githubusercontent.com/user/repo/master/mod.cys"
	if got.Kind != SpecHTTP || got.Canonical != want {
		t.Fatalf("expected github rewrite to %q, got %+v", want, got)
	}
}

func TestResolveSpecHTTPNonGitHubUnchanged(t *testing.T) {
	raw := "https://example.com/pkg/mod.cys"
	got, err := ResolveSpec(raw, "/chunks", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != SpecHTTP || got.Canonical != raw {
		t.Fatalf("expected non-github URL unchanged, got %+v", got)
	}
}

func TestResolveSpecMultiSegmentFilesystemUsesResolver(t *testing.T) {
	resolver := fakeResolver{exists: map[string]string{"/chunks|a/b/c": "/chunks/a/b/c.cys"}}
	got, err := ResolveSpec("a/b/c", "/chunks", nil, resolver)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != SpecFilesystem || got.Canonical != "/chunks/a/b/c.cys" {
		t.Fatalf("expected a >2-segment filesystem path to be resolved through resolver, not passed through, got %+v", got)
	}
}

func TestResolveSpecMultiSegmentNotFound(t *testing.T) {
	_, err := ResolveSpec("sub/dir/mod.cys", "/chunks", nil, fakeResolver{exists: map[string]string{}})
	if err != ErrImportPathNotFound {
		t.Fatalf("expected ErrImportPathNotFound for an unresolvable multi-segment path, got %v", err)
	}
}

func TestResolveSpecFilesystemNotFound(t *testing.T) {
	_, err := ResolveSpec("./sibling", "/chunks", nil, fakeResolver{exists: map[string]string{}})
	if err != ErrImportPathNotFound {
		t.Fatalf("expected ErrImportPathNotFound, got %v", err)
	}
}

func TestResolveSpecFilesystemResolved(t *testing.T) {
	resolver := fakeResolver{exists: map[string]string{"/chunks|./sibling": "/chunks/sibling.cys"}}
	got, err := ResolveSpec("./sibling", "/chunks", nil, resolver)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != SpecFilesystem || got.Canonical != "/chunks/sibling.cys" {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}
