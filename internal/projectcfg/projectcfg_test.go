package projectcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "cyan.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if cfg.Module != want.Module || cfg.Root != want.Root || len(cfg.Rewrite) != 0 {
		t.Fatalf("expected default config, got %+v", cfg)
	}
}

func TestLoadParsesRewriteTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cyan.toml")
	contents := `
module = "demo"
root = "src"

[rewrite]
"acme/widgets" = "https://example.com/acme/widgets/mod.cys"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Module != "demo" || cfg.Root != "src" {
		t.Fatalf("unexpected module/root: %+v", cfg)
	}
	if got := cfg.Rewrite["acme/widgets"]; got != "https://example.com/acme/widgets/mod.cys" {
		t.Fatalf("unexpected rewrite entry: %q", got)
	}
}
