package modreg

import (
	"errors"
	"testing"
)

func TestLoaderDeduplicatesBySpec(t *testing.T) {
	reg := NewRegistry()
	loader := NewLoader(reg, fakeBuiltins{"math": true}, nil)
	loader.Enqueue("math", "/chunks")
	loader.Enqueue("math", "/chunks")

	loadCount := 0
	errs := loader.Drain(func(mod *Module, resolved Resolved) error {
		loadCount++
		return nil
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if loadCount != 1 {
		t.Fatalf("expected exactly one load for a repeated spec, got %d", loadCount)
	}
}

func TestLoaderContinuesPastFailedImport(t *testing.T) {
	reg := NewRegistry()
	loader := NewLoader(reg, fakeBuiltins{"good": true, "bad": true}, nil)
	loader.Enqueue("bad", "/chunks")
	loader.Enqueue("good", "/chunks")

	var loaded []string
	errs := loader.Drain(func(mod *Module, resolved Resolved) error {
		if mod.Spec == "bad" {
			return errors.New("boom")
		}
		loaded = append(loaded, mod.Spec)
		return nil
	})
	if len(errs) != 1 {
		t.Fatalf("expected exactly one recorded error, got %d: %v", len(errs), errs)
	}
	if len(loaded) != 1 || loaded[0] != "good" {
		t.Fatalf("expected the loader to still process the next chunk, got %v", loaded)
	}
}

func TestGetOrLoadModulePlaceholderCyclesafe(t *testing.T) {
	reg := NewRegistry()
	loader := NewLoader(reg, fakeBuiltins{"cyc": true}, nil)

	calls := 0
	var load LoadFunc
	load = func(mod *Module, resolved Resolved) error {
		calls++
		// Simulate a self-import discovered mid-load: the nested request
		// must see the existing placeholder rather than recursing forever.
		nested, err := loader.GetOrLoadModule("cyc", "/chunks", load)
		if err != nil {
			t.Fatalf("nested load failed: %v", err)
		}
		if nested != mod {
			t.Fatalf("expected nested request to return the same placeholder")
		}
		return nil
	}
	if _, err := loader.GetOrLoadModule("cyc", "/chunks", load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected the loader body to run exactly once despite the cycle, got %d", calls)
	}
}
