package modreg

import (
	"testing"

	"cyan/internal/ids"
	"cyan/internal/names"
)

func TestModulePutGetAndNamesOrder(t *testing.T) {
	interner := names.NewInterner()
	foo := interner.Intern("foo")
	bar := interner.Intern("bar")

	reg := NewRegistry()
	mod, isNew := reg.GetOrCreatePlaceholder("spec://mod")
	if !isNew {
		t.Fatalf("expected first request to create a new placeholder")
	}

	mod.Put(bar, ids.NoResolvedFuncSigID, Member{Kind: MemberUserVar, Sym: 2})
	mod.Put(foo, ids.NoResolvedFuncSigID, Member{Kind: MemberUserFunc, Sym: 1})

	got, ok := mod.Get(foo, ids.NoResolvedFuncSigID)
	if !ok || got.Kind != MemberUserFunc || got.Sym != 1 {
		t.Fatalf("unexpected member for foo: %+v ok=%v", got, ok)
	}

	order := mod.Names()
	if len(order) != 2 || order[0] != bar || order[1] != foo {
		t.Fatalf("expected insertion order [bar, foo], got %v", order)
	}
}

func TestRegistryGetOrCreatePlaceholderDedupes(t *testing.T) {
	reg := NewRegistry()
	first, isNew := reg.GetOrCreatePlaceholder("spec://mod")
	if !isNew {
		t.Fatalf("expected first call to create")
	}
	second, isNew := reg.GetOrCreatePlaceholder("spec://mod")
	if isNew {
		t.Fatalf("expected second call to reuse the placeholder")
	}
	if first != second {
		t.Fatalf("expected the same Module pointer back")
	}
}
