package modreg

import (
	"cyan/internal/ids"
	"cyan/internal/names"
)

// MemberKind discriminates what a module publishes a name as (spec §4.7:
// "entries {variable, native-func, user-var, user-func, user-object,
// object, sym→one-func, sym→many-funcs}").
type MemberKind uint8

const (
	MemberInvalid MemberKind = iota
	MemberVariable
	MemberNativeFunc
	MemberUserVar
	MemberUserFunc
	MemberUserObject
	MemberObject
	MemberSymOneFunc
	MemberSymManyFuncs
)

// Member is one published name inside a Module.
type Member struct {
	Kind MemberKind
	Sym  ids.ResolvedSymID
	Func ids.ResolvedFuncSymID // valid for MemberSymOneFunc and MemberUserFunc
}

type memberKey struct {
	name names.NameId
	sig  ids.ResolvedFuncSigID // NoResolvedFuncSigID for non-overload lookups
}

// Module is one loaded (or in-flight) chunk registered under its canonical
// import spec string.
type Module struct {
	ID      ids.ModuleID
	Spec    string
	Loaded  bool // false while a placeholder is being filled by its loader
	members map[memberKey]Member
	order   []names.NameId // insertion order, for deterministic import-all
}

func newModule(id ids.ModuleID, spec string) *Module {
	return &Module{ID: id, Spec: spec, members: make(map[memberKey]Member, 8)}
}

// Put registers (or overwrites) a member binding.
func (m *Module) Put(name names.NameId, sig ids.ResolvedFuncSigID, member Member) {
	key := memberKey{name, sig}
	if _, exists := m.members[key]; !exists {
		m.order = append(m.order, name)
	}
	m.members[key] = member
}

// Get looks up a member by name (and overload signature, if disambiguating
// among several).
func (m *Module) Get(name names.NameId, sig ids.ResolvedFuncSigID) (Member, bool) {
	mem, ok := m.members[memberKey{name, sig}]
	return mem, ok
}

// Names returns every published name, in registration order, for
// import-all (spec §4.3: "import-all copies module sym-map keys into
// chunk's symRef as moduleMember").
func (m *Module) Names() []names.NameId { return m.order }

// Registry interns Modules by canonical spec string (spec §4.7: "Module
// registry interned by canonical spec string").
type Registry struct {
	modules []*Module // 1-based
	index   map[string]ids.ModuleID
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]ids.ModuleID, 8)}
}

// GetOrCreatePlaceholder returns the Module for spec, creating an unloaded
// placeholder the first time it is requested. The second return value is
// true only on that first creation; callers use it to decide whether they
// must actually queue the module for loading or whether another in-flight
// (possibly cyclic) request already owns that job.
func (r *Registry) GetOrCreatePlaceholder(spec string) (*Module, bool) {
	if id, ok := r.index[spec]; ok {
		return r.modules[id-1], false
	}
	mod := newModule(ids.ModuleID(len(r.modules)+1), spec)
	r.modules = append(r.modules, mod)
	r.index[spec] = mod.ID
	return mod, true
}

// Get returns the Module for id, or nil.
func (r *Registry) Get(id ids.ModuleID) *Module {
	if !id.IsValid() || int(id) > len(r.modules) {
		return nil
	}
	return r.modules[id-1]
}

// Lookup finds an already-registered module by canonical spec without
// creating a placeholder.
func (r *Registry) Lookup(spec string) (ids.ModuleID, bool) {
	id, ok := r.index[spec]
	return id, ok
}
