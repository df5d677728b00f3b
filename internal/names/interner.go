// Package names interns identifier strings into stable NameIds, the currency
// every other sema component uses instead of raw strings. Every interned
// name owns a private copy of its bytes; no name borrows a source span.
package names

// NameId is a stable handle for an interned identifier string. The zero
// value means "no name".
type NameId uint32

// NoNameId marks the absence of a name reference.
const NoNameId NameId = 0

// IsValid reports whether id refers to an interned name.
func (id NameId) IsValid() bool { return id != NoNameId }

// Interner assigns stable NameIds to identifier strings, deduplicating by
// content so two references to the same identifier always share an id.
type Interner struct {
	byID  []string
	index map[string]NameId
}

// NewInterner creates an empty interner. Index 0 is reserved for NoNameId.
func NewInterner() *Interner {
	return &Interner{byID: []string{""}, index: map[string]NameId{"": NoNameId}}
}

// Intern returns the stable NameId for s, interning a private copy of s the
// first time it is seen. Callers may pass a string that borrows a transient
// parser buffer; Intern always takes ownership of a fresh copy so the
// interner never outlives or aliases that buffer.
func (in *Interner) Intern(s string) NameId {
	if id, ok := in.index[s]; ok {
		return id
	}
	owned := string([]byte(s))
	id := NameId(len(in.byID))
	in.byID = append(in.byID, owned)
	in.index[owned] = id
	return id
}

// Lookup returns the interned string for id, or "" if id is not valid.
func (in *Interner) Lookup(id NameId) (string, bool) {
	if !id.IsValid() || int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics if id is invalid.
func (in *Interner) MustLookup(id NameId) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("names: invalid NameId")
	}
	return s
}

// Len reports how many distinct names are interned, including NoNameId.
func (in *Interner) Len() int { return len(in.byID) }
