package modreg

// PendingImport is one queued import request: a spec string plus the
// directory of the chunk that referenced it (needed to resolve a
// filesystem-relative spec).
type PendingImport struct {
	Spec    string
	ChunkDir string
}

// LoadFunc actually parses and analyzes the chunk behind a freshly created
// placeholder Module, publishing its members via mod.Put. It is supplied by
// the sema driver, which alone knows how to run a chunk through analysis;
// this package only owns dedup, queuing, and spec classification.
type LoadFunc func(mod *Module, resolved Resolved) error

// Loader drives the FIFO import worklist described in spec §4.7: chunks
// queue their imports as they're discovered, and the loader processes the
// queue breadth-first, deduplicating by canonical spec and skipping a spec
// that is already loaded or mid-load (cycle safety via Registry's
// placeholder semantics).
type Loader struct {
	registry *Registry
	builtins BuiltinSet
	resolver FileResolver
	pending  []PendingImport
}

// NewLoader creates an import loader over the given module registry.
func NewLoader(registry *Registry, builtins BuiltinSet, resolver FileResolver) *Loader {
	return &Loader{registry: registry, builtins: builtins, resolver: resolver}
}

// Enqueue adds an import request to the back of the FIFO queue.
func (l *Loader) Enqueue(spec, chunkDir string) {
	l.pending = append(l.pending, PendingImport{Spec: spec, ChunkDir: chunkDir})
}

// Drain processes every queued import (including ones load adds via
// further Enqueue calls while running) until the queue is empty. A spec
// that fails to resolve or load is recorded and skipped; processing
// continues with the next queued chunk rather than aborting the whole run
// (spec §7: "import loader continues with next chunk").
func (l *Loader) Drain(load LoadFunc) []error {
	var errs []error
	for len(l.pending) > 0 {
		task := l.pending[0]
		l.pending = l.pending[1:]

		resolved, err := ResolveSpec(task.Spec, task.ChunkDir, l.builtins, l.resolver)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		mod, isNew := l.registry.GetOrCreatePlaceholder(resolved.Canonical)
		if !isNew {
			// Already loaded, or a placeholder from an enclosing import that
			// cycles back here; either way nothing more to do.
			continue
		}
		if err := load(mod, resolved); err != nil {
			errs = append(errs, err)
			continue
		}
		mod.Loaded = true
	}
	return errs
}

// GetOrLoadModule resolves spec and either returns the already-registered
// Module (loaded or mid-load) or loads it synchronously via load. Callers
// that want breadth-first batching across many chunks should prefer
// Enqueue+Drain; this is the direct single-import path used by import-stmt
// handling when synchronous resolution is acceptable.
func (l *Loader) GetOrLoadModule(spec, chunkDir string, load LoadFunc) (*Module, error) {
	resolved, err := ResolveSpec(spec, chunkDir, l.builtins, l.resolver)
	if err != nil {
		return nil, err
	}
	mod, isNew := l.registry.GetOrCreatePlaceholder(resolved.Canonical)
	if !isNew {
		return mod, nil
	}
	if err := load(mod, resolved); err != nil {
		return mod, err
	}
	mod.Loaded = true
	return mod, nil
}
