package diag

import "cyan/internal/source"

type dedupKey struct {
	code  Code
	file  source.FileID
	start uint32
	end   uint32
	msg   string
}

// DedupReporter wraps another Reporter and suppresses repeat diagnostics with
// the same code, span and message. Import cycles can otherwise cause the
// same unresolved-symbol diagnostic to surface once per re-visited chunk.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter wraps next.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

// Report forwards d to the wrapped reporter unless an identical diagnostic
// was already reported.
func (r *DedupReporter) Report(d Diagnostic) {
	key := dedupKey{code: d.Code, file: d.Primary.File, start: d.Primary.Start, end: d.Primary.End, msg: d.Message}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}
