package diag

import "sort"

// Bag collects diagnostics from one analysis run for later inspection.
type Bag struct {
	items []Diagnostic
}

// NewBag creates an empty bag.
func NewBag() *Bag { return &Bag{} }

// Report implements Reporter by appending d.
func (b *Bag) Report(d Diagnostic) { b.items = append(b.items, d) }

// HasErrors reports whether any collected diagnostic is error severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// Items returns the collected diagnostics; callers must not mutate it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Len reports how many diagnostics were collected.
func (b *Bag) Len() int { return len(b.items) }

// Sort orders diagnostics by file, start offset, then severity descending,
// for deterministic output across runs.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		return di.Severity > dj.Severity
	})
}
