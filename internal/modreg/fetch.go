package modreg

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchFunc retrieves the raw chunk body behind one resolved HTTP(S) import.
// Supplied by the embedding host; modreg has no opinion on the HTTP client.
type FetchFunc func(ctx context.Context, canonical string) ([]byte, error)

// FetchResult pairs a resolved import's canonical spec with its fetched body
// or error.
type FetchResult struct {
	Canonical string
	Body      []byte
	Err       error
}

// PrefetchHTTP fetches every HTTP(S) entry in resolved concurrently, bounded
// by concurrency goroutines at a time (golang.org/x/sync/errgroup, the
// teacher's own concurrency primitive of choice). The single-threaded,
// lock-free invariant over the sym/module tables (spec §5) is unaffected:
// this only parallelizes the network I/O ahead of time; results are handed
// back as a plain slice for the caller to drain into Loader sequentially.
//
// A fetch failure for one entry does not abort the others: every SpecHTTP
// entry gets a FetchResult, successful or not. Entries of any other kind
// are skipped and get no FetchResult.
func PrefetchHTTP(ctx context.Context, resolved []Resolved, fetch FetchFunc, concurrency int) []FetchResult {
	if concurrency <= 0 {
		concurrency = 1
	}
	httpOnly := make([]Resolved, 0, len(resolved))
	for _, r := range resolved {
		if r.Kind == SpecHTTP {
			httpOnly = append(httpOnly, r)
		}
	}
	results := make([]FetchResult, len(httpOnly))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, concurrency)
	for i, r := range httpOnly {
		i, r := i, r
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()
			body, err := fetch(gctx, r.Canonical)
			results[i] = FetchResult{Canonical: r.Canonical, Body: body, Err: err}
			return nil
		})
	}
	_ = g.Wait() // individual errors are carried per-result, never aborts the batch
	return results
}
