package modreg

import (
	"context"
	"errors"
	"testing"
)

func TestPrefetchHTTPSkipsNonHTTPAndCarriesErrors(t *testing.T) {
	resolved := []Resolved{
		{Kind: SpecBuiltin, Canonical: "std/io"},
		{Kind: SpecHTTP, Canonical: "https://raw.githubusercontent.com/acme/widgets/master/mod.cys"},
		{Kind: SpecHTTP, Canonical: "https://example.com/broken.cys"},
	}

	fetch := func(ctx context.Context, canonical string) ([]byte, error) {
		if canonical == "https://example.com/broken.cys" {
			return nil, errors.New("boom")
		}
		return []byte("body:" + canonical), nil
	}

	results := PrefetchHTTP(context.Background(), resolved, fetch, 2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results (http-only), got %d", len(results))
	}
	byCanonical := map[string]FetchResult{}
	for _, r := range results {
		byCanonical[r.Canonical] = r
	}
	ok := byCanonical["https://raw.githubusercontent.com/acme/widgets/master/mod.cys"]
	if ok.Err != nil || string(ok.Body) != "body:https://raw.githubusercontent.com/acme/widgets/master/mod.cys" {
		t.Fatalf("unexpected successful result: %+v", ok)
	}
	bad := byCanonical["https://example.com/broken.cys"]
	if bad.Err == nil {
		t.Fatalf("expected an error for the broken fetch")
	}
}
