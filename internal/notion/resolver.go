package notion

import (
	"context"
	"fmt"
	"strings"
)

// Resolver recovers the canonical page ID of a content record from
// heterogeneous hints: an ID-shaped value is trusted as is, otherwise
// the children of a configured root page are scanned for an exact title
// match, and finally a global page search is tried per title candidate.
// Resolution is read-only and idempotent against the service.
type Resolver struct {
	api        API
	rootPageID string
}

// NewResolver creates a Resolver scoped to rootPageID. An empty
// rootPageID puts the resolver in degraded mode: only ID-shaped hints
// resolve.
func NewResolver(api API, rootPageID string) *Resolver {
	return &Resolver{api: api, rootPageID: rootPageID}
}

// Resolve returns the canonical page ID for the given hint and title
// candidates. The second return value is false when no page could be
// found; that is a normal outcome. Transport errors from the document
// service propagate.
func (r *Resolver) Resolve(ctx context.Context, hint string, titleCandidates []string) (string, bool, error) {
	// ID-shaped hints skip the search entirely. This is the common case
	// once a document has been linked.
	if id, ok := ExtractPageID(hint); ok {
		return id, true, nil
	}

	if r.rootPageID == "" {
		return "", false, nil
	}

	titles := candidateTitles(hint, titleCandidates)
	if len(titles) == 0 {
		return "", false, nil
	}

	// One listing of the root's direct children, capped at the service's
	// page size. The root scope is expected to stay small.
	page, err := r.api.ListChildren(ctx, r.rootPageID, "")
	if err != nil {
		return "", false, fmt.Errorf("list root children: %w", err)
	}
	for _, b := range page.Results {
		if b.Type != "child_page" || b.ChildPage == nil {
			continue
		}
		for _, t := range titles {
			if b.ChildPage.Title == t {
				return CanonicalPageID(b.ID), true, nil
			}
		}
	}

	// Global search, preferring an exact title match over the first hit.
	for _, query := range titles {
		result, err := r.api.SearchPages(ctx, query)
		if err != nil {
			return "", false, fmt.Errorf("search pages: %w", err)
		}
		first := ""
		for _, p := range result.Results {
			if p.Object != "page" || p.ID == "" {
				continue
			}
			id := CanonicalPageID(p.ID)
			if first == "" {
				first = id
			}
			if p.Title() == query {
				return id, true, nil
			}
		}
		if first != "" {
			return first, true, nil
		}
	}

	return "", false, nil
}

// candidateTitles builds the ordered, deduplicated set of title strings
// to try, treating a non-ID-shaped hint as a title.
func candidateTitles(hint string, extra []string) []string {
	seen := make(map[string]struct{}, len(extra)+1)
	titles := make([]string, 0, len(extra)+1)
	for _, t := range append([]string{hint}, extra...) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		titles = append(titles, t)
	}
	return titles
}
