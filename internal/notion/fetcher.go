package notion

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidPageID is returned when a fetch is attempted with an
// identifier that is not in canonical form. It is an input error and is
// raised before any network call.
var ErrInvalidPageID = errors.New("invalid page id")

// Fetcher retrieves the full ordered block tree of a page, flattened
// depth-first into a single sequence.
type Fetcher struct {
	api API
}

// NewFetcher creates a Fetcher backed by api.
func NewFetcher(api API) *Fetcher {
	return &Fetcher{api: api}
}

// FetchBlocks returns the pre-order flattening of the block tree rooted
// at pageID: each block precedes its children, children precede the
// following sibling. Nesting depth is not preserved; the normalized
// model is flat.
func (f *Fetcher) FetchBlocks(ctx context.Context, pageID string) ([]RawBlock, error) {
	if !IsCanonicalPageID(pageID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPageID, pageID)
	}
	var blocks []RawBlock
	if err := f.appendChildren(ctx, pageID, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (f *Fetcher) appendChildren(ctx context.Context, blockID string, out *[]RawBlock) error {
	cursor := ""
	for {
		// Loop until the service reports no further pages; stopping after
		// the first page would silently truncate long documents.
		page, err := f.api.ListChildren(ctx, blockID, cursor)
		if err != nil {
			return fmt.Errorf("fetch children of %s: %w", blockID, err)
		}
		for _, b := range page.Results {
			*out = append(*out, b)
			if b.HasChildren {
				if err := f.appendChildren(ctx, b.ID, out); err != nil {
					return err
				}
			}
		}
		if !page.HasMore || page.NextCursor == "" {
			return nil
		}
		cursor = page.NextCursor
	}
}
