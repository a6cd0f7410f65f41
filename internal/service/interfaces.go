package service

import (
	"context"

	"github.com/TKMhub/simpro-app/internal/domain"
)

// ContentProvider defines the interface for content queries.
// Used for dependency injection and mocking in tests.
type ContentProvider interface {
	// ListBlog returns one page of public blog headers.
	ListBlog(ctx context.Context, params domain.ListParams) (*domain.BlogListResult, error)
	// BlogDetail returns a blog post with its body document, or nil when
	// no public post has the slug.
	BlogDetail(ctx context.Context, slug string) (*domain.BlogDetail, error)
	// BlogFacets aggregates categories and per-category tags.
	BlogFacets(ctx context.Context) (*domain.Facets, error)
	// ListProduct returns one page of public product headers.
	ListProduct(ctx context.Context, params domain.ListParams) (*domain.ProductListResult, error)
	// ProductDetail returns a product post with its body document, or nil
	// when no public post has the slug.
	ProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error)
}
