package repository

import (
	"context"

	"github.com/TKMhub/simpro-app/internal/domain"
)

// BlogRepository defines read access to blog post records, plus the
// insert used by the batch importer.
type BlogRepository interface {
	// Count returns the number of records matching the filter, ignoring
	// pagination.
	Count(ctx context.Context, params domain.ListParams) (int, error)
	// List returns one page of records matching the filter.
	List(ctx context.Context, params domain.ListParams) ([]domain.BlogPost, error)
	// FindBySlug returns the public record with the given slug, or nil
	// when none exists.
	FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	// FacetRows returns the category/tags projection of public published
	// records.
	FacetRows(ctx context.Context) ([]domain.FacetRow, error)
	// Insert stores a new record. It returns false when the slug is
	// already taken.
	Insert(ctx context.Context, post *domain.BlogPost) (bool, error)
}

// ProductRepository defines read access to product post records, plus
// the insert used by the batch importer.
type ProductRepository interface {
	Count(ctx context.Context, params domain.ListParams) (int, error)
	List(ctx context.Context, params domain.ListParams) ([]domain.ProductPost, error)
	FindBySlug(ctx context.Context, slug string) (*domain.ProductPost, error)
	// Insert stores a new record. It returns false when the slug is
	// already taken.
	Insert(ctx context.Context, post *domain.ProductPost) (bool, error)
}
