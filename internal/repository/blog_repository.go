package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TKMhub/simpro-app/internal/domain"
)

const blogColumns = `id, slug, title, author, category, description, tags, is_public, status,
	good_count, header_image_path, notion_page_id, created_at, updated_at, published_at`

// PostgresBlogRepository implements BlogRepository using PostgreSQL.
type PostgresBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(pool *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{pool: pool}
}

// Count returns the number of records matching the filter, ignoring
// pagination.
func (r *PostgresBlogRepository) Count(ctx context.Context, params domain.ListParams) (int, error) {
	b := buildListFilter(params, false)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM blog_posts"+b.sql(), b.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return total, nil
}

// List returns one page of records matching the filter.
func (r *PostgresBlogRepository) List(ctx context.Context, params domain.ListParams) ([]domain.BlogPost, error) {
	b := buildListFilter(params, false)
	query := fmt.Sprintf("SELECT %s FROM blog_posts%s%s LIMIT $%d OFFSET $%d",
		blogColumns, b.sql(), orderClause(params.Sort, params.Order),
		b.nextPlaceholder(), b.nextPlaceholder()+1)
	args := append(b.args, params.PageSize, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// FindBySlug returns the public record with the given slug, or nil when
// none exists. Non-public records are invisible here on purpose.
func (r *PostgresBlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM blog_posts WHERE slug = $1 AND is_public = TRUE", blogColumns), slug)

	p, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return &p, nil
}

// FacetRows returns the category/tags projection of public published
// records.
func (r *PostgresBlogRepository) FacetRows(ctx context.Context) ([]domain.FacetRow, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT category, tags FROM blog_posts WHERE is_public = TRUE AND status = $1", domain.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("query facet rows: %w", err)
	}
	defer rows.Close()

	var facets []domain.FacetRow
	for rows.Next() {
		var f domain.FacetRow
		if err := rows.Scan(&f.Category, &f.Tags); err != nil {
			return nil, fmt.Errorf("scan facet row: %w", err)
		}
		facets = append(facets, f)
	}
	return facets, rows.Err()
}

// Insert stores a new record, reporting false on a slug conflict.
func (r *PostgresBlogRepository) Insert(ctx context.Context, post *domain.BlogPost) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO blog_posts (id, slug, title, author, category, description, tags, is_public, status,
			good_count, header_image_path, notion_page_id, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW(), $13)
		ON CONFLICT (slug) DO NOTHING`,
		post.ID, post.Slug, post.Title, post.Author, post.Category, post.Description, post.Tags,
		post.IsPublic, post.Status, post.GoodCount, post.HeaderImagePath, post.NotionPageID, post.PublishedAt)
	if err != nil {
		return false, fmt.Errorf("insert blog post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanBlogPost(row pgx.Row) (domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Author, &p.Category, &p.Description, &p.Tags,
		&p.IsPublic, &p.Status, &p.GoodCount, &p.HeaderImagePath, &p.NotionPageID,
		&p.CreatedAt, &p.UpdatedAt, &p.PublishedAt)
	return p, err
}
