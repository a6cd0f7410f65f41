package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TKMhub/simpro-app/internal/domain"
)

const productColumns = `id, slug, title, author, category, description, type, tags, is_public, status,
	good_count, header_image_path, notion_page_id, content_link, action_type, created_at, updated_at, published_at`

// PostgresProductRepository implements ProductRepository using PostgreSQL.
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// Count returns the number of records matching the filter, ignoring
// pagination.
func (r *PostgresProductRepository) Count(ctx context.Context, params domain.ListParams) (int, error) {
	b := buildListFilter(params, true)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM product_posts"+b.sql(), b.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count product posts: %w", err)
	}
	return total, nil
}

// List returns one page of records matching the filter.
func (r *PostgresProductRepository) List(ctx context.Context, params domain.ListParams) ([]domain.ProductPost, error) {
	b := buildListFilter(params, true)
	query := fmt.Sprintf("SELECT %s FROM product_posts%s%s LIMIT $%d OFFSET $%d",
		productColumns, b.sql(), orderClause(params.Sort, params.Order),
		b.nextPlaceholder(), b.nextPlaceholder()+1)
	args := append(b.args, params.PageSize, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query product posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.ProductPost
	for rows.Next() {
		p, err := scanProductPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// FindBySlug returns the public record with the given slug, or nil when
// none exists.
func (r *PostgresProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.ProductPost, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM product_posts WHERE slug = $1 AND is_public = TRUE", productColumns), slug)

	p, err := scanProductPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product post by slug: %w", err)
	}
	return &p, nil
}

// Insert stores a new record, reporting false on a slug conflict.
func (r *PostgresProductRepository) Insert(ctx context.Context, post *domain.ProductPost) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO product_posts (id, slug, title, author, category, description, type, tags, is_public, status,
			good_count, header_image_path, notion_page_id, content_link, action_type, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW(), $16)
		ON CONFLICT (slug) DO NOTHING`,
		post.ID, post.Slug, post.Title, post.Author, post.Category, post.Description, post.Type, post.Tags,
		post.IsPublic, post.Status, post.GoodCount, post.HeaderImagePath, post.NotionPageID,
		post.ContentLink, post.ActionType, post.PublishedAt)
	if err != nil {
		return false, fmt.Errorf("insert product post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanProductPost(row pgx.Row) (domain.ProductPost, error) {
	var p domain.ProductPost
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Author, &p.Category, &p.Description, &p.Type, &p.Tags,
		&p.IsPublic, &p.Status, &p.GoodCount, &p.HeaderImagePath, &p.NotionPageID,
		&p.ContentLink, &p.ActionType, &p.CreatedAt, &p.UpdatedAt, &p.PublishedAt)
	return p, err
}
