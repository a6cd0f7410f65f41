package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMhub/simpro-app/internal/domain"
	"github.com/TKMhub/simpro-app/internal/repository"
)

func newProductPost(slug string, mutate ...func(*domain.ProductPost)) *domain.ProductPost {
	p := &domain.ProductPost{
		ID:           uuid.New().String(),
		Slug:         slug,
		Title:        "Product " + slug,
		Author:       "TKM",
		Category:     "tools",
		Type:         domain.ProductTypeTool,
		Tags:         []string{"cli"},
		IsPublic:     true,
		Status:       domain.StatusPublished,
		ActionType:   domain.ActionTransition,
		NotionPageID: "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
	}
	for _, m := range mutate {
		m(p)
	}
	return p
}

func TestPostgresProductRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTestDB(t)
	defer tdb.Cleanup(t)

	ctx := context.Background()
	repo := repository.NewPostgresProductRepository(tdb.Pool)

	seed := func(t *testing.T, posts ...*domain.ProductPost) {
		t.Helper()
		for _, p := range posts {
			inserted, err := repo.Insert(ctx, p)
			require.NoError(t, err)
			require.True(t, inserted, "seed insert for %s", p.Slug)
		}
	}

	t.Run("Insert rejects duplicate slugs", func(t *testing.T) {
		tdb.TruncateTables(t, "product_posts")

		inserted, err := repo.Insert(ctx, newProductPost("tool-a"))
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = repo.Insert(ctx, newProductPost("tool-a"))
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("FindBySlug", func(t *testing.T) {
		tdb.TruncateTables(t, "product_posts")

		link := "https://github.com/TKMhub/tool-a"
		seed(t,
			newProductPost("tool-a", func(p *domain.ProductPost) {
				p.ContentLink = &link
				p.ActionType = domain.ActionDownload
			}),
			newProductPost("secret", func(p *domain.ProductPost) { p.IsPublic = false }),
		)

		found, err := repo.FindBySlug(ctx, "tool-a")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, domain.ProductTypeTool, found.Type)
		assert.Equal(t, domain.ActionDownload, found.ActionType)
		require.NotNil(t, found.ContentLink)
		assert.Equal(t, link, *found.ContentLink)

		found, err = repo.FindBySlug(ctx, "secret")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("List filters by type", func(t *testing.T) {
		tdb.TruncateTables(t, "product_posts")
		seed(t,
			newProductPost("tool-a"),
			newProductPost("template-a", func(p *domain.ProductPost) { p.Type = domain.ProductTypeTemplate }),
			newProductPost("service-a", func(p *domain.ProductPost) { p.Type = domain.ProductTypeService }),
		)

		params := domain.ListParams{Type: domain.ProductTypeTemplate}.Normalized(domain.DefaultProductPageSize)

		posts, err := repo.List(ctx, params)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "template-a", posts[0].Slug)

		total, err := repo.Count(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		all := domain.ListParams{}.Normalized(domain.DefaultProductPageSize)
		total, err = repo.Count(ctx, all)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})
}
