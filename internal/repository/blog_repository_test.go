package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMhub/simpro-app/internal/domain"
	"github.com/TKMhub/simpro-app/internal/repository"
)

func newBlogPost(slug string, mutate ...func(*domain.BlogPost)) *domain.BlogPost {
	p := &domain.BlogPost{
		ID:           uuid.New().String(),
		Slug:         slug,
		Title:        "Title " + slug,
		Author:       "TKM",
		Category:     "dev",
		Tags:         []string{"go"},
		IsPublic:     true,
		Status:       domain.StatusPublished,
		NotionPageID: "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
	}
	for _, m := range mutate {
		m(p)
	}
	return p
}

func seedBlogPosts(t *testing.T, repo *repository.PostgresBlogRepository, posts ...*domain.BlogPost) {
	t.Helper()
	ctx := context.Background()
	for _, p := range posts {
		inserted, err := repo.Insert(ctx, p)
		require.NoError(t, err)
		require.True(t, inserted, "seed insert for %s", p.Slug)
	}
}

func TestPostgresBlogRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTestDB(t)
	defer tdb.Cleanup(t)

	ctx := context.Background()
	repo := repository.NewPostgresBlogRepository(tdb.Pool)

	t.Run("Insert", func(t *testing.T) {
		tdb.TruncateTables(t, "blog_posts")

		inserted, err := repo.Insert(ctx, newBlogPost("first"))
		require.NoError(t, err)
		assert.True(t, inserted)

		// Duplicate slug is reported, not an error.
		inserted, err = repo.Insert(ctx, newBlogPost("first"))
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("FindBySlug", func(t *testing.T) {
		tdb.TruncateTables(t, "blog_posts")
		seedBlogPosts(t, repo,
			newBlogPost("visible"),
			newBlogPost("hidden", func(p *domain.BlogPost) { p.IsPublic = false }),
		)

		found, err := repo.FindBySlug(ctx, "visible")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "visible", found.Slug)
		assert.Equal(t, []string{"go"}, found.Tags)
		assert.False(t, found.CreatedAt.IsZero())

		// Private records are invisible.
		found, err = repo.FindBySlug(ctx, "hidden")
		require.NoError(t, err)
		assert.Nil(t, found)

		// Unknown slug is a clean miss, not an error.
		found, err = repo.FindBySlug(ctx, "no-such-post")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("List filters", func(t *testing.T) {
		tdb.TruncateTables(t, "blog_posts")
		seedBlogPosts(t, repo,
			newBlogPost("go-post"),
			newBlogPost("aws-post", func(p *domain.BlogPost) {
				p.Category = "infra"
				p.Tags = []string{"aws", "terraform"}
			}),
			newBlogPost("draft-post", func(p *domain.BlogPost) { p.Status = domain.StatusDraft }),
			newBlogPost("private-post", func(p *domain.BlogPost) { p.IsPublic = false }),
		)

		params := domain.ListParams{}.Normalized(domain.DefaultBlogPageSize)

		posts, err := repo.List(ctx, params)
		require.NoError(t, err)
		assert.Len(t, posts, 2, "published public posts only")

		total, err := repo.Count(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		byCategory := params
		byCategory.Category = "infra"
		posts, err = repo.List(ctx, byCategory)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "aws-post", posts[0].Slug)

		byTags := params
		byTags.Tags = []string{"aws", "terraform"}
		posts, err = repo.List(ctx, byTags)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "aws-post", posts[0].Slug)

		byQuery := params
		byQuery.Query = "title go"
		posts, err = repo.List(ctx, byQuery)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "go-post", posts[0].Slug)

		allStatuses := params
		allStatuses.Status = domain.StatusAll
		total, err = repo.Count(ctx, allStatuses)
		require.NoError(t, err)
		assert.Equal(t, 3, total, "drafts included, private still excluded")
	})

	t.Run("List pagination", func(t *testing.T) {
		tdb.TruncateTables(t, "blog_posts")

		slugs := []string{"p1", "p2", "p3", "p4", "p5"}
		for i, slug := range slugs {
			post := newBlogPost(slug)
			seedBlogPosts(t, repo, post)
			// Space out updated_at so ordering is deterministic.
			_, err := tdb.Pool.Exec(ctx,
				"UPDATE blog_posts SET updated_at = NOW() + $1::interval WHERE slug = $2",
				time.Duration(i)*time.Second, slug)
			require.NoError(t, err)
		}

		params := domain.ListParams{Page: 1, PageSize: 2}.Normalized(domain.DefaultBlogPageSize)

		page1, err := repo.List(ctx, params)
		require.NoError(t, err)
		require.Len(t, page1, 2)
		assert.Equal(t, "p5", page1[0].Slug)
		assert.Equal(t, "p4", page1[1].Slug)

		params.Page = 2
		page2, err := repo.List(ctx, params)
		require.NoError(t, err)
		require.Len(t, page2, 2)
		assert.Equal(t, "p3", page2[0].Slug)

		params.Page = 3
		page3, err := repo.List(ctx, params)
		require.NoError(t, err)
		require.Len(t, page3, 1)

		// Total ignores pagination.
		total, err := repo.Count(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 5, total)

		// Ascending order by creation flips the direction.
		asc := domain.ListParams{Sort: domain.SortCreated, Order: domain.OrderAsc, Page: 1, PageSize: 5}.
			Normalized(domain.DefaultBlogPageSize)
		posts, err := repo.List(ctx, asc)
		require.NoError(t, err)
		require.Len(t, posts, 5)
		assert.Equal(t, "p1", posts[0].Slug)
	})

	t.Run("FacetRows", func(t *testing.T) {
		tdb.TruncateTables(t, "blog_posts")
		seedBlogPosts(t, repo,
			newBlogPost("a", func(p *domain.BlogPost) { p.Tags = []string{"go", "gin"} }),
			newBlogPost("b", func(p *domain.BlogPost) {
				p.Category = "infra"
				p.Tags = []string{"aws"}
			}),
			newBlogPost("c", func(p *domain.BlogPost) { p.Status = domain.StatusDraft }),
			newBlogPost("d", func(p *domain.BlogPost) { p.IsPublic = false }),
		)

		rows, err := repo.FacetRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2, "public published rows only")

		categories := map[string][]string{}
		for _, row := range rows {
			categories[row.Category] = row.Tags
		}
		assert.Equal(t, []string{"go", "gin"}, categories["dev"])
		assert.Equal(t, []string{"aws"}, categories["infra"])
	})
}
